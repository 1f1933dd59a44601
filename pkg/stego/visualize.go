package stego

import (
	"image"
	"image/color"
)

// ComplexityHeatmap renders a complexity map as a blue-to-red heatmap:
// smooth regions come out blue, strong edges red.
func ComplexityHeatmap(img *image.NRGBA) *image.NRGBA {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	complexity := AnalyzeComplexity(img)

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := complexity[y*width+x]
			out.SetNRGBA(x, y, color.NRGBA{R: v, B: 255 - v, A: 255})
		}
	}
	return out
}

// MaskOverlay renders the embedding mask an image would be assigned:
// green for 1-bit pixels, yellow for 2-bit pixels, black for pixels
// outside the block grid.
func MaskOverlay(img *image.NRGBA) *image.NRGBA {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	complexity := AnalyzeComplexity(img)
	mask, _, _ := BuildMask(complexity, width, height)

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{A: 255}
			switch mask[y*width+x] {
			case 1:
				c.G = 255
			case 2:
				c.R = 255
				c.G = 255
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
