package stego

import (
	"image"
	"math"
)

// Luma weights used to collapse RGB into a single intensity channel.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// AnalyzeComplexity converts an image into a per-pixel complexity map.
// Each value is the Sobel gradient magnitude of the grayscale image,
// normalized to the 0-255 range. Smooth regions score low, edges and
// textured regions score high. A fully uniform image maps to all zeros.
func AnalyzeComplexity(img *image.NRGBA) []uint8 {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	gray := grayscale(img)

	// Clamped lookup gives the same result as padding the grid by
	// replicating its edge pixels.
	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		} else if x >= width {
			x = width - 1
		}
		if y < 0 {
			y = 0
		} else if y >= height {
			y = height - 1
		}
		return gray[y*width+x]
	}

	magnitude := make([]float64, width*height)
	maxMagnitude := 0.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Sobel kernels, written as paired differences so a constant
			// region cancels exactly instead of leaving float residue that
			// the normalization below would stretch to full scale. The
			// intermediate variables keep every operation individually
			// rounded; fused multiply-adds here would let the mask diverge
			// between an embedder and an extractor built for different
			// architectures.
			dxTop := at(x+1, y-1) - at(x-1, y-1)
			dxMid := 2 * (at(x+1, y) - at(x-1, y))
			dxBot := at(x+1, y+1) - at(x-1, y+1)
			gx := dxTop + dxMid + dxBot

			dyLeft := at(x-1, y+1) - at(x-1, y-1)
			dyMid := 2 * (at(x, y+1) - at(x, y-1))
			dyRight := at(x+1, y+1) - at(x+1, y-1)
			gy := dyLeft + dyMid + dyRight

			gx2 := gx * gx
			gy2 := gy * gy
			m := math.Sqrt(gx2 + gy2)
			magnitude[y*width+x] = m
			if m > maxMagnitude {
				maxMagnitude = m
			}
		}
	}

	out := make([]uint8, width*height)
	if maxMagnitude > 0 {
		for i, m := range magnitude {
			out[i] = uint8(m / maxMagnitude * 255)
		}
	}
	return out
}

func grayscale(img *image.NRGBA) []float64 {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	gray := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			r := lumaR * float64(img.Pix[i])
			g := lumaG * float64(img.Pix[i+1])
			b := lumaB * float64(img.Pix[i+2])
			gray[y*width+x] = r + g + b
		}
	}
	return gray
}
