package stego

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// CompareArgs names the images to compare and where to write the
// difference heatmap.
type CompareArgs struct {
	OriginalPath *string
	StegoPath    *string
	HeatmapPath  *string
}

// CompareResult holds metrics about the comparison between two images.
type CompareResult struct {
	MSE  float64
	PSNR float64 // dB, +Inf for identical images
	SSIM float64
}

// Compare measures the distortion between an original image and a stego
// image and renders a difference heatmap: black for untouched pixels,
// green for slight changes, red for large ones.
func Compare(args *CompareArgs) (*CompareResult, error) {
	origRaw, err := loadImage(*args.OriginalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load original: %v", err)
	}
	stegoRaw, err := loadImage(*args.StegoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load stego image: %v", err)
	}

	orig := toNRGBA(origRaw)
	stego := toNRGBA(stegoRaw)

	bounds := orig.Bounds()
	if bounds != stego.Bounds() {
		return nil, fmt.Errorf("image dimensions do not match: %v vs %v", bounds, stego.Bounds())
	}

	width, height := bounds.Max.X, bounds.Max.Y
	heatmap := image.NewNRGBA(bounds)

	bar := progressbar.NewOptions(
		width*height,
		progressbar.OptionSetDescription("comparing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			bar.Add(1)
			p1 := orig.PixOffset(x, y)
			p2 := stego.PixOffset(x, y)

			var diffSum float64
			for c := 0; c < 3; c++ {
				diffSum += math.Abs(float64(orig.Pix[p1+c]) - float64(stego.Pix[p2+c]))
			}

			if diffSum > 0 {
				// Amplify tiny LSB differences so they are visible.
				intensity := uint8(math.Min(255, diffSum*50))
				heatmap.Set(x, y, color.NRGBA{R: intensity, G: 255 - intensity, B: 0, A: 255})
			} else {
				heatmap.Set(x, y, color.NRGBA{A: 255})
			}
		}
	}

	if err := SavePNG(*args.HeatmapPath, heatmap); err != nil {
		return nil, fmt.Errorf("failed to write heatmap: %v", err)
	}

	return &CompareResult{
		MSE:  MSE(orig, stego),
		PSNR: PSNR(orig, stego),
		SSIM: SSIM(orig, stego),
	}, nil
}
