package stego

import (
	"image"
	"math"
)

// MSE returns the mean squared error between two images of equal size,
// averaged over the red, green and blue channels of every pixel.
func MSE(original, modified *image.NRGBA) float64 {
	width := original.Bounds().Dx()
	height := original.Bounds().Dy()

	var sum float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := original.PixOffset(x, y)
			j := modified.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				d := float64(original.Pix[i+c]) - float64(modified.Pix[j+c])
				sum += d * d
			}
		}
	}
	return sum / (float64(width*height) * 3.0)
}

// PSNR returns the peak signal-to-noise ratio in decibels between two
// images of equal size. Identical images yield +Inf; the value is not
// clamped to a display-friendly band.
func PSNR(original, modified *image.NRGBA) float64 {
	mse := MSE(original, modified)
	if mse == 0 {
		return math.Inf(1)
	}
	return 20 * math.Log10(255/math.Sqrt(mse))
}

// SSIM returns a whole-image structural similarity score between two
// images of equal size, computed on the grayscale conversion with global
// mean, variance and covariance. This is a coarse single-window
// approximation, not the sliding-window SSIM from the image quality
// literature, so do not compare its output against reference
// implementations of the latter.
func SSIM(original, modified *image.NRGBA) float64 {
	const (
		c1 = (0.01 * 255) * (0.01 * 255)
		c2 = (0.03 * 255) * (0.03 * 255)
	)

	a := grayscale(original)
	b := grayscale(modified)
	n := float64(len(a))

	var sumA, sumB float64
	for i := range a {
		sumA += a[i]
		sumB += b[i]
	}
	muA := sumA / n
	muB := sumB / n

	var varA, varB, cov float64
	for i := range a {
		da := a[i] - muA
		db := b[i] - muB
		varA += da * da
		varB += db * db
		cov += da * db
	}
	varA /= n
	varB /= n
	cov /= n

	numerator := (2*muA*muB + c1) * (2*cov + c2)
	denominator := (muA*muA + muB*muB + c1) * (varA + varB + c2)
	return numerator / denominator
}
