package stego

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
)

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadImage decodes a PNG, JPEG or GIF file into the NRGBA layout the
// codec works on.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any decoded image into the NRGBA layout the codec
// works on. The result is always a fresh buffer.
func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

// SavePNG writes an image to disk as PNG, the only output format that
// preserves the embedded LSBs.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
