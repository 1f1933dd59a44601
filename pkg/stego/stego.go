package stego

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoData indicates that no well-formed payload could be recovered.
// A cover image that never carried data and a stego image damaged beyond
// the length header both surface as ErrNoData.
var ErrNoData = errors.New("no hidden data found")

// CapacityError is returned when a payload does not fit the capacity the
// mask builder computed for the cover image.
type CapacityError struct {
	Required  int // payload length in bits
	Available int // image capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload of %d bits exceeds image capacity of %d bits", e.Required, e.Available)
}

// EmbedResult is the outcome of a successful embedding.
type EmbedResult struct {
	Stego        *image.NRGBA
	CapacityBits int
	EmbeddedBits int
	Threshold    float64
	PSNR         float64
	SSIM         float64
}

// EmbedText hides a secret text inside the blue channel of the cover
// image. The cover is never modified; the returned stego image is a fresh
// copy whose blue channel carries the framed payload, written into the
// 1 or 2 low bits the embedding mask assigns to each pixel.
//
// The mask is derived from the cover's own complexity map, so extraction
// can rebuild it from the stego image without any side channel.
func EmbedText(cover *image.NRGBA, secret string) (*EmbedResult, error) {
	width := cover.Bounds().Dx()
	height := cover.Bounds().Dy()

	bits := EncodePayload(secret)

	complexity := AnalyzeComplexity(cover)
	mask, threshold, capacity := BuildMask(complexity, width, height)

	if len(bits) > capacity {
		return nil, &CapacityError{Required: len(bits), Available: capacity}
	}

	stego := cloneImage(cover)
	consumed := 0
	forEachBlockPixel(width, height, func(x, y int) bool {
		if consumed >= len(bits) {
			return false
		}
		depth := int(mask[y*width+x])
		if depth == 0 {
			return true
		}
		// If the stream runs out mid-pixel, write only the bits that
		// remain instead of padding the group with zeros.
		if remaining := len(bits) - consumed; remaining < depth {
			depth = remaining
		}

		var group uint8
		for _, bit := range bits[consumed : consumed+depth] {
			group = group<<1 | bit
		}
		i := stego.PixOffset(x, y) + 2
		stego.Pix[i] = stego.Pix[i]&^(1<<depth-1) | group
		consumed += depth
		return true
	})

	return &EmbedResult{
		Stego:        stego,
		CapacityBits: capacity,
		EmbeddedBits: len(bits),
		Threshold:    threshold,
		PSNR:         PSNR(cover, stego),
		SSIM:         SSIM(cover, stego),
	}, nil
}

// ExtractText recovers a secret text from a stego image produced by
// EmbedText. It recomputes the complexity map and embedding mask from the
// stego pixels, reads the assigned low bits of every blue channel value in
// traversal order, and decodes the accumulated stream. ErrNoData is
// returned when the stream does not contain a plausible payload.
func ExtractText(stego *image.NRGBA) (string, error) {
	width := stego.Bounds().Dx()
	height := stego.Bounds().Dy()

	complexity := AnalyzeComplexity(stego)
	mask, _, capacity := BuildMask(complexity, width, height)

	bits := make([]byte, 0, capacity)
	forEachBlockPixel(width, height, func(x, y int) bool {
		depth := mask[y*width+x]
		if depth == 0 {
			return true
		}
		blue := stego.Pix[stego.PixOffset(x, y)+2]
		if depth == 2 {
			bits = append(bits, blue>>1&1)
		}
		bits = append(bits, blue&1)
		return true
	})

	return DecodePayload(bits)
}
