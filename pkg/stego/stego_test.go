package stego

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"
)

// texturedCover builds a deterministic noisy cover image. Natural texture
// keeps the embedding mask stable when the payload perturbs the blue
// channel, which the extraction side depends on.
func texturedCover(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	state := uint32(2463534242)
	for i := range img.Pix {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		img.Pix[i] = uint8(state)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func uniformCover(w, h int, v uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	return img
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		secret string
	}{
		{"square cover", 64, 64, "The quick brown fox jumps over the lazy dog"},
		{"non-square cover", 100, 99, "This is an integration test message!"},
		{"multibyte utf8", 32, 32, "xin chào thế giới 🌍"},
		{"odd width", 65, 64, "odd width"},
		{"odd both dimensions", 33, 33, "edge case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cover := texturedCover(tt.width, tt.height)
			result, err := EmbedText(cover, tt.secret)
			if err != nil {
				t.Fatalf("EmbedText failed: %v", err)
			}

			got, err := ExtractText(result.Stego)
			if err != nil {
				t.Fatalf("ExtractText failed: %v", err)
			}
			if got != tt.secret {
				t.Errorf("round trip mismatch.\nWant: %q\nGot:  %q", tt.secret, got)
			}
		})
	}
}

func TestEmbedReportsCapacityAndMetrics(t *testing.T) {
	cover := texturedCover(64, 64)
	secret := "The quick brown fox jumps over the lazy dog"

	result, err := EmbedText(cover, secret)
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	// 43 bytes of text: 32 header bits + 344 payload bits + 8 delimiter bits.
	if result.EmbeddedBits != 384 {
		t.Errorf("EmbeddedBits = %d, want 384", result.EmbeddedBits)
	}
	if result.CapacityBits < result.EmbeddedBits {
		t.Errorf("capacity %d smaller than embedded bits %d", result.CapacityBits, result.EmbeddedBits)
	}
	// 64x64 has 1024 blocks; capacity is bounded by 1 and 2 bits per pixel.
	if result.CapacityBits < 4096 || result.CapacityBits > 8192 {
		t.Errorf("CapacityBits = %d, outside [4096, 8192]", result.CapacityBits)
	}
	if result.PSNR < 40 {
		t.Errorf("PSNR = %f, expected well above 40dB for a small payload", result.PSNR)
	}
	if result.SSIM < 0.99 || result.SSIM > 1 {
		t.Errorf("SSIM = %f, expected close to 1", result.SSIM)
	}
}

func TestEmbedDeterminism(t *testing.T) {
	cover := texturedCover(64, 64)
	secret := "determinism"

	first, err := EmbedText(cover, secret)
	if err != nil {
		t.Fatalf("first EmbedText failed: %v", err)
	}
	second, err := EmbedText(cover, secret)
	if err != nil {
		t.Fatalf("second EmbedText failed: %v", err)
	}

	if !bytes.Equal(first.Stego.Pix, second.Stego.Pix) {
		t.Error("two embeds of the same input produced different stego images")
	}

	a, err := ExtractText(first.Stego)
	if err != nil {
		t.Fatalf("first ExtractText failed: %v", err)
	}
	b, err := ExtractText(first.Stego)
	if err != nil {
		t.Fatalf("second ExtractText failed: %v", err)
	}
	if a != b {
		t.Errorf("two extracts of the same stego image differ: %q vs %q", a, b)
	}
}

func TestEmbedOnlyTouchesBlueLowBits(t *testing.T) {
	cover := texturedCover(64, 64)
	result, err := EmbedText(cover, "The quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	stego := result.Stego
	modified := 0
	for i := 0; i < len(cover.Pix); i += 4 {
		if cover.Pix[i] != stego.Pix[i] || cover.Pix[i+1] != stego.Pix[i+1] || cover.Pix[i+3] != stego.Pix[i+3] {
			t.Fatalf("pixel %d modified outside the blue channel", i/4)
		}
		if diff := cover.Pix[i+2] ^ stego.Pix[i+2]; diff != 0 {
			if diff > 3 {
				t.Fatalf("pixel %d blue channel modified above the low 2 bits (xor %#x)", i/4, diff)
			}
			modified++
		}
	}

	// Traversal halts once the payload is consumed, so at most one pixel
	// per embedded bit can differ.
	if modified > result.EmbeddedBits {
		t.Errorf("%d pixels modified, more than the %d embedded bits", modified, result.EmbeddedBits)
	}
}

func TestEmbedDoesNotMutateCover(t *testing.T) {
	cover := texturedCover(32, 32)
	original := make([]uint8, len(cover.Pix))
	copy(original, cover.Pix)

	if _, err := EmbedText(cover, "immutable"); err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}
	if !bytes.Equal(cover.Pix, original) {
		t.Error("EmbedText mutated the cover image")
	}
}

func TestTrailingOddRowAndColumnUntouched(t *testing.T) {
	cover := texturedCover(33, 33)
	result, err := EmbedText(cover, "edge case")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	stego := result.Stego
	for y := 0; y < 33; y++ {
		i := cover.PixOffset(32, y)
		if !bytes.Equal(cover.Pix[i:i+4], stego.Pix[i:i+4]) {
			t.Fatalf("trailing column pixel (32,%d) was modified", y)
		}
	}
	for x := 0; x < 33; x++ {
		i := cover.PixOffset(x, 32)
		if !bytes.Equal(cover.Pix[i:i+4], stego.Pix[i:i+4]) {
			t.Fatalf("trailing row pixel (%d,32) was modified", x)
		}
	}
}

func TestCapacityExceeded(t *testing.T) {
	// A flat 4x4 cover has 4 blocks, all low complexity: 16 bits capacity.
	// 50 bytes of text need 32+400+8 = 440 bits.
	cover := uniformCover(4, 4, 77)
	original := make([]uint8, len(cover.Pix))
	copy(original, cover.Pix)

	secret := strings.Repeat("x", 50)

	_, err := EmbedText(cover, secret)
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if capErr.Required != 440 {
		t.Errorf("Required = %d, want 440", capErr.Required)
	}
	if capErr.Available != 16 {
		t.Errorf("Available = %d, want 16", capErr.Available)
	}
	if !bytes.Equal(cover.Pix, original) {
		t.Error("failed embed modified the cover image")
	}
}

func TestFlatCoverEmbed(t *testing.T) {
	cover := uniformCover(64, 64, 128)

	result, err := EmbedText(cover, "HI")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	// Zero complexity everywhere: threshold 0, every block classified
	// low, 1 bit per pixel.
	if result.Threshold != 0 {
		t.Errorf("Threshold = %f, want 0", result.Threshold)
	}
	if result.CapacityBits != 4096 {
		t.Errorf("CapacityBits = %d, want 4096", result.CapacityBits)
	}
	if result.EmbeddedBits != 56 {
		t.Errorf("EmbeddedBits = %d, want 56", result.EmbeddedBits)
	}

	modified := 0
	for i := 2; i < len(cover.Pix); i += 4 {
		if cover.Pix[i] != result.Stego.Pix[i] {
			modified++
		}
	}
	if modified == 0 || modified > 56 {
		t.Errorf("%d blue values modified, want between 1 and 56", modified)
	}
}

func TestExtractFromCleanCover(t *testing.T) {
	// A flat cover has every blue LSB equal, so the extracted length
	// header reads as zero.
	if _, err := ExtractText(uniformCover(64, 64, 128)); !errors.Is(err, ErrNoData) {
		t.Errorf("flat clean cover: expected ErrNoData, got %v", err)
	}

	// A textured cover whose blue low bits are cleared yields an all-zero
	// stream regardless of which pixels get 2-bit depth.
	clean := texturedCover(40, 40)
	for i := 2; i < len(clean.Pix); i += 4 {
		clean.Pix[i] &^= 3
	}
	if _, err := ExtractText(clean); !errors.Is(err, ErrNoData) {
		t.Errorf("textured clean cover: expected ErrNoData, got %v", err)
	}
}

// A flat cover carries the payload but cannot give it back: the embedded
// bits are the only texture in the stego image, so the recomputed mask no
// longer matches the one used for embedding. The codec reports no data
// instead of returning garbage.
func TestFlatCoverExtractionDiverges(t *testing.T) {
	cover := uniformCover(64, 64, 128)
	result, err := EmbedText(cover, "HI")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	if _, err := ExtractText(result.Stego); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData from flat-cover stego, got %v", err)
	}
}

func TestEmbedEmptyText(t *testing.T) {
	cover := texturedCover(16, 16)
	result, err := EmbedText(cover, "")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}
	if result.EmbeddedBits != 0 {
		t.Errorf("EmbeddedBits = %d, want 0", result.EmbeddedBits)
	}
	if !bytes.Equal(cover.Pix, result.Stego.Pix) {
		t.Error("embedding empty text modified pixels")
	}
}
