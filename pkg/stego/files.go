package stego

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ConcealArgs configures a file-level embed operation.
type ConcealArgs struct {
	ImagePath   string
	Message     string
	MessageFile string // overrides Message when set
	Output      string
	ECC         bool // armor the payload with Reed-Solomon parity
	Verbose     bool
}

// RevealArgs configures a file-level extract operation.
type RevealArgs struct {
	ImagePath string
	ECC       bool
	Verbose   bool
}

// Conceal loads a cover image from disk, embeds the secret text and
// writes the stego image as PNG. PNG output is mandatory: a lossy format
// would destroy the LSB payload.
func Conceal(args *ConcealArgs) (*EmbedResult, error) {
	img, err := loadImage(args.ImagePath)
	if err != nil {
		return nil, err
	}

	if args.Output == "" {
		args.Output = fmt.Sprintf("%s.out.png", args.ImagePath)
	}

	secret := args.Message
	if args.MessageFile != "" {
		raw, err := os.ReadFile(args.MessageFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %v", err)
		}
		secret = string(raw)
	}

	if args.ECC {
		secret, err = ArmorText(secret)
		if err != nil {
			return nil, fmt.Errorf("failed to apply Reed-Solomon armor: %v", err)
		}
	}

	cover := toNRGBA(img)

	if args.Verbose {
		log.Debug().
			Int("width", cover.Bounds().Dx()).
			Int("height", cover.Bounds().Dy()).
			Int("secretBytes", len(secret)).
			Msg("Loaded cover image")
	}

	result, err := EmbedText(cover, secret)
	if err != nil {
		return nil, err
	}

	if args.Verbose {
		log.Debug().
			Int("capacity", result.CapacityBits).
			Int("embedded", result.EmbeddedBits).
			Float64("threshold", result.Threshold).
			Msg("Embedded payload")
	}

	if err := SavePNG(args.Output, result.Stego); err != nil {
		return nil, err
	}

	log.Info().
		Str("output", args.Output).
		Float64("psnr", result.PSNR).
		Float64("ssim", result.SSIM).
		Msg("Concealed message in image")

	return result, nil
}

// Reveal loads a stego image from disk and extracts the hidden text.
func Reveal(args *RevealArgs) (string, error) {
	img, err := loadImage(args.ImagePath)
	if err != nil {
		return "", err
	}

	stego := toNRGBA(img)

	if args.Verbose {
		log.Debug().
			Int("width", stego.Bounds().Dx()).
			Int("height", stego.Bounds().Dy()).
			Msg("Loaded stego image")
	}

	text, err := ExtractText(stego)
	if err != nil {
		return "", err
	}

	if args.ECC {
		text, err = UnarmorText(text)
		if err != nil {
			return "", fmt.Errorf("Reed-Solomon recovery failed: %v", err)
		}
	}

	return text, nil
}
