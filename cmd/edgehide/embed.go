package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minhdn/edgehide/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	embedFlags struct {
		Image string
		Msg   string
		File  string
		Out   string
		ECC   bool
	}
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a secret text in an image",
	Run: func(cmd *cobra.Command, args []string) {
		if embedFlags.Msg == "" && embedFlags.File == "" {
			log.Fatal().Msg("either a message or a message file must be provided")
		}
		if embedFlags.Msg != "" && embedFlags.File != "" {
			log.Fatal().Msg("message and file flags cannot both be provided")
		}

		if embedFlags.Out != "" {
			if err := os.MkdirAll(filepath.Dir(embedFlags.Out), 0755); err != nil {
				log.Fatal().Err(err).Msg("Failed to create output directory")
			}
		}

		result, err := stego.Conceal(&stego.ConcealArgs{
			ImagePath:   embedFlags.Image,
			Message:     embedFlags.Msg,
			MessageFile: embedFlags.File,
			Output:      embedFlags.Out,
			ECC:         embedFlags.ECC,
			Verbose:     verbose,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to embed message")
		}

		fmt.Printf("Capacity:   %d bits\n", result.CapacityBits)
		fmt.Printf("Embedded:   %d bits\n", result.EmbeddedBits)
		fmt.Printf("Threshold:  %.2f\n", result.Threshold)
		fmt.Printf("PSNR:       %.2f dB\n", result.PSNR)
		fmt.Printf("SSIM:       %.4f\n", result.SSIM)
	},
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedFlags.Image, "image-path", "i", "", "Path to cover image (required)")
	embedCmd.MarkFlagRequired("image-path")
	embedCmd.Flags().StringVarP(&embedFlags.Msg, "message", "m", "", "Secret text to embed")
	embedCmd.Flags().StringVarP(&embedFlags.File, "file", "f", "", "Path to file with the secret text (overrides message)")
	embedCmd.Flags().StringVarP(&embedFlags.Out, "output", "o", "", "Output path for the stego image (PNG)")
	embedCmd.Flags().BoolVar(&embedFlags.ECC, "ecc", false, "Armor the payload with Reed-Solomon parity")
}
