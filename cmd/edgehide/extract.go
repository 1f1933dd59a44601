package main

import (
	"errors"
	"fmt"

	"github.com/minhdn/edgehide/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	extractFlags struct {
		Image string
		ECC   bool
	}
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract hidden text from a stego image",
	Run: func(cmd *cobra.Command, args []string) {
		text, err := stego.Reveal(&stego.RevealArgs{
			ImagePath: extractFlags.Image,
			ECC:       extractFlags.ECC,
			Verbose:   verbose,
		})
		if errors.Is(err, stego.ErrNoData) {
			log.Info().Msg("No hidden data found")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to extract message")
		}

		fmt.Println(text)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractFlags.Image, "image-path", "i", "", "Path to stego image (required)")
	extractCmd.MarkFlagRequired("image-path")
	extractCmd.Flags().BoolVar(&extractFlags.ECC, "ecc", false, "Remove Reed-Solomon armor from the payload")
}
