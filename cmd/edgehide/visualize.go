package main

import (
	"github.com/minhdn/edgehide/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	visualizeFlags struct {
		Image      string
		Complexity string
		Mask       string
	}
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render the complexity map and embedding mask of an image",
	Run: func(cmd *cobra.Command, args []string) {
		img, err := stego.LoadImage(visualizeFlags.Image)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}

		if err := stego.SavePNG(visualizeFlags.Complexity, stego.ComplexityHeatmap(img)); err != nil {
			log.Fatal().Err(err).Msg("Failed to write complexity heatmap")
		}
		log.Info().Str("output", visualizeFlags.Complexity).Msg("Wrote complexity heatmap")

		if err := stego.SavePNG(visualizeFlags.Mask, stego.MaskOverlay(img)); err != nil {
			log.Fatal().Err(err).Msg("Failed to write mask overlay")
		}
		log.Info().Str("output", visualizeFlags.Mask).Msg("Wrote embedding mask overlay")
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVarP(&visualizeFlags.Image, "image-path", "i", "", "Path to image (required)")
	visualizeCmd.MarkFlagRequired("image-path")
	visualizeCmd.Flags().StringVarP(&visualizeFlags.Complexity, "complexity", "c", "complexity.png", "Output path for the complexity heatmap")
	visualizeCmd.Flags().StringVarP(&visualizeFlags.Mask, "mask", "m", "mask.png", "Output path for the embedding mask overlay")
}
