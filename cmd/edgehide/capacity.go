package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/minhdn/edgehide/pkg/stego"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [image-path]",
	Short: "Calculate the adaptive storage capacity of an image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := stego.LoadImage(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load image")
		}
		report := stego.AnalyzeCapacity(img)

		wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(wtr, "Capacity (bits)\tCapacity (bytes)\tThreshold\t2-bit blocks\t1-bit blocks\tAvg bits/pixel")
		fmt.Fprintln(wtr, "---------------\t----------------\t---------\t------------\t------------\t--------------")
		fmt.Fprintf(wtr, "%d\t%d\t%.2f\t%d (%.1f%%)\t%d (%.1f%%)\t%.4f\n",
			report.CapacityBits, report.CapacityBytes, report.Threshold,
			report.HighBlocks, report.HighPercent,
			report.LowBlocks, report.LowPercent,
			report.AverageBPP)
		wtr.Flush()
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
