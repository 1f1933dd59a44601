package stego

import "image"

// CapacityReport breaks down how much data an image can carry and how the
// adaptive bit-depth assignment distributes over its blocks.
type CapacityReport struct {
	CapacityBits  int
	CapacityBytes int
	Threshold     float64
	HighBlocks    int // blocks assigned 2 bits per pixel
	LowBlocks     int // blocks assigned 1 bit per pixel
	TotalBlocks   int
	HighPercent   float64
	LowPercent    float64
	AverageBPP    float64 // capacity bits per image pixel
}

// AnalyzeCapacity computes the embedding capacity of an image without
// embedding anything. The numbers match exactly what EmbedText would see
// for the same cover.
func AnalyzeCapacity(img *image.NRGBA) *CapacityReport {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	complexity := AnalyzeComplexity(img)
	mask, threshold, capacity := BuildMask(complexity, width, height)

	report := &CapacityReport{
		CapacityBits:  capacity,
		CapacityBytes: capacity / 8,
		Threshold:     threshold,
	}

	for by := 0; by < height/blockSize; by++ {
		for bx := 0; bx < width/blockSize; bx++ {
			if mask[by*blockSize*width+bx*blockSize] == 2 {
				report.HighBlocks++
			} else {
				report.LowBlocks++
			}
		}
	}
	report.TotalBlocks = report.HighBlocks + report.LowBlocks

	if report.TotalBlocks > 0 {
		report.HighPercent = float64(report.HighBlocks) / float64(report.TotalBlocks) * 100
		report.LowPercent = float64(report.LowBlocks) / float64(report.TotalBlocks) * 100
	}
	if width*height > 0 {
		report.AverageBPP = float64(capacity) / float64(width*height)
	}
	return report
}
