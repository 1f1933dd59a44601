package stego

// blockSize is the side length of the square tiles used for complexity
// aggregation and bit-depth assignment.
const blockSize = 2

// BuildMask partitions a complexity map into 2x2 blocks and assigns an
// embedding depth to every pixel: 2 bits for blocks whose mean complexity
// strictly exceeds the global mean, 1 bit otherwise. Pixels in a trailing
// odd row or column fall outside block accounting and get depth 0.
//
// It returns the per-pixel mask, the threshold (mean block complexity)
// and the total embedding capacity in bits. Both the embedder and the
// extractor derive their mask through this function, so any change here
// affects both sides identically.
func BuildMask(complexity []uint8, width, height int) (mask []uint8, threshold float64, capacity int) {
	blocksW := width / blockSize
	blocksH := height / blockSize

	mask = make([]uint8, width*height)
	if blocksW == 0 || blocksH == 0 {
		return mask, 0, 0
	}

	blockComplexity := make([]float64, blocksW*blocksH)
	sum := 0.0
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			x, y := bx*blockSize, by*blockSize
			mean := (float64(complexity[y*width+x]) +
				float64(complexity[y*width+x+1]) +
				float64(complexity[(y+1)*width+x]) +
				float64(complexity[(y+1)*width+x+1])) / 4.0
			blockComplexity[by*blocksW+bx] = mean
			sum += mean
		}
	}
	threshold = sum / float64(blocksW*blocksH)

	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			// Strict comparison: a block exactly at the threshold is
			// treated as low complexity.
			bits := uint8(1)
			if blockComplexity[by*blocksW+bx] > threshold {
				bits = 2
			}
			x, y := bx*blockSize, by*blockSize
			mask[y*width+x] = bits
			mask[y*width+x+1] = bits
			mask[(y+1)*width+x] = bits
			mask[(y+1)*width+x+1] = bits
			capacity += int(bits) * blockSize * blockSize
		}
	}
	return mask, threshold, capacity
}

// forEachBlockPixel visits every pixel covered by the 2x2 block grid in
// the canonical traversal order: blocks row-major, and within a block the
// four pixels row-major. Embedding and extraction both walk pixels through
// this function; the payload bit order depends on it.
func forEachBlockPixel(width, height int, visit func(x, y int) bool) {
	for by := 0; by < height/blockSize; by++ {
		for bx := 0; bx < width/blockSize; bx++ {
			for dy := 0; dy < blockSize; dy++ {
				for dx := 0; dx < blockSize; dx++ {
					if !visit(bx*blockSize+dx, by*blockSize+dy) {
						return
					}
				}
			}
		}
	}
}
