package hexpix

import (
	"runtime"
	"sync"
)

// QuantizeChannel maps v onto the center of its depth-sized bucket.
// Depth8 leaves v unchanged.
func QuantizeChannel(v uint8, depth Depth) uint8 {
	if depth == Depth8 {
		return v
	}
	bucket := depth.Bucket()
	return uint8(int(v)/bucket*bucket + bucket/2)
}

// Quantize reduces every channel of the pixmap in place
func (pixmap *Pixmap) Quantize(depth Depth) {
	if depth == Depth8 || pixmap.Height == 0 {
		return
	}

	var levels [256]uint8
	for v := range levels {
		levels[v] = QuantizeChannel(uint8(v), depth)
	}

	workers := runtime.NumCPU()
	if workers > pixmap.Height {
		workers = pixmap.Height
	}
	rowsPerWorker := (pixmap.Height + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < pixmap.Height; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > pixmap.Height {
			end = pixmap.Height
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				row := pixmap.row(y)
				for i, v := range row {
					row[i] = levels[v]
				}
			}
		}(start, end)
	}
	wg.Wait()
}
