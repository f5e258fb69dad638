package hexpix

import (
	"fmt"
	"iter"
)

// PackPixel concatenates the top depth bits of r, g and b, red first
func PackPixel(r, g, b uint8, depth Depth) uint32 {
	shift := 8 - depth.Bits()
	var packed uint32
	for _, c := range [...]uint8{r, g, b} {
		packed = packed<<depth.Bits() | uint32(c>>shift)
	}
	return packed
}

// FormatPixel renders the packed pixel as lowercase hex.
// The pad width is depth digits, not the packed bit width, so depth 8
// white is "00ffffff" and depth 2 values can overflow the pad.
func FormatPixel(r, g, b uint8, depth Depth) string {
	return fmt.Sprintf("%0*x", int(depth), PackPixel(r, g, b, depth))
}

// Lines yields one encoded line per pixel in row-major order
func (pixmap *Pixmap) Lines(depth Depth) iter.Seq[string] {
	return func(yield func(string) bool) {
		for y := 0; y < pixmap.Height; y++ {
			row := pixmap.row(y)
			for pos := 0; pos+PixelSize <= len(row); pos += PixelSize {
				if !yield(FormatPixel(row[pos], row[pos+1], row[pos+2], depth)) {
					return
				}
			}
		}
	}
}
