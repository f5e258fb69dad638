package hexpix

import "strconv"

// Depth is the number of bits kept per color channel
type Depth uint8

const (
	// Depth2 keeps the top 2 bits of each channel (4 levels)
	Depth2 Depth = 2
	// Depth4 keeps the top 4 bits of each channel (16 levels)
	Depth4 Depth = 4
	// Depth8 keeps every bit of each channel
	Depth8 Depth = 8
)

// ParseDepth validates a raw bits-per-channel value
func ParseDepth(v int) (Depth, error) {
	switch v {
	case 2:
		return Depth2, nil
	case 4:
		return Depth4, nil
	case 8:
		return Depth8, nil
	default:
		return 0, &InvalidDepthError{Value: v}
	}
}

// Bits returns the number of bits kept per channel
func (d Depth) Bits() uint {
	return uint(d)
}

// Bucket returns the span of 8-bit channel values mapped onto one level
func (d Depth) Bucket() int {
	return 1 << (8 - d.Bits())
}

func (d Depth) String() string {
	return strconv.Itoa(int(d)) + "bit"
}
