package hexpix

import (
	"image"
	"image/color"
	_ "image/gif"  // gif decoder
	_ "image/jpeg" // jpeg decoder
	_ "image/png"  // png decoder
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // bmp decoder
	_ "golang.org/x/image/tiff" // tiff decoder
	_ "golang.org/x/image/webp" // webp decoder
)

// PixelSize is the number of bytes of one RGB pixel
const PixelSize = 3

// Pixmap contains a collection of 8-bit RGB pixels in row-major order.
// Data must hold at least Height*BytePerLine bytes and BytePerLine must be
// at least Width*PixelSize.
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
}

// NewPixmap creates a black Pixmap
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		Data:        make([]byte, width*height*PixelSize),
		Width:       width,
		Height:      height,
		BytePerLine: width * PixelSize,
	}
}

// PixmapFromImage converts img to RGB. Alpha is dropped.
func PixmapFromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pixmap := NewPixmap(bounds.Dx(), bounds.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < pixmap.Height; y++ {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			dst := pixmap.Data[y*pixmap.BytePerLine:]
			for x := 0; x < pixmap.Width; x++ {
				copy(dst[x*PixelSize:x*PixelSize+PixelSize], src[x*4:x*4+3])
			}
		}
		return pixmap
	}

	for y := 0; y < pixmap.Height; y++ {
		for x := 0; x < pixmap.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixmap.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
	return pixmap
}

// LoadPixmap loads Pixmap from file
func LoadPixmap(fileName string) (*Pixmap, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, &DecodeError{Path: fileName, Err: errors.WithStack(err)}
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, &DecodeError{Path: fileName, Err: errors.Wrap(err, "decode")}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Path: fileName, Err: errors.Errorf("empty %s image", format)}
	}

	return PixmapFromImage(img), nil
}

func (pixmap *Pixmap) pixOffset(x, y int) int {
	return y*pixmap.BytePerLine + x*PixelSize
}

// RGBAt returns the channels of the pixel at (x, y)
func (pixmap *Pixmap) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= pixmap.Width || y >= pixmap.Height {
		return 0, 0, 0
	}
	i := pixmap.pixOffset(x, y)
	return pixmap.Data[i], pixmap.Data[i+1], pixmap.Data[i+2]
}

// SetRGB sets the channels of the pixel at (x, y)
func (pixmap *Pixmap) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= pixmap.Width || y >= pixmap.Height {
		return
	}
	i := pixmap.pixOffset(x, y)
	pixmap.Data[i] = r
	pixmap.Data[i+1] = g
	pixmap.Data[i+2] = b
}

// row returns the pixel bytes of row y without line padding
func (pixmap *Pixmap) row(y int) []byte {
	offset := y * pixmap.BytePerLine
	return pixmap.Data[offset : offset+pixmap.Width*PixelSize]
}
