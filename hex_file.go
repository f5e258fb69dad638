package hexpix

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// ZstdExt marks output files written through a zstd encoder
const ZstdExt = ".zst"

// WriteHex writes one hex line per pixel to w
func (pixmap *Pixmap) WriteHex(w io.Writer, depth Depth) error {
	bw := bufio.NewWriter(w)
	for line := range pixmap.Lines(depth) {
		if _, err := bw.WriteString(line); err != nil {
			return errors.WithStack(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(bw.Flush())
}

// Convert quantizes the pixmap (unless depth is Depth8) and writes its hex lines to w
func Convert(pixmap *Pixmap, depth Depth, w io.Writer) error {
	pixmap.Quantize(depth)
	return pixmap.WriteHex(w, depth)
}

// SaveHex quantizes the pixmap in place and writes its hex lines to fileName.
// A fileName ending in ZstdExt is zstd-compressed.
func (pixmap *Pixmap) SaveHex(fileName string, depth Depth) (err error) {
	file, err := os.Create(fileName)
	if err != nil {
		return &WriteError{Path: fileName, Err: errors.WithStack(err)}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: fileName, Err: errors.WithStack(closeErr)}
		}
	}()

	var w io.Writer = file
	var encoder *zstd.Encoder
	if strings.HasSuffix(fileName, ZstdExt) {
		encoder, err = zstd.NewWriter(file)
		if err != nil {
			return &WriteError{Path: fileName, Err: errors.Wrap(err, "zstd")}
		}
		w = encoder
	}

	if err = Convert(pixmap, depth, w); err != nil {
		if encoder != nil {
			// the write error is reported, not the close error it causes
			_ = encoder.Close()
		}
		return &WriteError{Path: fileName, Err: err}
	}

	if encoder != nil {
		if err = encoder.Close(); err != nil {
			return &WriteError{Path: fileName, Err: errors.Wrap(err, "zstd")}
		}
	}

	// fsync fails with EINVAL on devices and pipes such as /dev/stdout
	info, err := file.Stat()
	if err != nil {
		return &WriteError{Path: fileName, Err: errors.WithStack(err)}
	}
	if info.Mode().IsRegular() {
		if err = file.Sync(); err != nil {
			return &WriteError{Path: fileName, Err: errors.WithStack(err)}
		}
	}

	return nil
}
