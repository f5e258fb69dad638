package hexpix

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

func singlePixel(r, g, b uint8) *Pixmap {
	pixmap := NewPixmap(1, 1)
	pixmap.SetRGB(0, 0, r, g, b)
	return pixmap
}

func TestConvertSinglePixel(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		depth   Depth
		want    string
	}{
		{"white 8bit", 255, 255, 255, Depth8, "00ffffff\n"},
		{"black 2bit", 0, 0, 0, Depth2, "00\n"},
		{"color 4bit", 200, 100, 50, Depth4, "0c63\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Convert(singlePixel(tt.r, tt.g, tt.b), tt.depth, &buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Convert() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertQuantizesBeforeEncoding(t *testing.T) {
	pixmap := singlePixel(63, 64, 255)
	var buf bytes.Buffer
	if err := Convert(pixmap, Depth2, &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "07\n" {
		t.Errorf("Convert() wrote %q, want %q", got, "07\n")
	}
	if r, g, b := pixmap.RGBAt(0, 0); r != 32 || g != 96 || b != 224 {
		t.Errorf("quantized pixel = (%d, %d, %d), want (32, 96, 224)", r, g, b)
	}
}

func hexLines(t *testing.T, data []byte) []string {
	t.Helper()
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("output %q is not newline terminated", text)
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestSaveHex(t *testing.T) {
	for _, name := range []string{"out.hex", "out.hex" + ZstdExt} {
		t.Run(name, func(t *testing.T) {
			pixmap := gradientPixmap(4, 3)
			var want []string
			quantized := gradientPixmap(4, 3)
			quantized.Quantize(Depth4)
			for line := range quantized.Lines(Depth4) {
				want = append(want, line)
			}

			path := filepath.Join(t.TempDir(), name)
			if err := pixmap.SaveHex(path, Depth4); err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if strings.HasSuffix(name, ZstdExt) {
				decoder, err := zstd.NewReader(nil)
				if err != nil {
					t.Fatal(err)
				}
				defer decoder.Close()
				if data, err = decoder.DecodeAll(data, nil); err != nil {
					t.Fatal(err)
				}
			}

			got := hexLines(t, data)
			if len(got) != 12 {
				t.Fatalf("got %d lines, want 12", len(got))
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SaveHex mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveHexCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.hex")
	err := singlePixel(1, 2, 3).SaveHex(path, Depth8)

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("SaveHex() error = %v, want WriteError", err)
	}
	if writeErr.Path != path {
		t.Errorf("WriteError.Path = %q, want %q", writeErr.Path, path)
	}
}

func TestSaveHexDevice(t *testing.T) {
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skip("no /dev/null")
	}
	if err := gradientPixmap(8, 8).SaveHex("/dev/null", Depth8); err != nil {
		t.Errorf("SaveHex(/dev/null) error = %v", err)
	}
}

func TestSaveHexDeviceFull(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}

	for _, name := range []string{"out.hex", "out.hex" + ZstdExt} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := os.Symlink("/dev/full", path); err != nil {
				t.Skip(err)
			}

			err := gradientPixmap(100, 100).SaveHex(path, Depth8)
			var writeErr *WriteError
			if !errors.As(err, &writeErr) {
				t.Fatalf("SaveHex() error = %v, want WriteError", err)
			}
			if !strings.HasSuffix(name, ZstdExt) && !errors.Is(err, syscall.ENOSPC) {
				t.Errorf("SaveHex() error = %v, want ENOSPC", err)
			}
		})
	}
}

type failingWriter struct {
	remaining int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errDiskFull
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestWriteHexError(t *testing.T) {
	pixmap := gradientPixmap(100, 100)
	err := pixmap.WriteHex(&failingWriter{remaining: 10}, Depth8)
	if errors.Cause(err) != errDiskFull {
		t.Errorf("WriteHex() error = %v, want %v", err, errDiskFull)
	}
}
