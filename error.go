package hexpix

import "fmt"

// InvalidDepthError reports a bits-per-channel value other than 2, 4 or 8
type InvalidDepthError struct {
	Value int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("invalid depth %d: valid values are 2, 4 and 8", e.Value)
}

// DecodeError reports an input image that could not be read or decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WriteError reports an output file that could not be created or written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
