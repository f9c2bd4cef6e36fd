package cutoffs

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoInputFiles indicates a batch found nothing to process.
var ErrNoInputFiles = errors.New("no input files found")

// FileError represents a failure that discarded a whole workbook.
type FileError struct {
	Path string
	Op   string // "open", "read"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path, op string, err error) *FileError {
	return &FileError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
