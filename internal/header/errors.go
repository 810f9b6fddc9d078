package header

import (
	"fmt"
)

type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("cannot add license to binary file: %s", e.Path)
}

type UnsupportedFileError struct {
	Path string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Path)
}

type InvalidStyleError struct {
	Key string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("comment style for %q must define a start delimiter", e.Key)
}

type NoTemplateError struct{}

func (e *NoTemplateError) Error() string {
	return "a license template is required: pass --license or --license-file"
}

type AmbiguousTemplateError struct{}

func (e *AmbiguousTemplateError) Error() string {
	return "--license and --license-file are mutually exclusive"
}

type EmptyTemplateError struct {
	Source string
}

func (e *EmptyTemplateError) Error() string {
	return fmt.Sprintf("license template %s is empty", e.Source)
}
