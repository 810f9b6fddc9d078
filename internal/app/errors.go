package app

import (
	"fmt"
)

type HeadersUpdatedError struct {
	Count int
}

func (e *HeadersUpdatedError) Error() string {
	return fmt.Sprintf("updated license headers in %d file(s)", e.Count)
}

type HeadersOutOfDateError struct {
	Count int
}

func (e *HeadersOutOfDateError) Error() string {
	return fmt.Sprintf("license headers out of date in %d file(s)", e.Count)
}

type ProcessingFailedError struct {
	Count int
}

func (e *ProcessingFailedError) Error() string {
	return fmt.Sprintf("failed to process %d file(s)", e.Count)
}
