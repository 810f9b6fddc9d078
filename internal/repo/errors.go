package repo

import (
	"fmt"
)

type NotTrackedError struct {
	Path string
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("%s has no git history", e.Path)
}
