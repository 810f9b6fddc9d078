package repo

import (
	"context"
)

// Gitter defines the git repository operations used to infer header years.
type Gitter interface {
	// FileYears returns the years of the earliest and latest commits
	// touching path. It fails when the file is untracked or the path is
	// not inside a git repository.
	FileYears(ctx context.Context, path string) (created, edited int, err error)
}
