package repo

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct{}

// NewCLIGitter creates a new CLIGitter instance.
func NewCLIGitter() *CLIGitter {
	return &CLIGitter{}
}

// FileYears returns the earliest and latest commit years for path by reading
// its full history, following renames. Commands run from the file's own
// directory so paths outside the working directory still resolve to the
// right repository.
func (g *CLIGitter) FileYears(ctx context.Context, path string) (created, edited int, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, 0, err
	}

	cmd := exec.CommandContext(ctx, "git", "log", "--follow",
		"--format=%ad", "--date=format:%Y", "--", filepath.Base(abs))
	cmd.Dir = filepath.Dir(abs)

	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("git log failed for %s: %w", path, err)
	}

	lines := strings.Fields(string(out))
	if len(lines) == 0 {
		return 0, 0, &NotTrackedError{Path: path}
	}

	for _, line := range lines {
		year, convErr := strconv.Atoi(line)
		if convErr != nil {
			return 0, 0, fmt.Errorf("unexpected git log output %q for %s", line, path)
		}
		if created == 0 || year < created {
			created = year
		}
		if year > edited {
			edited = year
		}
	}
	return created, edited, nil
}
