package header

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/arkinmodi/add-license-header/internal/repo"
)

// Job carries the per-invocation settings shared by every file.
type Job struct {
	Template *Template
	Values   Values

	SingleYearIfSame bool
	Unmanaged        bool
	Check            bool
}

// Result reports what happened to one file.
type Result struct {
	Path   string
	Action Action
}

// Changed reports whether the file was (or, in check mode, would be)
// rewritten.
func (r Result) Changed() bool {
	return r.Action != ActionNone
}

// Processor synchronizes license headers file by file. It is safe for
// concurrent use once constructed.
type Processor struct {
	styles *Registry
	gitter repo.Gitter
	logger *slog.Logger

	now func() time.Time
}

// NewProcessor wires a Processor. The gitter supplies per-file creation
// years for templates that reference $create_year without an explicit
// --create-year.
func NewProcessor(styles *Registry, gitter repo.Gitter, logger *slog.Logger) *Processor {
	return &Processor{
		styles: styles,
		gitter: gitter,
		logger: logger,
		now:    time.Now,
	}
}

// Process synchronizes the header of a single file. It returns the action
// taken; in check mode no write happens and the action reports what an
// unchecked run would do.
func (p *Processor) Process(ctx context.Context, job Job, path string) (Result, error) {
	contents, err := readFile(path)
	if err != nil {
		return Result{Path: path}, err
	}

	style, err := p.styles.Detect(path, contents)
	if err != nil {
		return Result{Path: path}, err
	}

	values := p.resolveValues(ctx, job, path)
	rendered := job.Template.Render(values, job.SingleYearIfSame)

	var wrapped []string
	if job.Unmanaged {
		wrapped = wrapUnmanaged(rendered, style)
	} else {
		wrapped = wrapManaged(rendered, style)
	}

	lines := splitLines(string(contents))
	updated, action := synchronize(lines, wrapped, style, job.Unmanaged)

	result := Result{Path: path}
	if equalLines(lines, updated) {
		p.logger.Debug("header up to date", "file", path)
		return result, nil
	}
	result.Action = action

	if job.Check {
		p.logger.Debug("header out of date", "file", path, "action", result.Action)
		return result, nil
	}

	p.logger.Debug("writing header", "file", path, "action", result.Action)
	if err := writeFile(path, strings.Join(updated, "")); err != nil {
		return Result{Path: path}, err
	}
	return result, nil
}

// resolveValues fills in the per-file defaults: the edit year falls back to
// the current year, and the creation year to the earliest year the file
// appears in git history (or the current year when git has no answer).
func (p *Processor) resolveValues(ctx context.Context, job Job, path string) Values {
	values := job.Values
	thisYear := strconv.Itoa(p.now().Year())

	if values.EditYear == "" {
		values.EditYear = thisYear
	}
	if values.CreateYear == "" {
		values.CreateYear = thisYear
		if job.Template.Uses(VarCreateYear) && p.gitter != nil {
			if created, _, err := p.gitter.FileYears(ctx, path); err == nil {
				values.CreateYear = strconv.Itoa(created)
			} else {
				p.logger.Debug("git year lookup failed", "file", path, "error", err)
			}
		}
	}
	return values
}

// synchronize splices the wrapped header into lines and returns the new file
// contents. Existing managed blocks are replaced whole; unmanaged blocks keep
// their opening line and have the remainder replaced.
func synchronize(lines, wrapped []string, c BlockComment, unmanaged bool) ([]string, Action) {
	var loc location
	if unmanaged {
		loc = locateUnmanaged(lines, c, wrapped[0])
	} else {
		loc = locateManaged(lines, c, wrapped[0])
	}

	if loc.found {
		var updated []string
		if unmanaged {
			updated = append(updated, lines[:loc.start+1]...)
			updated = append(updated, wrapped[1:]...)
		} else {
			updated = append(updated, lines[:loc.start]...)
			updated = append(updated, wrapped...)
		}
		return append(updated, lines[loc.end:]...), ActionReplace
	}

	// No existing header: insert after the shebang and encoding prelude,
	// separated from both by a blank line.
	prelude := preludeEnd(lines)
	updated := make([]string, 0, len(lines)+len(wrapped)+2)
	updated = append(updated, lines[:prelude]...)
	if prelude > 0 {
		updated = append(updated, "\n")
	}
	updated = append(updated, wrapped...)
	updated = append(updated, "\n")
	return append(updated, lines[prelude:]...), ActionInsert
}

// splitLines splits text into newline-terminated lines; a final line without
// a trailing newline is kept as-is.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
