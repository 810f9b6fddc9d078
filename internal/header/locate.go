package header

import (
	"regexp"
	"strings"
)

// location identifies an existing header block as a half-open line range.
type location struct {
	start int
	end   int
	found bool
}

var encodingLineRE = regexp.MustCompile(`^#.*coding[:=]\s*[-\w.]+`)

// preludeEnd returns the index of the first line that may hold a header:
// past a shebang and, for script files, a PEP 263 encoding declaration in
// the first two lines.
func preludeEnd(lines []string) int {
	i := 0
	if i < len(lines) && strings.HasPrefix(lines[i], "#!") {
		i++
	}
	if i < len(lines) && i < 2 && encodingLineRE.MatchString(lines[i]) {
		i++
	}
	return i
}

// locateManaged finds a managed header: the line equal to the wrapped
// header's sentinel line, extended through the comment block it opens.
func locateManaged(lines []string, c BlockComment, sentinelLine string) location {
	for i, line := range lines {
		if line == sentinelLine {
			return location{start: i, end: blockEnd(lines, i, c), found: true}
		}
	}
	return location{}
}

// locateUnmanaged finds the top-most comment block, which unmanaged mode
// assumes to be the existing license header. The first content line after
// the prelude matches when it equals the wrapped header's opening delimiter
// line or, for styles with a middle prefix, when it starts with that prefix.
// The matched line is kept as the block opener on replacement.
func locateUnmanaged(lines []string, c BlockComment, opener string) location {
	i := preludeEnd(lines)
	for i < len(lines) && lines[i] == "\n" {
		i++
	}
	if i >= len(lines) {
		return location{}
	}
	if lines[i] != opener && (c.Middle == "" || !strings.HasPrefix(lines[i], c.Middle)) {
		return location{}
	}
	return location{start: i, end: blockEnd(lines, i, c), found: true}
}

// blockEnd scans past the comment block opened at index start and returns
// the index one past its last line. Line styles run while lines carry the
// middle prefix; block styles run until the closing delimiter, inclusive.
func blockEnd(lines []string, start int, c BlockComment) int {
	i := start + 1
	if c.LineStyle() {
		for i < len(lines) && strings.HasPrefix(lines[i], c.End) {
			i++
		}
		return i
	}
	for i < len(lines) && !strings.HasPrefix(lines[i], c.End) {
		i++
	}
	if i < len(lines) {
		i++ // include the closing delimiter line
	}
	return i
}
