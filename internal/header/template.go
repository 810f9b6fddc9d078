package header

import (
	"os"
	"strings"
)

// Template variable names accepted in license templates, in both $name and
// ${name} form.
const (
	VarCreateYear    = "create_year"
	VarEditYear      = "edit_year"
	VarYearDelimiter = "year_delimiter"
	VarAuthorName    = "author_name"
)

// DefaultYearDelimiter separates the creation and edit years when a template
// writes them as a range.
const DefaultYearDelimiter = ", "

// Values carries the substitutions for one rendering of a Template. All
// fields are plain text; year fields hold already-formatted year strings.
type Values struct {
	CreateYear    string
	EditYear      string
	YearDelimiter string
	AuthorName    string
}

// Template is a parsed license template. Parsing splits the text into
// newline-terminated lines once so each per-file render is a cheap pass of
// string substitution.
type Template struct {
	lines []string
}

// Parse builds a Template from raw template text.
func Parse(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyTemplateError{Source: "text"}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return &Template{lines: strings.SplitAfter(text, "\n")[:strings.Count(text, "\n")]}, nil
}

// Load reads a template from a file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, &EmptyTemplateError{Source: path}
	}
	return t, nil
}

// Uses reports whether the template references the named variable.
func (t *Template) Uses(name string) bool {
	for _, line := range t.lines {
		if strings.Contains(line, "$"+name) || strings.Contains(line, "${"+name+"}") {
			return true
		}
	}
	return false
}

// Render substitutes v into the template and returns newline-terminated
// lines with trailing whitespace removed. When singleYearIfSame is set and
// the creation and edit years are equal, the year-range sequence
// "$create_year$year_delimiter$edit_year" collapses to the single year.
func (t *Template) Render(v Values, singleYearIfSame bool) []string {
	if v.YearDelimiter == "" {
		v.YearDelimiter = DefaultYearDelimiter
	}

	replacer := strings.NewReplacer(
		"${"+VarCreateYear+"}${"+VarYearDelimiter+"}${"+VarEditYear+"}", yearRange(v, singleYearIfSame),
		"$"+VarCreateYear+"$"+VarYearDelimiter+"$"+VarEditYear, yearRange(v, singleYearIfSame),
		"${"+VarCreateYear+"}", v.CreateYear,
		"${"+VarEditYear+"}", v.EditYear,
		"${"+VarYearDelimiter+"}", v.YearDelimiter,
		"${"+VarAuthorName+"}", v.AuthorName,
		"$"+VarCreateYear, v.CreateYear,
		"$"+VarEditYear, v.EditYear,
		"$"+VarYearDelimiter, v.YearDelimiter,
		"$"+VarAuthorName, v.AuthorName,
	)

	rendered := make([]string, len(t.lines))
	for i, line := range t.lines {
		rendered[i] = strings.TrimRight(replacer.Replace(line), " \t\n") + "\n"
	}
	return rendered
}

func yearRange(v Values, singleYearIfSame bool) string {
	if singleYearIfSame && v.CreateYear == v.EditYear {
		return v.CreateYear
	}
	return v.CreateYear + v.YearDelimiter + v.EditYear
}
