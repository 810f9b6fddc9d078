package header

import (
	"bytes"
	"path/filepath"
	"strings"
)

// BlockComment holds the comment delimiters for a file type. Line-comment
// languages use the same delimiter for all three fields (e.g. "#"); block
// comment languages use distinct start and end delimiters.
type BlockComment struct {
	Start  string
	Middle string
	End    string
}

// LineStyle reports whether the style is a line-comment style, where every
// header line carries the same prefix and there is no closing delimiter.
func (c BlockComment) LineStyle() bool {
	return c.Middle == c.End
}

var (
	hashComment  = BlockComment{Start: "#", Middle: "#", End: "#"}
	cComment     = BlockComment{Start: "/*", Middle: " *", End: " */"}
	htmlComment  = BlockComment{Start: "<!--", Middle: "", End: "-->"}
	luaComment   = BlockComment{Start: "--[[", Middle: "", End: "--]]"}
	edocComment  = BlockComment{Start: "%%", Middle: "%%", End: "%%"}
	sqlComment   = BlockComment{Start: "--", Middle: "--", End: "--"}
	vimComment   = BlockComment{Start: "\"", Middle: "\"", End: "\""}
	texComment   = BlockComment{Start: "%", Middle: "%", End: "%"}
	lispComment  = BlockComment{Start: ";;", Middle: ";;", End: ";;"}
	batchComment = BlockComment{Start: "::", Middle: "::", End: "::"}
)

// extensionStyles maps file extensions (lowercase, with the leading dot) to
// their comment delimiters.
var extensionStyles = map[string]BlockComment{
	".bash":    hashComment,
	".bat":     batchComment,
	".c":       cComment,
	".cc":      cComment,
	".cfg":     hashComment,
	".cjs":     cComment,
	".clj":     lispComment,
	".cmake":   hashComment,
	".cmd":     batchComment,
	".cpp":     cComment,
	".cs":      cComment,
	".css":     cComment,
	".cxx":     cComment,
	".el":      lispComment,
	".erl":     edocComment,
	".go":      cComment,
	".groovy":  cComment,
	".h":       cComment,
	".hcl":     hashComment,
	".hpp":     cComment,
	".htm":     htmlComment,
	".html":    htmlComment,
	".ini":     hashComment,
	".java":    cComment,
	".js":      cComment,
	".jsx":     cComment,
	".kt":      cComment,
	".kts":     cComment,
	".lua":     luaComment,
	".m":       cComment,
	".md":      htmlComment,
	".mjs":     cComment,
	".mk":      hashComment,
	".php":     cComment,
	".pl":      hashComment,
	".proto":   cComment,
	".ps1":     hashComment,
	".py":      hashComment,
	".pyi":     hashComment,
	".r":       hashComment,
	".rb":      hashComment,
	".rs":      cComment,
	".scala":   cComment,
	".sh":      hashComment,
	".sql":     sqlComment,
	".svelte":  htmlComment,
	".swift":   cComment,
	".tex":     texComment,
	".tf":      cComment,
	".tfvars":  cComment,
	".toml":    hashComment,
	".ts":      cComment,
	".tsx":     cComment,
	".vim":     vimComment,
	".vue":     htmlComment,
	".xhtml":   htmlComment,
	".xml":     htmlComment,
	".yaml":    hashComment,
	".yml":     hashComment,
	".zsh":     hashComment,
}

// nameStyles maps exact base names for files commonly shipped without an
// extension.
var nameStyles = map[string]BlockComment{
	".gitignore":     hashComment,
	"BUILD":          hashComment,
	"CMakeLists.txt": hashComment,
	"Dockerfile":     hashComment,
	"GNUmakefile":    hashComment,
	"Gemfile":        hashComment,
	"Jenkinsfile":    cComment,
	"Makefile":       hashComment,
	"Rakefile":       hashComment,
	"Vagrantfile":    hashComment,
	"makefile":       hashComment,
}

// interpreterStyles maps shebang interpreter names (with trailing version
// digits stripped) to comment delimiters, for extensionless scripts.
var interpreterStyles = map[string]BlockComment{
	"bash":   hashComment,
	"fish":   hashComment,
	"node":   cComment,
	"perl":   hashComment,
	"python": hashComment,
	"ruby":   hashComment,
	"sh":     hashComment,
	"zsh":    hashComment,
}

// Registry resolves a file to its comment delimiters. The zero value is not
// usable; construct one with NewRegistry.
type Registry struct {
	extensions map[string]BlockComment
	names      map[string]BlockComment
}

// NewRegistry returns a Registry loaded with the built-in styles.
func NewRegistry() *Registry {
	r := &Registry{
		extensions: make(map[string]BlockComment, len(extensionStyles)),
		names:      make(map[string]BlockComment, len(nameStyles)),
	}
	for ext, c := range extensionStyles {
		r.extensions[ext] = c
	}
	for name, c := range nameStyles {
		r.names[name] = c
	}
	return r
}

// Register adds or overrides a style. Keys starting with a dot are treated as
// extensions, anything else as an exact base name.
func (r *Registry) Register(key string, c BlockComment) error {
	if c.Start == "" {
		return &InvalidStyleError{Key: key}
	}
	if strings.HasPrefix(key, ".") {
		r.extensions[strings.ToLower(key)] = c
		return nil
	}
	r.names[key] = c
	return nil
}

// Known returns the registered extension and name keys, sorted for display.
func (r *Registry) Known() map[string]BlockComment {
	known := make(map[string]BlockComment, len(r.extensions)+len(r.names))
	for k, c := range r.extensions {
		known[k] = c
	}
	for k, c := range r.names {
		known[k] = c
	}
	return known
}

// Detect resolves the comment style for path. The file contents are consulted
// to reject binary files and to read a shebang interpreter when the name and
// extension are inconclusive.
func (r *Registry) Detect(path string, contents []byte) (BlockComment, error) {
	if isBinary(contents) {
		return BlockComment{}, &BinaryFileError{Path: path}
	}

	if c, ok := r.names[filepath.Base(path)]; ok {
		return c, nil
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		if c, ok := r.extensions[ext]; ok {
			return c, nil
		}
	}
	if interp := shebangInterpreter(contents); interp != "" {
		if c, ok := interpreterStyles[interp]; ok {
			return c, nil
		}
	}

	return BlockComment{}, &UnsupportedFileError{Path: path}
}

// isBinary applies the git heuristic: a NUL byte in the first 1KB marks the
// file as binary.
func isBinary(contents []byte) bool {
	snip := contents
	if len(snip) > 1024 {
		snip = snip[:1024]
	}
	return bytes.IndexByte(snip, 0) >= 0
}

// shebangInterpreter extracts the interpreter name from a leading shebang
// line, resolving "env" indirection and stripping version suffixes, so that
// "#!/usr/bin/env python3" yields "python".
func shebangInterpreter(contents []byte) string {
	if !bytes.HasPrefix(contents, []byte("#!")) {
		return ""
	}
	line, _, _ := bytes.Cut(contents[2:], []byte("\n"))
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return ""
	}
	interp := filepath.Base(fields[0])
	if interp == "env" {
		if len(fields) < 2 {
			return ""
		}
		interp = filepath.Base(fields[1])
	}
	return strings.TrimRight(interp, "0123456789.")
}
