package header

import (
	"io/fs"
	"os"
)

// readFile reads the file whole. Header synchronization needs the full text
// anyway, and license-bearing source files are small.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// writeFile rewrites path with content, preserving the original file mode so
// executable scripts stay executable.
func writeFile(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
