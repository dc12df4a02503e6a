package wordfreq

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoFiles is returned when a glob pattern matches nothing.
var ErrNoFiles = errors.New("no files match pattern")

// ReadFiles returns the text of every file on disk matching pattern ("**" is supported),
// joined by newlines in path order.
func ReadFiles(pattern string) (string, error) {
	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return ReadFS(os.DirFS(filepath.FromSlash(base)), rel)
}

// ReadFS is ReadFiles over an arbitrary filesystem. Directories matched by the pattern are skipped.
func ReadFS(fsys fs.FS, pattern string) (string, error) {
	pattern = strings.TrimPrefix(pattern, "./")
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var parts []string
	for _, name := range matches {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if info.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		parts = append(parts, string(data))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}
	return strings.Join(parts, "\n"), nil
}
