package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/javanav/javanav"
)

// DefaultExclude matches Javadoc's generated cross-reference directories,
// which contain no canonical class pages and would otherwise double every
// entry's candidate set.
const DefaultExclude = "class-use"

// Ensure Scanner implements javanav.Scanner at compile time.
var _ javanav.Scanner = (*Scanner)(nil)

// Scanner recursively walks a documentation root, deriving class entries
// from file names. Dot-prefixed entries are skipped, as are directories
// whose base name matches any of the exclusion patterns.
type Scanner struct {
	// Exclude holds doublestar glob patterns matched against a
	// directory's base name.
	Exclude []string
}

// NewScanner creates a Scanner with the default exclusion policy plus any
// extra patterns.
func NewScanner(extra ...string) *Scanner {
	return &Scanner{Exclude: append([]string{DefaultExclude}, extra...)}
}

// Scan lists dir recursively and returns a qualified-name → location
// mapping for every class page found. An unreadable subtree fails the scan
// with the offending path in the error; partial results are never returned.
func (s *Scanner) Scan(ctx context.Context, dir, root string) (map[string]string, error) {
	classes := make(map[string]string)
	if err := s.scan(ctx, dir, root, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Scanner) scan(ctx context.Context, dir, root string, classes map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return javanav.Errorf(javanav.EINTERNAL, "scan %s: %v", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		if entry.IsDir() {
			if s.excluded(name) {
				continue
			}
			if err := s.scan(ctx, full, root, classes); err != nil {
				return err
			}
			continue
		}
		if class, ok := javanav.DeriveClass(full, root); ok {
			classes[class.Name] = class.Location
		}
	}
	return nil
}

func (s *Scanner) excluded(base string) bool {
	for _, pattern := range s.Exclude {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
