// Package fs provides filesystem implementations: root canonicalization and
// the recursive documentation-tree scanner.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/javanav/javanav"
)

// Canonicalize normalizes a directory reference to its canonical identity:
// an absolute path with exactly one trailing separator. Home-relative
// references ("~", "~/jdk/docs") are expanded. The result is idempotent, so
// it can be used as a stable map key for "has this root been loaded".
func Canonicalize(ref string) (string, error) {
	if ref == "~" || strings.HasPrefix(ref, "~"+string(filepath.Separator)) || strings.HasPrefix(ref, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", javanav.Errorf(javanav.EINTERNAL, "expand %q: %v", ref, err)
		}
		ref = filepath.Join(home, ref[1:])
	}
	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", javanav.Errorf(javanav.EINTERNAL, "canonicalize %q: %v", ref, err)
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(abs, sep) {
		abs += sep
	}
	return abs, nil
}
