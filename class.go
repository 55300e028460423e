package javanav

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// DocExt is the file extension of a documentation page.
const DocExt = ".html"

// CoreClass is the sentinel qualified name used to detect whether the
// standard library documentation has been indexed.
const CoreClass = "java.lang.Object"

// ClassEntry pairs a fully-qualified class name with the location of its
// documentation page (a filesystem path or a URL).
type ClassEntry struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// DeriveClass decides whether a file under root is a class documentation
// page and, if so, derives its fully-qualified dotted name. Only ".html"
// files whose base name starts with an uppercase ASCII letter qualify;
// Javadoc's non-class pages (package-summary.html, index.html, ...) start
// lowercase. The comparison is case-sensitive regardless of platform.
//
// root must be a string prefix of filePath; anything else is a caller bug
// and panics.
func DeriveClass(filePath, root string) (ClassEntry, bool) {
	base := filepath.Base(filePath)
	if !strings.HasSuffix(base, DocExt) {
		return ClassEntry{}, false
	}
	first := base[0]
	if first < 'A' || first > 'Z' {
		return ClassEntry{}, false
	}
	if !strings.HasPrefix(filePath, root) {
		panic("javanav: file " + filePath + " is not under root " + root)
	}
	rel := strings.TrimSuffix(filePath[len(root):], DocExt)
	name := strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
	return ClassEntry{Name: name, Location: filePath}, true
}

// SortClassNames orders names ascending by length, shorter first, so that
// top-level names surface first in completion lists. Equal-length names
// fall back to natural string order to keep the result deterministic.
func SortClassNames(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
