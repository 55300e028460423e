package javanav_test

import (
	"testing"

	"github.com/javanav/javanav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filePath string
		root     string
		want     string
		ok       bool
	}{
		{
			name:     "class directly under root",
			filePath: "/docs/api/Foo.html",
			root:     "/docs/api/",
			want:     "Foo",
			ok:       true,
		},
		{
			name:     "nested class",
			filePath: "/docs/api/pkg/sub/Bar.html",
			root:     "/docs/api/",
			want:     "pkg.sub.Bar",
			ok:       true,
		},
		{
			name:     "deep standard library class",
			filePath: "/jdk/docs/java/lang/Object.html",
			root:     "/jdk/docs/",
			want:     "java.lang.Object",
			ok:       true,
		},
		{
			name:     "lowercase page is not a class",
			filePath: "/docs/api/pkg/package-summary.html",
			root:     "/docs/api/",
			ok:       false,
		},
		{
			name:     "index page is not a class",
			filePath: "/docs/api/index.html",
			root:     "/docs/api/",
			ok:       false,
		},
		{
			name:     "wrong extension",
			filePath: "/docs/api/Foo.css",
			root:     "/docs/api/",
			ok:       false,
		},
		{
			name:     "extension comparison is exact",
			filePath: "/docs/api/Foo.html.bak",
			root:     "/docs/api/",
			ok:       false,
		},
		{
			name:     "punctuation-prefixed page is not a class",
			filePath: "/docs/api/_config.html",
			root:     "/docs/api/",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			class, ok := javanav.DeriveClass(tt.filePath, tt.root)

			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, class.Name)
			assert.Equal(t, tt.filePath, class.Location)
		})
	}
}

func TestDeriveClass_PanicsWhenFileNotUnderRoot(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		javanav.DeriveClass("/elsewhere/Foo.html", "/docs/api/")
	})
}

func TestSortClassNames(t *testing.T) {
	t.Parallel()

	t.Run("shortest first with natural tie-break", func(t *testing.T) {
		t.Parallel()

		names := []string{"AA", "C", "B"}
		javanav.SortClassNames(names)
		assert.Equal(t, []string{"B", "C", "AA"}, names)
	})

	t.Run("qualified names", func(t *testing.T) {
		t.Parallel()

		names := []string{"java.lang.Object", "Foo", "pkg.Bar"}
		javanav.SortClassNames(names)
		assert.Equal(t, []string{"Foo", "pkg.Bar", "java.lang.Object"}, names)
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()

		var names []string
		javanav.SortClassNames(names)
		assert.Empty(t, names)
	})
}
