package main_test

import (
	"testing"

	"github.com/javanav/javanav"
	main "github.com/javanav/javanav/cmd/javanav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCmd_Run(t *testing.T) {
	t.Parallel()

	trees := map[string]map[string]string{
		"/jdk/": {
			"java.lang.Object": "/jdk/java/lang/Object.html",
			"java.util.List":   "/jdk/java/util/List.html",
		},
	}
	registered := []*javanav.Root{{ID: "1", Name: "jdk", Path: "/jdk/"}}

	t.Run("prints the location of a known class", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, trees, registered)

		cmd := &main.ResolveCmd{Name: "java.util.List"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "/jdk/java/util/List.html\n", stdout.String())
	})

	t.Run("a miss is silent", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t, trees, registered)

		cmd := &main.ResolveCmd{Name: "NotThere"}
		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("pick falls back to completion over matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, trees, registered)

		cmd := &main.ResolveCmd{Name: "List", Pick: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "/jdk/java/util/List.html\n", stdout.String())
	})

	t.Run("pick with no matches stays silent", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, trees, registered)

		cmd := &main.ResolveCmd{Name: "Zzz", Pick: true}
		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, stdout.String())
	})
}
