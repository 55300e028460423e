package main

import (
	"context"
	"fmt"
	"io"

	"github.com/javanav/javanav"
	"github.com/javanav/javanav/index"
	"github.com/javanav/javanav/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Roots    javanav.RootService
	Manager  *index.Manager
	CacheDir string
	Complete javanav.CompleteFunc
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir    string   `help:"Cache directory for scan records" env:"JAVANAV_CACHE_DIR"`
	SnapshotDir string   `help:"Directory of packaged snapshots" env:"JAVANAV_SNAPSHOT_DIR"`
	Compress    bool     `help:"Gzip cache records" env:"JAVANAV_COMPRESS"`
	Exclude     []string `help:"Extra directory-name globs to skip while scanning (repeatable)"`
	Verbose     bool     `short:"v" help:"Log scans and cache activity to stderr"`

	Add     AddCmd     `cmd:"" help:"Register a documentation root and index it"`
	List    ListCmd    `cmd:"" help:"List registered roots"`
	Remove  RemoveCmd  `cmd:"" help:"Remove a root from the catalog"`
	Classes ClassesCmd `cmd:"" help:"Print indexed class names, shortest first"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a class name to its documentation page"`
	Remote  RemoteCmd  `cmd:"" help:"Load packaged snapshots for remote URL keys"`
	Status  StatusCmd  `cmd:"" help:"Show index statistics"`
	Cache   CacheCmd   `cmd:"" help:"Cache maintenance"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Path string `arg:"" help:"Path to a Javadoc output tree"`
	Name string `short:"n" help:"Catalog name (defaults to the directory name)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	Name string `arg:"" help:"Root name"`
}

// ClassesCmd is the "classes" subcommand.
type ClassesCmd struct {
	Root []string `short:"r" help:"Additional root directories to index (repeatable)"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Name string   `arg:"" help:"Qualified or simple class name"`
	Root []string `short:"r" help:"Additional root directories to index (repeatable)"`
	Pick bool     `short:"p" help:"Pick from matches when the exact name is absent"`
}

// RemoteCmd is the "remote" subcommand.
type RemoteCmd struct {
	URLs []string `arg:"" name:"url" help:"Remote URL keys with packaged snapshots"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Root []string `short:"r" help:"Additional root directories to index (repeatable)"`
}

// CacheCmd groups cache maintenance subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Delete every cache record"`
}

// loadRoots merges every registered root plus any extra references into the
// index.
func loadRoots(deps *Dependencies, extra []string) error {
	registered, err := deps.Roots.FindRoots(deps.Ctx, javanav.RootFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}

	refs := make([]string, 0, len(registered)+len(extra))
	for _, root := range registered {
		refs = append(refs, root.Path)
	}
	refs = append(refs, extra...)

	if err := deps.Manager.AddRoots(deps.Ctx, refs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", javanav.ErrorMessage(err))
		return err
	}
	return nil
}
