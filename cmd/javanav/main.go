package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/javanav/javanav"
	"github.com/javanav/javanav/cache"
	"github.com/javanav/javanav/fs"
	"github.com/javanav/javanav/index"
	jslog "github.com/javanav/javanav/slog"
	"github.com/javanav/javanav/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog database path. Set before calling Run().
	CatalogPath string

	// SQLite catalog used by the RootService.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RootService javanav.RootService
	Manager     *index.Manager
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CatalogPath: defaultCatalogPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("javanav"),
		kong.Description("Index Javadoc trees and jump from class names to documentation pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'javanav --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the root catalog
	m.DB = sqlite.NewDB(m.CatalogPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JAVANAV_DB to use a different catalog path\n")
		return fmt.Errorf("failed to open catalog at %q: %w", m.CatalogPath, err)
	}
	defer m.Close()

	m.RootService = sqlite.NewRootService(m.DB)
	deps.DB = m.DB
	deps.Roots = m.RootService

	cacheDir := cli.CacheDir
	if cacheDir == "" {
		cacheDir = defaultCacheDir()
	}
	deps.CacheDir = cacheDir

	var scanner javanav.Scanner = fs.NewScanner(cli.Exclude...)
	var store javanav.CacheStore = cache.NewStore(cacheDir, cli.Compress)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		scanner = jslog.NewLoggingScanner(scanner, logger)
		store = jslog.NewLoggingCacheStore(store, logger)
	}

	m.Manager = index.NewManager(scanner, store)
	if dir := snapshotDir(cli.SnapshotDir); dir != "" {
		m.Manager.Snapshots = cache.NewSnapshotDir(dir, cli.Compress)
	}
	deps.Manager = m.Manager

	// Non-interactive completion: candidates arrive shortest-first, so the
	// first one is the most likely top-level name.
	deps.Complete = func(ctx context.Context, candidates []string) (string, error) {
		if len(candidates) == 0 {
			return "", javanav.Errorf(javanav.ENOTFOUND, "nothing to pick from")
		}
		return candidates[0], nil
	}

	return kongCtx.Run(deps)
}

func defaultCatalogPath() string {
	if path := os.Getenv("JAVANAV_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "javanav.db"
	}
	dir := filepath.Join(home, ".javanav")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "javanav.db")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".javanav-cache"
	}
	return filepath.Join(home, ".javanav", "cache")
}

// snapshotDir resolves the packaged snapshot directory: the explicit flag if
// set, otherwise "snapshots" next to the executable (where release archives
// place the bundled records).
func snapshotDir(flag string) string {
	if flag != "" {
		return flag
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "snapshots")
}
