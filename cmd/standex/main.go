package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/standexhq/standex"
	"github.com/standexhq/standex/compare"
	"github.com/standexhq/standex/epub"
	"github.com/standexhq/standex/goquery"
	"github.com/standexhq/standex/ingest"
	"github.com/standexhq/standex/pdf"
	"github.com/standexhq/standex/slog"
	"github.com/standexhq/standex/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	StandardService standex.StandardService
	PageService     standex.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("standex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'standex --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STANDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := newLogger(stderr)

	// Wire core services into dependencies
	m.StandardService = sqlite.NewStandardService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Standards = m.StandardService
	deps.Pages = m.PageService
	deps.Search = slog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), logger)
	deps.Bookmarks = sqlite.NewBookmarkService(m.DB)
	deps.Ingester = &ingest.Ingester{
		Standards: m.StandardService,
		Pages:     m.PageService,
		Extractors: map[standex.SourceType]standex.Extractor{
			standex.SourcePDF:  slog.NewLoggingExtractor(pdf.NewExtractor(), logger),
			standex.SourceEPUB: slog.NewLoggingExtractor(epub.NewExtractor(), logger),
		},
		Paginator: goquery.NewPaginator(),
	}
	deps.Analyzer = &compare.Analyzer{
		Standards: m.StandardService,
		Pages:     m.PageService,
	}

	return kongCtx.Run(deps)
}

// newLogger logs to stderr when STANDEX_DEBUG is set and is silent
// otherwise.
func newLogger(stderr io.Writer) *stdslog.Logger {
	if os.Getenv("STANDEX_DEBUG") == "" {
		return stdslog.New(stdslog.NewTextHandler(io.Discard, nil))
	}
	return stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("STANDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "standex.db"
	}
	dir := filepath.Join(home, ".standex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "standex.db")
}
