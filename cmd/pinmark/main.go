package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/fs"
	"github.com/fwojciec/pinmark/goquery"
	"github.com/fwojciec/pinmark/htmltomarkdown"
	pinmarkhttp "github.com/fwojciec/pinmark/http"
	"github.com/fwojciec/pinmark/platform"
	"github.com/fwojciec/pinmark/readability"
	"github.com/fwojciec/pinmark/rod"
	pinmarkslog "github.com/fwojciec/pinmark/slog"
	"github.com/fwojciec/pinmark/sqlite"
	"github.com/fwojciec/pinmark/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor PINMARK_DB is set.
	DBPath string

	// Stdin feeds the watch command when no browser session is opened.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// commands that read or write the database.
var dbCommands = map[string]bool{
	"save":   true,
	"list":   true,
	"delete": true,
	"watch":  true,
	"prefs":  true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pinmark"),
		kong.Description("Capture web pages, videos, products and social posts as bookmarks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pinmark --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	httpFetcher := pinmarkhttp.NewFetcher(pinmarkhttp.WithTimeout(cli.Timeout))
	deps.Fetcher = pinmarkslog.NewLoggingFetcher(httpFetcher, logger)
	deps.Parser = goquery.NewParser()
	deps.Router = pinmarkslog.NewLoggingRouter(platform.NewDefaultRouter(), logger)
	deps.MetadataFetcher = pinmarkslog.NewLoggingMetadataFetcher(pinmarkhttp.NewMetadataFetcher(httpFetcher), logger)
	deps.Articles = trafilatura.NewExtractor()
	deps.FallbackArticles = readability.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewArchive = func(dir string) pinmark.ArchiveStore { return fs.NewArchiveStore(dir) }
	deps.Render = func() (pinmark.Fetcher, error) {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return pinmarkslog.NewLoggingFetcher(f, logger), nil
	}
	deps.OpenSession = openBrowserSession

	if dbCommands[strings.Fields(kongCtx.Command())[0]] {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PINMARK_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Bookmarks = sqlite.NewBookmarkService(m.DB)
		deps.Preferences = sqlite.NewPreferenceService(m.DB)
	}

	return kongCtx.Run(deps)
}

// browserSession closes its browser together with the tab.
type browserSession struct {
	*rod.Session
	browser *rod.Browser
}

func (s *browserSession) Close() error {
	err := s.Session.Close()
	if cerr := s.browser.Close(); err == nil {
		err = cerr
	}
	return err
}

func openBrowserSession(ctx context.Context) (ClipboardSession, error) {
	browser, err := rod.NewBrowser(rod.WithHeadless(false))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	session, err := rod.OpenSession(ctx, browser)
	if err != nil {
		browser.Close()
		return nil, err
	}
	return &browserSession{Session: session, browser: browser}, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pinmark.db"
	}
	dir := filepath.Join(home, ".pinmark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pinmark.db")
}
