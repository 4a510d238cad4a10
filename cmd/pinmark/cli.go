package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/rod"
)

// ClipboardSession is a browser tab that reports clipboard activity.
type ClipboardSession interface {
	pinmark.ClipboardReader
	Bind(hook rod.ClipboardHook) error
	Navigate(url string) error
	Close() error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher         pinmark.Fetcher
	Parser          pinmark.PageParser
	Router          pinmark.Router
	MetadataFetcher pinmark.MetadataFetcher
	Bookmarks       pinmark.BookmarkService
	Preferences     pinmark.PreferenceService

	Articles         pinmark.ArticleExtractor
	FallbackArticles pinmark.ArticleExtractor
	Converter        pinmark.Converter
	NewArchive       func(dir string) pinmark.ArchiveStore

	// Render starts a browser-backed fetcher. The caller closes it.
	Render func() (pinmark.Fetcher, error)

	// OpenSession opens a visible browser tab for clipboard capture.
	OpenSession func(ctx context.Context) (ClipboardSession, error)

	// RetryDelays overrides the batch backoff schedule.
	RetryDelays []time.Duration
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" env:"PINMARK_DB" help:"Database path (default ~/.pinmark/pinmark.db)"`
	Verbose bool          `short:"v" help:"Log debug output to stderr"`
	Timeout time.Duration `short:"t" default:"8s" help:"Fetch timeout per page"`

	Extract ExtractCmd `cmd:"" help:"Extract bookmark fields from one or more URLs"`
	Meta    MetaCmd    `cmd:"" help:"Fetch metadata without a browser"`
	Feed    FeedCmd    `cmd:"" help:"List new posts on a feed page"`
	Save    SaveCmd    `cmd:"" help:"Extract and store a bookmark"`
	List    ListCmd    `cmd:"" help:"List stored bookmarks"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored bookmark"`
	Serve   ServeCmd   `cmd:"" help:"Serve the metadata API"`
	Watch   WatchCmd   `cmd:"" help:"Capture URLs copied to the clipboard"`
	Prefs   PrefsCmd   `cmd:"" help:"Show or change preferences"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Render      bool     `short:"r" help:"Render pages in a headless browser"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"2" help:"Requests per second per host"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL    string `arg:"" help:"Feed page URL"`
	State  string `short:"s" type:"path" help:"File remembering posts seen by earlier scans"`
	Render bool   `short:"r" help:"Render the feed in a headless browser"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL     string   `arg:"" help:"Page URL"`
	Tags    []string `short:"T" name:"tag" help:"Extra tag (repeatable)"`
	Archive string   `short:"a" type:"path" help:"Also write a Markdown snapshot under this directory"`
	Render  bool     `short:"r" help:"Render the page in a headless browser"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Platform string `short:"p" help:"Only bookmarks from this platform"`
	Tag      string `help:"Only bookmarks with this tag"`
	Limit    int    `short:"n" default:"50" help:"Maximum number of bookmarks"`
	Offset   int    `help:"Number of bookmarks to skip"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"PINMARK_ADDR" default:"127.0.0.1:8080" help:"Listen address"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Open    string `short:"o" help:"Open this URL in a browser and watch its clipboard; otherwise read lines from stdin"`
	Save    bool   `help:"Store captured URLs as bookmarks"`
	Archive string `short:"a" type:"path" help:"With --save, also write snapshots under this directory"`
}

// PrefsCmd is the "prefs" subcommand.
type PrefsCmd struct {
	ClipboardWatch ClipboardWatchCmd `cmd:"" name:"clipboard-watch" help:"Show or set clipboard capture (on|off)"`
}

// ClipboardWatchCmd is the "prefs clipboard-watch" subcommand.
type ClipboardWatchCmd struct {
	Value string `arg:"" optional:"" help:"on or off"`
}
