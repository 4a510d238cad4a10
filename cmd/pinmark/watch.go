package main

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/clipboard"
)

// captureQueueSize bounds events waiting to be saved.
const captureQueueSize = 32

// Run executes the watch command. With --open it watches the clipboard of a
// browser tab; otherwise every stdin line is treated as a clipboard write.
// It returns when the context is canceled or stdin is exhausted.
func (c *WatchCmd) Run(deps *Dependencies) error {
	events := make(chan pinmark.CaptureEvent, captureQueueSize)
	handler := func(e pinmark.CaptureEvent) {
		select {
		case events <- e:
		default:
			deps.logger().Warn("capture dropped", "url", e.URL)
		}
	}

	opts := []clipboard.Option{
		clipboard.WithPreferences(deps.Preferences),
		clipboard.WithLogger(deps.logger()),
	}

	var done <-chan struct{}
	if c.Open != "" {
		session, err := deps.OpenSession(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
		defer session.Close()

		opts = append(opts, clipboard.WithReader(session))
		watcher := clipboard.NewWatcher(deps.Ctx, pinmark.Hostname(c.Open), handler, opts...)
		if !watcher.Enabled() {
			printDisabledHint(deps)
			return nil
		}

		if err := session.Bind(watcher); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
		if err := session.Navigate(c.Open); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Watching %s. Press Ctrl+C to stop.\n", c.Open)
	} else {
		watcher := clipboard.NewWatcher(deps.Ctx, "", handler, opts...)
		if !watcher.Enabled() {
			printDisabledHint(deps)
			return nil
		}
		done = readLines(deps, watcher)
	}

	out := json.NewEncoder(deps.Stdout)
	for {
		select {
		case <-deps.Ctx.Done():
			return nil
		case e := <-events:
			c.handle(deps, out, e)
		case <-done:
			// Drain what stdin produced before it closed.
			for {
				select {
				case e := <-events:
					c.handle(deps, out, e)
				default:
					return nil
				}
			}
		}
	}
}

func (c *WatchCmd) handle(deps *Dependencies, out *json.Encoder, e pinmark.CaptureEvent) {
	_ = out.Encode(e)
	if !c.Save {
		return
	}
	res, err := captureURL(deps, deps.Fetcher, e.URL, nil, c.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.URL, pinmark.ErrorMessage(err))
		return
	}
	printCapture(deps, res)
}

// readLines feeds stdin lines to the watcher and closes the returned channel
// at end of input.
func readLines(deps *Dependencies, watcher *clipboard.Watcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(deps.Stdin)
		for scanner.Scan() {
			watcher.Intercept(scanner.Text())
		}
	}()
	return done
}

func printDisabledHint(deps *Dependencies) {
	fmt.Fprintln(deps.Stderr, "Clipboard capture is off for this page.")
	fmt.Fprintln(deps.Stderr, "Hint: run 'pinmark prefs clipboard-watch on' to enable it")
}
