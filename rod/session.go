package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/pinmark"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// Ensure Session implements pinmark.ClipboardReader at compile time.
var _ pinmark.ClipboardReader = (*Session)(nil)

// Binding names exposed to page scripts.
const (
	interceptBinding = "__pinmarkIntercept"
	copyBinding      = "__pinmarkCopy"
)

// hookScript wraps navigator.clipboard.writeText and listens for native copy
// events. Both report to Go through the exposed bindings and never delay
// the page's own clipboard write.
const hookScript = `() => {
	const clip = navigator.clipboard;
	if (clip && clip.writeText && !clip.__pinmarkWrapped) {
		const original = clip.writeText.bind(clip);
		clip.writeText = (text) => {
			try { window.` + interceptBinding + `(String(text)); } catch (e) {}
			return original(text);
		};
		clip.__pinmarkWrapped = true;
	}
	document.addEventListener('copy', () => {
		try { window.` + copyBinding + `(''); } catch (e) {}
	}, true);
}`

// ClipboardHook receives clipboard signals from a page.
type ClipboardHook interface {
	Intercept(value string) bool
	NativeCopy(ctx context.Context) bool
}

// Session is a live browser tab whose clipboard activity is reported to a
// ClipboardHook. It also reads the clipboard on behalf of the hook.
type Session struct {
	ctx   context.Context
	page  *rod.Page
	stops []func() error
}

// OpenSession opens a blank tab in b. The tab lives until Close or until
// ctx is done.
func OpenSession(ctx context.Context, b *Browser) (*Session, error) {
	page, err := b.newPage()
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	// Without the grant readText rejects; the hook treats that as no value.
	_ = proto.BrowserGrantPermissions{
		Permissions: []proto.BrowserPermissionType{
			proto.BrowserPermissionTypeClipboardReadWrite,
			proto.BrowserPermissionTypeClipboardSanitizedWrite,
		},
	}.Call(page)

	return &Session{ctx: ctx, page: page}, nil
}

// Bind installs the clipboard hook on every document the tab loads.
// Call Bind before Navigate.
func (s *Session) Bind(hook ClipboardHook) error {
	stop, err := s.page.Expose(interceptBinding, func(arg gson.JSON) (interface{}, error) {
		return hook.Intercept(arg.Str()), nil
	})
	if err != nil {
		return fmt.Errorf("exposing intercept binding: %w", err)
	}
	s.stops = append(s.stops, stop)

	stop, err = s.page.Expose(copyBinding, func(gson.JSON) (interface{}, error) {
		// The read goes back through the page, so it cannot run on the
		// binding callback.
		go hook.NativeCopy(s.ctx)
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("exposing copy binding: %w", err)
	}
	s.stops = append(s.stops, stop)

	remove, err := s.page.EvalOnNewDocument("(" + hookScript + ")()")
	if err != nil {
		return fmt.Errorf("installing clipboard hook: %w", err)
	}
	s.stops = append(s.stops, remove)

	return nil
}

// Navigate loads url in the tab and waits for the load event.
func (s *Session) Navigate(url string) error {
	if _, err := pinmark.ValidateURL(url); err != nil {
		return err
	}
	if err := s.page.Navigate(url); err != nil {
		return err
	}
	return s.page.WaitLoad()
}

// URL returns the URL of the document currently shown in the tab.
func (s *Session) URL() (string, error) {
	info, err := s.page.Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// HTML returns the rendered document of the tab.
func (s *Session) HTML() (string, error) {
	return s.page.HTML()
}

// ReadText returns the clipboard contents as seen by the page.
func (s *Session) ReadText(ctx context.Context) (string, error) {
	res, err := s.page.Context(ctx).Eval(`() => navigator.clipboard.readText()`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Close removes the bindings and closes the tab.
func (s *Session) Close() error {
	for _, stop := range s.stops {
		_ = stop()
	}
	s.stops = nil
	return s.page.Close()
}
