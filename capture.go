package pinmark

import "context"

// CaptureSource identifies the channel that detected a clipboard URL.
type CaptureSource string

// Capture sources.
const (
	SourceClipboardAPI CaptureSource = "clipboard_api"
	SourceNativeCopy   CaptureSource = "native_copy"
)

// CaptureEvent signals that a URL-shaped value reached the clipboard.
type CaptureEvent struct {
	URL    string        `json:"url"`
	Source CaptureSource `json:"source"`
}

// ClipboardReader reads the current clipboard text.
type ClipboardReader interface {
	// ReadText returns the clipboard contents. Permission failures are
	// returned as errors; callers treat them as "no value".
	ReadText(ctx context.Context) (string, error)
}
