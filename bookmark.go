package pinmark

import (
	"context"
	"time"
)

// Bookmark is a persisted ExtractionResult.
type Bookmark struct {
	ID           string       `json:"id"`
	URL          string       `json:"url"`
	URLHash      string       `json:"urlHash"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Thumbnail    string       `json:"thumbnail"`
	Platform     string       `json:"platform"`
	PlatformIcon string       `json:"platformIcon"`
	Tags         []string     `json:"tags"`
	Attachments  []Attachment `json:"attachments"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewBookmark builds a Bookmark from an extraction result.
func NewBookmark(r *ExtractionResult) *Bookmark {
	return &Bookmark{
		URL:          r.URL,
		Title:        r.Title,
		Description:  r.Description,
		Thumbnail:    r.Thumbnail,
		Platform:     r.Platform,
		PlatformIcon: r.PlatformIcon,
		Tags:         append([]string(nil), r.AutoTags...),
		Attachments:  append([]Attachment(nil), r.Attachments...),
	}
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.URL == "" {
		return Errorf(EINVALID, "bookmark url required")
	}
	if _, err := ValidateURL(b.URL); err != nil {
		return err
	}
	return nil
}

// BookmarkService represents a service for managing bookmarks.
type BookmarkService interface {
	// CreateBookmark stores a new bookmark.
	// Returns ECONFLICT if a bookmark with the same URL exists.
	CreateBookmark(ctx context.Context, b *Bookmark) error

	// FindBookmarkByURL retrieves a bookmark by URL.
	// Returns ENOTFOUND if no bookmark has the URL.
	FindBookmarkByURL(ctx context.Context, url string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter, newest first.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// DeleteBookmark permanently removes a bookmark.
	// Returns ENOTFOUND if the bookmark does not exist.
	DeleteBookmark(ctx context.Context, id string) error
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	Platform *string `json:"platform"`
	Tag      *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Preference keys.
const (
	PrefClipboardWatch = "clipboard.watch"
)

// PreferenceService stores persisted user preferences.
type PreferenceService interface {
	// BoolPreference returns the stored value for key, or def when unset.
	BoolPreference(ctx context.Context, key string, def bool) (bool, error)

	// SetBoolPreference stores value for key.
	SetBoolPreference(ctx context.Context, key string, value bool) error
}
