package mock

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// Compile-time interface verification.
var (
	_ pinmark.BookmarkService   = (*BookmarkService)(nil)
	_ pinmark.PreferenceService = (*PreferenceService)(nil)
)

// BookmarkService is a mock implementation of pinmark.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn    func(ctx context.Context, b *pinmark.Bookmark) error
	FindBookmarkByURLFn func(ctx context.Context, url string) (*pinmark.Bookmark, error)
	FindBookmarksFn     func(ctx context.Context, filter pinmark.BookmarkFilter) ([]*pinmark.Bookmark, error)
	DeleteBookmarkFn    func(ctx context.Context, id string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, b *pinmark.Bookmark) error {
	return s.CreateBookmarkFn(ctx, b)
}

func (s *BookmarkService) FindBookmarkByURL(ctx context.Context, url string) (*pinmark.Bookmark, error) {
	return s.FindBookmarkByURLFn(ctx, url)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter pinmark.BookmarkFilter) ([]*pinmark.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	return s.DeleteBookmarkFn(ctx, id)
}

// PreferenceService is a mock implementation of pinmark.PreferenceService.
type PreferenceService struct {
	BoolPreferenceFn    func(ctx context.Context, key string, def bool) (bool, error)
	SetBoolPreferenceFn func(ctx context.Context, key string, value bool) error
}

func (s *PreferenceService) BoolPreference(ctx context.Context, key string, def bool) (bool, error) {
	return s.BoolPreferenceFn(ctx, key, def)
}

func (s *PreferenceService) SetBoolPreference(ctx context.Context, key string, value bool) error {
	return s.SetBoolPreferenceFn(ctx, key, value)
}
