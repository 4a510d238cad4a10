package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pinmark"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pinmark.BookmarkService = (*BookmarkService)(nil)

const bookmarkColumns = "id, url, url_hash, title, description, thumbnail, platform, platform_icon, tags, attachments, created_at"

// BookmarkService implements pinmark.BookmarkService using SQLite.
type BookmarkService struct {
	db  *DB
	now func() time.Time
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db, now: time.Now}
}

// HashURL returns the dedup key for a bookmark URL: the hex xxHash of the
// URL with tracking parameters removed.
func HashURL(rawURL string) string {
	h := xxhash.Sum64String(pinmark.StripTrackingParams(rawURL))
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateBookmark stores a new bookmark.
func (s *BookmarkService) CreateBookmark(ctx context.Context, b *pinmark.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	hash := HashURL(b.URL)
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks WHERE url_hash = ?", hash).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return pinmark.Errorf(pinmark.ECONFLICT, "bookmark already exists: %s", b.URL)
	}

	tags, err := encodeJSON(b.Tags, "[]")
	if err != nil {
		return err
	}
	attachments, err := encodeJSON(b.Attachments, "[]")
	if err != nil {
		return err
	}

	b.ID = uuid.New().String()
	b.URLHash = hash
	b.CreatedAt = s.now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (`+bookmarkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.URL, b.URLHash, b.Title, b.Description, b.Thumbnail, b.Platform, b.PlatformIcon,
		tags, attachments, b.CreatedAt.Format(time.RFC3339))

	return err
}

// FindBookmarkByURL retrieves a bookmark by URL. Tracking parameters are
// ignored when matching.
func (s *BookmarkService) FindBookmarkByURL(ctx context.Context, url string) (*pinmark.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookmarkColumns+" FROM bookmarks WHERE url_hash = ?", HashURL(url))
	b, err := scanBookmark(row)
	if err == sql.ErrNoRows {
		return nil, pinmark.Errorf(pinmark.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBookmarks retrieves bookmarks matching the filter, newest first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter pinmark.BookmarkFilter) ([]*pinmark.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bookmarkColumns + " FROM bookmarks WHERE 1=1")

	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, *filter.Platform)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(bookmarks.tags) WHERE json_each.value = ?)")
		args = append(args, *filter.Tag)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*pinmark.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// DeleteBookmark permanently removes a bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pinmark.Errorf(pinmark.ENOTFOUND, "bookmark not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (*pinmark.Bookmark, error) {
	var b pinmark.Bookmark
	var tags, attachments, createdAt string

	if err := row.Scan(&b.ID, &b.URL, &b.URLHash, &b.Title, &b.Description, &b.Thumbnail,
		&b.Platform, &b.PlatformIcon, &tags, &attachments, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &b.Tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}
	if err := json.Unmarshal([]byte(attachments), &b.Attachments); err != nil {
		return nil, fmt.Errorf("failed to parse attachments: %w", err)
	}

	var err error
	b.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func encodeJSON[T any](v []T, empty string) (string, error) {
	if len(v) == 0 {
		return empty, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
