// Package fs stores archive snapshots of bookmarked pages as Markdown files.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/pinmark"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Ensure ArchiveStore implements pinmark.ArchiveStore at compile time.
var _ pinmark.ArchiveStore = (*ArchiveStore)(nil)

// MaxSlugLength bounds snapshot file names, in runes.
const MaxSlugLength = 80

// Frontmatter is the YAML header of a snapshot file.
type Frontmatter struct {
	URL       string   `yaml:"url"`
	Title     string   `yaml:"title"`
	Platform  string   `yaml:"platform,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Thumbnail string   `yaml:"thumbnail,omitempty"`
	Saved     string   `yaml:"saved"`
}

// Snapshot is a parsed snapshot file.
type Snapshot struct {
	Frontmatter Frontmatter
	Body        string
}

// ArchiveStore writes snapshots to <dir>/<platform>/<slug>.md.
type ArchiveStore struct {
	dir string
	now func() time.Time
}

// NewArchiveStore creates an ArchiveStore rooted at dir.
func NewArchiveStore(dir string) *ArchiveStore {
	return &ArchiveStore{dir: dir, now: time.Now}
}

// Save writes the snapshot and returns its path. Saving the same URL again
// overwrites its snapshot; a different URL with the same slug gets a
// numeric suffix.
func (s *ArchiveStore) Save(ctx context.Context, result *pinmark.ExtractionResult, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if result == nil || result.URL == "" {
		return "", pinmark.Errorf(pinmark.EINVALID, "snapshot url required")
	}

	platformDir := filepath.Join(s.dir, platformSlug(result.Platform))
	if err := os.MkdirAll(platformDir, 0755); err != nil {
		return "", err
	}

	path, err := s.pathFor(platformDir, result)
	if err != nil {
		return "", err
	}

	content, err := FormatSnapshot(Frontmatter{
		URL:       result.URL,
		Title:     result.Title,
		Platform:  result.Platform,
		Tags:      result.AutoTags,
		Thumbnail: result.Thumbnail,
		Saved:     s.now().UTC().Format("2006-01-02"),
	}, markdown)
	if err != nil {
		return "", err
	}

	if err := writeAtomic(path, content); err != nil {
		return "", err
	}
	return path, nil
}

func (s *ArchiveStore) pathFor(dir string, result *pinmark.ExtractionResult) (string, error) {
	base := Slugify(result.Title)
	if base == "" {
		base = Slugify(strings.Trim(pathOf(result.URL), "/"))
	}
	if base == "" {
		base = "page"
	}

	for n := 1; ; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		path := filepath.Join(dir, name+".md")

		snap, err := ReadSnapshot(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return path, nil
		case err == nil:
			if snap.Frontmatter.URL == result.URL {
				return path, nil
			}
		case pinmark.ErrorCode(err) != pinmark.EINVALID:
			return "", err
		}
	}
}

// FormatSnapshot renders frontmatter and body as a Markdown document.
func FormatSnapshot(fm Frontmatter, body string) ([]byte, error) {
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.Bytes(), nil
}

// ReadSnapshot parses a snapshot file written by ArchiveStore.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rest, ok := bytes.CutPrefix(data, []byte("---\n"))
	if !ok {
		return nil, pinmark.Errorf(pinmark.EINVALID, "%s: missing frontmatter", path)
	}
	header, body, ok := bytes.Cut(rest, []byte("\n---\n"))
	if !ok {
		return nil, pinmark.Errorf(pinmark.EINVALID, "%s: unterminated frontmatter", path)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(header, &snap.Frontmatter); err != nil {
		return nil, pinmark.Errorf(pinmark.EINVALID, "%s: %v", path, err)
	}
	snap.Body = strings.TrimSpace(string(body))
	return &snap, nil
}

// Slugify lowercases s, strips diacritics and joins runs of letters and
// digits with single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	n := 0
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingHyphen = b.Len() > 0
			continue
		}
		if n >= MaxSlugLength || (pendingHyphen && n+2 > MaxSlugLength) {
			break
		}
		if pendingHyphen {
			b.WriteByte('-')
			n++
			pendingHyphen = false
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func platformSlug(platform string) string {
	if slug := Slugify(platform); slug != "" {
		return slug
	}
	return "web"
}

func pathOf(rawURL string) string {
	u, err := pinmark.ValidateURL(rawURL)
	if err != nil {
		return ""
	}
	return u.Path
}

// writeAtomic writes to a temporary file in the same directory and renames
// it over path, so readers never see a partial snapshot.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
