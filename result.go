package pinmark

import (
	"strings"
	"unicode/utf8"
)

// Field limits applied to every ExtractionResult.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxAutoTags          = 8
)

// DefaultPlatformIcon is used when a strategy has no icon of its own.
const DefaultPlatformIcon = "🌐"

// AttachmentKind identifies the type of an Attachment.
type AttachmentKind string

// Attachment kinds.
const (
	AttachmentLink  AttachmentKind = "LINK"
	AttachmentImage AttachmentKind = "IMAGE"
)

// Attachment is a typed URL attached to a bookmark.
type Attachment struct {
	Kind AttachmentKind `json:"kind"`
	URL  string         `json:"url"`
}

// ExtractionResult is the normalized record produced by every extraction path.
// Results are built with NewExtractionResult and never modified afterwards.
type ExtractionResult struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Thumbnail    string       `json:"thumbnail"`
	URL          string       `json:"url"`
	Platform     string       `json:"platform"`
	PlatformIcon string       `json:"platformIcon"`
	AutoTags     []string     `json:"autoTags"`
	Attachments  []Attachment `json:"attachments"`
}

// Draft holds raw extracted fields before normalization.
type Draft struct {
	Title        string
	Description  string
	Thumbnail    string
	URL          string
	Platform     string
	PlatformIcon string
	Tags         []string

	// BaseURL resolves a relative thumbnail and stands in for an empty URL.
	BaseURL string
}

// NewExtractionResult normalizes a draft into an ExtractionResult.
//
// Text fields are whitespace-collapsed and truncated to their limits, the URL
// has tracking parameters removed, a relative thumbnail is resolved against
// the base URL, tags are deduplicated and capped, and the attachment list is
// derived from the final URL and thumbnail.
func NewExtractionResult(d Draft) *ExtractionResult {
	pageURL := strings.TrimSpace(d.URL)
	if pageURL == "" {
		pageURL = strings.TrimSpace(d.BaseURL)
	}
	pageURL = StripTrackingParams(pageURL)

	base := d.BaseURL
	if base == "" {
		base = pageURL
	}
	thumbnail := ResolveURL(base, d.Thumbnail)

	platform := CollapseSpace(d.Platform)
	if platform == "" {
		platform = Hostname(pageURL)
	}
	icon := strings.TrimSpace(d.PlatformIcon)
	if icon == "" {
		icon = DefaultPlatformIcon
	}

	attachments := []Attachment{{Kind: AttachmentLink, URL: pageURL}}
	if thumbnail != "" {
		attachments = append(attachments, Attachment{Kind: AttachmentImage, URL: thumbnail})
	}

	return &ExtractionResult{
		Title:        Truncate(CollapseSpace(d.Title), MaxTitleLength),
		Description:  Truncate(CollapseSpace(d.Description), MaxDescriptionLength),
		Thumbnail:    thumbnail,
		URL:          pageURL,
		Platform:     platform,
		PlatformIcon: icon,
		AutoTags:     NormalizeTags(d.Tags),
		Attachments:  attachments,
	}
}

// NormalizeTags trims tags, drops empty and duplicate entries and caps the
// list at MaxAutoTags. The first occurrence of a tag wins and case is kept.
// The returned slice is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, min(len(tags), MaxAutoTags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == MaxAutoTags {
			break
		}
	}
	return out
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n]))
}

// CollapseSpace trims s and replaces every run of whitespace with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
