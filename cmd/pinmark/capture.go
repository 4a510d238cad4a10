package main

import (
	"strings"

	"github.com/fwojciec/pinmark"
)

// capture holds the outcome of fetching and storing one URL.
type capture struct {
	Bookmark *pinmark.Bookmark
	Existing bool
	Snapshot string
}

// captureURL fetches url, extracts it, and stores it as a bookmark. An
// already stored URL is reported through Existing instead of an error. Extra
// tags go before the automatic ones. When archiveDir is set a Markdown
// snapshot is written as well.
func captureURL(deps *Dependencies, fetcher pinmark.Fetcher, url string, tags []string, archiveDir string) (*capture, error) {
	if _, err := pinmark.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return nil, err
	}

	page, err := deps.Parser.ParsePage(html, url)
	if err != nil {
		return nil, err
	}

	result := deps.Router.ExtractPage(page)
	if result == nil {
		return nil, pinmark.Errorf(pinmark.EINTERNAL, "no extraction result for %s", url)
	}

	b := pinmark.NewBookmark(result)
	if len(tags) > 0 {
		b.Tags = pinmark.NormalizeTags(append(append([]string(nil), tags...), b.Tags...))
	}

	c := &capture{Bookmark: b}
	if err := deps.Bookmarks.CreateBookmark(deps.Ctx, b); err != nil {
		if pinmark.ErrorCode(err) != pinmark.ECONFLICT {
			return nil, err
		}
		existing, err := deps.Bookmarks.FindBookmarkByURL(deps.Ctx, result.URL)
		if err != nil {
			return nil, err
		}
		c.Bookmark, c.Existing = existing, true
	}

	if archiveDir != "" {
		markdown, err := articleMarkdown(deps, html, result.URL)
		if err != nil {
			return nil, err
		}
		path, err := deps.NewArchive(archiveDir).Save(deps.Ctx, result, markdown)
		if err != nil {
			return nil, err
		}
		c.Snapshot = path
	}

	return c, nil
}

// articleMarkdown extracts the main content of html and converts it to
// Markdown. The fallback extractor runs when the primary fails or finds no
// content.
func articleMarkdown(deps *Dependencies, html string, pageURL string) (string, error) {
	article, err := deps.Articles.Extract(html, pageURL)
	if (err != nil || strings.TrimSpace(article.ContentHTML) == "") && deps.FallbackArticles != nil {
		deps.logger().Debug("primary extractor found no content", "url", pageURL, "err", err)
		article, err = deps.FallbackArticles.Extract(html, pageURL)
	}
	if err != nil {
		return "", err
	}
	return deps.Converter.Convert(article.ContentHTML, pageURL)
}
