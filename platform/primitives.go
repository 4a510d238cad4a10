// Package platform implements the extraction strategies and the router that
// dispatches a page to the first strategy able to handle it.
package platform

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/pinmark"
	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// metaFirst returns the first non-empty meta value among keys.
func metaFirst(page pinmark.PageContext, keys ...string) string {
	for _, key := range keys {
		if v := page.Meta(key); v != "" {
			return v
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// DecodeEntities decodes HTML character references in s.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// firstText returns the text of the first element with non-empty text among selectors.
func firstText(root interface {
	Find(string) pinmark.Element
}, selectors ...string) string {
	for _, sel := range selectors {
		if t := root.Find(sel).Text(); t != "" {
			return t
		}
	}
	return ""
}

// firstAttr returns the first non-empty attribute among the matches of selector.
func firstAttr(root interface {
	Find(string) pinmark.Element
}, selector string, attrs ...string) string {
	el := root.Find(selector)
	for _, attr := range attrs {
		if v := el.Attr(attr); v != "" {
			return v
		}
	}
	return ""
}

// canonicalURL returns the page's declared canonical URL, falling back to
// og:url and finally the page URL itself.
func canonicalURL(page pinmark.PageContext) string {
	if href := page.Find(`link[rel="canonical"]`).Attr("href"); href != "" {
		if u := pinmark.ResolveURL(page.URL(), href); u != "" {
			return u
		}
	}
	if u := pinmark.ResolveURL(page.URL(), page.Meta("og:url")); u != "" {
		return u
	}
	return page.URL()
}

// trimSuffixes removes the first matching suffix from title. Case is kept.
func trimSuffixes(title string, suffixes ...string) string {
	title = strings.TrimSpace(title)
	for _, suffix := range suffixes {
		if t, ok := strings.CutSuffix(title, suffix); ok && strings.TrimSpace(t) != "" {
			return strings.TrimSpace(t)
		}
	}
	return title
}

// trimPrefixes removes the first matching prefix from title. Case is kept.
func trimPrefixes(title string, prefixes ...string) string {
	title = strings.TrimSpace(title)
	for _, prefix := range prefixes {
		if t, ok := strings.CutPrefix(title, prefix); ok && strings.TrimSpace(t) != "" {
			return strings.TrimSpace(t)
		}
	}
	return title
}

var lowerCaser = cases.Lower(language.Und)

// TagOf normalizes free text into a tag: lowercase, leading "#" removed and
// spaces replaced by hyphens.
func TagOf(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(lowerCaser.String(s)), "-")
}

// tagsOf converts texts into tags, keeping at most limit non-empty entries.
func tagsOf(texts []string, limit int) []string {
	var tags []string
	for _, t := range texts {
		if len(tags) == limit {
			break
		}
		if tag := TagOf(t); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// hashtags returns up to limit hashtags found in text.
func hashtags(text string, limit int) []string {
	var out []string
	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return tagsOf(out, limit)
}

// elementTexts returns the text of every element matching selector.
func elementTexts(page interface {
	FindAll(string) []pinmark.Element
}, selector string) []string {
	var out []string
	for _, el := range page.FindAll(selector) {
		if t := el.Text(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// metaAll returns the content of every meta tag matching selector.
func metaAll(page pinmark.PageContext, selector string) []string {
	var out []string
	for _, el := range page.FindAll(selector) {
		if c := el.Attr("content"); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// joinNonEmpty joins the non-empty values with sep.
func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// JSONLDEntries parses structured-data blocks. Each block may hold a single
// object, an array of objects or an object with an @graph array.
// Blocks that fail to parse are skipped.
func JSONLDEntries(blocks []string) []map[string]any {
	var entries []map[string]any
	for _, block := range blocks {
		var v any
		if err := json.Unmarshal([]byte(strings.TrimSpace(block)), &v); err != nil {
			continue
		}
		entries = appendEntries(entries, v)
	}
	return entries
}

func appendEntries(entries []map[string]any, v any) []map[string]any {
	switch v := v.(type) {
	case map[string]any:
		entries = append(entries, v)
		if graph, ok := v["@graph"]; ok {
			entries = appendEntries(entries, graph)
		}
	case []any:
		for _, item := range v {
			entries = appendEntries(entries, item)
		}
	}
	return entries
}

// jsonLDBlocks returns the raw text of every structured-data script.
func jsonLDBlocks(page pinmark.PageContext) []string {
	var blocks []string
	for _, el := range page.FindAll(`script[type="application/ld+json"]`) {
		blocks = append(blocks, el.Text())
	}
	return blocks
}

// jsonLDOfType returns the first entry whose @type is one of types.
func jsonLDOfType(entries []map[string]any, types ...string) map[string]any {
	for _, e := range entries {
		for _, t := range jsonStrings(e["@type"]) {
			for _, want := range types {
				if strings.EqualFold(t, want) {
					return e
				}
			}
		}
	}
	return nil
}

// jsonText returns a string value, the name of an object value or the first
// usable element of an array value.
func jsonText(v any) string {
	switch v := v.(type) {
	case string:
		return DecodeEntities(strings.TrimSpace(v))
	case map[string]any:
		return jsonText(v["name"])
	case []any:
		for _, item := range v {
			if s := jsonText(item); s != "" {
				return s
			}
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// jsonImage returns an image URL from a string, an ImageObject or an array.
func jsonImage(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		return firstNonEmpty(jsonImage(v["url"]), jsonImage(v["contentUrl"]))
	case []any:
		for _, item := range v {
			if s := jsonImage(item); s != "" {
				return s
			}
		}
	}
	return ""
}

// jsonStrings returns a comma-separated string or an array as a list.
func jsonStrings(v any) []string {
	var out []string
	switch v := v.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(DecodeEntities(part)); part != "" {
				out = append(out, part)
			}
		}
	case []any:
		for _, item := range v {
			out = append(out, jsonStrings(item)...)
		}
	}
	return out
}

// jsonPath walks nested objects by key.
func jsonPath(v any, keys ...string) any {
	for _, k := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[k]
	}
	return v
}

// SecondLevelLabel returns the registrable label of host, e.g. "example" for
// "www.example.co.uk" and "alice" for "alice.github.io". Returns an empty
// string for IP addresses.
func SecondLevelLabel(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" || strings.Trim(host, "0123456789.:[]") == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Single labels and bare public suffixes.
		domain = host
	}
	label, _, _ := strings.Cut(domain, ".")
	return label
}
