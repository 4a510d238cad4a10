package http

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/platform"
)

var (
	metaTagRe = regexp.MustCompile(`(?i)<meta\b(?:[^>"']|"[^"]*"|'[^']*')*>`)
	linkTagRe = regexp.MustCompile(`(?i)<link\b(?:[^>"']|"[^"]*"|'[^']*')*>`)
	attrRe    = regexp.MustCompile(`(?s)([a-zA-Z_:][-a-zA-Z0-9_:.]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+))`)
	titleRe   = regexp.MustCompile(`(?is)<title\b[^>]*>(.*?)</title>`)
	headingRe = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1>`)
	jsonLDRe  = regexp.MustCompile(`(?is)<script\b[^>]*type\s*=\s*["']?application/ld\+json["']?[^>]*>(.*?)</script>`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ParseMetadata extracts metadata from raw HTML without building a DOM.
// Attribute order and quoting style do not matter and every text value is
// entity-decoded. Fields use the same precedence as the generic strategy;
// missing fields are left empty.
func ParseMetadata(html string, pageURL string) *pinmark.Metadata {
	fields := platform.Cascade(scanSignals(html, pageURL))

	draft := fields.Draft(pageURL)
	host := pinmark.Hostname(pageURL)
	if id, ok := platform.Identify(host); ok {
		draft.Platform = id.Name
		draft.PlatformIcon = id.Icon
		draft.Tags = append([]string{id.Tag}, draft.Tags...)
	}

	r := pinmark.NewExtractionResult(draft)
	return &pinmark.Metadata{
		Title:        r.Title,
		Description:  r.Description,
		Thumbnail:    r.Thumbnail,
		URL:          r.URL,
		Platform:     r.Platform,
		PlatformIcon: r.PlatformIcon,
		SiteName:     pinmark.CollapseSpace(fields.SiteName),
		AutoTags:     r.AutoTags,
	}
}

// scanSignals collects cascade inputs with regular expressions.
func scanSignals(html string, pageURL string) platform.Signals {
	meta := make(map[string]string)
	for _, tag := range metaTagRe.FindAllString(html, -1) {
		attrs := parseAttrs(tag)
		content := strings.TrimSpace(attrs["content"])
		if content == "" {
			continue
		}
		for _, key := range []string{"property", "name", "itemprop"} {
			k := strings.ToLower(strings.TrimSpace(attrs[key]))
			if k == "" {
				continue
			}
			if _, seen := meta[k]; !seen {
				meta[k] = content
			}
		}
	}

	var canonical string
	for _, tag := range linkTagRe.FindAllString(html, -1) {
		attrs := parseAttrs(tag)
		if hasToken(attrs["rel"], "canonical") && attrs["href"] != "" {
			canonical = attrs["href"]
			break
		}
	}

	var blocks []string
	for _, m := range jsonLDRe.FindAllStringSubmatch(html, -1) {
		blocks = append(blocks, m[1])
	}

	return platform.Signals{
		PageURL:   pageURL,
		JSONLD:    blocks,
		Meta:      func(key string) string { return meta[strings.ToLower(key)] },
		Canonical: canonical,
		Title:     innerText(titleRe, html),
		Heading:   innerText(headingRe, html),
	}
}

// parseAttrs returns the entity-decoded attributes of a single tag. Names are
// lowercased and the first occurrence of a name wins.
func parseAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
		name := strings.ToLower(m[1])
		if _, seen := attrs[name]; seen {
			continue
		}
		attrs[name] = platform.DecodeEntities(m[2] + m[3] + m[4])
	}
	return attrs
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// innerText returns the tag-stripped, decoded text of the first non-empty
// match of re.
func innerText(re *regexp.Regexp, html string) string {
	for _, m := range re.FindAllStringSubmatch(html, -1) {
		if t := pinmark.CollapseSpace(platform.DecodeEntities(tagRe.ReplaceAllString(m[1], " "))); t != "" {
			return t
		}
	}
	return ""
}
