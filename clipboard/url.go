package clipboard

import (
	"net/url"
	"strings"
)

// MaxURLLength is the longest clipboard value considered a URL.
const MaxURLLength = 2048

// IsURL reports whether a clipboard value is a single absolute http(s) URL.
// Surrounding whitespace is ignored.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) > MaxURLLength || strings.ContainsAny(s, "\r\n") {
		return false
	}
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
