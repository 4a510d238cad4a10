package pinmark

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters that identify a share or campaign
// rather than the resource itself. Keys prefixed with "utm_" are always
// tracking parameters.
var trackingParams = setOf(
	"fbclid", "gclid", "dclid", "msclkid",
	"igshid", "igsh", "si", "feature",
	"ref_src", "ref_url", "mc_cid", "mc_eid",
	"_hsenc", "_hsmi", "trk", "trackingid",
	"refid", "lipi", "share_id", "rcm",
	"is_from_webapp", "sender_device",
)

func setOf(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// StripTrackingParams removes known tracking query parameters from rawURL,
// keeping the order of the remaining parameters. Unparseable input is
// returned unchanged.
func StripTrackingParams(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.RawQuery == "" {
		return rawURL
	}

	var kept []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}
		if isTrackingParam(key) {
			continue
		}
		kept = append(kept, pair)
	}

	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String()
}

func isTrackingParam(key string) bool {
	key = strings.ToLower(key)
	return strings.HasPrefix(key, "utm_") || trackingParams[key]
}

// ResolveURL resolves ref against base and returns an absolute http(s) URL.
// Returns an empty string when ref is empty, cannot be parsed, or does not
// resolve to an http(s) URL.
func ResolveURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if !r.IsAbs() {
		b, err := url.Parse(base)
		if err != nil || !b.IsAbs() {
			return ""
		}
		r = b.ResolveReference(r)
	}
	if r.Scheme != "http" && r.Scheme != "https" {
		return ""
	}
	return r.String()
}

// Hostname returns the lowercase host of rawURL without a leading "www.".
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// ValidateURL parses rawURL and checks that it is an absolute http(s) URL
// with a host. Returns EINVALID otherwise.
func ValidateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, Errorf(EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid url %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "url %q has no host", rawURL)
	}
	return u, nil
}
