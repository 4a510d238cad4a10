package clipboard_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pinmark/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"https", "https://example.com/a", true},
		{"http", "http://example.com", true},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM/", true},
		{"surrounding whitespace", "  https://example.com/a \t", true},
		{"no scheme", "example.com/a", false},
		{"other scheme", "ftp://example.com/a", false},
		{"no host", "https://", false},
		{"plain text", "hello world", false},
		{"url inside text", "see https://example.com", false},
		{"line break", "https://example.com/a\nhttps://example.com/b", false},
		{"trailing carriage return", "https://example.com/a\r", true},
		{"too long", "https://example.com/" + strings.Repeat("a", clipboard.MaxURLLength), false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clipboard.IsURL(tt.in))
		})
	}
}
