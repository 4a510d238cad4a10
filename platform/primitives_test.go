package platform_test

import (
	"testing"

	"github.com/fwojciec/pinmark/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLDEntries(t *testing.T) {
	t.Parallel()

	t.Run("single object", func(t *testing.T) {
		t.Parallel()

		entries := platform.JSONLDEntries([]string{`{"@type":"Article","headline":"Hello"}`})

		require.Len(t, entries, 1)
		assert.Equal(t, "Hello", entries[0]["headline"])
	})

	t.Run("array of objects", func(t *testing.T) {
		t.Parallel()

		entries := platform.JSONLDEntries([]string{`[{"name":"A"},{"name":"B"}]`})

		require.Len(t, entries, 2)
		assert.Equal(t, "B", entries[1]["name"])
	})

	t.Run("graph entries follow their container", func(t *testing.T) {
		t.Parallel()

		entries := platform.JSONLDEntries([]string{`{"@context":"https://schema.org","@graph":[{"@type":"WebSite"},{"@type":"Article","headline":"In graph"}]}`})

		require.Len(t, entries, 3)
		assert.Equal(t, "In graph", entries[2]["headline"])
	})

	t.Run("skips malformed blocks", func(t *testing.T) {
		t.Parallel()

		entries := platform.JSONLDEntries([]string{`{broken`, `{"name":"Second"}`})

		require.Len(t, entries, 1)
		assert.Equal(t, "Second", entries[0]["name"])
	})
}

func TestTagOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Go", "go"},
		{"  #Go Lang ", "go-lang"},
		{"The   Verge", "the-verge"},
		{"ÉCOLE", "école"},
		{"#", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, platform.TagOf(tt.in))
		})
	}
}

func TestSecondLevelLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{"example.com", "example"},
		{"www.example.com", "example"},
		{"blog.example.com", "example"},
		{"www.example.co.uk", "example"},
		{"example.com.au", "example"},
		{"bbc.co", "bbc"},
		{"example.org.br", "example"},
		{"alice.github.io", "alice"},
		{"myapp.pages.dev", "myapp"},
		{"shop.myshopify.com", "shop"},
		{"github.io", "github"},
		{"localhost", "localhost"},
		{"192.168.0.1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, platform.SecondLevelLabel(tt.host))
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Tom & Jerry's "<show>" /x`, platform.DecodeEntities("Tom &amp; Jerry&#39;s &quot;&lt;show&gt;&quot; &#x2F;x"))
	assert.Equal(t, "plain", platform.DecodeEntities("plain"))
}

func TestIdentify(t *testing.T) {
	t.Parallel()

	id, ok := platform.Identify("m.youtube.com")
	require.True(t, ok)
	assert.Equal(t, platform.Identity{Name: "YouTube", Tag: "youtube", Icon: "▶️"}, id)

	_, ok = platform.Identify("example.com")
	assert.False(t, ok)
}
