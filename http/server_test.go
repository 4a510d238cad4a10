package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/pinmark"
	pinmarkhttp "github.com/fwojciec/pinmark/http"
	"github.com/fwojciec/pinmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Metadata(t *testing.T) {
	t.Parallel()

	fetcher := func(md *pinmark.Metadata, err error) *mock.MetadataFetcher {
		return &mock.MetadataFetcher{
			FetchMetadataFn: func(context.Context, string) (*pinmark.Metadata, error) {
				return md, err
			},
		}
	}

	tests := []struct {
		name       string
		body       string
		fetcher    *mock.MetadataFetcher
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed body",
			body:       `{"url":`,
			fetcher:    fetcher(nil, nil),
			wantStatus: http.StatusBadRequest,
			wantError:  pinmarkhttp.ReasonInvalidBody,
		},
		{
			name:       "missing url",
			body:       `{}`,
			fetcher:    fetcher(nil, nil),
			wantStatus: http.StatusBadRequest,
			wantError:  pinmarkhttp.ReasonMissingURL,
		},
		{
			name:       "blank url",
			body:       `{"url":"  "}`,
			fetcher:    fetcher(nil, nil),
			wantStatus: http.StatusBadRequest,
			wantError:  pinmarkhttp.ReasonMissingURL,
		},
		{
			name:       "invalid url",
			body:       `{"url":"ftp://example.com"}`,
			fetcher:    fetcher(nil, pinmark.Errorf(pinmark.EINVALID, "unsupported url scheme")),
			wantStatus: http.StatusBadRequest,
			wantError:  pinmarkhttp.ReasonInvalidURL,
		},
		{
			name:       "upstream failure",
			body:       `{"url":"https://example.com"}`,
			fetcher:    fetcher(nil, pinmark.Errorf(pinmark.EUPSTREAM, "HTTP 404")),
			wantStatus: http.StatusBadGateway,
			wantError:  pinmarkhttp.ReasonUpstreamFailed,
		},
		{
			name:       "upstream timeout",
			body:       `{"url":"https://example.com"}`,
			fetcher:    fetcher(nil, pinmark.Errorf(pinmark.ETIMEOUT, "timed out")),
			wantStatus: http.StatusBadGateway,
			wantError:  pinmarkhttp.ReasonUpstreamTimeout,
		},
		{
			name:       "unexpected failure",
			body:       `{"url":"https://example.com"}`,
			fetcher:    fetcher(nil, assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantError:  pinmarkhttp.ReasonInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := pinmarkhttp.NewServer(tt.fetcher)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/metadata", strings.NewReader(tt.body))

			s.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantError, got["error"])
		})
	}

	t.Run("returns metadata", func(t *testing.T) {
		t.Parallel()

		var requested string
		s := pinmarkhttp.NewServer(&mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, rawURL string) (*pinmark.Metadata, error) {
				requested = rawURL
				return &pinmark.Metadata{
					Title:        "Example",
					URL:          rawURL,
					Platform:     "example.com",
					PlatformIcon: pinmark.DefaultPlatformIcon,
					AutoTags:     []string{"example"},
				}, nil
			},
		})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/metadata", strings.NewReader(`{"url":" https://example.com/a "}`))

		s.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://example.com/a", requested)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var got pinmark.Metadata
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Example", got.Title)
		assert.Equal(t, []string{"example"}, got.AutoTags)
	})

	t.Run("rejects other methods", func(t *testing.T) {
		t.Parallel()

		s := pinmarkhttp.NewServer(fetcher(nil, nil))
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metadata", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := pinmarkhttp.NewServer(&mock.MetadataFetcher{})
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Open(t *testing.T) {
	t.Parallel()

	s := pinmarkhttp.NewServer(&mock.MetadataFetcher{})
	s.Addr = "127.0.0.1:0"
	require.NoError(t, s.Open())
	defer s.Close()

	resp, err := http.Get(s.URL() + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
