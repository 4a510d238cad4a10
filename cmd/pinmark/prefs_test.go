package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pinmark"
	main "github.com/fwojciec/pinmark/cmd/pinmark"
	"github.com/fwojciec/pinmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboardWatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows the current value with an on default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, "")
		deps.Preferences = &mock.PreferenceService{
			BoolPreferenceFn: func(ctx context.Context, key string, def bool) (bool, error) {
				assert.Equal(t, pinmark.PrefClipboardWatch, key)
				return def, nil
			},
		}

		require.NoError(t, (&main.ClipboardWatchCmd{}).Run(deps))
		assert.Equal(t, "clipboard-watch: on\n", stdout.String())
	})

	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"on", true},
		{"OFF", false},
		{"true", true},
		{"false", false},
	} {
		t.Run("sets "+tc.value, func(t *testing.T) {
			t.Parallel()

			deps, _, _ := newDeps(t, "")
			var got *bool
			deps.Preferences = &mock.PreferenceService{
				SetBoolPreferenceFn: func(ctx context.Context, key string, value bool) error {
					got = &value
					return nil
				},
			}

			require.NoError(t, (&main.ClipboardWatchCmd{Value: tc.value}).Run(deps))
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}

	t.Run("rejects an unknown value", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, "")
		deps.Preferences = &mock.PreferenceService{}

		err := (&main.ClipboardWatchCmd{Value: "maybe"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pinmark.EINVALID, pinmark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "use on or off")
	})

	t.Run("reports a storage failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, "")
		deps.Preferences = &mock.PreferenceService{
			SetBoolPreferenceFn: func(ctx context.Context, key string, value bool) error {
				return errors.New("disk full")
			},
		}

		err := (&main.ClipboardWatchCmd{Value: "off"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps, stdout, _ := newDeps(t, "")
	deps.Ctx = ctx
	deps.MetadataFetcher = &mock.MetadataFetcher{}

	require.NoError(t, (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps))
	assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
}
