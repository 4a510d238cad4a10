package pinmark_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pinmark.Errorf(pinmark.EUPSTREAM, "upstream returned HTTP %d", 404)

	assert.Equal(t, pinmark.EUPSTREAM, pinmark.ErrorCode(err))
	assert.Equal(t, "upstream returned HTTP 404", pinmark.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pinmark.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", pinmark.Errorf(pinmark.ETIMEOUT, "deadline exceeded"))

	assert.Equal(t, pinmark.ETIMEOUT, pinmark.ErrorCode(err))
	assert.Equal(t, "deadline exceeded", pinmark.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pinmark.EINTERNAL, pinmark.ErrorCode(err))
	assert.Equal(t, "Internal error.", pinmark.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pinmark.ErrorMessage(nil))
}
