package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("search: %w", RequestFailed("414 Unknown User Agent"))

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, KindRequestFailed, KindOf(err))
	assert.Equal(t, "search: opensubtitles: request failed: status: 414 Unknown User Agent", err.Error())
}

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "opensubtitles: unauthorized", ErrUnauthorized.Error())
	assert.Equal(t, "opensubtitles: invalid argument: maximum 20, given 21", InvalidArgument("maximum %d, given %d", 20, 21).Error())
	assert.Equal(t, "opensubtitles: not implemented: CheckSubHash", NotImplemented("CheckSubHash").Error())
	assert.ErrorIs(t, NotImplemented("CheckSubHash"), ErrNotImplemented)
}

func TestKindOf_Unknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "kind(99)", Kind(99).String())
}
