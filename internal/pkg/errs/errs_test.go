//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"hotel-inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndKind(t *testing.T) {
	t.Run("marked error keeps its message and reports the kind", func(t *testing.T) {
		base := errs.New("booking not found")
		marked := errs.Mark(base, errs.ErrNotFound)

		assert.ErrorIs(t, marked, errs.ErrNotFound)
		assert.Equal(t, errs.ErrNotFound, errs.Kind(marked))
		assert.Contains(t, marked.Error(), "booking not found")
	})

	t.Run("wrapping preserves the mark", func(t *testing.T) {
		marked := errs.Mark(errs.New("code taken"), errs.ErrConflict)
		wrapped := errs.Wrap(marked, "create booking")

		assert.ErrorIs(t, wrapped, errs.ErrConflict)
		assert.Equal(t, errs.ErrConflict, errs.Kind(wrapped))
	})

	t.Run("database failure is a kind of its own", func(t *testing.T) {
		marked := errs.Mark(errs.New("sequence returned 0"), errs.ErrDatabaseOperationFailed)

		assert.Equal(t, errs.ErrDatabaseOperationFailed, errs.Kind(marked))
	})

	t.Run("unmarked error has no kind", func(t *testing.T) {
		assert.Nil(t, errs.Kind(errors.New("boom")))
	})

	t.Run("mark on nil returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrInvalidArgument, errs.Mark(nil, errs.ErrInvalidArgument))
	})

	t.Run("wrap on nil is nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})
}

func TestWithCause(t *testing.T) {
	target := errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	cause := errors.New("no rows in result set")

	err := errs.WithCause(target, cause)
	assert.Equal(t, "booking not found", err.Error())
	assert.ErrorIs(t, err, target)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "no rows in result set")

	assert.Equal(t, target, errs.WithCause(target, nil))
}
