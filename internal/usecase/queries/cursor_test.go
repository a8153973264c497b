//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	for _, c := range []string{
		"%%%",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid")),
	} {
		_, _, err := queries.DecodeAfterCursor(c)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor, c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 10, queries.ValidateLimit(10))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
