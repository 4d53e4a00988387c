package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "8f1f0e4a-6f36-4a8b-9a3b-0f0a3f1c2d4e")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at time should match after decode")
	assert.Equal(t, "8f1f0e4a-6f36-4a8b-9a3b-0f0a3f1c2d4e", decodedID)

	// Non-UTC times are normalised
	local := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	decodedAt, _, err = DecodeCursor(EncodeCursor(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeCursor(EncodeMultiFieldToken("2024-05-15T00:00:00Z"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeCursor(EncodeMultiFieldToken("notadate", "id"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	fields, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
