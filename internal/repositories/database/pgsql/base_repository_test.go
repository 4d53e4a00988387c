package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "acme", escapeLike("acme"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestIsNumericOutOfRange(t *testing.T) {
	assert.True(t, isNumericOutOfRange(&pgconn.PgError{Code: "22003"}))
	assert.True(t, isNumericOutOfRange(fmt.Errorf("adjust: %w", &pgconn.PgError{Code: "22003"})))
	assert.False(t, isNumericOutOfRange(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isNumericOutOfRange(errors.New("boom")))
}
