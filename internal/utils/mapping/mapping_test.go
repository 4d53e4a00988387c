package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMappingNullableColumns(t *testing.T) {
	googleID := "g-123"
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d := domain.User{
		UserID:                 "u1",
		Email:                  "a@example.com",
		Credits:                25,
		AuthProvider:           domain.ProviderGoogle,
		ProviderUserID:         &googleID,
		RefreshTokenHash:       "hash",
		RefreshTokenExpiryTime: &expiry,
	}

	m := ToModelUser(d)
	assert.False(t, m.PasswordHash.Valid, "oauth users have no password")
	assert.True(t, m.ProviderUserID.Valid)
	assert.True(t, m.RefreshTokenExpiryTime.Valid)

	back := ToDomainUser(m)
	require.NotNil(t, back.ProviderUserID)
	assert.Equal(t, googleID, *back.ProviderUserID)
	require.NotNil(t, back.RefreshTokenExpiryTime)
	assert.True(t, expiry.Equal(*back.RefreshTokenExpiryTime))
	assert.Equal(t, domain.ProviderGoogle, back.AuthProvider)

	empty := ToDomainUser(models.User{UserID: "u2"})
	assert.Nil(t, empty.ProviderUserID)
	assert.Nil(t, empty.RefreshTokenExpiryTime)
}

func TestSavedFilterCriteriaRoundTrip(t *testing.T) {
	m, err := ToModelSavedFilter(domain.SavedFilter{FilterID: "f1", Name: "NY tech"})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(m.Criteria))

	m.Criteria = []byte(`{"industry":"Tech","tags":["a","b"]}`)
	d, err := ToDomainSavedFilter(m)
	require.NoError(t, err)
	assert.Equal(t, "Tech", d.Criteria["industry"])

	_, err = ToDomainSavedFilter(models.SavedFilter{Criteria: []byte("{not json")})
	assert.Error(t, err)
}

func TestSavedListNeverNilLeads(t *testing.T) {
	d := ToDomainSavedList(models.SavedList{ListID: "l1"})
	assert.NotNil(t, d.LeadIDs)
	assert.Empty(t, d.LeadIDs)
}
