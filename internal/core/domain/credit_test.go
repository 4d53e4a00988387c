package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnlockKind(t *testing.T) {
	kind, err := ParseUnlockKind("email")
	require.NoError(t, err)
	assert.Equal(t, UnlockEmail, kind)
	assert.Equal(t, 1, UnlockCost(kind))

	kind, err = ParseUnlockKind("phone")
	require.NoError(t, err)
	assert.Equal(t, 2, UnlockCost(kind))

	for _, raw := range []string{"", "Email", "website", "sms"} {
		_, err := ParseUnlockKind(raw)
		assert.Error(t, err, raw)
	}
}

func TestLeadIsUnlocked(t *testing.T) {
	lead := Lead{PhoneUnlocked: true}
	assert.True(t, lead.IsUnlocked(UnlockPhone))
	assert.False(t, lead.IsUnlocked(UnlockEmail))
	assert.False(t, lead.IsUnlocked(UnlockKind("fax")))
}

func TestLedgerDescriptions(t *testing.T) {
	assert.Equal(t, "Unlock phone", UnlockDescription(UnlockPhone))
	assert.Equal(t, "Top-up via session cs_test_1", TopUpDescription("cs_test_1"))
	assert.Equal(t, "Manual grant: goodwill", GrantDescription("goodwill"))
}
