package domain

import "time"

// DefaultLeadSource is applied to leads created without a source tag.
const DefaultLeadSource = "import"

// Lead is a contact record owned by a single user.
type Lead struct {
	LeadID        string    `json:"id"`
	UserID        string    `json:"-"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	Location      string    `json:"location"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Website       string    `json:"website"`
	Source        string    `json:"source"`
	EmailUnlocked bool      `json:"email_unlocked"`
	PhoneUnlocked bool      `json:"phone_unlocked"`
	CreatedAt     time.Time `json:"created_at"`
}

func (l Lead) OwnerUserID() string { return l.UserID }

// IsUnlocked reports whether the given contact field has already been revealed.
func (l Lead) IsUnlocked(kind UnlockKind) bool {
	switch kind {
	case UnlockEmail:
		return l.EmailUnlocked
	case UnlockPhone:
		return l.PhoneUnlocked
	}
	return false
}

// LeadFilter narrows a lead listing. Empty fields are ignored.
type LeadFilter struct {
	Industry string
	Location string
	Search   string
}
