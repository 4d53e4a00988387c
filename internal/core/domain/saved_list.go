package domain

import "time"

// SavedList is a named selection of leads. Every referenced lead belongs to the list's owner.
type SavedList struct {
	ListID    string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	LeadIDs   []string  `json:"leads"`
	CreatedAt time.Time `json:"created_at"`
}

func (s SavedList) OwnerUserID() string { return s.UserID }
