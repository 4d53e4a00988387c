package domain

import "time"

// SavedFilter is a named, opaque criteria document.
type SavedFilter struct {
	FilterID  string         `json:"id"`
	UserID    string         `json:"-"`
	Name      string         `json:"name"`
	Criteria  map[string]any `json:"criteria"`
	CreatedAt time.Time      `json:"created_at"`
}

func (f SavedFilter) OwnerUserID() string { return f.UserID }
