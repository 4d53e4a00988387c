package models

import "time"

// SavedList is the saved_lists row plus its aggregated saved_list_leads memberships.
type SavedList struct {
	ListID    string    `db:"list_id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	LeadIDs   []string  `db:"lead_ids"`
	CreatedAt time.Time `db:"created_at"`
}

// SavedFilter is the saved_filters row. Criteria is the raw JSONB document.
type SavedFilter struct {
	FilterID  string    `db:"filter_id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Criteria  []byte    `db:"criteria"`
	CreatedAt time.Time `db:"created_at"`
}
