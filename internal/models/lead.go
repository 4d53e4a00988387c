package models

import "time"

// Lead is the leads row.
type Lead struct {
	LeadID        string    `db:"lead_id"`
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	Industry      string    `db:"industry"`
	Location      string    `db:"location"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Website       string    `db:"website"`
	Source        string    `db:"source"`
	EmailUnlocked bool      `db:"email_unlocked"`
	PhoneUnlocked bool      `db:"phone_unlocked"`
	CreatedAt     time.Time `db:"created_at"`
}
