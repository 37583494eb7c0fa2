package activity

import "time"

// Entry is one row of the admin audit trail. Entries are append-only.
type Entry struct {
	ID         int       `json:"id"`
	AdminID    *int      `json:"adminId,omitempty"`
	AdminEmail string    `json:"adminEmail"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   *int      `json:"entityId,omitempty"`
	Details    *string   `json:"details,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
