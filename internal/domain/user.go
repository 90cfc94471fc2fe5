package domain

import "time"

// User mirrors the principal issued by the external identity service.
// This service never authenticates anyone; rows exist only so reservations
// have a referent and the seeder can create demo accounts.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
