package models

import "time"

// Event is an alumni gathering
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	CreatorID   string    `json:"creatorId" db:"creator_id"`
	CreatorName string    `json:"creatorName,omitempty"` // resolved by join
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
