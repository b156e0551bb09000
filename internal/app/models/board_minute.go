package models

import "time"

// BoardMinute is a published PDF of a board meeting
type BoardMinute struct {
	ID      string    `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	FileURL string    `json:"fileUrl" db:"file_url"`
	Date    time.Time `json:"date" db:"date"`
}
