package models

import "time"

// News is an admin-authored announcement
type News struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	AuthorName string    `json:"authorName,omitempty"`
	Date       time.Time `json:"date" db:"date"`
}
