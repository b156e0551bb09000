package models

import "time"

// ForumThread is a discussion thread with its replies in append order
type ForumThread struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	AuthorName string    `json:"authorName,omitempty"`
	Date       time.Time `json:"date" db:"date"`
	Replies    []Reply   `json:"replies" db:"replies"`
}

// Reply is one element of forum_threads.replies
type Reply struct {
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName,omitempty"`
	Date       time.Time `json:"date"`
}
