package dto

// CreateEventRequest represents a new event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required" example:"Homecoming 2026"`
	Description string `json:"description" example:"Annual reunion dinner"`
	Date        string `json:"date" binding:"required" example:"2026-12-05T18:00:00Z"`
	Location    string `json:"location" example:"Main hall"`
}

// CreateNewsRequest represents a new announcement
type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateThreadRequest represents a new forum thread
type CreateThreadRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ReplyRequest represents a forum reply
type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}
