package models

import "time"

// GalleryItem is an uploaded image
type GalleryItem struct {
	ID           string    `json:"id" db:"id"`
	URL          string    `json:"url" db:"url"`
	Caption      string    `json:"caption" db:"caption"`
	UploaderID   string    `json:"uploaderId" db:"uploader_id"`
	UploaderName string    `json:"uploaderName,omitempty"`
	Date         time.Time `json:"date" db:"date"`
}
