package models

import (
	"time"

	"booststudio/internal/domain"
)

// Media is a catalog entry pointing at a file already hosted on the media
// cloud. The row only exists once the upload fully succeeded.
type Media struct {
	ID          string           `json:"id"`
	Type        domain.MediaType `json:"type"`
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	IsVisible   bool             `json:"isVisible"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
