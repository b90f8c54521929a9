package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite is a saved reference to a media result. Only the fields needed
// to re-render a result card are persisted; the media itself stays at the
// source.
type Favorite struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	MediaID   int    `gorm:"not null;index:idx_favorites_media,unique" json:"mediaId"`
	MediaKind string `gorm:"not null;index:idx_favorites_media,unique" json:"mediaKind"`
	Title     string `gorm:"not null" json:"title"`
	Thumbnail string `json:"thumbnail"`
	PageURL   string `json:"pageURL"`
	Tags      string `json:"tags"`
	Source    string `json:"source"`
}

// TableName overrides the table name
func (Favorite) TableName() string {
	return "favorites"
}
