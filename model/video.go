package model

import "time"

type Video struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"not null" json:"description"`
	Platform    string      `gorm:"not null;index" json:"platform"` // youtube, tiktok, instagram, ...
	URL         string      `gorm:"not null" json:"url"`
	Thumbnail   *string     `json:"thumbnail"`
	Tags        StringSlice `json:"tags"`
	Location    string      `gorm:"not null" json:"location"`
	Lat         float64     `gorm:"not null" json:"lat"`
	Lng         float64     `gorm:"not null" json:"lng"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}
