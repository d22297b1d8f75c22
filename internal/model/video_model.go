package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID           string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	VideoFile         string    `gorm:"type:varchar(500);not null" json:"video_file"`
	VideoFilePublicID string    `gorm:"type:varchar(500)" json:"-"`
	Thumbnail         string    `gorm:"type:varchar(500);not null" json:"thumbnail"`
	ThumbnailPublicID string    `gorm:"type:varchar(500)" json:"-"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Duration          float64   `gorm:"not null;default:0" json:"duration"`
	Views             int64     `gorm:"not null;default:0" json:"views"`
	IsPublished       bool      `gorm:"not null" json:"is_published"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string { return "videos" }

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
