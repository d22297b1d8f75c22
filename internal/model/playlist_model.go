package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlists_owner_name,priority:1" json:"owner_id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_playlists_owner_name,priority:2" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PlaylistModel) TableName() string { return "playlists" }

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel is one entry of a playlist. Position orders entries and
// the primary key forbids a video appearing twice in the same playlist.
type PlaylistVideoModel struct {
	PlaylistID string    `gorm:"type:uuid;primaryKey" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;primaryKey;index" json:"video_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PlaylistVideoModel) TableName() string { return "playlist_videos" }
