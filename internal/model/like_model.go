package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel stores a like as (target_kind, target_id). The composite unique
// index makes a second like by the same user on the same target impossible.
type LikeModel struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	LikedBy    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_edge,priority:1" json:"liked_by"`
	TargetKind string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_edge,priority:2;index:idx_likes_target,priority:1" json:"target_kind"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_edge,priority:3;index:idx_likes_target,priority:2" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (LikeModel) TableName() string { return "likes" }

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
