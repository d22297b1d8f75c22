package entity

import (
	"fmt"
	"time"
)

// LikeKind tags which entity a like points at. A like always has exactly one
// target: (Kind, TargetID).
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

func (k LikeKind) Valid() bool {
	switch k {
	case LikeVideo, LikeComment, LikeTweet:
		return true
	}
	return false
}

// Label is the capitalized kind used in response messages.
func (k LikeKind) Label() string {
	switch k {
	case LikeVideo:
		return "Video"
	case LikeComment:
		return "Comment"
	case LikeTweet:
		return "Tweet"
	}
	return string(k)
}

type LikeTarget struct {
	Kind LikeKind
	ID   string
}

func (t LikeTarget) String() string {
	return fmt.Sprintf("%s:%s", t.Kind, t.ID)
}

type Like struct {
	ID        string     `json:"_id"`
	LikedBy   string     `json:"likedBy"`
	Target    LikeTarget `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}
