package entity

import "time"

type Video struct {
	ID                string    `json:"_id"`
	OwnerID           string    `json:"owner"`
	VideoFile         string    `json:"videoFile"`
	VideoFilePublicID string    `json:"-"`
	Thumbnail         string    `json:"thumbnail"`
	ThumbnailPublicID string    `json:"-"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Duration          float64   `json:"duration"`
	Views             int64     `json:"views"`
	IsPublished       bool      `json:"isPublished"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// VideoSummary is the trimmed projection embedded in a single-comment read.
type VideoSummary struct {
	ID          string  `json:"_id"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"isPublished"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// VideoSortFields maps accepted sortBy values to columns.
var VideoSortFields = map[string]string{
	"title":       "title",
	"description": "description",
	"duration":    "duration",
	"views":       "views",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"isPublished": "is_published",
}

type VideoListQuery struct {
	OwnerID  string
	Page     int
	Limit    int
	Search   string
	SortBy   string
	SortType SortDirection
}

type VideoPage struct {
	Videos []*Video `json:"videos"`
	Pages  int      `json:"pages"`
	Count  int64    `json:"count"`
}
