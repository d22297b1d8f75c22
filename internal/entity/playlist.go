package entity

import "time"

type Playlist struct {
	ID          string    `json:"_id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistView is a playlist with its owner summary attached.
type PlaylistView struct {
	*Playlist
	Owner *UserSummary `json:"owner"`
}

// PlaylistWithVideos embeds the full video records in playlist order.
type PlaylistWithVideos struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Videos      []*Video     `json:"videos"`
	Owner       *UserSummary `json:"owner"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
