package entity

import "time"

type Tweet struct {
	ID        string    `json:"_id"`
	OwnerID   string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TweetPage struct {
	Tweets []*Tweet `json:"tweets"`
	Pages  int      `json:"pages"`
	Count  int64    `json:"count"`
}
