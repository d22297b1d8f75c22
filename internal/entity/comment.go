package entity

import "time"

type Comment struct {
	ID        string    `json:"_id"`
	VideoID   string    `json:"video"`
	OwnerID   string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentView is a comment enriched with its owner summary and, for a single
// comment read, a trimmed projection of the video it belongs to.
type CommentView struct {
	ID        string        `json:"_id"`
	VideoID   string        `json:"videoId"`
	Content   string        `json:"content"`
	Owner     *UserSummary  `json:"owner"`
	Video     *VideoSummary `json:"video,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewCommentView(c *Comment, owner *UserSummary) *CommentView {
	return &CommentView{
		ID:        c.ID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		Owner:     owner,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CommentPage struct {
	Comments []*CommentView `json:"comments"`
	Pages    int            `json:"pages"`
	Count    int64          `json:"count"`
}
