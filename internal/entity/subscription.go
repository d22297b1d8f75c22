package entity

import "time"

type Subscription struct {
	ID           string    `json:"_id"`
	SubscriberID string    `json:"subscriber"`
	ChannelID    string    `json:"channel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ChannelProfile is a user's public channel page as seen by a viewer.
type ChannelProfile struct {
	ID                string `json:"_id"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Avatar            string `json:"avatar"`
	CoverImage        string `json:"coverImage"`
	SubscribersCount  int64  `json:"subscribersCount"`
	SubscribedToCount int64  `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// ChannelStats aggregates a channel owner's dashboard numbers.
type ChannelStats struct {
	ChannelSubscribers int64 `json:"channelSubscribers"`
	VideosCount        int64 `json:"videosCount"`
	VideosViews        int64 `json:"videosViews"`
	VideosLike         int64 `json:"videosLike"`
	CommentsLike       int64 `json:"commentsLike"`
	TweetsLike         int64 `json:"tweetsLike"`
}
