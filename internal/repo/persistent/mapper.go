package persistent

import (
	"video-hive/internal/entity"
	"video-hive/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		FullName:           m.FullName,
		Avatar:             m.Avatar,
		AvatarPublicID:     m.AvatarPublicID,
		CoverImage:         m.CoverImage,
		CoverImagePublicID: m.CoverImagePublicID,
		Password:           m.Password,
		RefreshToken:       m.RefreshToken,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:                 e.ID,
		Username:           e.Username,
		Email:              e.Email,
		FullName:           e.FullName,
		Avatar:             e.Avatar,
		AvatarPublicID:     e.AvatarPublicID,
		CoverImage:         e.CoverImage,
		CoverImagePublicID: e.CoverImagePublicID,
		Password:           e.Password,
		RefreshToken:       e.RefreshToken,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		VideoFile:         m.VideoFile,
		VideoFilePublicID: m.VideoFilePublicID,
		Thumbnail:         m.Thumbnail,
		ThumbnailPublicID: m.ThumbnailPublicID,
		Title:             m.Title,
		Description:       m.Description,
		Duration:          m.Duration,
		Views:             m.Views,
		IsPublished:       m.IsPublished,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}
	return &model.VideoModel{
		ID:                e.ID,
		OwnerID:           e.OwnerID,
		VideoFile:         e.VideoFile,
		VideoFilePublicID: e.VideoFilePublicID,
		Thumbnail:         e.Thumbnail,
		ThumbnailPublicID: e.ThumbnailPublicID,
		Title:             e.Title,
		Description:       e.Description,
		Duration:          e.Duration,
		Views:             e.Views,
		IsPublished:       e.IsPublished,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toVideoEntities(models []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(models))
	for i := range models {
		videos[i] = ToVideoEntity(&models[i])
	}
	return videos
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetModel(e *entity.Tweet) *model.TweetModel {
	if e == nil {
		return nil
	}
	return &model.TweetModel{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}
	return &model.CommentModel{
		ID:        e.ID,
		VideoID:   e.VideoID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel, videoIDs []string) *entity.Playlist {
	if m == nil {
		return nil
	}
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}
	return &model.PlaylistModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}
	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}
