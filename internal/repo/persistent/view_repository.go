package persistent

import (
	"strings"
	"time"

	"video-hive/internal/entity"
	"video-hive/internal/model"

	"gorm.io/gorm"
)

// ViewRepository assembles the denormalized read views. Derived counts are
// computed at query time; nothing here writes.
type ViewRepository interface {
	ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	ChannelStats(ownerID string) (*entity.ChannelStats, error)
	PlaylistWithVideos(playlistID string) (*entity.PlaylistWithVideos, error)
	PlaylistOwner(ownerID string) (*entity.UserSummary, error)
	CommentDetail(commentID string) (*entity.CommentView, error)
	CommentWithOwner(commentID string) (*entity.CommentView, error)
	VideoComments(videoID string, limit, offset int) ([]*entity.CommentView, int64, error)
	Subscribers(channelID string) ([]*entity.UserSummary, error)
	SubscribedChannels(subscriberID string) ([]*entity.UserSummary, error)
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

const channelProfileSQL = `
SELECT u.id, u.username, u.full_name, u.email, u.avatar, u.cover_image,
	(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscribers_count,
	(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to_count,
	EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = @viewer) AS is_subscribed
FROM users u
WHERE u.username = @username`

func (r *viewRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	var profile entity.ChannelProfile
	result := r.db.Raw(channelProfileSQL, map[string]interface{}{
		"viewer":   viewerID,
		"username": strings.ToLower(strings.TrimSpace(username)),
	}).Scan(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &profile, nil
}

// Comment likes are reached in two hops: the owner's videos, their comments,
// then likes on those comments.
const channelStatsSQL = `
SELECT
	(SELECT COUNT(*) FROM subscriptions WHERE channel_id = @owner) AS channel_subscribers,
	(SELECT COUNT(*) FROM videos WHERE owner_id = @owner) AS videos_count,
	(SELECT CAST(COALESCE(SUM(views), 0) AS BIGINT) FROM videos WHERE owner_id = @owner) AS videos_views,
	(SELECT COUNT(*) FROM likes l
		JOIN videos v ON l.target_kind = 'video' AND l.target_id = v.id
		WHERE v.owner_id = @owner) AS videos_like,
	(SELECT COUNT(*) FROM likes l
		JOIN comments c ON l.target_kind = 'comment' AND l.target_id = c.id
		JOIN videos v ON c.video_id = v.id
		WHERE v.owner_id = @owner) AS comments_like,
	(SELECT COUNT(*) FROM likes l
		JOIN tweets t ON l.target_kind = 'tweet' AND l.target_id = t.id
		WHERE t.owner_id = @owner) AS tweets_like`

func (r *viewRepository) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	var stats entity.ChannelStats
	if err := r.db.Raw(channelStatsSQL, map[string]interface{}{"owner": ownerID}).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *viewRepository) PlaylistWithVideos(playlistID string) (*entity.PlaylistWithVideos, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", playlistID).First(&playlistModel).Error; err != nil {
		return nil, translate(err)
	}

	var videoModels []model.VideoModel
	err := r.db.Model(&model.VideoModel{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}

	owner, err := r.PlaylistOwner(playlistModel.OwnerID)
	if err != nil {
		return nil, err
	}

	return &entity.PlaylistWithVideos{
		ID:          playlistModel.ID,
		Name:        playlistModel.Name,
		Description: playlistModel.Description,
		Videos:      toVideoEntities(videoModels),
		Owner:       owner,
		CreatedAt:   playlistModel.CreatedAt,
		UpdatedAt:   playlistModel.UpdatedAt,
	}, nil
}

// PlaylistOwner reduces the owner lookup to first-or-null: a missing owner
// yields a nil summary rather than an error.
func (r *viewRepository) PlaylistOwner(ownerID string) (*entity.UserSummary, error) {
	var owners []model.UserModel
	if err := r.db.Where("id = ?", ownerID).Limit(1).Find(&owners).Error; err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, nil
	}
	return ToUserEntity(&owners[0]).Summary(), nil
}

type commentRow struct {
	ID              string
	VideoID         string
	Content         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	OwnerID         string
	OwnerUsername   string
	OwnerEmail      string
	OwnerAvatar     string
	OwnerCoverImage string

	HasVideo         bool
	VideoFile        string
	VideoThumbnail   string
	VideoTitle       string
	VideoDescription string
	VideoDuration    float64
	VideoViews       int64
	VideoIsPublished bool
}

func (row *commentRow) view(withVideo bool) *entity.CommentView {
	view := &entity.CommentView{
		ID:        row.ID,
		VideoID:   row.VideoID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Owner: &entity.UserSummary{
			ID:         row.OwnerID,
			Username:   row.OwnerUsername,
			Email:      row.OwnerEmail,
			Avatar:     row.OwnerAvatar,
			CoverImage: row.OwnerCoverImage,
		},
	}
	if withVideo && row.HasVideo {
		view.Video = &entity.VideoSummary{
			ID:          row.VideoID,
			VideoFile:   row.VideoFile,
			Thumbnail:   row.VideoThumbnail,
			Title:       row.VideoTitle,
			Description: row.VideoDescription,
			Duration:    row.VideoDuration,
			Views:       row.VideoViews,
			IsPublished: row.VideoIsPublished,
		}
	}
	return view
}

// Owners are inner-joined: a comment always has exactly one owner row.
const commentWithOwnerSQL = `
SELECT c.id, c.video_id, c.content, c.created_at, c.updated_at,
	u.id AS owner_id, u.username AS owner_username, u.email AS owner_email,
	u.avatar AS owner_avatar, u.cover_image AS owner_cover_image
FROM comments c
JOIN users u ON u.id = c.owner_id`

// The video is left-joined and reduced to first-or-null: a comment on a
// deleted video still resolves, with no video attached.
const commentDetailSQL = `
SELECT c.id, c.video_id, c.content, c.created_at, c.updated_at,
	u.id AS owner_id, u.username AS owner_username, u.email AS owner_email,
	u.avatar AS owner_avatar, u.cover_image AS owner_cover_image,
	v.id IS NOT NULL AS has_video,
	COALESCE(v.video_file, '') AS video_file,
	COALESCE(v.thumbnail, '') AS video_thumbnail,
	COALESCE(v.title, '') AS video_title,
	COALESCE(v.description, '') AS video_description,
	COALESCE(v.duration, 0) AS video_duration,
	COALESCE(v.views, 0) AS video_views,
	COALESCE(v.is_published, false) AS video_is_published
FROM comments c
JOIN users u ON u.id = c.owner_id
LEFT JOIN videos v ON v.id = c.video_id
WHERE c.id = ?
LIMIT 1`

func (r *viewRepository) CommentDetail(commentID string) (*entity.CommentView, error) {
	var rows []commentRow
	if err := r.db.Raw(commentDetailSQL, commentID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].view(true), nil
}

func (r *viewRepository) CommentWithOwner(commentID string) (*entity.CommentView, error) {
	var rows []commentRow
	if err := r.db.Raw(commentWithOwnerSQL+" WHERE c.id = ? LIMIT 1", commentID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].view(false), nil
}

func (r *viewRepository) VideoComments(videoID string, limit, offset int) ([]*entity.CommentView, int64, error) {
	var count int64
	if err := r.db.Model(&model.CommentModel{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []commentRow
	err := r.db.Raw(commentWithOwnerSQL+" WHERE c.video_id = ? ORDER BY c.created_at DESC LIMIT ? OFFSET ?",
		videoID, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.CommentView, len(rows))
	for i := range rows {
		views[i] = rows[i].view(false)
	}
	return views, count, nil
}

func (r *viewRepository) Subscribers(channelID string) ([]*entity.UserSummary, error) {
	return r.peers(`
SELECT u.id, u.username, u.email, u.full_name, u.avatar
FROM subscriptions s
JOIN users u ON u.id = s.subscriber_id
WHERE s.channel_id = ?
ORDER BY s.created_at DESC`, channelID)
}

func (r *viewRepository) SubscribedChannels(subscriberID string) ([]*entity.UserSummary, error) {
	return r.peers(`
SELECT u.id, u.username, u.email, u.full_name, u.avatar
FROM subscriptions s
JOIN users u ON u.id = s.channel_id
WHERE s.subscriber_id = ?
ORDER BY s.created_at DESC`, subscriberID)
}

func (r *viewRepository) peers(query string, id string) ([]*entity.UserSummary, error) {
	var rows []entity.UserSummary
	if err := r.db.Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	peers := make([]*entity.UserSummary, len(rows))
	for i := range rows {
		peers[i] = &rows[i]
	}
	return peers, nil
}
