package usecase

import (
	"context"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/s3"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "11111111-1111-1111-1111-111111111111"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(username, email string) (*entity.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) SetRefreshToken(userID, token string) error {
	return m.Called(userID, token).Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	if args.Error(0) == nil && video.ID == "" {
		video.ID = "22222222-2222-2222-2222-222222222222"
	}
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) List(query entity.VideoListQuery) ([]*entity.Video, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) ListByOwner(ownerID string) ([]*entity.Video, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) ListLikedBy(userID string) ([]*entity.Video, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	return m.Called(video).Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockVideoRepository) IncrementViews(id string) error {
	return m.Called(id).Error(0)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *entity.Tweet) error {
	return m.Called(tweet).Error(0)
}

func (m *MockTweetRepository) GetByID(id string) (*entity.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ownerID string, limit, offset int) ([]*entity.Tweet, int64, error) {
	args := m.Called(ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Tweet), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) Update(tweet *entity.Tweet) error {
	return m.Called(tweet).Error(0)
}

func (m *MockTweetRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	if args.Error(0) == nil && comment.ID == "" {
		comment.ID = "33333333-3333-3333-3333-333333333333"
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(userID string, target entity.LikeTarget) (bool, error) {
	args := m.Called(userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) IsLiked(userID string, target entity.LikeTarget) (bool, error) {
	args := m.Called(userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountFor(target entity.LikeTarget) (int64, error) {
	args := m.Called(target)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	if args.Error(0) == nil && playlist.ID == "" {
		playlist.ID = "44444444-4444-4444-4444-444444444444"
	}
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ownerID string) ([]*entity.Playlist, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ExistsByOwnerAndName(ownerID, name, excludeID string) (bool, error) {
	args := m.Called(ownerID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	return m.Called(playlist).Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockPlaylistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) error {
	return m.Called(playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) error {
	return m.Called(playlistID, videoID).Error(0)
}

type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockViewRepository) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

func (m *MockViewRepository) PlaylistWithVideos(playlistID string) (*entity.PlaylistWithVideos, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistWithVideos), args.Error(1)
}

func (m *MockViewRepository) PlaylistOwner(ownerID string) (*entity.UserSummary, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserSummary), args.Error(1)
}

func (m *MockViewRepository) CommentDetail(commentID string) (*entity.CommentView, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentView), args.Error(1)
}

func (m *MockViewRepository) CommentWithOwner(commentID string) (*entity.CommentView, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentView), args.Error(1)
}

func (m *MockViewRepository) VideoComments(videoID string, limit, offset int) ([]*entity.CommentView, int64, error) {
	args := m.Called(videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.CommentView), args.Get(1).(int64), args.Error(2)
}

func (m *MockViewRepository) Subscribers(channelID string) ([]*entity.UserSummary, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserSummary), args.Error(1)
}

func (m *MockViewRepository) SubscribedChannels(subscriberID string) ([]*entity.UserSummary, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserSummary), args.Error(1)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(localPath, folder string) (*s3.Asset, error) {
	args := m.Called(localPath, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.Asset), args.Error(1)
}

func (m *MockAssetStore) Remove(publicID string) error {
	return m.Called(publicID).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload map[string]interface{}) error {
	return m.Called(eventType, payload).Error(0)
}

var (
	_ persistent.UserRepository         = (*MockUserRepository)(nil)
	_ persistent.VideoRepository        = (*MockVideoRepository)(nil)
	_ persistent.TweetRepository        = (*MockTweetRepository)(nil)
	_ persistent.CommentRepository      = (*MockCommentRepository)(nil)
	_ persistent.LikeRepository         = (*MockLikeRepository)(nil)
	_ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)
	_ persistent.PlaylistRepository     = (*MockPlaylistRepository)(nil)
	_ persistent.ViewRepository         = (*MockViewRepository)(nil)
	_ AssetStore                        = (*MockAssetStore)(nil)
	_ EventPublisher                    = (*MockPublisher)(nil)
)
