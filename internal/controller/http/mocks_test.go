package http

import (
	"video-hive/internal/entity"
	"video-hive/internal/usecase"
	"video-hive/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(input usecase.RegisterInput) (*entity.PublicUser, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *MockUserUseCase) Login(username, email, password string) (*entity.LoginResult, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LoginResult), args.Error(1)
}

func (m *MockUserUseCase) RefreshToken(refreshToken string) (*entity.AuthTokens, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthTokens), args.Error(1)
}

func (m *MockUserUseCase) Logout(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *MockUserUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	return m.Called(userID, oldPassword, newPassword).Error(0)
}

func (m *MockUserUseCase) GetCurrentUser(userID string) (*entity.PublicUser, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *MockUserUseCase) UpdateAccount(userID, fullName, email string) (*entity.PublicUser, error) {
	args := m.Called(userID, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *MockUserUseCase) UpdateAvatar(userID, avatarPath string) (*entity.PublicUser, error) {
	args := m.Called(userID, avatarPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *MockUserUseCase) UpdateCoverImage(userID, coverImagePath string) (*entity.PublicUser, error) {
	args := m.Called(userID, coverImagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PublicUser), args.Error(1)
}

func (m *MockUserUseCase) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) ListVideos(query entity.VideoListQuery) (*entity.VideoPage, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoPage), args.Error(1)
}

func (m *MockVideoUseCase) PublishVideo(ownerID string, input usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(videoID, viewerID string) (*entity.Video, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(videoID, userID string, input usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(videoID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(videoID, userID string) error {
	return m.Called(videoID, userID).Error(0)
}

func (m *MockVideoUseCase) TogglePublish(videoID, userID string) (*entity.Video, error) {
	args := m.Called(videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) CreateTweet(ownerID, content string) (*entity.Tweet, error) {
	args := m.Called(ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) GetTweet(tweetID string) (*entity.Tweet, error) {
	args := m.Called(tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) ListUserTweets(userID string, page pagination.Params) (*entity.TweetPage, error) {
	args := m.Called(userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TweetPage), args.Error(1)
}

func (m *MockTweetUseCase) UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error) {
	args := m.Called(tweetID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) DeleteTweet(tweetID, userID string) error {
	return m.Called(tweetID, userID).Error(0)
}

type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) ListPlaylists(ownerID string) ([]*entity.PlaylistView, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistUseCase) CreatePlaylist(ownerID, name, description string) (*entity.PlaylistView, error) {
	args := m.Called(ownerID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylist(playlistID string) (*entity.PlaylistWithVideos, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistWithVideos), args.Error(1)
}

func (m *MockPlaylistUseCase) UpdatePlaylist(playlistID, userID string, input usecase.UpdatePlaylistInput) (*entity.PlaylistView, error) {
	args := m.Called(playlistID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistUseCase) DeletePlaylist(playlistID, userID string) error {
	return m.Called(playlistID, userID).Error(0)
}

func (m *MockPlaylistUseCase) AddVideo(playlistID, videoID, userID string) (*entity.PlaylistView, error) {
	args := m.Called(playlistID, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideo(playlistID, videoID, userID string) error {
	return m.Called(playlistID, videoID, userID).Error(0)
}

type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) ToggleSubscription(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribers(channelID string) ([]*entity.UserSummary, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserSummary), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribedChannels(subscriberID string) ([]*entity.UserSummary, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserSummary), args.Error(1)
}

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(userID string, target entity.LikeTarget) (bool, error) {
	args := m.Called(userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ListLikedVideos(userID string) ([]*entity.Video, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

var (
	_ usecase.UserUseCase         = (*MockUserUseCase)(nil)
	_ usecase.VideoUseCase        = (*MockVideoUseCase)(nil)
	_ usecase.TweetUseCase        = (*MockTweetUseCase)(nil)
	_ usecase.PlaylistUseCase     = (*MockPlaylistUseCase)(nil)
	_ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)
	_ usecase.LikeUseCase         = (*MockLikeUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser injects the caller id the auth middleware would set.
func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}
