package usecase

import (
	"errors"
	"testing"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/queue"
	"video-hive/pkg/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	videoID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	bobID   = "cccccccc-cccc-cccc-cccc-cccccccccccc"
)

func newVideoUseCase() (VideoUseCase, *MockVideoRepository, *MockAssetStore, *MockPublisher) {
	videoRepo := new(MockVideoRepository)
	assets := new(MockAssetStore)
	publisher := new(MockPublisher)
	return NewVideoUseCase(videoRepo, assets, nil, publisher, logger.New()), videoRepo, assets, publisher
}

func TestListVideos_Pages(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	query := entity.VideoListQuery{OwnerID: aliceID, Page: 1, Limit: 10}
	videoRepo.On("List", query).Return([]*entity.Video{{ID: videoID}}, int64(25), nil)

	page, err := uc.ListVideos(query)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(25), page.Count)
	assert.Len(t, page.Videos, 1)
}

func TestListVideos_UnknownOwnerIsEmpty(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()

	page, err := uc.ListVideos(entity.VideoListQuery{OwnerID: "not-a-uuid", Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Pages)
	assert.Empty(t, page.Videos)
	videoRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestPublishVideo_Success(t *testing.T) {
	uc, videoRepo, assets, publisher := newVideoUseCase()

	assets.On("Upload", "/tmp/v.mp4", FolderVideos).Return(&s3.Asset{URL: "http://cdn/v.mp4", PublicID: "videos/v.mp4", Duration: 12.5}, nil)
	assets.On("Upload", "/tmp/t.png", FolderThumbnails).Return(&s3.Asset{URL: "http://cdn/t.png", PublicID: "thumbnails/t.png"}, nil)
	videoRepo.On("Create", mock.MatchedBy(func(v *entity.Video) bool {
		return v.IsPublished && v.Views == 0 && v.OwnerID == aliceID && v.Duration == 12.5
	})).Return(nil)
	publisher.On("Publish", queue.EventVideoPublished, mock.Anything).Return(nil)

	video, err := uc.PublishVideo(aliceID, PublishVideoInput{
		Title: "Title", Description: "Desc", VideoPath: "/tmp/v.mp4", ThumbnailPath: "/tmp/t.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/v.mp4", video.VideoFile)
	assert.Equal(t, "http://cdn/t.png", video.Thumbnail)
	videoRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPublishVideo_MissingFields(t *testing.T) {
	uc, _, assets, _ := newVideoUseCase()

	_, err := uc.PublishVideo(aliceID, PublishVideoInput{Title: "Title", Description: "Desc", VideoPath: "/tmp/v.mp4"})

	assert.Equal(t, "Title, description, video, thumbnail one of these fields is missing", apperror.From(err).Message)
	assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestPublishVideo_ThumbnailFailureRemovesVideoAsset(t *testing.T) {
	uc, videoRepo, assets, _ := newVideoUseCase()
	assets.On("Upload", "/tmp/v.mp4", FolderVideos).Return(&s3.Asset{URL: "u", PublicID: "videos/v.mp4"}, nil)
	assets.On("Upload", "/tmp/t.png", FolderThumbnails).Return(nil, errors.New("boom"))
	assets.On("Remove", "videos/v.mp4").Return(nil)

	_, err := uc.PublishVideo(aliceID, PublishVideoInput{
		Title: "Title", Description: "Desc", VideoPath: "/tmp/v.mp4", ThumbnailPath: "/tmp/t.png",
	})

	assert.Equal(t, 500, apperror.From(err).StatusCode)
	assets.AssertExpectations(t)
	videoRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetVideo_CountsView(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	videoRepo.On("GetByID", videoID).Return(&entity.Video{ID: videoID, OwnerID: aliceID, IsPublished: true, Views: 4}, nil)
	videoRepo.On("IncrementViews", videoID).Return(nil)

	video, err := uc.GetVideo(videoID, bobID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), video.Views)
	videoRepo.AssertExpectations(t)
}

func TestGetVideo_UnpublishedHiddenFromOthers(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	videoRepo.On("GetByID", videoID).Return(&entity.Video{ID: videoID, OwnerID: aliceID, IsPublished: false}, nil)
	videoRepo.On("IncrementViews", videoID).Return(nil)

	_, err := uc.GetVideo(videoID, bobID)
	assert.Equal(t, "Invalid videoId!", apperror.From(err).Message)

	_, err = uc.GetVideo(videoID, aliceID)
	assert.NoError(t, err)
}

func TestGetVideo_NotFound(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	videoRepo.On("GetByID", videoID).Return(nil, persistent.ErrNotFound)

	_, err := uc.GetVideo(videoID, bobID)
	assert.Equal(t, 400, apperror.From(err).StatusCode)

	_, err = uc.GetVideo("garbage", bobID)
	assert.Equal(t, "Invalid videoId!", apperror.From(err).Message)
}

func TestUpdateVideo_ReplacesThumbnail(t *testing.T) {
	uc, videoRepo, assets, _ := newVideoUseCase()
	video := &entity.Video{ID: videoID, OwnerID: aliceID, Thumbnail: "old", ThumbnailPublicID: "thumbnails/old.png"}
	videoRepo.On("GetByID", videoID).Return(video, nil)
	assets.On("Upload", "/tmp/new.png", FolderThumbnails).Return(&s3.Asset{URL: "new", PublicID: "thumbnails/new.png"}, nil)
	videoRepo.On("Update", video).Return(nil)
	assets.On("Remove", "thumbnails/old.png").Return(nil)

	updated, err := uc.UpdateVideo(videoID, aliceID, UpdateVideoInput{Title: "T2", Description: "D2", ThumbnailPath: "/tmp/new.png"})

	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "new", updated.Thumbnail)
	assets.AssertExpectations(t)
}

func TestUpdateVideo_NotOwner(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	videoRepo.On("GetByID", videoID).Return(&entity.Video{ID: videoID, OwnerID: aliceID}, nil)

	_, err := uc.UpdateVideo(videoID, bobID, UpdateVideoInput{Title: "T", Description: "D"})

	assert.Equal(t, 403, apperror.From(err).StatusCode)
	videoRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteVideo_RemovesAssets(t *testing.T) {
	uc, videoRepo, assets, _ := newVideoUseCase()
	videoRepo.On("GetByID", videoID).Return(&entity.Video{ID: videoID, OwnerID: aliceID, VideoFilePublicID: "videos/v.mp4", ThumbnailPublicID: "thumbnails/t.png"}, nil)
	videoRepo.On("Delete", videoID).Return(nil)
	assets.On("Remove", "videos/v.mp4").Return(nil)
	assets.On("Remove", "thumbnails/t.png").Return(errors.New("already gone"))

	require.NoError(t, uc.DeleteVideo(videoID, aliceID))
	assets.AssertExpectations(t)
}

func TestTogglePublish(t *testing.T) {
	uc, videoRepo, _, _ := newVideoUseCase()
	video := &entity.Video{ID: videoID, OwnerID: aliceID, IsPublished: true}
	videoRepo.On("GetByID", videoID).Return(video, nil)
	videoRepo.On("Update", video).Return(nil)

	toggled, err := uc.TogglePublish(videoID, aliceID)

	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)

	_, err = uc.TogglePublish(videoID, bobID)
	assert.Equal(t, "Unauthorized access!", apperror.From(err).Message)
}
