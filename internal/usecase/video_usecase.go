package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/metrics"
	"video-hive/pkg/pagination"
	"video-hive/pkg/queue"

	"github.com/redis/go-redis/v9"
)

// A viewer is counted at most once per video within this window.
const viewDedupeWindow = 24 * time.Hour

type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

type UpdateVideoInput struct {
	Title         string
	Description   string
	ThumbnailPath string
}

type VideoUseCase interface {
	ListVideos(query entity.VideoListQuery) (*entity.VideoPage, error)
	PublishVideo(ownerID string, input PublishVideoInput) (*entity.Video, error)
	GetVideo(videoID, viewerID string) (*entity.Video, error)
	UpdateVideo(videoID, userID string, input UpdateVideoInput) (*entity.Video, error)
	DeleteVideo(videoID, userID string) error
	TogglePublish(videoID, userID string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	assets      AssetStore
	redisClient *redis.Client
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	assets AssetStore,
	redisClient *redis.Client,
	publisher EventPublisher,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		assets:      assets,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *videoUseCase) ListVideos(query entity.VideoListQuery) (*entity.VideoPage, error) {
	if strings.TrimSpace(query.OwnerID) == "" {
		return nil, apperror.Validation("UserId is required!")
	}
	if !validID(query.OwnerID) {
		return &entity.VideoPage{Videos: []*entity.Video{}, Pages: 1, Count: 0}, nil
	}

	videos, count, err := uc.videoRepo.List(query)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to list videos", err)
	}

	return &entity.VideoPage{
		Videos: videos,
		Pages:  pagination.TotalPages(count, query.Limit),
		Count:  count,
	}, nil
}

func (uc *videoUseCase) PublishVideo(ownerID string, input PublishVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" || input.VideoPath == "" || input.ThumbnailPath == "" {
		return nil, apperror.Validation("Title, description, video, thumbnail one of these fields is missing")
	}

	videoAsset, err := uc.assets.Upload(input.VideoPath, FolderVideos)
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, apperror.Internal("Server error! Unable to upload video").WithCause(err)
	}

	thumbnailAsset, err := uc.assets.Upload(input.ThumbnailPath, FolderThumbnails)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		removeAsset(uc.assets, uc.logger, videoAsset.PublicID)
		return nil, apperror.Internal("Server error! Unable to upload thumbnail").WithCause(err)
	}

	video := &entity.Video{
		OwnerID:           ownerID,
		Title:             title,
		Description:       description,
		VideoFile:         videoAsset.URL,
		VideoFilePublicID: videoAsset.PublicID,
		Thumbnail:         thumbnailAsset.URL,
		ThumbnailPublicID: thumbnailAsset.PublicID,
		Duration:          videoAsset.Duration,
		Views:             0,
		IsPublished:       true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video record: %v", err)
		return nil, apperror.Internal("Server error! Unable to publish video").WithCause(err)
	}

	metrics.VideosPublished.Inc()
	publish(uc.publisher, uc.logger, queue.EventVideoPublished, map[string]interface{}{
		"videoId": video.ID,
		"ownerId": video.OwnerID,
		"title":   video.Title,
	})

	uc.logger.Info("Video %s published by %s", video.ID, ownerID)
	return video, nil
}

// GetVideo returns a video and counts the read as a view. Unpublished videos
// are visible to their owner only.
func (uc *videoUseCase) GetVideo(videoID, viewerID string) (*entity.Video, error) {
	video, err := uc.findVideo(videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, apperror.NotFound("Invalid videoId!")
	}

	if uc.shouldCountView(videoID, viewerID) {
		if err := uc.videoRepo.IncrementViews(videoID); err != nil {
			uc.logger.Warn("Failed to increment views for video %s: %v", videoID, err)
		} else {
			video.Views++
			metrics.VideoViews.Inc()
		}
	}

	return video, nil
}

// shouldCountView claims the (video, viewer) pair in redis. Without redis
// every read counts.
func (uc *videoUseCase) shouldCountView(videoID, viewerID string) bool {
	if uc.redisClient == nil || viewerID == "" {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("video_view:%s:%s", videoID, viewerID)
	claimed, err := uc.redisClient.SetNX(ctx, key, 1, viewDedupeWindow).Result()
	if err != nil {
		uc.logger.Warn("View dedupe unavailable, counting view: %v", err)
		return true
	}
	return claimed
}

func (uc *videoUseCase) UpdateVideo(videoID, userID string, input UpdateVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperror.Validation("Title or description is missing")
	}

	video, err := uc.ownedVideo(videoID, userID)
	if err != nil {
		return nil, err
	}

	previousThumbnail := ""
	if input.ThumbnailPath != "" {
		thumbnailAsset, err := uc.assets.Upload(input.ThumbnailPath, FolderThumbnails)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, apperror.Internal("Server error! Unable to upload thumbnail").WithCause(err)
		}
		previousThumbnail = video.ThumbnailPublicID
		video.Thumbnail = thumbnailAsset.URL
		video.ThumbnailPublicID = thumbnailAsset.PublicID
	}

	video.Title = title
	video.Description = description
	if err := uc.videoRepo.Update(video); err != nil {
		return nil, internalError(uc.logger, "Failed to update video", err)
	}

	removeAsset(uc.assets, uc.logger, previousThumbnail)
	return video, nil
}

func (uc *videoUseCase) DeleteVideo(videoID, userID string) error {
	video, err := uc.ownedVideo(videoID, userID)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		return lookupError(uc.logger, "Failed to delete video", err, apperror.NotFound("Invalid videoId!"))
	}

	removeAsset(uc.assets, uc.logger, video.VideoFilePublicID)
	removeAsset(uc.assets, uc.logger, video.ThumbnailPublicID)
	uc.logger.Info("Video %s deleted by %s", videoID, userID)
	return nil
}

func (uc *videoUseCase) TogglePublish(videoID, userID string) (*entity.Video, error) {
	video, err := uc.ownedVideo(videoID, userID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		return nil, internalError(uc.logger, "Failed to toggle publish status", err)
	}
	return video, nil
}

func (uc *videoUseCase) findVideo(videoID string) (*entity.Video, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, apperror.Validation("Video Id is required!")
	}
	if !validID(videoID) {
		return nil, apperror.NotFound("Invalid videoId!")
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load video", err, apperror.NotFound("Invalid videoId!"))
	}
	return video, nil
}

func (uc *videoUseCase) ownedVideo(videoID, userID string) (*entity.Video, error) {
	video, err := uc.findVideo(videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, apperror.Forbidden("Unauthorized access!")
	}
	return video, nil
}
