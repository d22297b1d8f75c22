package usecase

import (
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/metrics"
	"video-hive/pkg/queue"
)

type LikeUseCase interface {
	// ToggleLike reports whether the target is liked by userID afterwards.
	ToggleLike(userID string, target entity.LikeTarget) (bool, error)
	ListLikedVideos(userID string) ([]*entity.Video, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *likeUseCase) ToggleLike(userID string, target entity.LikeTarget) (bool, error) {
	if !target.Kind.Valid() {
		return false, apperror.Validation("Invalid like target")
	}
	if strings.TrimSpace(target.ID) == "" {
		return false, apperror.Validation(target.Kind.Label() + "Id is missing!")
	}

	invalid := apperror.NotFound("Invalid " + string(target.Kind) + "Id!")
	if !validID(target.ID) {
		return false, invalid
	}

	found, err := uc.targetExists(target)
	if err != nil {
		return false, internalError(uc.logger, "Failed to check like target", err)
	}
	if !found {
		return false, invalid
	}

	liked, err := uc.likeRepo.Toggle(userID, target)
	if err != nil {
		uc.logger.Error("Failed to toggle like on %s: %v", target, err)
		return false, apperror.Internal("Server error! Unable to like " + string(target.Kind) + "!").WithCause(err)
	}

	metrics.LikeToggles.WithLabelValues(string(target.Kind), metrics.ToggleState(liked)).Inc()
	if liked {
		publish(uc.publisher, uc.logger, queue.EventContentLiked, map[string]interface{}{
			"userId":     userID,
			"targetKind": string(target.Kind),
			"targetId":   target.ID,
		})
	}
	return liked, nil
}

func (uc *likeUseCase) targetExists(target entity.LikeTarget) (bool, error) {
	switch target.Kind {
	case entity.LikeVideo:
		return uc.videoRepo.Exists(target.ID)
	case entity.LikeComment:
		return uc.commentRepo.Exists(target.ID)
	default:
		return uc.tweetRepo.Exists(target.ID)
	}
}

func (uc *likeUseCase) ListLikedVideos(userID string) ([]*entity.Video, error) {
	videos, err := uc.videoRepo.ListLikedBy(userID)
	if err != nil {
		uc.logger.Error("Failed to list liked videos for %s: %v", userID, err)
		return nil, apperror.Internal("Server error! Unable to fetch liked videos").WithCause(err)
	}
	return videos, nil
}
