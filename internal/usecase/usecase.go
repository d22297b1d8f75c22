package usecase

import (
	"context"
	"errors"
	"time"

	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/s3"

	"github.com/google/uuid"
)

// Upload folders in the asset store.
const (
	FolderAvatars    = "avatars"
	FolderCovers     = "covers"
	FolderVideos     = "videos"
	FolderThumbnails = "thumbnails"
)

// AssetStore uploads local files to external object storage. Upload removes
// the local file whatever the outcome.
type AssetStore interface {
	Upload(localPath, folder string) (*s3.Asset, error)
	Remove(publicID string) error
}

// EventPublisher emits domain events. Implementations may be absent; a nil
// publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload map[string]interface{}) error
}

const publishTimeout = 5 * time.Second

func publish(publisher EventPublisher, log *logger.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := publisher.Publish(ctx, eventType, payload); err != nil {
		log.Warn("Failed to publish %s event: %v", eventType, err)
	}
}

func removeAsset(store AssetStore, log *logger.Logger, publicID string) {
	if publicID == "" {
		return
	}
	if err := store.Remove(publicID); err != nil {
		log.Warn("Failed to remove asset %s: %v", publicID, err)
	}
}

// validID reports whether id can be a primary key. Malformed ids are treated
// as unknown ones.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func internalError(log *logger.Logger, op string, err error) error {
	log.Error("%s: %v", op, err)
	return apperror.Internal("Internal server error").WithCause(err)
}

// lookupError maps a repository miss to notFound and anything else to Internal.
func lookupError(log *logger.Logger, op string, err error, notFound *apperror.Error) error {
	if errors.Is(err, persistent.ErrNotFound) {
		return notFound
	}
	return internalError(log, op, err)
}
