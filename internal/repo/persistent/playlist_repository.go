package persistent

import (
	"time"

	"video-hive/internal/entity"
	"video-hive/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	ListByOwner(ownerID string) ([]*entity.Playlist, error)
	ExistsByOwnerAndName(ownerID, name, excludeID string) (bool, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
	HasVideo(playlistID, videoID string) (bool, error)
	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.Create(playlistModel).Error; err != nil {
		return translate(err)
	}
	*playlist = *ToPlaylistEntity(playlistModel, nil)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, translate(err)
	}
	videoIDs, err := r.videoIDs(id)
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel, videoIDs), nil
}

func (r *playlistRepository) ListByOwner(ownerID string) ([]*entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&playlistModels).Error; err != nil {
		return nil, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		videoIDs, err := r.videoIDs(playlistModels[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i] = ToPlaylistEntity(&playlistModels[i], videoIDs)
	}
	return playlists, nil
}

func (r *playlistRepository) ExistsByOwnerAndName(ownerID, name, excludeID string) (bool, error) {
	query := r.db.Model(&model.PlaylistModel{}).Where("owner_id = ? AND name = ?", ownerID, name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	result := r.db.Model(&model.PlaylistModel{}).Where("id = ?", playlist.ID).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	updated, err := r.GetByID(playlist.ID)
	if err != nil {
		return err
	}
	*playlist = *updated
	return nil
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.PlaylistModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *playlistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	return count > 0, err
}

// AddVideo appends the video after the current last entry. ErrDuplicate is
// returned when the video is already in the playlist.
func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&model.PlaylistVideoModel{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return err
		}

		entry := &model.PlaylistVideoModel{PlaylistID: playlistID, VideoID: videoID, Position: next}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDuplicate
		}
		return tx.Model(&model.PlaylistModel{}).Where("id = ?", playlistID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).Delete(&model.PlaylistVideoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *playlistRepository) videoIDs(playlistID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Pluck("video_id", &ids).Error
	return ids, err
}
