package persistent

import (
	"video-hive/internal/entity"
	"video-hive/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	// Toggle removes the caller's like on target if present, otherwise adds
	// it. It reports whether the target is liked afterwards.
	Toggle(userID string, target entity.LikeTarget) (bool, error)
	IsLiked(userID string, target entity.LikeTarget) (bool, error)
	CountFor(target entity.LikeTarget) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle deletes first and inserts only when nothing was deleted, inside one
// transaction. The unique (liked_by, target_kind, target_id) index turns a
// racing duplicate insert into a no-op.
func (r *likeRepository) Toggle(userID string, target entity.LikeTarget) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("liked_by = ? AND target_kind = ? AND target_id = ?", userID, string(target.Kind), target.ID).
			Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		like := &model.LikeModel{
			LikedBy:    userID,
			TargetKind: string(target.Kind),
			TargetID:   target.ID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *likeRepository) IsLiked(userID string, target entity.LikeTarget) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", userID, string(target.Kind), target.ID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountFor(target entity.LikeTarget) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Count(&count).Error
	return count, err
}
