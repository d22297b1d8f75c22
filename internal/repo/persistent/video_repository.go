package persistent

import (
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/model"
	"video-hive/pkg/pagination"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	Exists(id string) (bool, error)
	List(query entity.VideoListQuery) ([]*entity.Video, int64, error)
	ListByOwner(ownerID string) ([]*entity.Video, error)
	ListLikedBy(userID string) ([]*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	IncrementViews(id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return translate(err)
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Exists(id string) (bool, error) {
	return exists(r.db, &model.VideoModel{}, id)
}

// List filters by owner, matches search case-insensitively against title and
// description, and orders by a whitelisted column. The count ignores paging.
func (r *videoRepository) List(q entity.VideoListQuery) ([]*entity.Video, int64, error) {
	query := r.db.Model(&model.VideoModel{}).Where("owner_id = ?", q.OwnerID)
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var videoModels []model.VideoModel
	err := query.Order(videoOrder(q.SortBy, q.SortType)).
		Limit(q.Limit).
		Offset(pagination.Params{Page: q.Page, Limit: q.Limit}.Offset()).
		Find(&videoModels).Error
	if err != nil {
		return nil, 0, err
	}
	return toVideoEntities(videoModels), count, nil
}

func videoOrder(sortBy string, direction entity.SortDirection) string {
	column, ok := entity.VideoSortFields[sortBy]
	if !ok {
		return "created_at DESC"
	}
	if direction == entity.SortAsc {
		return column + " ASC"
	}
	return column + " DESC"
}

func (r *videoRepository) ListByOwner(ownerID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&videoModels).Error; err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) ListLikedBy(userID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Model(&model.VideoModel{}).
		Joins("JOIN likes ON likes.target_kind = ? AND likes.target_id = videos.id", string(entity.LikeVideo)).
		Where("likes.liked_by = ?", userID).
		Order("likes.created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Save(videoModel).Error; err != nil {
		return translate(err)
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

// Delete removes the video and its playlist entries.
func (r *videoRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.VideoModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *videoRepository) IncrementViews(id string) error {
	result := r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func exists(db *gorm.DB, m interface{}, id string) (bool, error) {
	var count int64
	if err := db.Model(m).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
