package persistent

import (
	"video-hive/internal/entity"
	"video-hive/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	Exists(id string) (bool, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Tweet, int64, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.Create(tweetModel).Error; err != nil {
		return translate(err)
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) Exists(id string) (bool, error) {
	return exists(r.db, &model.TweetModel{}, id)
}

func (r *tweetRepository) ListByOwner(ownerID string, limit, offset int) ([]*entity.Tweet, int64, error) {
	query := r.db.Model(&model.TweetModel{}).Where("owner_id = ?", ownerID).Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var tweetModels []model.TweetModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tweetModels).Error; err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, count, nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.Save(tweetModel).Error; err != nil {
		return translate(err)
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.TweetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
