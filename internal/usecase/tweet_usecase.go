package usecase

import (
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/pagination"
)

type TweetUseCase interface {
	CreateTweet(ownerID, content string) (*entity.Tweet, error)
	GetTweet(tweetID string) (*entity.Tweet, error)
	ListUserTweets(userID string, page pagination.Params) (*entity.TweetPage, error)
	UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error)
	DeleteTweet(tweetID, userID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	logger    *logger.Logger
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, logger *logger.Logger) TweetUseCase {
	return &tweetUseCase{tweetRepo: tweetRepo, logger: logger}
}

func (uc *tweetUseCase) CreateTweet(ownerID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("Invalid tweet content")
	}

	tweet := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, apperror.Internal("Internal server error! Unable to create tweet!").WithCause(err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) GetTweet(tweetID string) (*entity.Tweet, error) {
	if strings.TrimSpace(tweetID) == "" {
		return nil, apperror.Validation("Tweet Id is required!")
	}
	if !validID(tweetID) {
		return nil, apperror.NotFound("Invalid tweetId!")
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load tweet", err, apperror.NotFound("Invalid tweetId!"))
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListUserTweets(userID string, page pagination.Params) (*entity.TweetPage, error) {
	if !validID(userID) {
		return nil, apperror.NotFound("Invalid userId")
	}

	tweets, count, err := uc.tweetRepo.ListByOwner(userID, page.Limit, page.Offset())
	if err != nil {
		return nil, internalError(uc.logger, "Failed to list tweets", err)
	}

	return &entity.TweetPage{
		Tweets: tweets,
		Pages:  pagination.TotalPages(count, page.Limit),
		Count:  count,
	}, nil
}

func (uc *tweetUseCase) UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("tweetId and content are required")
	}

	tweet, err := uc.ownedTweet(tweetID, userID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		return nil, internalError(uc.logger, "Failed to update tweet", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(tweetID, userID string) error {
	if _, err := uc.ownedTweet(tweetID, userID); err != nil {
		return err
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		return lookupError(uc.logger, "Failed to delete tweet", err, apperror.NotFound("Invalid tweetId!"))
	}
	return nil
}

func (uc *tweetUseCase) ownedTweet(tweetID, userID string) (*entity.Tweet, error) {
	tweet, err := uc.GetTweet(tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, apperror.Forbidden("Unauthorized access!")
	}
	return tweet, nil
}
