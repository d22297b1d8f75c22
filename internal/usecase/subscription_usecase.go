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

type SubscriptionUseCase interface {
	ToggleSubscription(subscriberID, channelID string) (bool, error)
	ListSubscribers(channelID string) ([]*entity.UserSummary, error)
	ListSubscribedChannels(subscriberID string) ([]*entity.UserSummary, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	viewRepo         persistent.ViewRepository
	publisher        EventPublisher
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	viewRepo persistent.ViewRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		viewRepo:         viewRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// ToggleSubscription flips the caller's subscription to channelID and reports
// whether the caller is subscribed afterwards.
func (uc *subscriptionUseCase) ToggleSubscription(subscriberID, channelID string) (bool, error) {
	if strings.TrimSpace(channelID) == "" || !validID(channelID) {
		return false, apperror.Validation("Missing or invalid channelId")
	}
	if channelID == subscriberID {
		return false, apperror.Validation("You cannot subscribe to your own channel!")
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return false, lookupError(uc.logger, "Failed to load channel", err, apperror.NotFound("Missing or invalid channelId"))
	}

	subscribed, err := uc.subscriptionRepo.Toggle(subscriberID, channelID)
	if err != nil {
		uc.logger.Error("Failed to toggle subscription %s -> %s: %v", subscriberID, channelID, err)
		return false, apperror.Internal("Server error! Unabled to subscribe channel").WithCause(err)
	}

	metrics.SubscriptionToggles.WithLabelValues(metrics.ToggleState(subscribed)).Inc()
	if subscribed {
		publish(uc.publisher, uc.logger, queue.EventChannelSubscribed, map[string]interface{}{
			"subscriberId": subscriberID,
			"channelId":    channelID,
		})
	}
	return subscribed, nil
}

func (uc *subscriptionUseCase) ListSubscribers(channelID string) ([]*entity.UserSummary, error) {
	if strings.TrimSpace(channelID) == "" || !validID(channelID) {
		return nil, apperror.Validation("ChannelId is missing or invalid")
	}

	subscribers, err := uc.viewRepo.Subscribers(channelID)
	if err != nil {
		uc.logger.Error("Failed to list subscribers of %s: %v", channelID, err)
		return nil, apperror.Internal("Unable to get channel subscribers").WithCause(err)
	}
	return subscribers, nil
}

func (uc *subscriptionUseCase) ListSubscribedChannels(subscriberID string) ([]*entity.UserSummary, error) {
	channels, err := uc.viewRepo.SubscribedChannels(subscriberID)
	if err != nil {
		uc.logger.Error("Failed to list channels subscribed by %s: %v", subscriberID, err)
		return nil, apperror.Internal("Unable to get subscribed channels").WithCause(err)
	}
	return channels, nil
}
