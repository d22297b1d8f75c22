package usecase

import (
	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
)

type DashboardUseCase interface {
	ChannelStats(ownerID string) (*entity.ChannelStats, error)
	ChannelVideos(ownerID string) ([]*entity.Video, error)
}

type dashboardUseCase struct {
	viewRepo  persistent.ViewRepository
	videoRepo persistent.VideoRepository
	logger    *logger.Logger
}

func NewDashboardUseCase(viewRepo persistent.ViewRepository, videoRepo persistent.VideoRepository, logger *logger.Logger) DashboardUseCase {
	return &dashboardUseCase{viewRepo: viewRepo, videoRepo: videoRepo, logger: logger}
}

func (uc *dashboardUseCase) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	stats, err := uc.viewRepo.ChannelStats(ownerID)
	if err != nil {
		uc.logger.Error("Failed to aggregate channel stats for %s: %v", ownerID, err)
		return nil, apperror.Internal("Server error! Unable to fetch dashboard data!").WithCause(err)
	}
	return stats, nil
}

func (uc *dashboardUseCase) ChannelVideos(ownerID string) ([]*entity.Video, error) {
	videos, err := uc.videoRepo.ListByOwner(ownerID)
	if err != nil {
		uc.logger.Error("Failed to list videos for %s: %v", ownerID, err)
		return nil, apperror.Internal("Server error! Unable to fetch uploaded videos").WithCause(err)
	}
	return videos, nil
}
