package usecase

import (
	"errors"
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
)

// UpdatePlaylistInput carries a partial update; nil fields are left untouched.
type UpdatePlaylistInput struct {
	Name        *string
	Description *string
}

type PlaylistUseCase interface {
	ListPlaylists(ownerID string) ([]*entity.PlaylistView, error)
	CreatePlaylist(ownerID, name, description string) (*entity.PlaylistView, error)
	GetPlaylist(playlistID string) (*entity.PlaylistWithVideos, error)
	UpdatePlaylist(playlistID, userID string, input UpdatePlaylistInput) (*entity.PlaylistView, error)
	DeletePlaylist(playlistID, userID string) error
	AddVideo(playlistID, videoID, userID string) (*entity.PlaylistView, error)
	RemoveVideo(playlistID, videoID, userID string) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	viewRepo     persistent.ViewRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	viewRepo persistent.ViewRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		viewRepo:     viewRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) ListPlaylists(ownerID string) ([]*entity.PlaylistView, error) {
	playlists, err := uc.playlistRepo.ListByOwner(ownerID)
	if err != nil {
		uc.logger.Error("Failed to list playlists for %s: %v", ownerID, err)
		return nil, apperror.Internal("Server error! Unable to get the playlists!").WithCause(err)
	}

	owner, err := uc.viewRepo.PlaylistOwner(ownerID)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to load playlist owner", err)
	}

	views := make([]*entity.PlaylistView, len(playlists))
	for i, playlist := range playlists {
		views[i] = &entity.PlaylistView{Playlist: playlist, Owner: owner}
	}
	return views, nil
}

func (uc *playlistUseCase) CreatePlaylist(ownerID, name, description string) (*entity.PlaylistView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("Name is required!")
	}

	taken, err := uc.playlistRepo.ExistsByOwnerAndName(ownerID, name, "")
	if err != nil {
		return nil, internalError(uc.logger, "Failed to check playlist name", err)
	}
	if taken {
		return nil, apperror.Validation("Playlist already exists!")
	}

	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		VideoIDs:    []string{},
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Validation("Playlist already exists!")
		}
		return nil, internalError(uc.logger, "Failed to create playlist", err)
	}

	return uc.view(playlist)
}

func (uc *playlistUseCase) GetPlaylist(playlistID string) (*entity.PlaylistWithVideos, error) {
	if strings.TrimSpace(playlistID) == "" {
		return nil, apperror.Validation("Playlist Id is required!")
	}
	if !validID(playlistID) {
		return nil, apperror.NotFound("Invalid playlist Id!")
	}

	playlist, err := uc.viewRepo.PlaylistWithVideos(playlistID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load playlist", err, apperror.NotFound("Invalid playlist Id!"))
	}
	return playlist, nil
}

func (uc *playlistUseCase) UpdatePlaylist(playlistID, userID string, input UpdatePlaylistInput) (*entity.PlaylistView, error) {
	var name, description string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
	}
	if name == "" && description == "" {
		return nil, apperror.Validation("Name or description is missing")
	}

	playlist, err := uc.ownedPlaylist(playlistID, userID, "Playlist not found!")
	if err != nil {
		return nil, err
	}

	if name != "" && name != playlist.Name {
		taken, err := uc.playlistRepo.ExistsByOwnerAndName(userID, name, playlist.ID)
		if err != nil {
			return nil, internalError(uc.logger, "Failed to check playlist name", err)
		}
		if taken {
			return nil, apperror.Validation("Playlist already exists!")
		}
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Validation("Playlist already exists!")
		}
		return nil, lookupError(uc.logger, "Failed to update playlist", err, apperror.NotFound("Playlist not found!"))
	}

	return uc.view(playlist)
}

func (uc *playlistUseCase) DeletePlaylist(playlistID, userID string) error {
	if strings.TrimSpace(playlistID) == "" {
		return apperror.Validation("Playlist Id is missing!")
	}
	if _, err := uc.ownedPlaylist(playlistID, userID, "Playlist does not exists!"); err != nil {
		return err
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		return lookupError(uc.logger, "Failed to delete playlist", err, apperror.NotFound("Playlist does not exists!"))
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(playlistID, videoID, userID string) (*entity.PlaylistView, error) {
	if strings.TrimSpace(playlistID) == "" || strings.TrimSpace(videoID) == "" {
		return nil, apperror.Validation("Playlist Id or videoId is missing!")
	}

	playlist, err := uc.ownedPlaylist(playlistID, userID, "Invalid playlist Id")
	if err != nil {
		return nil, err
	}

	if !validID(videoID) {
		return nil, apperror.NotFound("Invalid videoId!")
	}
	found, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to check video", err)
	}
	if !found {
		return nil, apperror.NotFound("Invalid videoId!")
	}

	if err := uc.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Validation("Video already exists in the playlist!")
		}
		return nil, lookupError(uc.logger, "Failed to add video to playlist", err, apperror.NotFound("Invalid playlist Id"))
	}

	updated, err := uc.playlistRepo.GetByID(playlist.ID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to reload playlist", err, apperror.NotFound("Invalid playlist Id"))
	}
	return uc.view(updated)
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID, userID string) error {
	if strings.TrimSpace(playlistID) == "" || strings.TrimSpace(videoID) == "" {
		return apperror.Validation("Playlist Id or videoId is missing!")
	}

	if _, err := uc.ownedPlaylist(playlistID, userID, "Invalid playlist Id"); err != nil {
		return err
	}
	if !validID(videoID) {
		return apperror.Validation("Video does not exists in the playlist!")
	}

	if err := uc.playlistRepo.RemoveVideo(playlistID, videoID); err != nil {
		return lookupError(uc.logger, "Failed to remove video from playlist", err,
			apperror.Validation("Video does not exists in the playlist!"))
	}
	return nil
}

func (uc *playlistUseCase) ownedPlaylist(playlistID, userID, notFound string) (*entity.Playlist, error) {
	if !validID(playlistID) {
		return nil, apperror.NotFound(notFound)
	}
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load playlist", err, apperror.NotFound(notFound))
	}
	if playlist.OwnerID != userID {
		return nil, apperror.Forbidden("Unauthorized access!")
	}
	return playlist, nil
}

// view attaches the owner summary. A missing owner leaves it null.
func (uc *playlistUseCase) view(playlist *entity.Playlist) (*entity.PlaylistView, error) {
	owner, err := uc.viewRepo.PlaylistOwner(playlist.OwnerID)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to load playlist owner", err)
	}
	return &entity.PlaylistView{Playlist: playlist, Owner: owner}, nil
}
