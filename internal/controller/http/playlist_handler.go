package http

import (
	"video-hive/internal/usecase"
	"video-hive/pkg/apperror"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListPlaylists godoc
// @Summary      List the caller's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]entity.PlaylistView}
// @Router       /playlists [get]
func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.playlistUseCase.ListPlaylists(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Playlists fetched successfully!", playlists)
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist"
// @Success      201  {object}  response.Envelope{data=entity.PlaylistView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Name is required!").WithCause(err))
		return
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Playlist created successfully!", playlist)
}

// GetPlaylist godoc
// @Summary      Get a playlist with its videos
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist id"
// @Success      200  {object}  response.Envelope{data=entity.PlaylistWithVideos}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUseCase.GetPlaylist(c.Param("playlistId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Playlist fetched successfully!", playlist)
}

// UpdatePlaylist godoc
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist id"
// @Param        request body UpdatePlaylistRequest true "Fields to change"
// @Success      200  {object}  response.Envelope{data=entity.PlaylistView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Name or description is missing").WithCause(err))
		return
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(c.Param("playlistId"), c.GetString("user_id"), usecase.UpdatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Playlist updated successfully!", playlist)
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistUseCase.DeletePlaylist(c.Param("playlistId"), c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Playlist deleted successfully!", gin.H{})
}

// AddVideo godoc
// @Summary      Append a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist id"
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope{data=entity.PlaylistView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId}/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := h.playlistUseCase.AddVideo(c.Param("playlistId"), c.Param("videoId"), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video added to playlist", playlist)
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist id"
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /playlists/{playlistId}/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	if err := h.playlistUseCase.RemoveVideo(c.Param("playlistId"), c.Param("videoId"), c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video removed from playlist", gin.H{})
}
