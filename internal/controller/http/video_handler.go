package http

import (
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/usecase"
	"video-hive/pkg/logger"
	"video-hive/pkg/pagination"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	uploadDir    string
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, uploadDir string, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

// ListVideos godoc
// @Summary      List a user's videos
// @Description  Paginated, searchable and sortable list of videos owned by a user
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "Owner id"
// @Param        page query int false "Page" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        search query string false "Substring of title or description"
// @Param        sortBy query string false "Sort field" Enums(title, description, duration, views, createdAt, updatedAt, isPublished)
// @Param        sortType query string false "Sort direction" Enums(asc, desc)
// @Success      200  {object}  response.Envelope{data=entity.VideoPage}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /videos/list/{userId} [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("limit"))

	sortType := entity.SortDesc
	if strings.EqualFold(c.Query("sortType"), string(entity.SortAsc)) {
		sortType = entity.SortAsc
	}

	result, err := h.videoUseCase.ListVideos(entity.VideoListQuery{
		OwnerID:  c.Param("userId"),
		Page:     page.Page,
		Limit:    page.Limit,
		Search:   strings.TrimSpace(c.Query("search")),
		SortBy:   c.Query("sortBy"),
		SortType: sortType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Videos fetched successfully!", result)
}

// PublishVideo godoc
// @Summary      Publish a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /videos/publish [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var files uploads
	defer files.cleanup()

	videoPath, err := files.save(c, "videoFile", h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}
	thumbnailPath, err := files.save(c, "thumbnail", h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}

	video, err := h.videoUseCase.PublishVideo(c.GetString("user_id"), usecase.PublishVideoInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Video published successfully!", video)
}

// GetVideo godoc
// @Summary      Get a video
// @Description  Returns the video and counts one view per viewer
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.GetVideo(c.Param("videoId"), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video details fetched successfully!", video)
}

// UpdateVideo godoc
// @Summary      Update a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var files uploads
	defer files.cleanup()

	thumbnailPath, err := files.save(c, "thumbnail", h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}

	video, err := h.videoUseCase.UpdateVideo(c.Param("videoId"), c.GetString("user_id"), usecase.UpdateVideoInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video updated successfully!", video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.DeleteVideo(c.Param("videoId"), c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video deleted successfully!", gin.H{})
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /videos/toggle-publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUseCase.TogglePublish(c.Param("videoId"), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}
	response.OK(c, "Video "+state+" successfully!", video)
}
