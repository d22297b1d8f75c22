package http

import (
	"video-hive/internal/usecase"
	"video-hive/pkg/apperror"
	"video-hive/pkg/pagination"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// ListVideoComments godoc
// @Summary      List comments of a video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Param        page query int false "Page" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.CommentPage}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) ListVideoComments(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("limit"))

	comments, err := h.commentUseCase.ListVideoComments(c.Param("videoId"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video comments fetched successfully!", comments)
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Param        request body CommentRequest true "Comment content"
// @Success      201  {object}  response.Envelope{data=entity.CommentView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Content or videoId is missing!").WithCause(err))
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Param("videoId"), c.GetString("user_id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Comment added successfully!", comment)
}

// GetComment godoc
// @Summary      Get a comment
// @Description  Comment with its owner summary and a trimmed projection of its video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment id"
// @Success      200  {object}  response.Envelope{data=entity.CommentView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /comments/comment/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentUseCase.GetComment(c.Param("commentId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Comment data fetched successfully!", comment)
}

// UpdateComment godoc
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment id"
// @Param        request body CommentRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.CommentView}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /comments/comment/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("CommentId or content is missing!").WithCause(err))
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Param("commentId"), c.GetString("user_id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Comment updated successfully!", comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /comments/comment/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Param("commentId"), c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Comment deleted successfully!", gin.H{})
}
