package http

import (
	"video-hive/internal/usecase"
	"video-hive/pkg/apperror"
	"video-hive/pkg/pagination"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase) *TweetHandler {
	return &TweetHandler{tweetUseCase: tweetUseCase}
}

type TweetRequest struct {
	Content string `json:"content"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets/create [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid tweet content").WithCause(err))
		return
	}

	tweet, err := h.tweetUseCase.CreateTweet(c.GetString("user_id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tweet created successfully!", tweet)
}

// GetTweet godoc
// @Summary      Get a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet id"
// @Success      200  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets/{tweetId} [get]
func (h *TweetHandler) GetTweet(c *gin.Context) {
	tweet, err := h.tweetUseCase.GetTweet(c.Param("tweetId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tweet data fetched successfully!", tweet)
}

// ListUserTweets godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "Owner id"
// @Param        page query int false "Page" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200  {object}  response.Envelope{data=entity.TweetPage}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListUserTweets(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("limit"))

	tweets, err := h.tweetUseCase.ListUserTweets(c.Param("userId"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User tweets fetched successfully!", tweets)
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet id"
// @Param        request body TweetRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /tweets/update/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("tweetId and content are required").WithCause(err))
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(c.Param("tweetId"), c.GetString("user_id"), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tweet updated successfully!", tweet)
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Router       /tweets/delete/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	if err := h.tweetUseCase.DeleteTweet(c.Param("tweetId"), c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tweet deleted successfully!", gin.H{})
}
