package http

import (
	"net/http"

	"video-hive/internal/entity"
	"video-hive/internal/usecase"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUseCase: subscriptionUseCase}
}

// ToggleSubscription godoc
// @Summary      Subscribe to or unsubscribe from a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) id"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/toggle-subscription/{channelId} [patch]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	subscribed, err := h.subscriptionUseCase.ToggleSubscription(c.GetString("user_id"), c.Param("channelId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Channel unsubscribed!"
	if subscribed {
		message = "Channel subscribed!"
	}
	response.OK(c, message, gin.H{"subscribed": subscribed})
}

// ListSubscribers godoc
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) id"
// @Success      200  {object}  response.Envelope{data=[]entity.UserSummary}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/subscribers/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUseCase.ListSubscribers(c.Param("channelId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Channel subscribers fetched successfully!", subscribers)
}

// ListSubscribedChannels godoc
// @Summary      List channels the caller subscribes to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]entity.UserSummary}
// @Router       /subscriptions/subscribed-channels [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUseCase.ListSubscribedChannels(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscribed channels fetched successfully!", channels)
}

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase}
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Envelope
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /likes/video/{videoId} [put]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.LikeVideo, "videoId")
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment id"
// @Success      200  {object}  response.Envelope
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /likes/comment/{commentId} [put]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.LikeComment, "commentId")
}

// ToggleTweetLike godoc
// @Summary      Like or unlike a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet id"
// @Success      200  {object}  response.Envelope
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /likes/tweet/{tweetId} [put]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.LikeTweet, "tweetId")
}

// toggle answers 201 when a like is created and 200 when one is removed.
func (h *LikeHandler) toggle(c *gin.Context, kind entity.LikeKind, param string) {
	liked, err := h.likeUseCase.ToggleLike(c.GetString("user_id"), entity.LikeTarget{Kind: kind, ID: c.Param(param)})
	if err != nil {
		response.Error(c, err)
		return
	}

	if liked {
		response.JSON(c, http.StatusCreated, kind.Label()+" liked!", gin.H{"liked": true})
		return
	}
	response.OK(c, kind.Label()+" like removed!", gin.H{"liked": false})
}

// ListLikedVideos godoc
// @Summary      List videos the caller liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]entity.Video}
// @Router       /likes [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	videos, err := h.likeUseCase.ListLikedVideos(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Liked videos fetched successfully!", videos)
}

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

// ChannelStats godoc
// @Summary      Channel dashboard stats
// @Description  Subscriber, video, view and like totals for the caller's channel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.ChannelStats}
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /dashboard/channel-stats [get]
func (h *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.ChannelStats(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Channel stats fetched successfully!", stats)
}

// ChannelVideos godoc
// @Summary      All videos of the caller's channel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]entity.Video}
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /dashboard/channel-videos [get]
func (h *DashboardHandler) ChannelVideos(c *gin.Context) {
	videos, err := h.dashboardUseCase.ChannelVideos(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "All videos fetched successfully", videos)
}

// Healthcheck godoc
// @Summary      Liveness probe
// @Tags         healthcheck
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /healthcheck [get]
func Healthcheck(c *gin.Context) {
	response.OK(c, "All End points are up and running!", gin.H{})
}
