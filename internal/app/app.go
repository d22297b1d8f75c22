package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	videoHTTP "video-hive/internal/controller/http"
	"video-hive/internal/repo/persistent"
	"video-hive/internal/usecase"
	"video-hive/pkg/config"
	"video-hive/pkg/jwt"
	"video-hive/pkg/logger"
	"video-hive/pkg/metrics"
	"video-hive/pkg/middleware"
	"video-hive/pkg/queue"
	"video-hive/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "video-hive/docs" // Swagger docs
)

// NewRouter builds the API engine. assets, publisher and redisClient may be
// nil; uploads then fail, events are skipped and views are counted on every
// read.
func NewRouter(cfg *config.Config, log *logger.Logger, db *gorm.DB, assets usecase.AssetStore, publisher usecase.EventPublisher, redisClient *redis.Client) *gin.Engine {
	jwtService := jwt.NewService(cfg.Token)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	viewRepo := persistent.NewViewRepository(db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, viewRepo, jwtService, assets, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, assets, redisClient, publisher, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, viewRepo, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, viewRepo, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, viewRepo, publisher, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, publisher, log)
	dashboardUseCase := usecase.NewDashboardUseCase(viewRepo, videoRepo, log)

	// Initialize HTTP handlers
	cookies := videoHTTP.CookieConfig{
		Secure:     cfg.CookieSecure,
		Domain:     cfg.CookieDomain,
		AccessTTL:  cfg.Token.AccessTTL,
		RefreshTTL: cfg.Token.RefreshTTL,
	}
	userHandler := videoHTTP.NewUserHandler(userUseCase, cookies, cfg.UploadTempDir, log)
	videoHandler := videoHTTP.NewVideoHandler(videoUseCase, cfg.UploadTempDir, log)
	tweetHandler := videoHTTP.NewTweetHandler(tweetUseCase)
	commentHandler := videoHTTP.NewCommentHandler(commentUseCase)
	playlistHandler := videoHTTP.NewPlaylistHandler(playlistUseCase)
	subscriptionHandler := videoHTTP.NewSubscriptionHandler(subscriptionUseCase)
	likeHandler := videoHTTP.NewLikeHandler(likeUseCase)
	dashboardHandler := videoHTTP.NewDashboardHandler(dashboardUseCase)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Handler())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.BodyLimit(cfg.JSONBodyLimit, cfg.UploadMaxBytes))

	r.GET("/metrics", metrics.Exposer())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log)

	api := r.Group("/api/v1")
	api.GET("/healthcheck", videoHTTP.Healthcheck)

	public := api.Group("/users")
	public.Use(limiter)
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh-token", userHandler.RefreshToken)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(jwtService))
	secured.Use(limiter)

	users := secured.Group("/users")
	{
		users.POST("/logout", userHandler.Logout)
		users.POST("/change-password", userHandler.ChangePassword)
		users.GET("/active-user", userHandler.GetCurrentUser)
		users.PATCH("/update-user", userHandler.UpdateAccount)
		users.PATCH("/update-avatar", userHandler.UpdateAvatar)
		users.PATCH("/update-cover-image", userHandler.UpdateCoverImage)
		users.GET("/channel/:channel", userHandler.GetChannelProfile)
	}

	videos := secured.Group("/videos")
	{
		videos.GET("/list/:userId", videoHandler.ListVideos)
		videos.POST("/publish", videoHandler.PublishVideo)
		videos.GET("/:videoId", videoHandler.GetVideo)
		videos.PATCH("/:videoId", videoHandler.UpdateVideo)
		videos.DELETE("/:videoId", videoHandler.DeleteVideo)
		videos.PATCH("/toggle-publish/:videoId", videoHandler.TogglePublish)
	}

	tweets := secured.Group("/tweets")
	{
		tweets.POST("/create", tweetHandler.CreateTweet)
		tweets.GET("/:tweetId", tweetHandler.GetTweet)
		tweets.GET("/user/:userId", tweetHandler.ListUserTweets)
		tweets.PATCH("/update/:tweetId", tweetHandler.UpdateTweet)
		tweets.DELETE("/delete/:tweetId", tweetHandler.DeleteTweet)
	}

	comments := secured.Group("/comments")
	{
		comments.GET("/:videoId", commentHandler.ListVideoComments)
		comments.POST("/:videoId", commentHandler.AddComment)
		comments.GET("/comment/:commentId", commentHandler.GetComment)
		comments.PUT("/comment/:commentId", commentHandler.UpdateComment)
		comments.DELETE("/comment/:commentId", commentHandler.DeleteComment)
	}

	playlists := secured.Group("/playlists")
	{
		playlists.GET("/", playlistHandler.ListPlaylists)
		playlists.POST("/", playlistHandler.CreatePlaylist)
		playlists.GET("/:playlistId", playlistHandler.GetPlaylist)
		playlists.PATCH("/:playlistId", playlistHandler.UpdatePlaylist)
		playlists.DELETE("/:playlistId", playlistHandler.DeletePlaylist)
		playlists.PATCH("/:playlistId/:videoId", playlistHandler.AddVideo)
		playlists.DELETE("/:playlistId/:videoId", playlistHandler.RemoveVideo)
	}

	subscriptions := secured.Group("/subscriptions")
	{
		subscriptions.PATCH("/toggle-subscription/:channelId", subscriptionHandler.ToggleSubscription)
		subscriptions.GET("/subscribers/:channelId", subscriptionHandler.ListSubscribers)
		subscriptions.GET("/subscribed-channels", subscriptionHandler.ListSubscribedChannels)
	}

	likes := secured.Group("/likes")
	{
		likes.PUT("/video/:videoId", likeHandler.ToggleVideoLike)
		likes.PUT("/comment/:commentId", likeHandler.ToggleCommentLike)
		likes.PUT("/tweet/:tweetId", likeHandler.ToggleTweetLike)
		likes.GET("/", likeHandler.ListLikedVideos)
	}

	dashboard := secured.Group("/dashboard")
	{
		dashboard.GET("/channel-stats", dashboardHandler.ChannelStats)
		dashboard.GET("/channel-videos", dashboardHandler.ChannelVideos)
	}

	return r
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	gin.SetMode(cfg.GinMode)

	var assets usecase.AssetStore
	if s3Client != nil {
		assets = s3Client
	}
	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	r := NewRouter(cfg, log, db, assets, publisher, redisClient)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("VideoHive API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down VideoHive API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting requests before the stores go away
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	log.Info("VideoHive API exited")
}
