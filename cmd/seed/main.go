package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/internal/usecase"
	"video-hive/pkg/config"
	"video-hive/pkg/database"
	"video-hive/pkg/logger"
	"video-hive/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultSampleVideo = "https://download.samplelib.com/mp4/sample-5s.mp4"

type seeder struct {
	users         persistent.UserRepository
	videos        persistent.VideoRepository
	tweets        persistent.TweetRepository
	comments      persistent.CommentRepository
	likes         persistent.LikeRepository
	subscriptions persistent.SubscriptionRepository
	playlists     persistent.PlaylistRepository
	s3Client      *s3.Client
	httpClient    *http.Client
	sampleVideo   string
	log           *logger.Logger
}

func main() {
	var sampleVideo string
	flag.StringVar(&sampleVideo, "sample-video", defaultSampleVideo, "URL stored as the media file of seeded videos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg, log)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := newSeeder(db, s3Client, sampleVideo, log).run(); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func newSeeder(db *gorm.DB, s3Client *s3.Client, sampleVideo string, log *logger.Logger) *seeder {
	return &seeder{
		users:         persistent.NewUserRepository(db),
		videos:        persistent.NewVideoRepository(db),
		tweets:        persistent.NewTweetRepository(db),
		comments:      persistent.NewCommentRepository(db),
		likes:         persistent.NewLikeRepository(db),
		subscriptions: persistent.NewSubscriptionRepository(db),
		playlists:     persistent.NewPlaylistRepository(db),
		s3Client:      s3Client,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		sampleVideo:   sampleVideo,
		log:           log,
	}
}

func (s *seeder) run() error {
	testUsers := []struct {
		email    string
		username string
		fullName string
		password string
	}{
		{"alice@test.com", "alice_cat", "Alice Cat", "password123"},
		{"bob@test.com", "bob_cat", "Bob Cat", "password123"},
		{"charlie@test.com", "charlie_cat", "Charlie Cat", "password123"},
		{"diana@test.com", "diana_cat", "Diana Cat", "password123"},
		{"eve@test.com", "eve_cat", "Eve Cat", "password123"},
	}

	users := make([]*entity.User, 0, len(testUsers))
	var videos []*entity.Video

	for _, tu := range testUsers {
		existing, err := s.users.FindByUsernameOrEmail(tu.username, tu.email)
		if err == nil {
			s.log.Info("User %s already exists, skipping", tu.username)
			users = append(users, existing)
			continue
		}
		if !errors.Is(err, persistent.ErrNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", tu.username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(tu.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		avatar, err := s.uploadCat(fmt.Sprintf("Hi, I am %s", tu.username), usecase.FolderAvatars)
		if err != nil {
			s.log.Error("Failed to upload avatar for %s: %v", tu.username, err)
			continue
		}

		user := &entity.User{
			Username:       tu.username,
			Email:          tu.email,
			FullName:       tu.fullName,
			Avatar:         avatar.URL,
			AvatarPublicID: avatar.PublicID,
			Password:       string(hash),
		}
		if err := s.users.Create(user); err != nil {
			s.log.Error("Failed to create user %s: %v", tu.username, err)
			continue
		}
		s.log.Info("Created user: %s (%s)", user.Username, user.Email)
		users = append(users, user)

		videosCount := 2 + (len(users) % 2)
		s.log.Info("Creating %d videos for user %s", videosCount, user.Username)
		for i := 0; i < videosCount; i++ {
			video, err := s.createVideo(user, i)
			if err != nil {
				s.log.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			videos = append(videos, video)
			time.Sleep(200 * time.Millisecond)
		}

		tweet := &entity.Tweet{OwnerID: user.ID, Content: fmt.Sprintf("Hello from %s!", user.Username)}
		if err := s.tweets.Create(tweet); err != nil {
			s.log.Error("Failed to create tweet for %s: %v", user.Username, err)
		}
	}

	s.seedSocialGraph(users, videos)
	s.seedPlaylists(users, videos)
	return nil
}

// uploadCat fetches a captioned cat picture from CATAAS and stores it as an
// asset in folder.
func (s *seeder) uploadCat(caption, folder string) (*s3.Asset, error) {
	cataasURL := "https://cataas.com/cat/says/" + url.PathEscape(caption)

	s.log.Info("Fetching cat image from %s", cataasURL)
	resp, err := s.httpClient.Get(cataasURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "seed-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	written, err := io.Copy(tmp, resp.Body)
	tmp.Close()
	if err != nil || written == 0 {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to read image data: %v", err)
	}

	s.log.Info("Downloaded image: %d bytes", written)
	return s.s3Client.Upload(tmp.Name(), folder)
}

func (s *seeder) createVideo(owner *entity.User, index int) (*entity.Video, error) {
	thumbnail, err := s.uploadCat(fmt.Sprintf("Video %d by %s", index+1, owner.Username), usecase.FolderThumbnails)
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		OwnerID:           owner.ID,
		VideoFile:         s.sampleVideo,
		Thumbnail:         thumbnail.URL,
		ThumbnailPublicID: thumbnail.PublicID,
		Title:             fmt.Sprintf("Cat video #%d by %s", index+1, owner.Username),
		Description:       fmt.Sprintf("A cute cat from CATAAS API! Video #%d", index+1),
		Duration:          5,
		IsPublished:       true,
	}
	if err := s.videos.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	s.log.Info("Created video: %s by %s", video.Title, owner.Username)
	return video, nil
}

// seedSocialGraph subscribes every user to the users after them, and has each
// user like and comment on the videos of the next user.
func (s *seeder) seedSocialGraph(users []*entity.User, videos []*entity.Video) {
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			subscribed, err := s.subscriptions.IsSubscribed(users[i].ID, users[j].ID)
			if err != nil || subscribed {
				continue
			}
			if _, err := s.subscriptions.Toggle(users[i].ID, users[j].ID); err != nil {
				s.log.Error("Failed to create subscription: %v", err)
			}
		}
	}
	s.log.Info("Created test subscriptions")

	if len(users) < 2 {
		return
	}
	for i, user := range users {
		next := users[(i+1)%len(users)]
		for _, video := range videos {
			if video.OwnerID != next.ID {
				continue
			}
			target := entity.LikeTarget{Kind: entity.LikeVideo, ID: video.ID}
			if liked, err := s.likes.IsLiked(user.ID, target); err == nil && !liked {
				if _, err := s.likes.Toggle(user.ID, target); err != nil {
					s.log.Error("Failed to like video %s: %v", video.ID, err)
				}
			}
			comment := &entity.Comment{
				VideoID: video.ID,
				OwnerID: user.ID,
				Content: fmt.Sprintf("Lovely cat, %s!", next.FullName),
			}
			if err := s.comments.Create(comment); err != nil {
				s.log.Error("Failed to comment on video %s: %v", video.ID, err)
			}
		}
	}
	s.log.Info("Created test likes and comments")
}

func (s *seeder) seedPlaylists(users []*entity.User, videos []*entity.Video) {
	for _, user := range users {
		const name = "Favourite cats"
		exists, err := s.playlists.ExistsByOwnerAndName(user.ID, name, "")
		if err != nil || exists {
			continue
		}

		playlist := &entity.Playlist{OwnerID: user.ID, Name: name, Description: "Cats worth watching twice"}
		if err := s.playlists.Create(playlist); err != nil {
			s.log.Error("Failed to create playlist for %s: %v", user.Username, err)
			continue
		}
		for _, video := range videos {
			if video.OwnerID == user.ID {
				continue
			}
			if err := s.playlists.AddVideo(playlist.ID, video.ID); err != nil {
				s.log.Error("Failed to add video %s to playlist: %v", video.ID, err)
			}
		}
	}
	s.log.Info("Created test playlists")
}
