package persistent

import (
	"fmt"
	"testing"

	"video-hive/internal/entity"
	"video-hive/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createUserEntity(username string) *entity.User {
	return &entity.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "User " + username,
		Avatar:   "https://cdn.example.com/" + username + ".png",
		Password: "hash",
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := createUserEntity(username)
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createVideo(t *testing.T, db *gorm.DB, ownerID, title string, views int64) *entity.Video {
	t.Helper()
	video := &entity.Video{
		OwnerID:     ownerID,
		VideoFile:   "https://cdn.example.com/" + title + ".mp4",
		Thumbnail:   "https://cdn.example.com/" + title + ".png",
		Title:       title,
		Description: "about " + title,
		Duration:    12.5,
		Views:       views,
		IsPublished: true,
	}
	require.NoError(t, NewVideoRepository(db).Create(video))
	return video
}
