package s3

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"video-hive/pkg/config"
	"video-hive/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, cfg *config.Config) *Client {
	t.Helper()
	c, err := newClient(cfg, logger.New())
	require.NoError(t, err)
	return c
}

func TestObjectURL_MinIO(t *testing.T) {
	c := testClient(t, &config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://localhost:9000",
		S3UseSSL:     "false",
		S3BucketName: "assets",
	})
	assert.Equal(t, "http://localhost:9000/assets/videos/a.mp4", c.objectURL("videos/a.mp4"))
}

func TestObjectURL_AWS(t *testing.T) {
	c := testClient(t, &config.Config{AWSRegion: "eu-west-1", S3BucketName: "assets"})
	assert.Equal(t, "https://assets.s3.eu-west-1.amazonaws.com/k.png", c.objectURL("k.png"))
}

func TestObjectURL_PublicURL(t *testing.T) {
	c := testClient(t, &config.Config{AWSRegion: "us-east-1", S3BucketName: "assets", S3PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/k.png", c.objectURL("k.png"))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("thumbnails", "/tmp/upload-123.PNG")
	assert.True(t, strings.HasPrefix(key, "thumbnails/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, ObjectKey("thumbnails", "/tmp/upload-123.PNG"))
}

func TestUpload_MissingFile(t *testing.T) {
	c := testClient(t, &config.Config{AWSRegion: "us-east-1", S3BucketName: "assets"})
	_, err := c.Upload(filepath.Join(t.TempDir(), "missing.png"), "avatars")
	assert.Error(t, err)

	_, err = c.Upload("", "avatars")
	assert.Error(t, err)
}

func TestRemove_EmptyIsNoop(t *testing.T) {
	c := testClient(t, &config.Config{AWSRegion: "us-east-1", S3BucketName: "assets"})
	assert.NoError(t, c.Remove(""))
}

func TestUpload_RemovesLocalFileOnFailure(t *testing.T) {
	c := testClient(t, &config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://127.0.0.1:1",
		S3UseSSL:     "false",
		S3BucketName: "assets",
	})

	local := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(local, []byte("png"), 0o600))

	_, err := c.Upload(local, "avatars")
	assert.Error(t, err)

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr))
}
