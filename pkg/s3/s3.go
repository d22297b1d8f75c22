package s3

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"video-hive/pkg/config"
	"video-hive/pkg/logger"
	"video-hive/pkg/media"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Asset describes an uploaded object. PublicID is the object key and is what
// Remove expects.
type Asset struct {
	URL      string
	PublicID string
	Duration float64
}

type Client struct {
	s3Client  *s3.S3
	bucket    string
	publicURL string
	logger    *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	client, err := newClient(cfg, log)
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		if _, err := client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		}); err != nil {
			log.Warn("Could not create bucket %s: %v", cfg.S3BucketName, err)
		}
	}

	return client, nil
}

func newClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client:  s3.New(sess),
		bucket:    cfg.S3BucketName,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
		logger:    log,
	}, nil
}

// Upload stores the local file under folder and always removes the local file
// afterwards, whether or not the upload succeeded. Video files are probed for
// their duration first; a failed probe leaves Duration at zero.
func (c *Client) Upload(localPath, folder string) (*Asset, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			c.logger.Warn("Failed to remove temp file %s: %v", localPath, err)
		}
	}()

	if localPath == "" {
		return nil, errors.New("no file to upload")
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open upload")
	}
	defer file.Close()

	var duration float64
	if media.IsVideo(localPath) {
		if d, err := media.ProbeDuration(localPath); err == nil {
			duration = d
		} else {
			c.logger.Warn("Could not probe duration of %s: %v", filepath.Base(localPath), err)
		}
	}

	key := ObjectKey(folder, localPath)
	_, err = c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(media.ContentType(localPath)),
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to upload file to S3")
	}

	return &Asset{URL: c.objectURL(key), PublicID: key, Duration: duration}, nil
}

// Remove deletes a stored object. An empty id is a no-op.
func (c *Client) Remove(publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return errors.WithMessage(err, "failed to delete file from S3")
	}
	return nil
}

func ObjectKey(folder, localPath string) string {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(localPath))
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

func (c *Client) objectURL(key string) string {
	if c.publicURL != "" {
		return fmt.Sprintf("%s/%s", c.publicURL, key)
	}

	// Generate URL based on endpoint (MinIO or AWS S3)
	endpoint := aws.StringValue(c.s3Client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if c.s3Client.Config.DisableSSL != nil && *c.s3Client.Config.DisableSSL {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, c.bucket, key)
	}

	region := aws.StringValue(c.s3Client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, region, key)
}
