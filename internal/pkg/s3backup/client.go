package s3backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Client wraps the S3 client with media-backup specific functionality
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new S3 backup client and verifies bucket access
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("S3 backup is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// Path-style URLs for S3-compatible providers
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	client := &Client{
		s3Client: s3Client,
		config:   cfg,
	}

	if err := client.testConnection(); err != nil {
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}

	fiberlog.Infof("[S3Backup] Successfully initialized S3 client for bucket: %s", cfg.Bucket)
	return client, nil
}

// testConnection checks that the configured bucket is reachable
func (c *Client) testConnection() error {
	ctx := context.Background()

	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.config.Bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %s not accessible: %w", c.config.Bucket, err)
	}

	return nil
}

// UploadFile copies a stored media file to the backup bucket. The object key
// is the media path below the configured key prefix.
func (c *Client) UploadFile(localFilePath, mediaPath string) (string, error) {
	ctx := context.Background()
	objectKey := c.objectKey(mediaPath)

	file, err := os.Open(localFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", localFilePath, err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to get file info for %s: %w", localFilePath, err)
	}

	contentType := getContentType(filepath.Ext(localFilePath))

	fiberlog.Infof("[S3Backup] Starting upload: %s -> s3://%s/%s (Size: %d bytes)",
		localFilePath, c.config.Bucket, objectKey, fileInfo.Size())

	_, err = c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.config.Bucket),
		Key:           aws.String(objectKey),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileInfo.Size()),
		Metadata: map[string]string{
			"original-path": mediaPath,
			"upload-source": "devfolio-backup",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	fiberlog.Infof("[S3Backup] Successfully uploaded: s3://%s/%s", c.config.Bucket, objectKey)
	return objectKey, nil
}

// DeleteFile removes a media file's backup copy
func (c *Client) DeleteFile(mediaPath string) error {
	ctx := context.Background()
	objectKey := c.objectKey(mediaPath)

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.config.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	fiberlog.Infof("[S3Backup] Successfully deleted: s3://%s/%s", c.config.Bucket, objectKey)
	return nil
}

// ObjectExists checks if a backup copy exists for a media path
func (c *Client) ObjectExists(mediaPath string) (bool, error) {
	ctx := context.Background()

	_, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.config.Bucket),
		Key:    aws.String(c.objectKey(mediaPath)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}

	return true, nil
}

func (c *Client) objectKey(mediaPath string) string {
	return path.Join(c.config.KeyPrefix, path.Clean("/"+mediaPath))
}

// getContentType returns the MIME type based on file extension
func getContentType(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
