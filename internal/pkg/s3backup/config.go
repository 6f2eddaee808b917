package s3backup

import (
	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
)

// Config holds the S3 media backup settings, read from the environment.
// Works against AWS as well as S3-compatible providers (MinIO, Backblaze B2)
// via the optional endpoint URL.
type Config struct {
	Enabled         bool
	Region          string
	Bucket          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	KeyPrefix       string
}

// LoadConfig reads the backup configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Enabled:         env.GetEnv("S3_BACKUP_ENABLED", "false") == "true",
		Region:          env.GetEnv("S3_BACKUP_REGION", "us-east-1"),
		Bucket:          env.GetEnv("S3_BACKUP_BUCKET", ""),
		EndpointURL:     env.GetEnv("S3_BACKUP_ENDPOINT", ""),
		AccessKeyID:     env.GetEnv("S3_BACKUP_ACCESS_KEY", ""),
		SecretAccessKey: env.GetEnv("S3_BACKUP_SECRET_KEY", ""),
		KeyPrefix:       env.GetEnv("S3_BACKUP_PREFIX", "media"),
	}
}

// IsEnabled reports whether backups are switched on and fully configured
func (c *Config) IsEnabled() bool {
	return c.Enabled && c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}
