package filestorage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/alumnet/backend/internal/pkg/logger"
)

// S3Config configures the object storage backend
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // Custom endpoint for S3-compatible providers
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string // Key prefix inside the bucket
	PublicBaseURL   string // CDN or bucket URL; derived from bucket and region when empty
	PublicRead      bool
}

// putObjectAPI is the slice of the S3 client used here
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage uploads files to an S3 bucket
type S3Storage struct {
	client putObjectAPI
	cfg    S3Config
}

// NewS3Storage builds an S3 client from static credentials or the default chain
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3StorageWithClient(client, cfg), nil
}

func newS3StorageWithClient(client putObjectAPI, cfg S3Config) *S3Storage {
	return &S3Storage{client: client, cfg: cfg}
}

// SaveFile streams the upload to the bucket and returns its public URL
func (s *S3Storage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil {
		return "", errors.New("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := objectName(folder, fileHeader.Filename)
	if p := strings.Trim(s.cfg.Prefix, "/"); p != "" {
		key = p + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(fileHeader.Size),
	}
	if ct := ContentType(fileHeader); ct != "" {
		input.ContentType = aws.String(ct)
	}
	if s.cfg.PublicRead {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.Error().Err(err).Str("bucket", s.cfg.Bucket).Str("key", key).Msg("Failed to upload object")
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := joinURL(s.publicBaseURL(), key)
	logger.Info().Str("filename", fileHeader.Filename).Str("url", url).Msg("Object uploaded successfully")
	return url, nil
}

func (s *S3Storage) publicBaseURL() string {
	if s.cfg.PublicBaseURL != "" {
		return s.cfg.PublicBaseURL
	}
	if s.cfg.Endpoint != "" {
		return joinURL(s.cfg.Endpoint, s.cfg.Bucket)
	}
	region := s.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.cfg.Bucket, region)
}
