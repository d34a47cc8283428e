package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"SmartCart-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

const defaultPresignExpiry = 15 * time.Minute

type (
	// AwsS3 turns stored product image references into URLs a client can
	// fetch. References that point into the configured bucket (bare keys,
	// s3:// links or the public bucket URL) are presigned; anything else is
	// returned untouched.
	AwsS3 interface {
		ResolveImageURL(ctx context.Context, ref string) string
		GetObjectKeyFromLink(link string) string
	}

	S3Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
		Expiry    time.Duration
	}

	awsS3 struct {
		bucket    string
		region    string
		expiry    time.Duration
		presigner *s3.PresignClient
	}
)

func LoadS3Config() S3Config {
	return S3Config{
		Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
		Region:    utils.GetConfig("AWS_S3_REGION"),
		AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
		SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
	}
}

func NewAwsS3(cfg S3Config) AwsS3 {
	s := &awsS3{
		bucket: cfg.Bucket,
		region: cfg.Region,
		expiry: cfg.Expiry,
	}
	if s.expiry <= 0 {
		s.expiry = defaultPresignExpiry
	}
	if cfg.Bucket == "" {
		return s
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		log.Warnw("image presigning disabled", "error", err)
		return s
	}
	s.presigner = s3.NewPresignClient(s3.NewFromConfig(awsCfg))
	return s
}

func (s *awsS3) publicBaseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	if s.bucket == "" {
		return ""
	}
	if key, ok := strings.CutPrefix(link, "s3://"+s.bucket+"/"); ok {
		return key
	}
	if key, ok := strings.CutPrefix(link, s.publicBaseURL()); ok {
		return key
	}
	return ""
}

func (s *awsS3) ResolveImageURL(ctx context.Context, ref string) string {
	if ref == "" || s.presigner == nil {
		return ref
	}

	key := s.GetObjectKeyFromLink(ref)
	if key == "" {
		if strings.Contains(ref, "://") {
			return ref
		}
		key = strings.TrimPrefix(ref, "/")
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		log.Warnw("failed to presign image", "key", key, "error", err)
		return ref
	}
	return req.URL
}
