package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// 商品画像をS3へ保存する
type S3ImageUploader struct {
	uploader *manager.Uploader
	bucket   string
}

// DI
func NewS3ImageUploader(ctx context.Context, bucket string) (*S3ImageUploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ImageUploader{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// アップロードして公開URLを返す
func (u *S3ImageUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return result.Location, nil
}
