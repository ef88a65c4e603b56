package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	pkgerrors "github.com/pkg/errors"
)

// ObjectStorage is the bucket evidence files are uploaded to.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// R2Storage talks to a Cloudflare R2 bucket through the S3 API.
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Storage(client *s3.Client, bucket, publicURL string) *R2Storage {
	return &R2Storage{client: client, bucket: bucket, publicURL: publicURL}
}

func (s *R2Storage) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "presign put object")
	}
	return req.URL, nil
}

func (s *R2Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return pkgerrors.Wrap(err, "delete object")
}

func (s *R2Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, key)
}
