package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewR2Client points the S3 client at the account's R2 endpoint. Nil when R2 is not configured.
func NewR2Client(r2 *R2Config) *s3.Client {
	if r2 == nil || !r2.Enabled() {
		return nil
	}

	return s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2.AccessKeyID,
			r2.SecretAccessKey,
			"",
		),
		Region: r2.Region,
	})
}
