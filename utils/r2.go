// utils/r2.go
package utils

import (
	"context"
	"fmt"

	"oneearth/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Endpoint is the S3 API endpoint of a Cloudflare account.
func R2Endpoint(accountID string) string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
}

// NewR2Client builds an S3 client pointed at Cloudflare R2.
func NewR2Client(ctx context.Context, cfg config.R2Config) (*s3.Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("R2 is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(R2Endpoint(cfg.AccountID))
		o.UsePathStyle = true
	}), nil
}
