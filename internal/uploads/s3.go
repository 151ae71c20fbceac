package uploads

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores images in an S3 bucket as an alternative to Cloudinary.
// Objects are keyed under a fixed prefix with a random name so re-uploads of
// the same file never collide.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

// NewS3Uploader loads the default AWS config for the given region and returns
// an uploader writing into bucket under "uploads/".
func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		prefix: "uploads",
	}, nil
}

// Upload puts the object and returns its public HTTPS URL.
func (u *S3Uploader) Upload(ctx context.Context, file File) (string, error) {
	key := fmt.Sprintf("%s/%s%s", u.prefix, uuid.New().String(), path.Ext(file.Name))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
