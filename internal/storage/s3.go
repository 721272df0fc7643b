package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Settings struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads every issued image under qrs/<organization id>/<uuid>.png.
type S3Store struct {
	client objectPutter
	bucket string
	newKey func() string
}

func NewS3Store(ctx context.Context, settings S3Settings) (*S3Store, error) {
	if strings.TrimSpace(settings.Bucket) == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if strings.TrimSpace(settings.Region) == "" {
		return nil, errors.New("s3 region is required")
	}

	options := []func(*config.LoadOptions) error{config.WithRegion(settings.Region)}
	if settings.AccessKey != "" || settings.SecretKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(settings.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3StoreWithClient(client, settings.Bucket), nil
}

func newS3StoreWithClient(client objectPutter, bucket string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		newKey: func() string { return uuid.NewString() },
	}
}

func (store *S3Store) SaveQRCode(ctx context.Context, organizationID uint, filename string, png []byte) (string, error) {
	key := fmt.Sprintf("%s/%d/%s.png", qrDirectory, organizationID, store.newKey())
	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(store.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(png),
		ContentType:        aws.String("image/png"),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", filename)),
	})
	if err != nil {
		return "", fmt.Errorf("put qr object: %w", err)
	}
	return "s3://" + store.bucket + "/" + key, nil
}
