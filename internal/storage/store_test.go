package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsStoreByKind(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, Settings{})
	require.NoError(t, err)
	assert.IsType(t, NoopStore{}, store)

	store, err = New(ctx, Settings{Kind: "FILE", MediaRoot: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = New(ctx, Settings{Kind: "ftp"})
	require.Error(t, err)

	_, err = New(ctx, Settings{Kind: KindS3})
	require.Error(t, err)
}

func TestFileStoreWritesUnderQRDirectory(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	location, err := store.SaveQRCode(context.Background(), 1, "Acme_qr.png", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, "qrs/Acme_qr.png", location)

	_, err = store.SaveQRCode(context.Background(), 1, "Acme_qr.png", []byte("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "qrs", "Acme_qr.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestFileStoreKeepsWritesInsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	location, err := store.SaveQRCode(context.Background(), 1, "../../escape_qr.png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "qrs/escape_qr.png", location)
	_, err = os.Stat(filepath.Join(root, "qrs", "escape_qr.png"))
	require.NoError(t, err)
}

func TestNewFileStoreRequiresRoot(t *testing.T) {
	_, err := NewFileStore(" ")
	require.Error(t, err)
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (fake *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	fake.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	fake.body = body
	if fake.err != nil {
		return nil, fake.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorePutsObjectWithGeneratedKey(t *testing.T) {
	putter := &fakePutter{}
	store := newS3StoreWithClient(putter, "qr-bucket")
	store.newKey = func() string { return "0b9f6c3e-2f0a-4d8e-9a51-3c1d2e4f5a6b" }

	location, err := store.SaveQRCode(context.Background(), 42, "Acme_qr.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "s3://qr-bucket/qrs/42/0b9f6c3e-2f0a-4d8e-9a51-3c1d2e4f5a6b.png", location)
	assert.Equal(t, "qr-bucket", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "qrs/42/0b9f6c3e-2f0a-4d8e-9a51-3c1d2e4f5a6b.png", aws.ToString(putter.input.Key))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, `attachment; filename="Acme_qr.png"`, aws.ToString(putter.input.ContentDisposition))
	assert.Equal(t, "png-bytes", string(putter.body))
}

func TestS3StoreWrapsPutErrors(t *testing.T) {
	putErr := errors.New("access denied")
	store := newS3StoreWithClient(&fakePutter{err: putErr}, "qr-bucket")

	_, err := store.SaveQRCode(context.Background(), 1, "Acme_qr.png", []byte("png"))
	require.ErrorIs(t, err, putErr)
}

func TestNewS3StoreBuildsClientFromStaticCredentials(t *testing.T) {
	store, err := NewS3Store(context.Background(), S3Settings{
		Bucket:    "qr-bucket",
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minio",
		SecretKey: "minio-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "qr-bucket", store.bucket)
	assert.IsType(t, &s3.Client{}, store.client)
}
