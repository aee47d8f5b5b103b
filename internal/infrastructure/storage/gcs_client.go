package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
)

type CloudStorageClient struct {
	bucket       *storage.BucketHandle
	bucketName   string
	signedURLTTL time.Duration
}

func NewCloudStorageClient(bucket *storage.BucketHandle, bucketName string, signedURLTTLDays int) *CloudStorageClient {
	if signedURLTTLDays <= 0 || signedURLTTLDays > 7 {
		signedURLTTLDays = 7 // V4 signed URLs cap at seven days
	}

	return &CloudStorageClient{
		bucket:       bucket,
		bucketName:   bucketName,
		signedURLTTL: time.Duration(signedURLTTLDays) * 24 * time.Hour,
	}
}

// UploadBytes stores a private object and returns a time-limited signed read
// URL for it.
func (c *CloudStorageClient) UploadBytes(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if err := c.write(ctx, objectName, contentType, data); err != nil {
		return "", err
	}

	return c.SignedReadURL(objectName)
}

// UploadPublicImage stores an object, marks it world-readable and returns the
// permanent public URL.
func (c *CloudStorageClient) UploadPublicImage(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if err := c.write(ctx, objectName, contentType, data); err != nil {
		return "", err
	}

	obj := c.bucket.Object(objectName)
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) write(ctx context.Context, objectName, contentType string, data []byte) error {
	wc := c.bucket.Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write object %s: %w", objectName, err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer for %s: %w", objectName, err)
	}

	return nil
}

func (c *CloudStorageClient) Download(ctx context.Context, objectName string) ([]byte, error) {
	rc, err := c.bucket.Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}

	return data, nil
}

func (c *CloudStorageClient) SignedReadURL(objectName string) (string, error) {
	url, err := c.bucket.SignedURL(objectName, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(c.signedURLTTL),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for %s: %w", objectName, err)
	}

	return url, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, objectName string) error {
	if err := c.bucket.Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}

	return nil
}
