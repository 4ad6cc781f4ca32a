// Package images uploads recipe images to object storage.
package images

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// NewUploader returns an uploader writing to the public bucket.
func NewUploader(client *storage.Client, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket}
}

type Uploader struct {
	client *storage.Client
	bucket string
}

// Upload writes the image bytes to the bucket and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, path string, contents []byte, contentType string) (string, error) {
	w := u.client.Bucket(u.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(contents); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("images: writing image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("images: finishing image upload: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, path), nil
}
