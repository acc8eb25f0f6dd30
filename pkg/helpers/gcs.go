package helpers

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSUploader writes objects into a single bucket.
type GCSUploader struct {
	Client *storage.Client
	Bucket string
}

// Upload copies r into objectPath and returns the object's public URL.
func (u *GCSUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := u.Client.Bucket(u.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return PublicURL(u.Bucket, objectPath), nil
}

// AvatarObjectPath builds customers/<id>/<uuid><ext>, keeping only the original extension.
func AvatarObjectPath(customerID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("customers/%s/%s%s", customerID, uuid.NewString(), ext)
}

// PublicURL builds a public URL for an object (assuming public read access or signed URLs)
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
