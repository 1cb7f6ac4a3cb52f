package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore uploads staged images into a Supabase storage bucket and
// returns their public object URLs.
type SupabaseStore struct {
	client  *storage_go.Client
	bucket  string
	baseURL string
}

// NewSupabaseStore configures a store for the given project URL and bucket.
func NewSupabaseStore(projectURL, serviceKey, bucket string) (*SupabaseStore, error) {
	projectURL = strings.TrimRight(strings.TrimSpace(projectURL), "/")
	if projectURL == "" {
		return nil, errors.New("storage: project url is required")
	}
	if strings.TrimSpace(serviceKey) == "" {
		return nil, errors.New("storage: service key is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("storage: bucket is required")
	}
	client := storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil)
	return &SupabaseStore{client: client, bucket: bucket, baseURL: projectURL}, nil
}

// Upload stores the image under folder/filename, overwriting any previous
// object at that path, and returns the public URL.
func (s *SupabaseStore) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectPath := folder + "/" + filename
	upsert := true
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", objectPath, err)
	}
	return s.PublicURL(objectPath), nil
}

// PublicURL returns the unauthenticated URL of an uploaded object.
func (s *SupabaseStore) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}

var _ Uploader = (*SupabaseStore)(nil)
