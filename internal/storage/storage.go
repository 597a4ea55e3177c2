package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
	firebasestorage "firebase.google.com/go/v4/storage"
	"github.com/google/uuid"
)

// UploadResult is what the storage backend returns for a stored file
type UploadResult struct {
	FileID   string `json:"fileID"`
	MediaURL string `json:"mediaURL"`
}

// Uploader streams file bytes to the object-storage collaborator and returns
// the opaque file id plus a public view URL
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, fileID string) error
}

// BucketUploader implements Uploader on top of a Firebase storage bucket
type BucketUploader struct {
	bucket     *gcs.BucketHandle
	endpoint   string
	bucketName string
	projectID  string
}

// NewBucketUploader creates a BucketUploader for the configured bucket
func NewBucketUploader(client *firebasestorage.Client, endpoint, bucketName, projectID string) (*BucketUploader, error) {
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket %s: %w", bucketName, err)
	}
	return &BucketUploader{
		bucket:     bucket,
		endpoint:   endpoint,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

// Upload stores the file under a fresh unique id and returns its view URL.
// The object writer is closed before the URL is built so a failed write never
// yields a dangling URL.
func (u *BucketUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error) {
	fileID := uuid.NewString()

	w := u.bucket.Object(fileID).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{"originalName": filename}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to upload file %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload of %s: %w", filename, err)
	}

	return &UploadResult{FileID: fileID, MediaURL: u.ViewURL(fileID)}, nil
}

// Delete removes a stored file by id
func (u *BucketUploader) Delete(ctx context.Context, fileID string) error {
	if err := u.bucket.Object(fileID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}

// ViewURL builds the deterministic public view URL for a stored file
func (u *BucketUploader) ViewURL(fileID string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&project=%s",
		u.endpoint, u.bucketName, url.PathEscape(fileID), u.projectID)
}
