package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/storage"
)

// uploadFiles streams each multipart file to object storage and returns the
// resulting media rows. If any upload fails, files stored so far are removed
// so a create operation never persists a partially-populated media set.
func uploadFiles(ctx context.Context, uploader storage.Uploader, files []*multipart.FileHeader) ([]models.Media, error) {
	media := make([]models.Media, 0, len(files))

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			rollbackUploads(ctx, uploader, media)
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
		}

		result, err := uploader.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), src)
		src.Close()
		if err != nil {
			rollbackUploads(ctx, uploader, media)
			return nil, fmt.Errorf("failed to store file %s: %w", fh.Filename, err)
		}

		media = append(media, models.Media{
			MediaID:    result.FileID,
			MediaType:  fh.Header.Get("Content-Type"),
			MediaURL:   result.MediaURL,
			UploadedAt: time.Now(),
		})
	}
	return media, nil
}

func rollbackUploads(ctx context.Context, uploader storage.Uploader, media []models.Media) {
	// Best-effort cleanup of objects stored before the failure.
	for _, m := range media {
		_ = uploader.Delete(ctx, m.MediaID)
	}
}
