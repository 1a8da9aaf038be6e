package utils

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaService hosts product images on Cloudinary. The credentials
// come from the CLOUDINARY_URL environment variable.
type MediaService struct {
	cld *cloudinary.Cloudinary
}

func NewMediaService() (*MediaService, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &MediaService{cld: cld}, nil
}

// Upload pushes an image into the given folder and returns the hosted
// URL and the public id needed to delete it later.
func (m *MediaService) Upload(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	result, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, result.PublicID, nil
}

// Delete removes a hosted image by its public id.
func (m *MediaService) Delete(ctx context.Context, publicID string) error {
	_, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
