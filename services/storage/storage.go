package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"swiftbill/config"
)

// CloudinaryStorage implements StorageService on Cloudinary raw assets.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initializes the Cloudinary-backed storage service
// from application config.
func NewCloudinaryStorage() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadPDF uploads PDF bytes into the invoices folder and returns the
// permanent identifier plus its public URL.
func (s *CloudinaryStorage) UploadPDF(ctx context.Context, name string, data []byte) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       "invoices",
		PublicID:     name,
		ResourceType: "raw",
	})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload PDF: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeletePDF deletes a stored PDF given its public ID.
func (s *CloudinaryStorage) DeletePDF(ctx context.Context, assetID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     assetID,
		ResourceType: "raw",
	})
	if err != nil {
		return fmt.Errorf("storage: failed to delete PDF: %w", err)
	}
	return nil
}
