package storage

import "context"

// StorageService stores rendered invoice PDFs.
type StorageService interface {
	// UploadPDF uploads PDF bytes under the given name and returns the
	// permanent asset identifier and a public download URL.
	UploadPDF(ctx context.Context, name string, data []byte) (assetID string, url string, err error)
	// DeletePDF removes a stored PDF by its asset identifier.
	DeletePDF(ctx context.Context, assetID string) error
}
