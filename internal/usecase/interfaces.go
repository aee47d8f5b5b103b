package usecase

import (
	"context"

	"rentmate/internal/domain/entity"
)

// StorageClient is the blob-store surface the use cases need.
type StorageClient interface {
	UploadBytes(ctx context.Context, objectName, contentType string, data []byte) (string, error)
	UploadPublicImage(ctx context.Context, objectName, contentType string, data []byte) (string, error)
	Download(ctx context.Context, objectName string) ([]byte, error)
}

// Geocoder resolves an address to coordinates. Callers treat failure as
// soft and fall back to a default coordinate.
type Geocoder interface {
	Lookup(ctx context.Context, address string) (lat, lng float64, err error)
}

// LeaseRenderer produces and amends lease PDFs.
type LeaseRenderer interface {
	Render(contract *entity.Contract) ([]byte, error)
	Stamp(pdf []byte, signaturePNG []byte, role string) ([]byte, error)
}
