package repository

import (
	"context"
	"time"

	"rentmate/internal/domain/entity"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Contract, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Contract, error)

	// SetPDF unconditionally swaps the stored PDF reference and bumps the
	// revision counter.
	SetPDF(ctx context.Context, id, url, storagePath string) error

	// ApplySignature records a party's signature: new PDF reference, status
	// label, signed timestamp. It runs transactionally and fails with a
	// conflict when expectedRevision no longer matches the stored document,
	// so a concurrent signer's stamp is never silently dropped.
	ApplySignature(ctx context.Context, id, role, url, storagePath string, expectedRevision int64, signedAt time.Time) error
}
