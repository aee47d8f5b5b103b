package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

type TenantRecordRepository interface {
	Create(ctx context.Context, record *entity.TenantRecord) error
	GetByID(ctx context.Context, id string) (*entity.TenantRecord, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.TenantRecord, error)

	// ListActiveByUID returns the active CRM records linked to a tenant
	// account, for the tenant portal.
	ListActiveByUID(ctx context.Context, uid string) ([]*entity.TenantRecord, error)

	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SetRecords(ctx context.Context, id string, records map[string]entity.BillingRecord) error
}
