package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type firestoreTenantRecordRepository struct {
	client *firestore.Client
}

func NewFirestoreTenantRecordRepository(client *firestore.Client) repository.TenantRecordRepository {
	return &firestoreTenantRecordRepository{
		client: client,
	}
}

func (r *firestoreTenantRecordRepository) Create(ctx context.Context, record *entity.TenantRecord) error {
	if record.ID == "" {
		doc := r.client.Collection("tenantsManage").NewDoc()
		record.ID = doc.ID
	}

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.client.Collection("tenantsManage").Doc(record.ID).Set(ctx, record)
	if err != nil {
		return errors.Internal("Failed to create tenant record", err)
	}

	return nil
}

func (r *firestoreTenantRecordRepository) GetByID(ctx context.Context, id string) (*entity.TenantRecord, error) {
	doc, err := r.client.Collection("tenantsManage").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tenant record", err)
		}
		return nil, errors.Internal("Failed to get tenant record", err)
	}

	var record entity.TenantRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, errors.Internal("Failed to parse tenant record", err)
	}
	record.ID = doc.Ref.ID

	return &record, nil
}

func (r *firestoreTenantRecordRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.TenantRecord, error) {
	query := r.client.Collection("tenantsManage").
		Where("landlordId", "==", landlordID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreTenantRecordRepository) ListActiveByUID(ctx context.Context, uid string) ([]*entity.TenantRecord, error) {
	query := r.client.Collection("tenantsManage").
		Where("uid", "==", uid).
		Where("status", "==", entity.TenantRecordActive)

	return r.collect(ctx, query)
}

func (r *firestoreTenantRecordRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.TenantRecord, error) {
	iter := query.Documents(ctx)
	records := []*entity.TenantRecord{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate tenant records", err)
		}

		var record entity.TenantRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, errors.Internal("Failed to parse tenant record", err)
		}
		record.ID = doc.Ref.ID

		records = append(records, &record)
	}

	return records, nil
}

func (r *firestoreTenantRecordRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()

	_, err := r.client.Collection("tenantsManage").Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update tenant record", err)
	}

	return nil
}

func (r *firestoreTenantRecordRepository) SetRecords(ctx context.Context, id string, records map[string]entity.BillingRecord) error {
	_, err := r.client.Collection("tenantsManage").Doc(id).Update(ctx, []firestore.Update{
		{Path: "records", Value: records},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Tenant record", err)
		}
		return errors.Internal("Failed to update billing records", err)
	}

	return nil
}
