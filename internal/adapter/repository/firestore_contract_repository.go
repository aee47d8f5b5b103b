package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type firestoreContractRepository struct {
	client *firestore.Client
}

func NewFirestoreContractRepository(client *firestore.Client) repository.ContractRepository {
	return &firestoreContractRepository{
		client: client,
	}
}

func (r *firestoreContractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	if contract.ID == "" {
		doc := r.client.Collection("contracts").NewDoc()
		contract.ID = doc.ID
	}

	now := time.Now()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	_, err := r.client.Collection("contracts").Doc(contract.ID).Set(ctx, contract)
	if err != nil {
		return errors.Internal("Failed to create contract", err)
	}

	return nil
}

func (r *firestoreContractRepository) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	doc, err := r.client.Collection("contracts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Contract", err)
		}
		return nil, errors.Internal("Failed to get contract", err)
	}

	var contract entity.Contract
	if err := doc.DataTo(&contract); err != nil {
		return nil, errors.Internal("Failed to parse contract data", err)
	}
	contract.ID = doc.Ref.ID

	return &contract, nil
}

func (r *firestoreContractRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Contract, error) {
	return r.listBy(ctx, "landlordId", landlordID)
}

func (r *firestoreContractRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Contract, error) {
	return r.listBy(ctx, "tenantId", tenantID)
}

func (r *firestoreContractRepository) listBy(ctx context.Context, field, value string) ([]*entity.Contract, error) {
	iter := r.client.Collection("contracts").Where(field, "==", value).Documents(ctx)
	contracts := []*entity.Contract{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate contracts", err)
		}

		var contract entity.Contract
		if err := doc.DataTo(&contract); err != nil {
			return nil, errors.Internal("Failed to parse contract data", err)
		}
		contract.ID = doc.Ref.ID

		contracts = append(contracts, &contract)
	}

	// Sorted in memory; the equality filter plus orderBy would need a
	// composite index per field.
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.After(contracts[j].CreatedAt)
	})

	return contracts, nil
}

func (r *firestoreContractRepository) SetPDF(ctx context.Context, id, url, storagePath string) error {
	_, err := r.client.Collection("contracts").Doc(id).Update(ctx, []firestore.Update{
		{Path: "pdfUrl", Value: url},
		{Path: "storagePath", Value: storagePath},
		{Path: "pdfRevision", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Contract", err)
		}
		return errors.Internal("Failed to update contract PDF", err)
	}

	return nil
}

func (r *firestoreContractRepository) ApplySignature(ctx context.Context, id, role, url, storagePath string, expectedRevision int64, signedAt time.Time) error {
	signedStatus, ok := entity.SignedStatusForRole(role)
	if !ok {
		return errors.BadRequest("Unknown signer role", nil)
	}

	ref := r.client.Collection("contracts").Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Contract", err)
			}
			return errors.Internal("Failed to get contract", err)
		}

		var contract entity.Contract
		if err := doc.DataTo(&contract); err != nil {
			return errors.Internal("Failed to parse contract data", err)
		}

		// The stamp cycle was based on the PDF at expectedRevision. If the
		// stored document moved on, this signature was drawn onto a stale
		// base and must be redone.
		if contract.PDFRevision != expectedRevision {
			return errors.Conflict("Contract PDF changed while signing, please sign again")
		}

		updates := []firestore.Update{
			{Path: "pdfUrl", Value: url},
			{Path: "storagePath", Value: storagePath},
			{Path: "status", Value: signedStatus},
			{Path: "pdfRevision", Value: expectedRevision + 1},
			{Path: "updatedAt", Value: signedAt},
		}
		if role == entity.RoleLandlord {
			updates = append(updates, firestore.Update{Path: "landlordSignedAt", Value: signedAt})
		} else {
			updates = append(updates, firestore.Update{Path: "tenantSignedAt", Value: signedAt})
		}

		return tx.Update(ref, updates)
	})

	return err
}
