package usecase

import (
	"context"
	"fmt"
	"time"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
	"rentmate/pkg/logger"
	"rentmate/pkg/utils"
)

type ContractUseCase struct {
	contractRepo repository.ContractRepository
	userRepo     repository.UserRepository
	storage      StorageClient
	renderer     LeaseRenderer
}

func NewContractUseCase(
	contractRepo repository.ContractRepository,
	userRepo repository.UserRepository,
	storage StorageClient,
	renderer LeaseRenderer,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		userRepo:     userRepo,
		storage:      storage,
		renderer:     renderer,
	}
}

type CreateContractInput struct {
	RentalID      string
	LandlordID    string
	LandlordName  string
	TenantID      string
	TenantName    string
	TenantPhone   string
	Address       string
	Price         int
	PeriodStart   string
	PeriodEnd     string
	DepositMonths string
	DepositFee    string
	OtherTerms    string
}

// Create fills the lease template, uploads the PDF and records the contract
// with status created. When tenantId is absent the tenant account is looked
// up by phone so the contract still lands in the tenant's list. Absent terms,
// the lease period included, render as blank form fields rather than failing.
func (uc *ContractUseCase) Create(ctx context.Context, input CreateContractInput) (*entity.Contract, error) {
	if input.LandlordID == "" {
		return nil, errors.BadRequest("landlordId is required", nil)
	}

	tenantID := input.TenantID
	tenantName := input.TenantName
	if tenantID == "" && input.TenantPhone != "" {
		tenant, err := uc.userRepo.GetByPhone(ctx, entity.RoleTenant, input.TenantPhone)
		if err == nil {
			tenantID = tenant.ID
			if tenantName == "" {
				tenantName = tenant.Name
			}
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	contract := &entity.Contract{
		RentalID:      input.RentalID,
		LandlordID:    input.LandlordID,
		LandlordName:  input.LandlordName,
		TenantID:      tenantID,
		TenantName:    tenantName,
		TenantPhone:   input.TenantPhone,
		Address:       input.Address,
		Price:         input.Price,
		PeriodStart:   input.PeriodStart,
		PeriodEnd:     input.PeriodEnd,
		DepositMonths: input.DepositMonths,
		DepositFee:    input.DepositFee,
		OtherTerms:    input.OtherTerms,
		Status:        entity.ContractCreated,
	}

	pdf, err := uc.renderer.Render(contract)
	if err != nil {
		return nil, errors.Internal("Failed to generate contract PDF", err)
	}

	storagePath := fmt.Sprintf("contracts/%d_contract.pdf", time.Now().UnixMilli())
	url, err := uc.storage.UploadBytes(ctx, storagePath, "application/pdf", pdf)
	if err != nil {
		return nil, err
	}

	contract.PDFURL = url
	contract.StoragePath = storagePath

	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	logger.Info("Created contract %s for landlord %s", contract.ID, contract.LandlordID)
	return contract, nil
}

func (uc *ContractUseCase) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	return uc.contractRepo.GetByID(ctx, id)
}

func (uc *ContractUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Contract, error) {
	return uc.contractRepo.ListByLandlord(ctx, landlordID)
}

func (uc *ContractUseCase) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Contract, error) {
	return uc.contractRepo.ListByTenant(ctx, tenantID)
}

// UpdatePDF replaces the stored PDF with a client-supplied one. The swap is
// unconditional and bumps the revision, which invalidates in-flight signing
// cycles.
func (uc *ContractUseCase) UpdatePDF(ctx context.Context, id, pdfBase64 string) (*entity.Contract, error) {
	if pdfBase64 == "" {
		return nil, errors.BadRequest("pdf payload is required", nil)
	}

	if _, err := uc.contractRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	_, data, err := utils.ParseDataURL(pdfBase64)
	if err != nil {
		return nil, errors.BadRequest("Invalid PDF payload", err)
	}

	storagePath := fmt.Sprintf("contracts/%s_updated_%d.pdf", id, time.Now().UnixMilli())
	url, err := uc.storage.UploadBytes(ctx, storagePath, "application/pdf", data)
	if err != nil {
		return nil, err
	}

	if err := uc.contractRepo.SetPDF(ctx, id, url, storagePath); err != nil {
		return nil, err
	}

	return uc.contractRepo.GetByID(ctx, id)
}

// Sign runs the download-stamp-reupload cycle for one party. The record
// update carries the revision observed at download time, so a concurrent
// signer surfacing in between turns into a conflict instead of a lost stamp.
func (uc *ContractUseCase) Sign(ctx context.Context, id, role, signatureBase64 string) (*entity.Contract, error) {
	targetStatus, ok := entity.SignedStatusForRole(role)
	if !ok {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}
	if signatureBase64 == "" {
		return nil, errors.BadRequest("signature payload is required", nil)
	}

	contract, err := uc.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.StoragePath == "" {
		return nil, errors.NotFound("Contract has no stored PDF", nil)
	}

	if !contract.Status.CanTransition(targetStatus) {
		return nil, errors.BadRequest("Contract already signed by this party", nil)
	}

	_, signature, err := utils.ParseDataURL(signatureBase64)
	if err != nil {
		return nil, errors.BadRequest("Invalid signature payload", err)
	}

	pdf, err := uc.storage.Download(ctx, contract.StoragePath)
	if err != nil {
		return nil, err
	}

	stamped, err := uc.renderer.Stamp(pdf, signature, role)
	if err != nil {
		return nil, errors.Internal("Failed to stamp signature", err)
	}

	storagePath := fmt.Sprintf("contracts/%s_%s_signed_%d.pdf", id, role, time.Now().UnixMilli())
	url, err := uc.storage.UploadBytes(ctx, storagePath, "application/pdf", stamped)
	if err != nil {
		return nil, err
	}

	err = uc.contractRepo.ApplySignature(ctx, id, role, url, storagePath, contract.PDFRevision, time.Now())
	if err != nil {
		return nil, err
	}

	return uc.contractRepo.GetByID(ctx, id)
}
