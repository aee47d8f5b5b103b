package usecase

import (
	"context"
	"sort"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type TenantRecordUseCase struct {
	recordRepo repository.TenantRecordRepository
	userRepo   repository.UserRepository
}

func NewTenantRecordUseCase(
	recordRepo repository.TenantRecordRepository,
	userRepo repository.UserRepository,
) *TenantRecordUseCase {
	return &TenantRecordUseCase{
		recordRepo: recordRepo,
		userRepo:   userRepo,
	}
}

type CreateTenantRecordInput struct {
	LandlordID         string
	Name               string
	Phone              string
	CurrentRentalID    string
	CurrentRentalTitle string
	LeaseStart         string
	LeaseEnd           string
}

// Create adds a CRM entry. A record tied to a rental is active, otherwise it
// is a lead. When a registered tenant account matches the phone number the
// record is linked to it, which lets the tenant portal find its bills.
func (uc *TenantRecordUseCase) Create(ctx context.Context, input CreateTenantRecordInput) (*entity.TenantRecord, error) {
	if input.LandlordID == "" || input.Name == "" || input.Phone == "" {
		return nil, errors.BadRequest("landlordId, name and phone are required", nil)
	}

	status := entity.TenantRecordLead
	if input.CurrentRentalID != "" {
		status = entity.TenantRecordActive
	}

	record := &entity.TenantRecord{
		LandlordID:         input.LandlordID,
		Name:               input.Name,
		Phone:              input.Phone,
		CurrentRentalID:    input.CurrentRentalID,
		CurrentRentalTitle: input.CurrentRentalTitle,
		Status:             status,
		LeaseStart:         input.LeaseStart,
		LeaseEnd:           input.LeaseEnd,
		Records:            map[string]entity.BillingRecord{},
	}

	if tenant, err := uc.userRepo.GetByPhone(ctx, entity.RoleTenant, input.Phone); err == nil {
		record.UID = tenant.ID
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *TenantRecordUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.TenantRecord, error) {
	if landlordID == "" {
		return nil, errors.BadRequest("landlordId is required", nil)
	}
	return uc.recordRepo.ListByLandlord(ctx, landlordID)
}

// Update applies a generic field patch, including full replacement of the
// per-month records map when present.
func (uc *TenantRecordUseCase) Update(ctx context.Context, id string, fields map[string]interface{}, records map[string]entity.BillingRecord) error {
	if _, err := uc.recordRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if records != nil {
		if err := uc.recordRepo.SetRecords(ctx, id, records); err != nil {
			return err
		}
	}

	if len(fields) > 0 {
		return uc.recordRepo.Update(ctx, id, fields)
	}

	return nil
}

// Bill is one month of a tenant's payment state, flattened for the portal.
type Bill struct {
	RecordID    string `json:"record_id"`
	Month       string `json:"month"`
	RentalTitle string `json:"rental_title"`
	LandlordID  string `json:"landlord_id"`
	Rent        bool   `json:"rent"`
	Water       bool   `json:"water"`
	Electric    bool   `json:"electric"`
	TotalAmount int    `json:"total_amount"`
	TenantNote  string `json:"tenant_note"`
	IsPaid      bool   `json:"is_paid"`
}

type LivingInfo struct {
	RentalTitle string `json:"rental_title"`
	LeaseStart  string `json:"lease_start"`
	LeaseEnd    string `json:"lease_end"`
	Bills       []Bill `json:"bills"`
}

// GetMyLivingInfo flattens a tenant's active CRM records into a bill list,
// newest month first. A bill counts as paid only when rent, water and
// electricity are all marked.
func (uc *TenantRecordUseCase) GetMyLivingInfo(ctx context.Context, uid string) (*LivingInfo, error) {
	if uid == "" {
		return nil, errors.BadRequest("uid is required", nil)
	}

	records, err := uc.recordRepo.ListActiveByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.NotFound("No active tenancy found", nil)
	}

	info := &LivingInfo{
		Bills: []Bill{},
	}

	for _, record := range records {
		if info.RentalTitle == "" {
			info.RentalTitle = record.CurrentRentalTitle
			info.LeaseStart = record.LeaseStart
			info.LeaseEnd = record.LeaseEnd
		}
		for month, billing := range record.Records {
			info.Bills = append(info.Bills, Bill{
				RecordID:    record.ID,
				Month:       month,
				RentalTitle: record.CurrentRentalTitle,
				LandlordID:  record.LandlordID,
				Rent:        billing.Rent,
				Water:       billing.Water,
				Electric:    billing.Electric,
				TotalAmount: billing.TotalAmount,
				TenantNote:  billing.TenantNote,
				IsPaid:      billing.Paid(),
			})
		}
	}

	// "YYYY-MM" keys sort lexicographically, newest first after reversing.
	sort.Slice(info.Bills, func(i, j int) bool {
		return info.Bills[i].Month > info.Bills[j].Month
	})

	return info, nil
}

// UpdateTenantNote writes the tenant's note on one month's billing record.
func (uc *TenantRecordUseCase) UpdateTenantNote(ctx context.Context, recordID, month, note string) error {
	if recordID == "" || month == "" {
		return errors.BadRequest("recordId and month are required", nil)
	}

	record, err := uc.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}

	billing, ok := record.Records[month]
	if !ok {
		return errors.NotFound("No billing record for that month", nil)
	}
	billing.TenantNote = note
	record.Records[month] = billing

	return uc.recordRepo.SetRecords(ctx, recordID, record.Records)
}
