package entity

import (
	"time"
)

type ContractStatus string

const (
	ContractCreated        ContractStatus = "created"
	ContractLandlordSigned ContractStatus = "landlord_signed"
	ContractTenantSigned   ContractStatus = "tenant_signed"
)

// contractTransitions: either party may sign first and the later signer's
// label wins the status field. There is no combined "both signed" status;
// the per-party timestamps are the source of truth for full execution.
// Re-signing by the same party is rejected.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractCreated:        {ContractLandlordSigned, ContractTenantSigned},
	ContractLandlordSigned: {ContractTenantSigned},
	ContractTenantSigned:   {ContractLandlordSigned},
}

func (s ContractStatus) Valid() bool {
	_, ok := contractTransitions[s]
	return ok
}

func (s ContractStatus) CanTransition(target ContractStatus) bool {
	for _, next := range contractTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// SignedStatusForRole maps a signer role to its status label.
func SignedStatusForRole(role string) (ContractStatus, bool) {
	switch role {
	case RoleLandlord:
		return ContractLandlordSigned, true
	case RoleTenant:
		return ContractTenantSigned, true
	default:
		return "", false
	}
}

type Contract struct {
	ID           string `json:"id" firestore:"id"`
	RentalID     string `json:"rental_id,omitempty" firestore:"rentalId,omitempty"`
	LandlordID   string `json:"landlord_id" firestore:"landlordId"`
	LandlordName string `json:"landlord_name" firestore:"landlordName"`
	TenantID     string `json:"tenant_id" firestore:"tenantId"`
	TenantName   string `json:"tenant_name" firestore:"tenantName"`
	TenantPhone  string `json:"tenant_phone,omitempty" firestore:"tenantPhone,omitempty"`

	Address       string `json:"address,omitempty" firestore:"address,omitempty"`
	Price         int    `json:"price" firestore:"price"`
	PeriodStart   string `json:"period_start" firestore:"periodStart"`
	PeriodEnd     string `json:"period_end" firestore:"periodEnd"`
	DepositMonths string `json:"deposit_months,omitempty" firestore:"depositMonths,omitempty"`
	DepositFee    string `json:"deposit_fee,omitempty" firestore:"depositFee,omitempty"`
	OtherTerms    string `json:"other_terms,omitempty" firestore:"otherTerms,omitempty"`

	PDFURL      string `json:"pdf_url" firestore:"pdfUrl"`
	StoragePath string `json:"storage_path" firestore:"storagePath"`

	Status ContractStatus `json:"status" firestore:"status"`

	// Incremented on every stored-PDF swap; guards the download-stamp-reupload
	// cycle against concurrent signers overwriting each other.
	PDFRevision int64 `json:"pdf_revision" firestore:"pdfRevision"`

	LandlordSignedAt *time.Time `json:"landlord_signed_at,omitempty" firestore:"landlordSignedAt,omitempty"`
	TenantSignedAt   *time.Time `json:"tenant_signed_at,omitempty" firestore:"tenantSignedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// FullySigned reports whether both parties have signed, regardless of which
// label the status field carries.
func (c *Contract) FullySigned() bool {
	return c.LandlordSignedAt != nil && c.TenantSignedAt != nil
}
