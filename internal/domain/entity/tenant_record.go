package entity

import (
	"time"
)

const (
	TenantRecordActive = "active"
	TenantRecordLead   = "lead"
)

// BillingRecord tracks one month of payment flags for a managed tenant.
// Keys in TenantRecord.Records are "YYYY-MM" strings.
type BillingRecord struct {
	Rent        bool   `json:"rent" firestore:"rent"`
	Water       bool   `json:"water" firestore:"water"`
	Electric    bool   `json:"electric" firestore:"electric"`
	TotalAmount int    `json:"total_amount" firestore:"totalAmount"`
	TenantNote  string `json:"tenant_note" firestore:"tenantNote"`
}

// Paid is the conjunction of all three payment flags.
func (b BillingRecord) Paid() bool {
	return b.Rent && b.Water && b.Electric
}

// TenantRecord is a landlord-owned CRM entry for a tenant, optionally linked
// to a registered tenant account through UID.
type TenantRecord struct {
	ID                 string `json:"id" firestore:"id"`
	LandlordID         string `json:"landlord_id" firestore:"landlordId"`
	Name               string `json:"name" firestore:"name"`
	Phone              string `json:"phone" firestore:"phone"`
	UID                string `json:"uid,omitempty" firestore:"uid"`
	CurrentRentalID    string `json:"current_rental_id,omitempty" firestore:"currentRentalId"`
	CurrentRentalTitle string `json:"current_rental_title,omitempty" firestore:"currentRentalTitle"`
	Status             string `json:"status" firestore:"status"`
	LeaseStart         string `json:"lease_start,omitempty" firestore:"leaseStart"`
	LeaseEnd           string `json:"lease_end,omitempty" firestore:"leaseEnd"`

	Records map[string]BillingRecord `json:"records,omitempty" firestore:"records,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
