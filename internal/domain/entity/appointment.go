package entity

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending     AppointmentStatus = "pending"
	AppointmentNegotiating AppointmentStatus = "negotiating"
	AppointmentConfirmed   AppointmentStatus = "confirmed"
)

// appointmentTransitions is the authoritative transition table for the
// viewing lifecycle. A message or counter-offer from either party re-opens
// negotiation even on a confirmed appointment; that matches how the product
// behaves today and is encoded here on purpose.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:     {AppointmentNegotiating, AppointmentConfirmed},
	AppointmentNegotiating: {AppointmentNegotiating, AppointmentConfirmed},
	AppointmentConfirmed:   {AppointmentNegotiating},
}

func (s AppointmentStatus) Valid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle allows moving from s to target.
func (s AppointmentStatus) CanTransition(target AppointmentStatus) bool {
	for _, next := range appointmentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NegotiationEntry is one message in an appointment's negotiation history.
type NegotiationEntry struct {
	Role      string    `json:"role" firestore:"role"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type Appointment struct {
	ID          string `json:"id" firestore:"id"`
	RentalID    string `json:"rental_id" firestore:"rentalId"`
	RentalTitle string `json:"rental_title,omitempty" firestore:"rentalTitle,omitempty"`
	LandlordID  string `json:"landlord_id" firestore:"landlordId"`
	TenantID    string `json:"tenant_id" firestore:"tenantId"`
	TenantName  string `json:"tenant_name,omitempty" firestore:"tenantName,omitempty"`

	Date    string `json:"date" firestore:"date"`
	Time    string `json:"time,omitempty" firestore:"time,omitempty"`
	Message string `json:"message,omitempty" firestore:"message,omitempty"`

	Status AppointmentStatus `json:"status" firestore:"status"`

	// Single-value counter-offer channel kept alongside History for
	// compatibility with the landlord negotiation screen.
	LandlordMessage string             `json:"landlord_message,omitempty" firestore:"landlordMessage"`
	History         []NegotiationEntry `json:"history" firestore:"history"`

	IsFinalized bool `json:"is_finalized" firestore:"isFinalized"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
