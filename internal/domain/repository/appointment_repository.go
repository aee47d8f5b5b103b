package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Appointment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Appointment, error)
	ListByRental(ctx context.Context, rentalID string) ([]*entity.Appointment, error)

	// AppendMessage atomically appends one history entry and moves the
	// appointment to negotiating.
	AppendMessage(ctx context.Context, id string, entry entity.NegotiationEntry) error

	// SetLandlordMessage writes the single-value counter-offer field and
	// moves the appointment to negotiating.
	SetLandlordMessage(ctx context.Context, id, message string) error

	SetStatus(ctx context.Context, id string, status entity.AppointmentStatus) error

	// Finalize confirms the appointment, overwriting the canonical date and
	// time with the negotiated ones and setting the finalized marker.
	Finalize(ctx context.Context, id string, finalDate, finalTime string) error
}
