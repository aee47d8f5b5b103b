package usecase

import (
	"context"
	"strings"
	"time"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUseCase(appointmentRepo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

type CreateAppointmentInput struct {
	RentalID    string
	RentalTitle string
	LandlordID  string
	TenantID    string
	TenantName  string
	Date        string
	Time        string
	Message     string
}

func (uc *AppointmentUseCase) Create(ctx context.Context, input CreateAppointmentInput) (*entity.Appointment, error) {
	if input.RentalID == "" || input.LandlordID == "" || input.TenantID == "" || input.Date == "" {
		return nil, errors.BadRequest("rentalId, landlordId, tenantId and date are required", nil)
	}

	appointment := &entity.Appointment{
		RentalID:    input.RentalID,
		RentalTitle: input.RentalTitle,
		LandlordID:  input.LandlordID,
		TenantID:    input.TenantID,
		TenantName:  input.TenantName,
		Date:        input.Date,
		Time:        input.Time,
		Message:     input.Message,
		Status:      entity.AppointmentPending,
		History:     []entity.NegotiationEntry{},
	}

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

func (uc *AppointmentUseCase) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return uc.appointmentRepo.GetByID(ctx, id)
}

func (uc *AppointmentUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Appointment, error) {
	return uc.appointmentRepo.ListByLandlord(ctx, landlordID)
}

func (uc *AppointmentUseCase) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Appointment, error) {
	return uc.appointmentRepo.ListByTenant(ctx, tenantID)
}

func (uc *AppointmentUseCase) ListByRental(ctx context.Context, rentalID string) ([]*entity.Appointment, error) {
	if rentalID == "" {
		return nil, errors.BadRequest("rentalId is required", nil)
	}
	return uc.appointmentRepo.ListByRental(ctx, rentalID)
}

// AddMessage appends one negotiation entry and moves the appointment to
// negotiating, provided the lifecycle allows it.
func (uc *AppointmentUseCase) AddMessage(ctx context.Context, id, role, message string) (*entity.Appointment, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.BadRequest("Message must not be empty", nil)
	}
	if !entity.ValidRole(role) {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransition(entity.AppointmentNegotiating) {
		return nil, errors.BadRequest("Appointment cannot enter negotiation from its current status", nil)
	}

	entry := entity.NegotiationEntry{
		Role:      role,
		Content:   message,
		CreatedAt: time.Now(),
	}

	if err := uc.appointmentRepo.AppendMessage(ctx, id, entry); err != nil {
		return nil, err
	}

	return uc.appointmentRepo.GetByID(ctx, id)
}

// Negotiate records the landlord's counter-offer in the single-value channel.
func (uc *AppointmentUseCase) Negotiate(ctx context.Context, id, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.BadRequest("Message must not be empty", nil)
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !appointment.Status.CanTransition(entity.AppointmentNegotiating) {
		return errors.BadRequest("Appointment cannot enter negotiation from its current status", nil)
	}

	return uc.appointmentRepo.SetLandlordMessage(ctx, id, message)
}

type UpdateStatusInput struct {
	Status    string
	FinalDate string
	FinalTime string
}

// UpdateStatus validates the requested transition against the lifecycle
// table. Confirming with a negotiated date and time finalizes the
// appointment, overwriting the canonical slot; confirming without them only
// flips the status.
func (uc *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, input UpdateStatusInput) (*entity.Appointment, error) {
	target := entity.AppointmentStatus(input.Status)
	if !target.Valid() {
		return nil, errors.BadRequest("Unknown appointment status", nil)
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransition(target) {
		return nil, errors.BadRequest("Status transition not allowed", nil)
	}

	if target == entity.AppointmentConfirmed && input.FinalDate != "" && input.FinalTime != "" {
		if err := uc.appointmentRepo.Finalize(ctx, id, input.FinalDate, input.FinalTime); err != nil {
			return nil, err
		}
	} else {
		if err := uc.appointmentRepo.SetStatus(ctx, id, target); err != nil {
			return nil, err
		}
	}

	return uc.appointmentRepo.GetByID(ctx, id)
}
