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

type firestoreAppointmentRepository struct {
	client *firestore.Client
}

func NewFirestoreAppointmentRepository(client *firestore.Client) repository.AppointmentRepository {
	return &firestoreAppointmentRepository{
		client: client,
	}
}

func (r *firestoreAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == "" {
		doc := r.client.Collection("appointments").NewDoc()
		appointment.ID = doc.ID
	}

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := r.client.Collection("appointments").Doc(appointment.ID).Set(ctx, appointment)
	if err != nil {
		return errors.Internal("Failed to create appointment", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	doc, err := r.client.Collection("appointments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Appointment", err)
		}
		return nil, errors.Internal("Failed to get appointment", err)
	}

	var appointment entity.Appointment
	if err := doc.DataTo(&appointment); err != nil {
		return nil, errors.Internal("Failed to parse appointment data", err)
	}
	appointment.ID = doc.Ref.ID

	return &appointment, nil
}

func (r *firestoreAppointmentRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Appointment, error) {
	return r.listBy(ctx, "landlordId", landlordID)
}

func (r *firestoreAppointmentRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Appointment, error) {
	return r.listBy(ctx, "tenantId", tenantID)
}

func (r *firestoreAppointmentRepository) ListByRental(ctx context.Context, rentalID string) ([]*entity.Appointment, error) {
	return r.listBy(ctx, "rentalId", rentalID)
}

func (r *firestoreAppointmentRepository) listBy(ctx context.Context, field, value string) ([]*entity.Appointment, error) {
	iter := r.client.Collection("appointments").Where(field, "==", value).Documents(ctx)
	appointments := []*entity.Appointment{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate appointments", err)
		}

		var appointment entity.Appointment
		if err := doc.DataTo(&appointment); err != nil {
			return nil, errors.Internal("Failed to parse appointment data", err)
		}
		appointment.ID = doc.Ref.ID

		appointments = append(appointments, &appointment)
	}

	return appointments, nil
}

func (r *firestoreAppointmentRepository) AppendMessage(ctx context.Context, id string, entry entity.NegotiationEntry) error {
	_, err := r.client.Collection("appointments").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.AppointmentNegotiating},
		{Path: "history", Value: firestore.ArrayUnion(entry)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Appointment", err)
		}
		return errors.Internal("Failed to append negotiation message", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) SetLandlordMessage(ctx context.Context, id, message string) error {
	_, err := r.client.Collection("appointments").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.AppointmentNegotiating},
		{Path: "landlordMessage", Value: message},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Appointment", err)
		}
		return errors.Internal("Failed to set counter-offer", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) SetStatus(ctx context.Context, id string, appointmentStatus entity.AppointmentStatus) error {
	_, err := r.client.Collection("appointments").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: appointmentStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Appointment", err)
		}
		return errors.Internal("Failed to update appointment status", err)
	}

	return nil
}

func (r *firestoreAppointmentRepository) Finalize(ctx context.Context, id string, finalDate, finalTime string) error {
	_, err := r.client.Collection("appointments").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: entity.AppointmentConfirmed},
		{Path: "date", Value: finalDate},
		{Path: "time", Value: finalTime},
		{Path: "isFinalized", Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Appointment", err)
		}
		return errors.Internal("Failed to finalize appointment", err)
	}

	return nil
}
