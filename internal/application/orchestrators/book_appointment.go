package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fitstudio/internal/domain/appointment"
	"fitstudio/internal/domain/service"
	"fitstudio/internal/domain/trainer"

	"github.com/google/uuid"
)

// ServiceStoreForBooking defines the store interface needed by BookAppointment.
type ServiceStoreForBooking interface {
	GetByID(ctx context.Context, id string) (service.Service, error)
}

// TrainerStoreForBooking defines the store interface needed by BookAppointment.
type TrainerStoreForBooking interface {
	GetByID(ctx context.Context, id string) (trainer.Trainer, error)
}

// AppointmentStoreForBooking defines the store interface needed by BookAppointment.
type AppointmentStoreForBooking interface {
	Save(ctx context.Context, a appointment.Appointment) error
}

// BookAppointmentInput carries the booking form fields. Date and Time are the
// independently chosen calendar date ("2006-01-02") and time-of-day ("15:04").
type BookAppointmentInput struct {
	MemberID  string
	ServiceID string
	TrainerID string
	Date      string
	Time      string
}

// BookAppointmentDeps holds dependencies for BookAppointment.
type BookAppointmentDeps struct {
	ServiceStore     ServiceStoreForBooking
	TrainerStore     TrainerStoreForBooking
	AppointmentStore AppointmentStoreForBooking
}

var (
	ErrServiceNotFound = errors.New("the selected service no longer exists")
	ErrTrainerNotFound = errors.New("the selected trainer no longer exists")
	ErrMissingBookingFields = errors.New("service, trainer, date, and time are all required")
)

// ExecuteBookAppointment creates a pending appointment from member input. The
// service price is snapshotted onto the appointment, so later catalog price
// changes never alter existing bookings.
// PRE: MemberID is an authenticated identity
// POST: A pending appointment row exists; nothing else is written
func ExecuteBookAppointment(ctx context.Context, input BookAppointmentInput, deps BookAppointmentDeps) (appointment.Appointment, error) {
	if input.MemberID == "" {
		return appointment.Appointment{}, errors.New("member id cannot be empty")
	}
	if input.ServiceID == "" || input.TrainerID == "" || input.Date == "" || input.Time == "" {
		return appointment.Appointment{}, ErrMissingBookingFields
	}

	startsAt, err := appointment.CombineDateTime(input.Date, input.Time)
	if err != nil {
		return appointment.Appointment{}, err
	}

	// Catalog lookups happen per request; a stale form can reference rows an
	// admin has since deleted.
	svc, err := deps.ServiceStore.GetByID(ctx, input.ServiceID)
	if err != nil {
		return appointment.Appointment{}, ErrServiceNotFound
	}
	if _, err := deps.TrainerStore.GetByID(ctx, input.TrainerID); err != nil {
		return appointment.Appointment{}, ErrTrainerNotFound
	}

	// Known gap: the chosen instant is not checked against the trainer's
	// working hours or existing bookings.
	appt := appointment.Appointment{
		ID:        uuid.New().String(),
		MemberID:  input.MemberID,
		TrainerID: input.TrainerID,
		ServiceID: input.ServiceID,
		StartsAt:  startsAt,
		Price:     svc.Price,
		Status:    appointment.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := appt.Validate(); err != nil {
		return appointment.Appointment{}, err
	}

	if err := deps.AppointmentStore.Save(ctx, appt); err != nil {
		return appointment.Appointment{}, err
	}

	slog.Info("booking_event", "event", "appointment_booked",
		"appointment_id", appt.ID, "member_id", appt.MemberID,
		"service_id", appt.ServiceID, "trainer_id", appt.TrainerID,
		"starts_at", appt.StartsAt, "price", appt.Price)

	return appt, nil
}
