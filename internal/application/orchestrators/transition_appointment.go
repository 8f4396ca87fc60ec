package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"fitstudio/internal/domain/account"
	"fitstudio/internal/domain/appointment"
)

// Actor is the authenticated identity attempting an operation, resolved from
// the request's session and passed explicitly rather than read from ambient
// state.
type Actor struct {
	AccountID string
	Role      string
}

// IsAdmin reports whether the actor holds administrative authorization.
func (a Actor) IsAdmin() bool {
	return a.Role == account.RoleAdmin
}

// AppointmentStoreForTransition defines the store interface needed by
// transition and cancellation.
type AppointmentStoreForTransition interface {
	GetByID(ctx context.Context, id string) (appointment.Appointment, error)
	Save(ctx context.Context, a appointment.Appointment) error
}

// TransitionAppointmentInput carries input for the admin decision.
type TransitionAppointmentInput struct {
	AppointmentID string
	// Target is confirmed or rejected; pending is never a target.
	Target string
}

// TransitionAppointmentDeps holds dependencies for TransitionAppointment.
type TransitionAppointmentDeps struct {
	AppointmentStore AppointmentStoreForTransition
}

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAdminOnly           = errors.New("only an administrator may decide appointments")
)

// ExecuteTransitionAppointment applies an admin decision to an appointment.
// The routing layer already gates these endpoints by role; the actor check
// here keeps the engine safe against any future caller that skips it.
// PRE: actor holds the admin role; target is confirmed or rejected
// POST: Appointment carries the target status with the opposite flag cleared;
// idempotent on repeat invocations; nothing is written on any failure
func ExecuteTransitionAppointment(ctx context.Context, input TransitionAppointmentInput, actor Actor, deps TransitionAppointmentDeps) (appointment.Appointment, error) {
	if !actor.IsAdmin() {
		slog.Warn("booking_event", "event", "transition_forbidden",
			"appointment_id", input.AppointmentID, "actor_id", actor.AccountID, "role", actor.Role)
		return appointment.Appointment{}, ErrAdminOnly
	}

	appt, err := deps.AppointmentStore.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return appointment.Appointment{}, ErrAppointmentNotFound
	}

	if err := appt.Transition(input.Target); err != nil {
		return appointment.Appointment{}, err
	}

	if err := deps.AppointmentStore.Save(ctx, appt); err != nil {
		return appointment.Appointment{}, err
	}

	slog.Info("booking_event", "event", "appointment_decided",
		"appointment_id", appt.ID, "status", appt.Status, "actor_id", actor.AccountID)

	return appt, nil
}
