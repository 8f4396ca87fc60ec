package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"fitstudio/internal/domain/appointment"
)

// CancelAppointmentInput carries input for member self-cancellation.
type CancelAppointmentInput struct {
	AppointmentID      string
	RequestingMemberID string
}

// CancelAppointmentDeps holds dependencies for CancelAppointment.
type CancelAppointmentDeps struct {
	AppointmentStore AppointmentStoreForTransition
}

// ErrNotAppointmentOwner is returned when a member tries to cancel someone
// else's appointment. This tightens the predecessor behavior of silently
// ignoring the mismatch: a cross-member cancellation attempt is worth
// surfacing, not swallowing.
var ErrNotAppointmentOwner = errors.New("this appointment belongs to another member")

// ExecuteCancelAppointment lets a member cancel their own appointment.
// Cancellation shares the rejected terminal state with an admin rejection;
// there is no distinct cancelled status.
// PRE: RequestingMemberID is the authenticated caller
// POST: The appointment is rejected if owned by the caller; on ownership
// mismatch nothing is written and a forbidden-class error is returned
func ExecuteCancelAppointment(ctx context.Context, input CancelAppointmentInput, deps CancelAppointmentDeps) (appointment.Appointment, error) {
	appt, err := deps.AppointmentStore.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return appointment.Appointment{}, ErrAppointmentNotFound
	}

	if appt.MemberID != input.RequestingMemberID {
		slog.Warn("booking_event", "event", "cancel_forbidden",
			"appointment_id", appt.ID, "owner_id", appt.MemberID, "requester_id", input.RequestingMemberID)
		return appointment.Appointment{}, ErrNotAppointmentOwner
	}

	appt.Reject()
	if err := deps.AppointmentStore.Save(ctx, appt); err != nil {
		return appointment.Appointment{}, err
	}

	slog.Info("booking_event", "event", "appointment_cancelled",
		"appointment_id", appt.ID, "member_id", appt.MemberID)

	return appt, nil
}
