package appointment_test

import (
	"testing"
	"time"

	"fitstudio/internal/domain/appointment"
)

func validAppointment() appointment.Appointment {
	return appointment.Appointment{
		ID:        "appt-1",
		MemberID:  "acct-1",
		TrainerID: "tr-1",
		ServiceID: "svc-1",
		StartsAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local),
		Price:     500,
		Status:    appointment.StatusPending,
		CreatedAt: time.Now(),
	}
}

// TestAppointment_Validate tests validation of Appointment.
func TestAppointment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*appointment.Appointment)
		wantErr error
	}{
		{name: "valid pending appointment", mutate: func(a *appointment.Appointment) {}},
		{name: "missing member", mutate: func(a *appointment.Appointment) { a.MemberID = "" }, wantErr: appointment.ErrMissingMember},
		{name: "missing trainer", mutate: func(a *appointment.Appointment) { a.TrainerID = "" }, wantErr: appointment.ErrMissingTrainer},
		{name: "missing service", mutate: func(a *appointment.Appointment) { a.ServiceID = "" }, wantErr: appointment.ErrMissingService},
		{name: "zero start", mutate: func(a *appointment.Appointment) { a.StartsAt = time.Time{} }, wantErr: appointment.ErrZeroStart},
		{name: "negative price", mutate: func(a *appointment.Appointment) { a.Price = -1 }, wantErr: appointment.ErrNegativePrice},
		{name: "bogus status", mutate: func(a *appointment.Appointment) { a.Status = "approved" }, wantErr: appointment.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAppointment()
			tt.mutate(&a)
			if err := a.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAppointment_Transition tests the admin-driven state machine.
func TestAppointment_Transition(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		a := validAppointment()
		if err := a.Transition(appointment.StatusConfirmed); err != nil {
			t.Fatalf("Transition() error = %v", err)
		}
		if a.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %q, want confirmed", a.Status)
		}
	})

	t.Run("rejected back to confirmed", func(t *testing.T) {
		a := validAppointment()
		a.Reject()
		if err := a.Transition(appointment.StatusConfirmed); err != nil {
			t.Fatalf("Transition() error = %v", err)
		}
		if a.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %q, want confirmed", a.Status)
		}
	})

	t.Run("confirmed back to rejected", func(t *testing.T) {
		a := validAppointment()
		a.Confirm()
		if err := a.Transition(appointment.StatusRejected); err != nil {
			t.Fatalf("Transition() error = %v", err)
		}
		if a.Status != appointment.StatusRejected {
			t.Errorf("Status = %q, want rejected", a.Status)
		}
	})

	t.Run("idempotent confirm", func(t *testing.T) {
		a := validAppointment()
		a.Confirm()
		a.Confirm()
		if a.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %q, want confirmed after double confirm", a.Status)
		}
	})

	t.Run("pending is not a transition target", func(t *testing.T) {
		a := validAppointment()
		a.Confirm()
		if err := a.Transition(appointment.StatusPending); err != appointment.ErrInvalidTarget {
			t.Errorf("Transition(pending) error = %v, want ErrInvalidTarget", err)
		}
		if a.Status != appointment.StatusConfirmed {
			t.Errorf("Status = %q, want confirmed unchanged", a.Status)
		}
	})
}

// TestAppointment_Flags tests the legacy flag-pair encoding. The internal
// enum must never yield both flags true.
func TestAppointment_Flags(t *testing.T) {
	a := validAppointment()

	confirmed, rejected := a.Flags()
	if confirmed || rejected {
		t.Errorf("pending Flags() = (%v, %v), want (false, false)", confirmed, rejected)
	}

	a.Confirm()
	confirmed, rejected = a.Flags()
	if !confirmed || rejected {
		t.Errorf("confirmed Flags() = (%v, %v), want (true, false)", confirmed, rejected)
	}

	a.Reject()
	confirmed, rejected = a.Flags()
	if confirmed || !rejected {
		t.Errorf("rejected Flags() = (%v, %v), want (false, true)", confirmed, rejected)
	}
}

// TestStatusFromFlags tests decoding of the stored boolean pair.
func TestStatusFromFlags(t *testing.T) {
	tests := []struct {
		name       string
		confirmed  bool
		rejected   bool
		wantStatus string
		wantErr    error
	}{
		{name: "neither flag is pending", wantStatus: appointment.StatusPending},
		{name: "confirmed flag", confirmed: true, wantStatus: appointment.StatusConfirmed},
		{name: "rejected flag", rejected: true, wantStatus: appointment.StatusRejected},
		{name: "both flags is invalid", confirmed: true, rejected: true, wantErr: appointment.ErrInvalidFlagPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := appointment.StatusFromFlags(tt.confirmed, tt.rejected)
			if err != tt.wantErr {
				t.Fatalf("StatusFromFlags() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.wantStatus {
				t.Errorf("StatusFromFlags() = %q, want %q", got, tt.wantStatus)
			}
		})
	}
}

// TestCombineDateTime tests composing the booking instant from separate form fields.
func TestCombineDateTime(t *testing.T) {
	t.Run("valid date and time", func(t *testing.T) {
		got, err := appointment.CombineDateTime("2025-06-01", "10:00")
		if err != nil {
			t.Fatalf("CombineDateTime() error = %v", err)
		}
		want := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("CombineDateTime() = %v, want %v", got, want)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if _, err := appointment.CombineDateTime("01/06/2025", "10:00"); err == nil {
			t.Error("CombineDateTime() expected error for invalid date")
		}
	})

	t.Run("invalid time", func(t *testing.T) {
		if _, err := appointment.CombineDateTime("2025-06-01", "10am"); err == nil {
			t.Error("CombineDateTime() expected error for invalid time")
		}
	})
}
