package projections

import (
	"context"

	"fitstudio/internal/adapters/storage/appointment"
	domainAppointment "fitstudio/internal/domain/appointment"
)

// GetAdminAppointmentsResult carries the back-office appointment list.
type GetAdminAppointmentsResult struct {
	Appointments []appointment.AdminRow
	PendingCount int
}

// GetAdminAppointmentsDeps holds dependencies for GetAdminAppointments.
type GetAdminAppointmentsDeps struct {
	AppointmentStore AppointmentStore
}

// QueryGetAdminAppointments retrieves every appointment across all members
// with member, trainer, and service names resolved.
// PRE: caller is an administrator (enforced at the routing boundary)
func QueryGetAdminAppointments(ctx context.Context, deps GetAdminAppointmentsDeps) (GetAdminAppointmentsResult, error) {
	rows, err := deps.AppointmentStore.ListAll(ctx)
	if err != nil {
		return GetAdminAppointmentsResult{}, err
	}

	pending := 0
	for _, r := range rows {
		if r.Status == domainAppointment.StatusPending {
			pending++
		}
	}

	return GetAdminAppointmentsResult{Appointments: rows, PendingCount: pending}, nil
}
