package projections

import (
	"context"
	"time"

	"fitstudio/internal/adapters/storage/trainer"
)

// MyAppointment represents one row of a member's appointment list, with the
// catalog names resolved for display.
type MyAppointment struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"serviceName"`
	TrainerName string    `json:"trainerName"`
	StartsAt    time.Time `json:"startsAt"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
}

// GetMyAppointmentsResult carries the query result.
type GetMyAppointmentsResult struct {
	Appointments []MyAppointment
}

// GetMyAppointmentsDeps holds dependencies for GetMyAppointments.
type GetMyAppointmentsDeps struct {
	AppointmentStore AppointmentStore
	ServiceStore     ServiceStore
	TrainerStore     TrainerStore
}

// QueryGetMyAppointments retrieves a member's own appointments, newest first.
// An appointment whose service or trainer has since been deleted still lists
// with a placeholder name; the snapshotted price is always shown.
// PRE: memberID is the authenticated caller's account id
// POST: Returns only rows owned by memberID
func QueryGetMyAppointments(ctx context.Context, memberID string, deps GetMyAppointmentsDeps) (GetMyAppointmentsResult, error) {
	appts, err := deps.AppointmentStore.ListByMember(ctx, memberID)
	if err != nil {
		return GetMyAppointmentsResult{}, err
	}

	services, err := deps.ServiceStore.List(ctx)
	if err != nil {
		return GetMyAppointmentsResult{}, err
	}
	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	trainers, err := deps.TrainerStore.List(ctx, trainer.ListFilter{})
	if err != nil {
		return GetMyAppointmentsResult{}, err
	}
	trainerNames := make(map[string]string, len(trainers))
	for _, tr := range trainers {
		trainerNames[tr.ID] = tr.FullName
	}

	rows := make([]MyAppointment, 0, len(appts))
	for _, a := range appts {
		row := MyAppointment{
			ID:          a.ID,
			ServiceName: serviceNames[a.ServiceID],
			TrainerName: trainerNames[a.TrainerID],
			StartsAt:    a.StartsAt,
			Price:       a.Price,
			Status:      a.Status,
		}
		if row.ServiceName == "" {
			row.ServiceName = "(removed service)"
		}
		if row.TrainerName == "" {
			row.TrainerName = "(former trainer)"
		}
		rows = append(rows, row)
	}

	return GetMyAppointmentsResult{Appointments: rows}, nil
}
