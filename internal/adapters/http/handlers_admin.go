package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"

	"fitstudio/internal/adapters/http/middleware"
	"fitstudio/internal/adapters/http/perf"
	trainerStore "fitstudio/internal/adapters/storage/trainer"
	"fitstudio/internal/application/orchestrators"
	"fitstudio/internal/application/projections"
	appointmentDomain "fitstudio/internal/domain/appointment"
)

// adminActor builds the explicit actor passed to decision orchestrators from
// the request session.
func adminActor(r *http.Request) orchestrators.Actor {
	session, _ := middleware.GetSessionFromContext(r.Context())
	return orchestrators.Actor{AccountID: session.AccountID, Role: session.Role}
}

// handleAdminAppointments handles GET /admin/appointments, the full list
// joined to member, trainer and service names.
func handleAdminAppointments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetAdminAppointments(r.Context(), projections.GetAdminAppointmentsDeps{
		AppointmentStore: stores.AppointmentStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin_appointments.html", map[string]any{
		"Appointments": result.Appointments,
		"PendingCount": result.PendingCount,
		"CSRFToken":    csrf.Token(r),
	})
}

// handleAdminAppointmentStatus handles POST /admin/appointments/status.
// The form posts Status=approve or Status=cancel.
func handleAdminAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	var target string
	switch r.FormValue("Status") {
	case "approve":
		target = appointmentDomain.StatusConfirmed
	case "cancel":
		target = appointmentDomain.StatusRejected
	default:
		http.Error(w, "Status must be approve or cancel", http.StatusBadRequest)
		return
	}

	input := orchestrators.TransitionAppointmentInput{
		AppointmentID: r.FormValue("AppointmentID"),
		Target:        target,
	}
	deps := orchestrators.TransitionAppointmentDeps{
		AppointmentStore: stores.AppointmentStore,
	}

	_, err := orchestrators.ExecuteTransitionAppointment(r.Context(), input, adminActor(r), deps)
	if err == orchestrators.ErrAdminOnly {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err == orchestrators.ErrAppointmentNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/admin/appointments", http.StatusSeeOther)
}

// formUpload extracts an optional multipart file field into an orchestrator
// upload. A missing file is not an error.
func formUpload(r *http.Request, field string) (*orchestrators.Upload, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &orchestrators.Upload{File: file, Name: header.Filename}, nil
}

// maxUploadBytes caps admin image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// handleAdminServices handles GET (list) and POST (create, multipart) for
// /admin/services.
func handleAdminServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		services, err := stores.ServiceStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_services.html", map[string]any{
			"Services":  services,
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		duration, _ := strconv.Atoi(r.FormValue("DurationMinutes"))
		price, _ := strconv.Atoi(r.FormValue("Price"))
		upload, err := formUpload(r, "Image")
		if err != nil {
			http.Error(w, "Invalid image upload", http.StatusBadRequest)
			return
		}

		input := orchestrators.CreateServiceInput{
			Name:            r.FormValue("Name"),
			Description:     r.FormValue("Description"),
			DurationMinutes: duration,
			Price:           price,
			Image:           upload,
		}
		deps := orchestrators.CatalogDeps{
			ServiceStore: stores.ServiceStore,
			TrainerStore: stores.TrainerStore,
			Images:       imageStore,
		}

		if _, err := orchestrators.ExecuteCreateService(ctx, input, deps); err != nil {
			services, lerr := stores.ServiceStore.List(ctx)
			if lerr != nil {
				internalError(w, lerr)
				return
			}
			renderTemplate(w, r, "admin_services.html", map[string]any{
				"Services":  services,
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminServiceDelete handles POST /admin/services/delete.
func handleAdminServiceDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	deps := orchestrators.CatalogDeps{
		ServiceStore: stores.ServiceStore,
		TrainerStore: stores.TrainerStore,
		Images:       imageStore,
	}
	if err := orchestrators.ExecuteDeleteService(r.Context(), r.FormValue("ServiceID"), deps); err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// handleAdminTrainers handles GET (list) and POST (create, multipart) for
// /admin/trainers.
func handleAdminTrainers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		trainers, err := stores.TrainerStore.List(ctx, trainerStore.ListFilter{})
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_trainers.html", map[string]any{
			"Trainers":  trainers,
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		upload, err := formUpload(r, "Image")
		if err != nil {
			http.Error(w, "Invalid image upload", http.StatusBadRequest)
			return
		}

		input := orchestrators.CreateTrainerInput{
			FullName:       r.FormValue("FullName"),
			Specialization: r.FormValue("Specialization"),
			WorkStart:      r.FormValue("WorkStart"),
			WorkEnd:        r.FormValue("WorkEnd"),
			Image:          upload,
		}
		deps := orchestrators.CatalogDeps{
			ServiceStore: stores.ServiceStore,
			TrainerStore: stores.TrainerStore,
			Images:       imageStore,
		}

		if _, err := orchestrators.ExecuteCreateTrainer(ctx, input, deps); err != nil {
			trainers, lerr := stores.TrainerStore.List(ctx, trainerStore.ListFilter{})
			if lerr != nil {
				internalError(w, lerr)
				return
			}
			renderTemplate(w, r, "admin_trainers.html", map[string]any{
				"Trainers":  trainers,
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		http.Redirect(w, r, "/admin/trainers", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminTrainerDelete handles POST /admin/trainers/delete.
func handleAdminTrainerDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	deps := orchestrators.CatalogDeps{
		ServiceStore: stores.ServiceStore,
		TrainerStore: stores.TrainerStore,
		Images:       imageStore,
	}
	if err := orchestrators.ExecuteDeleteTrainer(r.Context(), r.FormValue("TrainerID"), deps); err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/admin/trainers", http.StatusSeeOther)
}

// handleAdminPerf handles GET /admin/perf — a JSON snapshot of recent request
// and query timings.
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		encodeJSON(w, perf.Snapshot{})
		return
	}

	window := 15 * time.Minute
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 240 {
			window = time.Duration(n) * time.Minute
		}
	}

	encodeJSON(w, perfCollector.Snapshot(time.Now().Add(-window), 10))
}
