package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fitstudio/internal/adapters/http/middleware"
	"fitstudio/internal/application/orchestrators"
	"fitstudio/internal/application/projections"
	accountDomain "fitstudio/internal/domain/account"
	appointmentDomain "fitstudio/internal/domain/appointment"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"isAdmin":      func() bool { return role == accountDomain.RoleAdmin },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"fmtWhen": func(t time.Time) string {
			return t.Format("Mon 02 Jan 2006 15:04")
		},
		"statusBadge": func(status string) string {
			switch status {
			case appointmentDomain.StatusConfirmed:
				return "badge-confirmed"
			case appointmentDomain.StatusRejected:
				return "badge-rejected"
			default:
				return "badge-pending"
			}
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// registerRoutes wires every route onto the mux. Auth and role gates are
// applied here, never inside handlers.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/logout", handleLogout)

	mux.Handle("/appointments", middleware.RequireAuth(http.HandlerFunc(handleMyAppointments)))
	mux.Handle("/appointments/booking", middleware.RequireAuth(http.HandlerFunc(handleBookAppointment)))
	mux.Handle("/appointments/cancel", middleware.RequireAuth(http.HandlerFunc(handleCancelAppointment)))
	mux.Handle("/advice", middleware.RequireAuth(http.HandlerFunc(handleAdvice)))

	adminOnly := middleware.RequireRole(accountDomain.RoleAdmin)
	mux.Handle("/admin/appointments", adminOnly(http.HandlerFunc(handleAdminAppointments)))
	mux.Handle("/admin/appointments/status", adminOnly(http.HandlerFunc(handleAdminAppointmentStatus)))
	mux.Handle("/admin/services", adminOnly(http.HandlerFunc(handleAdminServices)))
	mux.Handle("/admin/services/delete", adminOnly(http.HandlerFunc(handleAdminServiceDelete)))
	mux.Handle("/admin/trainers", adminOnly(http.HandlerFunc(handleAdminTrainers)))
	mux.Handle("/admin/trainers/delete", adminOnly(http.HandlerFunc(handleAdminTrainerDelete)))
	mux.Handle("/admin/perf", adminOnly(http.HandlerFunc(handleAdminPerf)))

	mux.HandleFunc("/api/trainers", handleAPITrainers)
	mux.HandleFunc("/api/trainers/", handleAPITrainerByID)
}

// handleHome handles GET / — the public landing page with the service catalog.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetBookingChoices(r.Context(), projections.GetBookingChoicesDeps{
		ServiceStore: stores.ServiceStore,
		TrainerStore: stores.TrainerStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"Services": result.Services,
		"Trainers": result.Trainers,
	})
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/appointments", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}
		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)

		if result.Role == accountDomain.RoleAdmin {
			http.Redirect(w, r, "/admin/appointments", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleRegister handles GET (form) and POST (create account) for /register.
// Accounts created here always get the member role.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/appointments", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "register.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.CreateAccountInput{
			Email:     strings.TrimSpace(r.FormValue("Email")),
			Password:  r.FormValue("Password"),
			FirstName: strings.TrimSpace(r.FormValue("FirstName")),
			LastName:  strings.TrimSpace(r.FormValue("LastName")),
		}
		deps := orchestrators.CreateAccountDeps{
			AccountStore: stores.AccountStore,
		}

		accountID, err := orchestrators.ExecuteCreateAccount(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "register.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
				"Email":     input.Email,
				"FirstName": input.FirstName,
				"LastName":  input.LastName,
			})
			return
		}

		// Log the new member straight in.
		token, err := sessions.Create(accountID, input.Email, accountDomain.RoleMember)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie("fitstudio_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleMyAppointments handles GET /appointments — the member's own bookings,
// newest first.
func handleMyAppointments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, _ := middleware.GetSessionFromContext(r.Context())

	result, err := projections.QueryGetMyAppointments(r.Context(), session.AccountID, projections.GetMyAppointmentsDeps{
		AppointmentStore: stores.AppointmentStore,
		ServiceStore:     stores.ServiceStore,
		TrainerStore:     stores.TrainerStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		encodeJSON(w, result.Appointments)
		return
	}

	renderTemplate(w, r, "my_appointments.html", map[string]any{
		"Appointments": result.Appointments,
		"CSRFToken":    csrf.Token(r),
	})
}

// handleBookAppointment handles GET (form) and POST (create) for
// /appointments/booking. A serviceId query parameter pre-selects that
// service in the form.
func handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := middleware.GetSessionFromContext(ctx)

	choicesDeps := projections.GetBookingChoicesDeps{
		ServiceStore: stores.ServiceStore,
		TrainerStore: stores.TrainerStore,
	}

	if r.Method == "GET" {
		choices, err := projections.QueryGetBookingChoices(ctx, choicesDeps)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "book_appointment.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Services":  choices.Services,
			"Trainers":  choices.Trainers,
			"ServiceID": r.URL.Query().Get("serviceId"),
			"TrainerID": "",
			"Date":      "",
			"Time":      "",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.BookAppointmentInput{
			MemberID:  session.AccountID,
			ServiceID: r.FormValue("ServiceID"),
			TrainerID: r.FormValue("TrainerID"),
			Date:      r.FormValue("Date"),
			Time:      r.FormValue("Time"),
		}
		deps := orchestrators.BookAppointmentDeps{
			ServiceStore:     stores.ServiceStore,
			TrainerStore:     stores.TrainerStore,
			AppointmentStore: stores.AppointmentStore,
		}

		_, err := orchestrators.ExecuteBookAppointment(ctx, input, deps)
		if err != nil {
			// Re-populate the form so the member can correct and resubmit.
			choices, cerr := projections.QueryGetBookingChoices(ctx, choicesDeps)
			if cerr != nil {
				internalError(w, cerr)
				return
			}
			renderTemplate(w, r, "book_appointment.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Services":  choices.Services,
				"Trainers":  choices.Trainers,
				"Error":     err.Error(),
				"ServiceID": input.ServiceID,
				"TrainerID": input.TrainerID,
				"Date":      input.Date,
				"Time":      input.Time,
			})
			return
		}

		http.Redirect(w, r, "/appointments", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleCancelAppointment handles POST /appointments/cancel. Only the owner
// may cancel; the appointment lands in the rejected state.
func handleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	session, _ := middleware.GetSessionFromContext(r.Context())

	input := orchestrators.CancelAppointmentInput{
		AppointmentID:      r.FormValue("AppointmentID"),
		RequestingMemberID: session.AccountID,
	}
	deps := orchestrators.CancelAppointmentDeps{
		AppointmentStore: stores.AppointmentStore,
	}

	_, err := orchestrators.ExecuteCancelAppointment(r.Context(), input, deps)
	if err == orchestrators.ErrNotAppointmentOwner {
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

	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}

// encodeJSON writes v as a JSON response.
func encodeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}
