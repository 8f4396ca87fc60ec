package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"fitstudio/internal/application/orchestrators"
)

// handleAdvice handles GET (form) and POST (generate) for /advice. The result
// is rendered as markdown; a provider failure renders as a plain message in
// the same slot.
func handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "advice.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		age, _ := strconv.Atoi(r.FormValue("Age"))
		height, _ := strconv.Atoi(r.FormValue("Height"))
		weight, _ := strconv.Atoi(r.FormValue("Weight"))

		input := orchestrators.GetAdviceInput{
			Age:    age,
			Height: height,
			Weight: weight,
			Gender: r.FormValue("Gender"),
			Goal:   r.FormValue("Goal"),
		}
		deps := orchestrators.GetAdviceDeps{Generator: adviceGenerator}

		text, err := orchestrators.ExecuteGetAdvice(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "advice.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
				"Age":       r.FormValue("Age"),
				"Height":    r.FormValue("Height"),
				"Weight":    r.FormValue("Weight"),
				"Gender":    input.Gender,
				"Goal":      input.Goal,
			})
			return
		}

		renderTemplate(w, r, "advice.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Advice":    text,
			"Age":       r.FormValue("Age"),
			"Height":    r.FormValue("Height"),
			"Weight":    r.FormValue("Weight"),
			"Gender":    input.Gender,
			"Goal":      input.Goal,
		})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
