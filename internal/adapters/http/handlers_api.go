package web

import (
	"net/http"
	"strings"

	"fitstudio/internal/application/projections"
)

// handleAPITrainers handles GET /api/trainers — the public trainer listing.
// The specialization query parameter filters by case-insensitive substring.
func handleAPITrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := projections.GetTrainersQuery{
		Specialization: r.URL.Query().Get("specialization"),
	}
	deps := projections.GetTrainersDeps{TrainerStore: stores.TrainerStore}

	views, err := projections.QueryGetTrainers(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	encodeJSON(w, views)
}

// handleAPITrainerByID handles GET /api/trainers/{id}.
func handleAPITrainerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/trainers/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	deps := projections.GetTrainersDeps{TrainerStore: stores.TrainerStore}
	view, found, err := projections.QueryGetTrainer(r.Context(), id, deps)
	if err != nil {
		internalError(w, err)
		return
	}
	if !found {
		http.Error(w, "trainer not found", http.StatusNotFound)
		return
	}

	encodeJSON(w, view)
}
