package attempts

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts attempt endpoints under /api/attempts on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/attempts", func(r chi.Router) {
		r.Get("/", handleRecent(store))
		r.Get("/{docID}", handleForDocument(store))
	})
}

func handleRecent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		list, err := store.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, list)
	}
}

func handleForDocument(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.ForDocument(r.Context(), chi.URLParam(r, "docID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, list)
	}
}

func writeJSON(w http.ResponseWriter, list []Attempt) {
	if list == nil {
		list = []Attempt{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
