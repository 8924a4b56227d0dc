package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jlyeo/sbiltbot/internal/db"
)


func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// Protected handlers
func (a *API) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.svc.Sessions())
}

func (a *API) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channelID := vars["channel_id"]

	if a.db == nil {
		// History is disabled without a database; serve an empty list so
		// callers don't have to special-case the deployment mode.
		writeJSON(w, []db.Settlement{})
		return
	}

	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	settlements, err := a.db.ListSettlements(context.Background(), channelID, limit)
	if err != nil {
		http.Error(w, "failed to list settlements", http.StatusInternalServerError)
		return
	}
	if settlements == nil {
		settlements = []db.Settlement{}
	}
	writeJSON(w, settlements)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
