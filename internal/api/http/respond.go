package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// pagination reads page/pageSize query params with the defaults and bounds
// used across all list endpoints: page floors at 1, pageSize defaults to 10
// and is clamped to [1,50].
func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 1 {
			page = int32(v)
		}
	}

	pageSize := int32(10)
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			switch {
			case v < 1:
				pageSize = 1
			case v > 50:
				pageSize = 50
			default:
				pageSize = int32(v)
			}
		}
	}
	return page, pageSize
}
