package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"crm-backend/internal/domain"
	"crm-backend/internal/hub"
	"crm-backend/internal/logger"
)

// NotificationHandler serves the notification list, mutations and the live
// summary stream, all backed by the in-memory hub.
type NotificationHandler struct {
	hub *hub.Hub
}

func NewNotificationHandler(h *hub.Hub) *NotificationHandler {
	return &NotificationHandler{hub: h}
}

type notificationListResponse struct {
	Items   []domain.Notification `json:"items"`
	Total   int                   `json:"total"`
	Summary domain.Summary        `json:"summary"`
}

// List handles GET /notifications?filter=&page=&pageSize=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = hub.FilterAll
	}
	page, pageSize := pagination(r)

	items, total, summary := h.hub.List(filter, int(page), int(pageSize))
	writeJSON(w, http.StatusOK, notificationListResponse{
		Items:   items,
		Total:   total,
		Summary: summary,
	})
}

// MarkRead handles POST /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.hub.MarkRead(id) {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MarkUnread handles POST /notifications/{id}/unread
func (h *NotificationHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.hub.MarkUnread(id) {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MarkAllRead handles POST /notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.hub.MarkAllRead()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /notifications/{id}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.hub.Delete(id) {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stream handles GET /notifications/stream as a server-sent-events feed.
// Each event's data payload is a JSON-encoded summary; the first event is
// pushed immediately on subscribe. The subscription is released when the
// client disconnects or the server shuts down.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	subID, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(subID)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case summary, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(summary)
			if err != nil {
				logger.Error("Failed to encode summary", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
