package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"crm-backend/internal/domain"
	"crm-backend/internal/hub"
)

func seededHub() *hub.Hub {
	h := hub.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.Seed([]domain.Notification{
		{ID: "n1", Type: "contract", Title: "Contract signed", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "n2", Type: "task", Title: "Task due soon", CreatedAt: base.Add(time.Minute)},
		{ID: "n3", Type: "campaign", Title: "Campaign launched", CreatedAt: base, IsRead: true},
	})
	return h
}

func notificationRouter(h *hub.Hub) *mux.Router {
	handler := NewNotificationHandler(h)
	r := mux.NewRouter()
	r.HandleFunc("/notifications", handler.List).Methods(http.MethodGet)
	r.HandleFunc("/notifications/mark-all-read", handler.MarkAllRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/stream", handler.Stream).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", handler.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{id}/unread", handler.MarkUnread).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{id}", handler.Delete).Methods(http.MethodDelete)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	t.Run("DefaultReturnsEverything", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Items   []map[string]any `json:"items"`
			Total   int              `json:"total"`
			Summary map[string]int   `json:"summary"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Total)
		assert.Len(t, body.Items, 3)
		assert.Equal(t, "n1", body.Items[0]["id"])
		assert.Equal(t, "n2", body.Items[1]["id"])
		assert.Equal(t, "n3", body.Items[2]["id"])
		assert.Contains(t, body.Items[0], "createdAt")
		assert.Contains(t, body.Items[0], "isRead")
		assert.Contains(t, body.Items[0], "description")
		assert.Equal(t, map[string]int{"total": 3, "unread": 2, "read": 1}, body.Summary)
	})

	t.Run("FilterPagesButSummaryStaysGlobal", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?filter=unread&page=2&pageSize=1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Items   []domain.Notification `json:"items"`
			Total   int                   `json:"total"`
			Summary domain.Summary        `json:"summary"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Total)
		assert.Len(t, body.Items, 1)
		assert.Equal(t, "n2", body.Items[0].ID)
		assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, body.Summary)
	})

	t.Run("PageZeroFloorsToFirstPage", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?page=0&pageSize=2", nil))

		var body struct {
			Items []domain.Notification `json:"items"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Items, 2)
		assert.Equal(t, "n1", body.Items[0].ID)
	})

	t.Run("PageSizeClampedTo50", func(t *testing.T) {
		h := hub.New()
		for i := 0; i < 60; i++ {
			h.Publish("task", fmt.Sprintf("Task %d", i), "")
		}
		r := notificationRouter(h)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?pageSize=500", nil))

		var body struct {
			Items []domain.Notification `json:"items"`
			Total int                   `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 60, body.Total)
		assert.Len(t, body.Items, 50)
	})
}

func TestNotificationHandler_Mutations(t *testing.T) {
	t.Run("MarkRead", func(t *testing.T) {
		h := seededHub()
		r := notificationRouter(h)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/n1/read", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.Summary{Total: 3, Unread: 1, Read: 2}, h.Summary())
	})

	t.Run("MarkReadUnknownID", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/missing/read", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"notification not found"}`, rec.Body.String())
	})

	t.Run("MarkUnreadUnknownID", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/missing/unread", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MarkAllRead", func(t *testing.T) {
		h := seededHub()
		r := notificationRouter(h)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/mark-all-read", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.Summary{Total: 3, Unread: 0, Read: 3}, h.Summary())
	})

	t.Run("Delete", func(t *testing.T) {
		h := seededHub()
		r := notificationRouter(h)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/notifications/n2", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, domain.Summary{Total: 2, Unread: 1, Read: 1}, h.Summary())
	})

	t.Run("DeleteUnknownID", func(t *testing.T) {
		r := notificationRouter(seededHub())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/notifications/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func readSummaryEvent(t *testing.T, r *bufio.Reader) domain.Summary {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("reading event stream: %v", err)
		}
		line = strings.TrimSuffix(line, "\n")
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var sum domain.Summary
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &sum); err != nil {
			t.Fatalf("decoding summary event %q: %v", line, err)
		}
		return sum
	}
}

func TestNotificationHandler_Stream(t *testing.T) {
	h := seededHub()
	srv := httptest.NewServer(notificationRouter(h))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/notifications/stream", nil)
	assert.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	// The snapshot arrives without any mutation.
	assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, readSummaryEvent(t, reader))

	h.MarkAllRead()
	assert.Equal(t, domain.Summary{Total: 3, Unread: 0, Read: 3}, readSummaryEvent(t, reader))

	h.Publish("customer", "New customer", "Acme Corp entered the pipeline")
	assert.Equal(t, domain.Summary{Total: 4, Unread: 1, Read: 3}, readSummaryEvent(t, reader))

	cancel()
	assert.Eventually(t, func() bool {
		return h.SubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond, "subscription should be released on disconnect")
}

func TestNotificationHandler_Stream_EndsOnServerShutdown(t *testing.T) {
	h := seededHub()
	srv := httptest.NewUnstartedServer(notificationRouter(h))

	// mirror the server wiring: shutdown cancels the base context so
	// long-lived streams end instead of pinning Shutdown until its timeout
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()
	srv.Config.BaseContext = func(net.Listener) context.Context { return baseCtx }
	srv.Config.RegisterOnShutdown(cancelStreams)
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/notifications/stream")
	assert.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	readSummaryEvent(t, reader)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, srv.Config.Shutdown(shutdownCtx))

	assert.Eventually(t, func() bool {
		return h.SubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond, "subscription should be released on shutdown")
}
