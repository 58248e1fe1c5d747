package hub

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/domain"
	"crm-backend/internal/logger"
)

// Filter values accepted by List. Anything else behaves as FilterAll.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterRead   = "read"
)

// subscriber owns one delivery channel. The channel has capacity 1 and a full
// buffer is overwritten with the newest summary: a stalled consumer misses
// intermediate states but always reads the latest one on its next receive.
type subscriber struct {
	mu     sync.Mutex
	ch     chan domain.Summary
	closed bool
}

func (s *subscriber) push(sum domain.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	// The mutex serializes pushers; the consumer only drains, so evicting
	// the buffered value and retrying always lands the new summary.
	for {
		select {
		case s.ch <- sum:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Hub owns the live notification set and fans summary updates out to stream
// subscribers. One instance per process, injected into handlers and jobs.
type Hub struct {
	mu            sync.Mutex
	notifications []domain.Notification

	subscribers sync.Map // subscription id -> *subscriber
}

func New() *Hub {
	return &Hub{}
}

// Seed replaces the live set. Called once at startup; does not broadcast.
func (h *Hub) Seed(notes []domain.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifications = append([]domain.Notification(nil), notes...)
}

// Publish adds a new unread notification and broadcasts the updated summary.
// This is the entry point for domain events (new customer, signed contract,
// due task) raised by services and scheduled jobs.
func (h *Hub) Publish(typ, title, description string) domain.Notification {
	n := domain.Notification{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	h.mu.Lock()
	h.notifications = append(h.notifications, n)
	sum := h.summaryLocked()
	h.mu.Unlock()

	logger.Debug("Notification published", "id", n.ID, "type", n.Type)
	h.broadcast(sum)
	return n
}

// List returns one page of notifications sorted by creation time descending,
// the total count after filtering, and the summary over the entire set.
func (h *Hub) List(filter string, page, pageSize int) ([]domain.Notification, int, domain.Summary) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	h.mu.Lock()
	all := append([]domain.Notification(nil), h.notifications...)
	sum := h.summaryLocked()
	h.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	filtered := all[:0]
	for _, n := range all {
		switch filter {
		case FilterUnread:
			if n.IsRead {
				continue
			}
		case FilterRead:
			if !n.IsRead {
				continue
			}
		}
		filtered = append(filtered, n)
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start >= total {
		return []domain.Notification{}, total, sum
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return filtered[start:end], total, sum
}

// MarkRead flips one notification to read. Returns false without
// broadcasting when the id is unknown.
func (h *Hub) MarkRead(id string) bool {
	return h.setRead(id, true)
}

// MarkUnread flips one notification back to unread.
func (h *Hub) MarkUnread(id string) bool {
	return h.setRead(id, false)
}

func (h *Hub) setRead(id string, read bool) bool {
	h.mu.Lock()
	found := false
	for i := range h.notifications {
		if h.notifications[i].ID == id {
			h.notifications[i].IsRead = read
			found = true
			break
		}
	}
	sum := h.summaryLocked()
	h.mu.Unlock()

	if !found {
		return false
	}
	h.broadcast(sum)
	return true
}

// MarkAllRead marks every notification read and broadcasts unconditionally,
// even when nothing changed. Clients use the push to refresh the badge, so a
// redundant summary is harmless.
func (h *Hub) MarkAllRead() {
	h.mu.Lock()
	for i := range h.notifications {
		h.notifications[i].IsRead = true
	}
	sum := h.summaryLocked()
	h.mu.Unlock()

	h.broadcast(sum)
}

// Delete removes the notification with the given id. Returns whether a
// removal occurred; broadcasts only on removal.
func (h *Hub) Delete(id string) bool {
	h.mu.Lock()
	removed := false
	for i := range h.notifications {
		if h.notifications[i].ID == id {
			h.notifications = append(h.notifications[:i], h.notifications[i+1:]...)
			removed = true
			break
		}
	}
	sum := h.summaryLocked()
	h.mu.Unlock()

	if !removed {
		return false
	}
	h.broadcast(sum)
	return true
}

// Subscribe registers a new delivery channel and immediately enqueues the
// current summary so a freshly connected client renders without waiting for
// the next mutation. The caller must Unsubscribe when done.
func (h *Hub) Subscribe() (string, <-chan domain.Summary) {
	id := uuid.NewString()
	sub := &subscriber{ch: make(chan domain.Summary, 1)}
	sub.push(h.Summary())
	h.subscribers.Store(id, sub)
	logger.Debug("Stream subscriber registered", "subscription_id", id)
	return id, sub.ch
}

// Unsubscribe removes and closes the subscriber's channel. Safe to call
// twice or with an unknown id.
func (h *Hub) Unsubscribe(id string) {
	v, ok := h.subscribers.LoadAndDelete(id)
	if !ok {
		return
	}
	v.(*subscriber).close()
	logger.Debug("Stream subscriber removed", "subscription_id", id)
}

// SubscriberCount reports how many stream subscribers are registered.
func (h *Hub) SubscriberCount() int {
	count := 0
	h.subscribers.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// Summary computes the aggregate counts over the live set.
func (h *Hub) Summary() domain.Summary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.summaryLocked()
}

func (h *Hub) summaryLocked() domain.Summary {
	sum := domain.Summary{Total: len(h.notifications)}
	for _, n := range h.notifications {
		if !n.IsRead {
			sum.Unread++
		}
	}
	sum.Read = sum.Total - sum.Unread
	return sum
}

// broadcast pushes the summary to every registered subscriber. Sends are
// best-effort; the notification lock is never held here.
func (h *Hub) broadcast(sum domain.Summary) {
	h.subscribers.Range(func(_, v any) bool {
		v.(*subscriber).push(sum)
		return true
	})
}
