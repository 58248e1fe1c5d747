package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/domain"
)

func seeded(t *testing.T) *Hub {
	t.Helper()
	h := New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.Seed([]domain.Notification{
		{ID: "n1", Type: "customer", Title: "New customer", CreatedAt: base},
		{ID: "n2", Type: "contract", Title: "Contract signed", CreatedAt: base.Add(time.Minute)},
		{ID: "n3", Type: "task", Title: "Task overdue", CreatedAt: base.Add(2 * time.Minute), IsRead: true},
	})
	return h
}

// drain receives everything currently buffered on the channel.
func drain(ch <-chan domain.Summary) []domain.Summary {
	var got []domain.Summary
	for {
		select {
		case s := <-ch:
			got = append(got, s)
		default:
			return got
		}
	}
}

func TestHub_Summary(t *testing.T) {
	h := seeded(t)
	sum := h.Summary()
	assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, sum)
	assert.Equal(t, sum.Total-sum.Unread, sum.Read)
}

func TestHub_List_OrderingAndFilters(t *testing.T) {
	h := seeded(t)

	items, total, sum := h.List(FilterAll, 1, 10)
	require.Len(t, items, 3)
	assert.Equal(t, 3, total)
	assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, sum)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt), "items must be newest first")
	}

	items, total, _ = h.List(FilterUnread, 1, 10)
	assert.Equal(t, 2, total)
	for _, n := range items {
		assert.False(t, n.IsRead)
	}

	items, total, _ = h.List(FilterRead, 1, 10)
	assert.Equal(t, 1, total)
	for _, n := range items {
		assert.True(t, n.IsRead)
	}
}

func TestHub_List_UnknownFilterBehavesAsAll(t *testing.T) {
	h := seeded(t)
	_, total, _ := h.List("bogus", 1, 10)
	assert.Equal(t, 3, total)
}

func TestHub_List_Pagination(t *testing.T) {
	h := New()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var notes []domain.Notification
	for i := 0; i < 5; i++ {
		notes = append(notes, domain.Notification{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	h.Seed(notes)

	seen := map[string]bool{}
	sizes := []int{}
	for page := 1; page <= 3; page++ {
		items, total, _ := h.List(FilterAll, page, 2)
		assert.Equal(t, 5, total)
		sizes = append(sizes, len(items))
		for _, n := range items {
			assert.False(t, seen[n.ID], "pages must be disjoint")
			seen[n.ID] = true
		}
	}
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Len(t, seen, 5)
}

// The summary is computed over the whole set even when the active filter
// matches nothing, so the badge count never collapses to zero on an empty
// filtered view.
func TestHub_List_EmptyFilterStillReportsGlobalSummary(t *testing.T) {
	h := New()
	h.Seed([]domain.Notification{
		{ID: "n1", CreatedAt: time.Now(), IsRead: true},
	})
	items, total, sum := h.List(FilterUnread, 1, 10)
	assert.Empty(t, items)
	assert.Equal(t, 0, total)
	assert.Equal(t, domain.Summary{Total: 1, Unread: 0, Read: 1}, sum)
}

func TestHub_MarkReadUnread(t *testing.T) {
	h := seeded(t)

	assert.True(t, h.MarkRead("n1"))
	assert.True(t, h.MarkRead("n1"), "marking read twice still succeeds")
	_, total, _ := h.List(FilterUnread, 1, 10)
	assert.Equal(t, 1, total)

	assert.True(t, h.MarkUnread("n3"))
	assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, h.Summary())
}

func TestHub_NotFoundLeavesStateUnchanged(t *testing.T) {
	h := seeded(t)
	before := h.Summary()

	assert.False(t, h.MarkRead("nonexistent"))
	assert.False(t, h.MarkUnread("nonexistent"))
	assert.False(t, h.Delete("nonexistent"))

	assert.Equal(t, before, h.Summary())
	_, total, _ := h.List(FilterAll, 1, 10)
	assert.Equal(t, 3, total)
}

func TestHub_Delete(t *testing.T) {
	h := seeded(t)
	assert.True(t, h.Delete("n2"))
	assert.False(t, h.Delete("n2"))
	assert.Equal(t, domain.Summary{Total: 2, Unread: 1, Read: 1}, h.Summary())
}

func TestHub_Publish_UniqueIDs(t *testing.T) {
	h := New()
	ids := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := h.Publish("task", "t", "d")
		assert.False(t, ids[n.ID])
		ids[n.ID] = true
		assert.False(t, n.IsRead)
	}
	assert.Equal(t, domain.Summary{Total: 100, Unread: 100, Read: 0}, h.Summary())
}

func TestHub_Subscribe_InitialSnapshot(t *testing.T) {
	h := seeded(t)
	id, ch := h.Subscribe()
	defer h.Unsubscribe(id)

	select {
	case sum := <-ch:
		assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, sum)
	default:
		t.Fatal("expected an immediate summary snapshot")
	}
}

func TestHub_BroadcastOnMutation(t *testing.T) {
	h := seeded(t)
	id, ch := h.Subscribe()
	defer h.Unsubscribe(id)
	drain(ch) // discard the snapshot

	require.True(t, h.MarkRead("n1"))
	got := drain(ch)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Summary{Total: 3, Unread: 1, Read: 2}, got[0])

	// a miss must not push anything
	h.MarkRead("nonexistent")
	assert.Empty(t, drain(ch))
}

func TestHub_MarkAllRead_AlwaysBroadcasts(t *testing.T) {
	h := seeded(t)
	h.MarkAllRead()
	assert.Equal(t, domain.Summary{Total: 3, Unread: 0, Read: 3}, h.Summary())

	id, ch := h.Subscribe()
	defer h.Unsubscribe(id)
	drain(ch)

	// everything is already read; the broadcast still happens
	h.MarkAllRead()
	got := drain(ch)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Summary{Total: 3, Unread: 0, Read: 3}, got[0])
}

func TestHub_Unsubscribe_Cleanup(t *testing.T) {
	h := seeded(t)
	id, ch := h.Subscribe()
	drain(ch)

	h.Unsubscribe(id)
	assert.NotPanics(t, func() { h.Unsubscribe(id) })
	assert.NotPanics(t, func() { h.Unsubscribe("unknown") })

	// broadcasts after unsubscribe never reach the closed channel
	assert.NotPanics(t, func() { h.MarkAllRead() })
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_StalledSubscriberReceivesLatestSummary(t *testing.T) {
	h := seeded(t)
	id, ch := h.Subscribe()
	defer h.Unsubscribe(id)

	// the undrained snapshot must not shadow newer state
	require.True(t, h.MarkRead("n1"))
	require.True(t, h.MarkRead("n2"))

	got := <-ch
	assert.Equal(t, domain.Summary{Total: 3, Unread: 0, Read: 3}, got)
	assert.Equal(t, h.Summary(), got)
	assert.Empty(t, drain(ch))
}

func TestHub_SlowSubscriberNeverBlocksMutations(t *testing.T) {
	h := seeded(t)
	id, _ := h.Subscribe() // never consumed; buffer stays full
	defer h.Unsubscribe(id)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			h.MarkAllRead()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a stalled subscriber")
	}
}

func TestHub_EndToEnd(t *testing.T) {
	h := New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.Seed([]domain.Notification{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Minute)},
		{ID: "c", CreatedAt: base.Add(2 * time.Minute), IsRead: true},
	})

	id, ch := h.Subscribe()
	defer h.Unsubscribe(id)

	items, total, sum := h.List(FilterAll, 1, 10)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, total)
	assert.Equal(t, domain.Summary{Total: 3, Unread: 2, Read: 1}, sum)

	first := <-ch
	assert.Equal(t, 2, first.Unread)

	require.True(t, h.MarkRead("a"))
	_, total, _ = h.List(FilterUnread, 1, 10)
	assert.Equal(t, 1, total)

	second := <-ch
	assert.Equal(t, 1, second.Unread)
	assert.Empty(t, drain(ch))
}
