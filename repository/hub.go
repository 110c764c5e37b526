package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// Subscription is a live-update feed for one user's document. C is closed
// when the subscription is cancelled or the store shuts down.
type Subscription struct {
	// ID identifies this subscriber so its own writes can be skipped.
	ID string
	C  <-chan models.Document

	cancel func()
}

// Cancel stops the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.cancel()
}

// hub fans merged documents out to per-user subscribers. Both document
// store implementations embed one.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[string]chan models.Document
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[string]chan models.Document)}
}

func (h *hub) subscribe(userID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan models.Document, 8)
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[string]chan models.Document)
	}
	h.subs[userID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[userID][id]; ok {
				delete(h.subs[userID], id)
				close(c)
			}
		})
	}

	return &Subscription{ID: id, C: ch, cancel: cancel}
}

// publish delivers doc to every subscriber for userID except origin.
// Slow subscribers are skipped rather than blocked: snapshots are
// last-writer-wins, so a dropped intermediate snapshot is superseded by
// the next one anyway.
func (h *hub) publish(userID string, doc models.Document, origin string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs[userID] {
		if id == origin {
			continue
		}
		select {
		case ch <- doc:
		default:
		}
	}
}

// closeAll cancels every subscription.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, subs := range h.subs {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(h.subs, userID)
	}
}
