package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EventConnected      = "connected"
	EventLedgerUpdated  = "ledger_updated"
	EventHirePending    = "hire_pending"
	EventModeChanged    = "mode_changed"
	EventEstimateFailed = "estimate_failed"
	EventChatMessage    = "chat_message"
	EventSessionClosed  = "session_closed"
	EventBookingPaid    = "booking_paid"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Hub раздает события сессии всем SSE-подписчикам этой сессии.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
	buffer      int
}

// NewHub создает хаб для SSE-подписок.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan Event]struct{}),
		buffer:      16,
	}
}

// Subscribe подписывает клиента на события сессии и возвращает канал и функцию отписки.
func (h *Hub) Subscribe(sessionID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sessionID]
	if !ok {
		subs = make(map[chan Event]struct{})
		h.subscribers[sessionID] = subs
	}
	subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if subs, exists := h.subscribers[sessionID]; exists {
				if _, live := subs[ch]; live {
					delete(subs, ch)
					close(ch)
				}
				if len(subs) == 0 {
					delete(h.subscribers, sessionID)
				}
			}
		})
	}
}

// Publish отправляет событие подписчикам сессии. Медленные подписчики пропускают событие.
func (h *Hub) Publish(sessionID uuid.UUID, event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[sessionID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// CloseSession отправляет финальное событие и закрывает все каналы сессии.
func (h *Hub) CloseSession(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	closing := Event{Type: EventSessionClosed, Timestamp: time.Now().UTC()}
	for ch := range h.subscribers[sessionID] {
		select {
		case ch <- closing:
		default:
		}
		close(ch)
	}
	delete(h.subscribers, sessionID)
}

func (h *Hub) SubscriberCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[sessionID])
}
