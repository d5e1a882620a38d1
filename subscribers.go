package zoom

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Subscriber is told about every zoom index reached during a smooth zoom.
// final is set on the last notification of a transition. Errors are logged
// and otherwise ignored. Notifications are sent without the controller lock
// held, so a subscriber may call back into the controller.
type Subscriber interface {
	ZoomChanged(index int, final bool) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(index int, final bool) error

func (f SubscriberFunc) ZoomChanged(index int, final bool) error {
	return f(index, final)
}

type subscription struct {
	id  uuid.UUID
	sub Subscriber
}

// subscribers has its own lock, separate from the controller's.
type subscribers struct {
	mu   sync.RWMutex
	list []subscription
}

func (s *subscribers) add(sub Subscriber) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.list = append(s.list, subscription{id: id, sub: sub})
	s.mu.Unlock()
	return id
}

func (s *subscribers) remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.list {
		if entry.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSubscriberNotFound, id)
}

func (s *subscribers) notify(logger *slog.Logger, index int, final bool) {
	s.mu.RLock()
	list := make([]subscription, len(s.list))
	copy(list, s.list)
	s.mu.RUnlock()

	for _, entry := range list {
		if err := safeNotify(entry.sub, index, final); err != nil {
			logger.Warn("zoom: subscriber failed",
				"subscriber", entry.id,
				"index", index,
				"final", final,
				"error", err)
		}
	}
}

func safeNotify(sub Subscriber, index int, final bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	return sub.ZoomChanged(index, final)
}
