package store

// Change notifications replace the ambient shared state of a typical UI
// context object: interested parties subscribe explicitly and receive events
// only for committed mutations.

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

const (
	CollectionMovies    = "movies"
	CollectionShowtimes = "showtimes"
	CollectionBookings  = "bookings"
)

type ChangeEvent struct {
	Action     Action `json:"action"`
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

const subscriberBuffer = 16

// Subscribe registers a listener for committed change events. The returned
// cancel function must be called to release the channel. A subscriber that
// falls behind misses events; the commit path never blocks on delivery.
func (s *Store) Subscribe() (<-chan ChangeEvent, func()) {
	ch := make(chan ChangeEvent, subscriberBuffer)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *Store) publish(events ...ChangeEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		for _, ev := range events {
			select {
			case ch <- ev:
			default:
				// subscriber is full, drop rather than stall the commit
			}
		}
	}
}
