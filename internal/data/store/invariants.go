package store

import "fmt"

// CheckInvariants verifies the two engine-wide invariants: every showtime's
// seat sets partition its full seat range, and the derived index agrees
// exactly with the canonical showtime collection. A violation is a defect in
// the engine, never a runtime condition, so this only runs from tests.
func (s *Store) CheckInvariants() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.st.showtimes {
		if err := st.CheckPartition(); err != nil {
			return fmt.Errorf("showtime %s: %w", st.ID, err)
		}
	}

	for _, m := range s.st.movies {
		indexed := make(map[string]bool, len(s.st.movieShowtimes[m.ID]))
		for _, id := range s.st.movieShowtimes[m.ID] {
			if indexed[id] {
				return fmt.Errorf("movie %s: showtime %s indexed twice", m.ID, id)
			}
			indexed[id] = true
		}

		canonical := 0
		for _, st := range s.st.showtimes {
			if st.MovieID != m.ID {
				continue
			}
			canonical++
			if !indexed[st.ID] {
				return fmt.Errorf("movie %s: showtime %s missing from index", m.ID, st.ID)
			}
		}
		if canonical != len(indexed) {
			return fmt.Errorf("movie %s: index has %d entries, canonical has %d",
				m.ID, len(indexed), canonical)
		}
	}

	for _, st := range s.st.showtimes {
		if _, ok := s.st.movieShowtimes[st.MovieID]; !ok {
			return fmt.Errorf("showtime %s references movie %s with no index entry", st.ID, st.MovieID)
		}
	}
	return nil
}
