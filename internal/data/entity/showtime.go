package entity

import (
	"fmt"
	"sort"
)

// DefaultTotalSeats is the seat count for a new showtime unless configured
// otherwise.
const DefaultTotalSeats = 50

// Showtime is the canonical seat inventory for one screening. SeatsAvailable
// and SeatsBooked always partition 1..TotalSeats.
type Showtime struct {
	ID             string `json:"id"`
	MovieID        string `json:"movieId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Theater        string `json:"theater"`
	TotalSeats     int    `json:"totalSeats"`
	SeatsAvailable []int  `json:"seatsAvailable"`
	SeatsBooked    []int  `json:"seatsBooked"`
}

// NewShowtime creates a showtime with the full seat range available.
func NewShowtime(id, movieID, date, timeOfDay, theater string, totalSeats int) *Showtime {
	if totalSeats <= 0 {
		totalSeats = DefaultTotalSeats
	}
	available := make([]int, totalSeats)
	for i := range available {
		available[i] = i + 1
	}
	return &Showtime{
		ID:             id,
		MovieID:        movieID,
		Date:           date,
		Time:           timeOfDay,
		Theater:        theater,
		TotalSeats:     totalSeats,
		SeatsAvailable: available,
		SeatsBooked:    []int{},
	}
}

func (s *Showtime) Clone() *Showtime {
	c := *s
	c.SeatsAvailable = append([]int(nil), s.SeatsAvailable...)
	c.SeatsBooked = append([]int(nil), s.SeatsBooked...)
	return &c
}

// Reserve moves the requested seats from available to booked. The request is
// rejected as a whole if any seat is out of range, duplicated, or already
// booked; on any error the showtime is left untouched.
func (s *Showtime) Reserve(seats []int) error {
	if len(seats) == 0 {
		return fmt.Errorf("no seats requested: %w", ErrValidation)
	}

	seen := make(map[int]bool, len(seats))
	for _, seat := range seats {
		if seat < 1 || seat > s.TotalSeats {
			return fmt.Errorf("seat %d out of range 1..%d: %w", seat, s.TotalSeats, ErrValidation)
		}
		if seen[seat] {
			return fmt.Errorf("duplicate seat %d in request: %w", seat, ErrValidation)
		}
		seen[seat] = true
	}

	booked := make(map[int]bool, len(s.SeatsBooked))
	for _, seat := range s.SeatsBooked {
		booked[seat] = true
	}

	var contested []int
	for _, seat := range seats {
		if booked[seat] {
			contested = append(contested, seat)
		}
	}
	if len(contested) > 0 {
		sort.Ints(contested)
		return &SeatConflictError{ShowtimeID: s.ID, Contested: contested}
	}

	// Commit: remove from available, add to booked.
	remaining := s.SeatsAvailable[:0]
	for _, seat := range s.SeatsAvailable {
		if !seen[seat] {
			remaining = append(remaining, seat)
		}
	}
	s.SeatsAvailable = remaining
	s.SeatsBooked = append(s.SeatsBooked, seats...)
	sort.Ints(s.SeatsBooked)
	return nil
}

// CheckPartition verifies that available and booked seats are disjoint and
// together cover 1..TotalSeats. A violation is an engine defect, so this is
// only called from tests.
func (s *Showtime) CheckPartition() error {
	seen := make(map[int]string, s.TotalSeats)
	for _, seat := range s.SeatsAvailable {
		seen[seat] = "available"
	}
	for _, seat := range s.SeatsBooked {
		if where, ok := seen[seat]; ok && where == "available" {
			return fmt.Errorf("seat %d is both available and booked", seat)
		}
		seen[seat] = "booked"
	}
	if len(seen) != s.TotalSeats || len(s.SeatsAvailable)+len(s.SeatsBooked) != s.TotalSeats {
		return fmt.Errorf("seat partition does not cover 1..%d", s.TotalSeats)
	}
	for seat := 1; seat <= s.TotalSeats; seat++ {
		if _, ok := seen[seat]; !ok {
			return fmt.Errorf("seat %d missing from partition", seat)
		}
	}
	return nil
}
