package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error taxonomy shared by the store and the service layer. Handlers map
// these onto HTTP status codes with errors.Is / errors.As.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// SeatConflictError reports a reservation that lost to an earlier booking.
// Contested holds exactly the requested seats that were already booked.
type SeatConflictError struct {
	ShowtimeID string
	Contested  []int
}

func (e *SeatConflictError) Error() string {
	seats := make([]string, len(e.Contested))
	for i, n := range e.Contested {
		seats[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("seats already booked for showtime %s: %s",
		e.ShowtimeID, strings.Join(seats, ", "))
}
