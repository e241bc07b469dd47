package entity

import "time"

// Booking is append-only: once created it is never updated or deleted, and it
// may outlive the movie and showtime it references.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	MovieID     string    `json:"movieId"`
	ShowtimeID  string    `json:"showtimeId"`
	Seats       []int     `json:"seats"`
	TotalPrice  float64   `json:"totalPrice"`
	BookingDate time.Time `json:"bookingDate"`
}

func (b *Booking) Clone() *Booking {
	c := *b
	c.Seats = append([]int(nil), b.Seats...)
	return &c
}
