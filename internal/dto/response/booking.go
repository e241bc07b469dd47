package response

import (
	"time"

	"cine-reserve/internal/data/entity"
)

// Placeholders for bookings whose movie or showtime was cascade-deleted. A
// dangling reference on a historical booking is expected, not an error.
const (
	UnknownMovieTitle    = "Unknown Movie"
	UnknownShowtimeLabel = "Unknown Showtime"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	MovieID     string    `json:"movieId"`
	ShowtimeID  string    `json:"showtimeId"`
	MovieTitle  string    `json:"movieTitle"`
	Showtime    string    `json:"showtime"`
	Theater     string    `json:"theater"`
	Seats       []int     `json:"seats"`
	TotalPrice  float64   `json:"totalPrice"`
	BookingDate time.Time `json:"bookingDate"`
}

// BookingToResponse joins a booking to its movie and showtime; either may be
// nil when the booking outlived them.
func BookingToResponse(booking *entity.Booking, movie *entity.Movie, showtime *entity.Showtime) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID,
		UserID:      booking.UserID,
		MovieID:     booking.MovieID,
		ShowtimeID:  booking.ShowtimeID,
		MovieTitle:  UnknownMovieTitle,
		Showtime:    UnknownShowtimeLabel,
		Theater:     "Unknown",
		Seats:       booking.Seats,
		TotalPrice:  booking.TotalPrice,
		BookingDate: booking.BookingDate,
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	if showtime != nil {
		resp.Showtime = showtime.Date + " " + showtime.Time
		resp.Theater = showtime.Theater
	}
	return resp
}
