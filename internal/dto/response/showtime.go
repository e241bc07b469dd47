package response

import "cine-reserve/internal/data/entity"

type ShowtimeResponse struct {
	ID             string `json:"id"`
	MovieID        string `json:"movieId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Theater        string `json:"theater"`
	TotalSeats     int    `json:"totalSeats"`
	SeatsAvailable []int  `json:"seatsAvailable"`
	SeatsBooked    []int  `json:"seatsBooked"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:             showtime.ID,
		MovieID:        showtime.MovieID,
		Date:           showtime.Date,
		Time:           showtime.Time,
		Theater:        showtime.Theater,
		TotalSeats:     showtime.TotalSeats,
		SeatsAvailable: showtime.SeatsAvailable,
		SeatsBooked:    showtime.SeatsBooked,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, len(showtimes))
	for i, s := range showtimes {
		out[i] = ShowtimeToResponse(s)
	}
	return out
}
