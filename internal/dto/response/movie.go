package response

import "cine-reserve/internal/data/entity"

type MovieResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Poster      string             `json:"poster,omitempty"`
	Description string             `json:"description,omitempty"`
	Genres      []string           `json:"genres"`
	Duration    int                `json:"duration"`
	ReleaseDate string             `json:"releaseDate"`
	Rating      float64            `json:"rating"`
	Showtimes   []ShowtimeResponse `json:"showtimes"`
}

// MovieToResponse renders a movie with its derived showtime list; the list is
// computed from the store index at read time, never stored on the movie.
func MovieToResponse(movie *entity.Movie, showtimes []*entity.Showtime) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Poster:      movie.Poster,
		Description: movie.Description,
		Genres:      movie.Genres,
		Duration:    movie.Duration,
		ReleaseDate: movie.ReleaseDate,
		Rating:      movie.Rating,
		Showtimes:   ShowtimesToResponse(showtimes),
	}
}
