package snapshot

import "cine-reserve/internal/data/entity"

// Built-in catalog used when no prior snapshot exists. Seat inventories start
// with the full range available.

func SeedMovies() []*entity.Movie {
	return []*entity.Movie{
		{
			ID:          "movie-1",
			Title:       "Inception",
			Poster:      "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_.jpg",
			Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Genres:      []string{"Action", "Adventure", "Sci-Fi"},
			Duration:    148,
			ReleaseDate: "2010-07-16",
			Rating:      8.8,
		},
		{
			ID:          "movie-2",
			Title:       "The Dark Knight",
			Poster:      "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_.jpg",
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			Genres:      []string{"Action", "Crime", "Drama"},
			Duration:    152,
			ReleaseDate: "2008-07-18",
			Rating:      9.0,
		},
		{
			ID:          "movie-3",
			Title:       "Interstellar",
			Poster:      "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEyLWFmMjktY2FiMmZkNWIyODZiXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_.jpg",
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Genres:      []string{"Adventure", "Drama", "Sci-Fi"},
			Duration:    169,
			ReleaseDate: "2014-11-07",
			Rating:      8.6,
		},
	}
}

func SeedShowtimes() []*entity.Showtime {
	return []*entity.Showtime{
		entity.NewShowtime("showtime-1", "movie-1", "2025-04-15", "14:30", "Theater 1", entity.DefaultTotalSeats),
		entity.NewShowtime("showtime-2", "movie-1", "2025-04-15", "18:00", "Theater 2", entity.DefaultTotalSeats),
		entity.NewShowtime("showtime-3", "movie-2", "2025-04-15", "15:00", "Theater 3", entity.DefaultTotalSeats),
		entity.NewShowtime("showtime-4", "movie-3", "2025-04-16", "20:00", "Theater 1", entity.DefaultTotalSeats),
	}
}

func SeedBookings() []*entity.Booking {
	return []*entity.Booking{}
}
