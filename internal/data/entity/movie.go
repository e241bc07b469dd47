package entity

type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Duration    int      `json:"duration"` // minutes
	ReleaseDate string   `json:"releaseDate"`
	Rating      float64  `json:"rating"` // out of 10
}

// Clone returns an independent copy so store snapshots never alias
// caller-visible slices.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Genres = append([]string(nil), m.Genres...)
	return &c
}
