package request

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Poster      string   `json:"poster,omitempty"`
	Description string   `json:"description,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	ReleaseDate string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
}

type MovieUpdateRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Poster      *string   `json:"poster,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genres      *[]string `json:"genres,omitempty"`
	Duration    *int      `json:"duration,omitempty" validate:"omitempty,gt=0"`
	ReleaseDate *string   `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rating      *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
}
