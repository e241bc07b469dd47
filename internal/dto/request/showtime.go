package request

type ShowtimeRequest struct {
	MovieID string `json:"movieId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Theater string `json:"theater" validate:"required,min=1,max=100"`
}

type ShowtimeUpdateRequest struct {
	MovieID *string `json:"movieId,omitempty" validate:"omitempty,min=1"`
	Date    *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time    *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Theater *string `json:"theater,omitempty" validate:"omitempty,min=1,max=100"`
}
