package request

type BookingRequest struct {
	ShowtimeID string `json:"showtimeId" validate:"required"`
	Seats      []int  `json:"seats" validate:"required,min=1,dive,gte=1"`
}
