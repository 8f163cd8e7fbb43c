package get_unavailable_dates

import (
	getUnavailableDates "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/get_unavailable_dates"
)

// UnavailableDatesResponse HTTP response model
type UnavailableDatesResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Dates []string `json:"dates"`
}

func FromUseCaseResponse(resp *getUnavailableDates.Response) *UnavailableDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}
	return &UnavailableDatesResponse{
		Year:  resp.Year,
		Month: resp.Month,
		Dates: dates,
	}
}
