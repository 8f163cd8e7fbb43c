package create_booking

import (
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	createBooking "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourID         string  `json:"tourId" validate:"required,uuid"`
	ShiftID        string  `json:"shiftId" validate:"required,uuid"`
	Date           string  `json:"date" validate:"required"` // "2026-06-01"
	CustomerName   string  `json:"customerName" validate:"required,max=200"`
	CustomerEmail  string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone  *string `json:"customerPhone,omitempty" validate:"omitempty,max=50"`
	Participants   int     `json:"participants" validate:"required,min=1,max=50"`
	AdditionalInfo *string `json:"additionalInfo,omitempty" validate:"omitempty,max=2000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	TourID         string  `json:"tourId"`
	ShiftID        string  `json:"shiftId"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	TourTitle      string  `json:"tourTitle"`
	TotalPrice     float64 `json:"totalPrice"`
	Currency       string  `json:"currency"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  *string `json:"customerPhone,omitempty"`
	Participants   int     `json:"participants"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	tourID, err := handlers.ParseUUID(r.TourID)
	if err != nil {
		return nil, err
	}

	shiftID, err := handlers.ParseUUID(r.ShiftID)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TourID:         tourID,
		ShiftID:        shiftID,
		Date:           date,
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		CustomerPhone:  r.CustomerPhone,
		Participants:   r.Participants,
		AdditionalInfo: r.AdditionalInfo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID.String(),
		TourID:         resp.TourID.String(),
		ShiftID:        resp.ShiftID.String(),
		Date:           resp.Date.Format(domain.DateFormat),
		Status:         resp.Status,
		TourTitle:      resp.TourTitle,
		TotalPrice:     resp.TotalPrice,
		Currency:       resp.Currency,
		CustomerName:   resp.CustomerName,
		CustomerEmail:  resp.CustomerEmail,
		CustomerPhone:  resp.CustomerPhone,
		Participants:   resp.Participants,
		AdditionalInfo: resp.AdditionalInfo,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
