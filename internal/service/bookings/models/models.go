package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// ListBookingsRequest фильтры списка бронирований
type ListBookingsRequest struct {
	From           *time.Time // Начало периода (опционально)
	To             *time.Time // Конец периода (опционально)
	Status         *string    // Фильтр по статусу (опционально)
	IncludeDeleted bool       // Включить мягко удаленные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		From:           r.From,
		To:             r.To,
		IncludeDeleted: r.IncludeDeleted,
	}

	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return filter, fmt.Errorf("from must not be after to")
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// PaymentEvent результат платежа от провайдера
type PaymentEvent struct {
	BookingID uuid.UUID
	Status    domain.BookingStatus // confirmed или cancelled
	Payment   *domain.PaymentInfo
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID      string `json:"id"`
	TourID  string `json:"tourId"`
	ShiftID string `json:"shiftId"`
	Date    string `json:"date"` // "2026-06-01"
	Status  string `json:"status"`

	// Денормализованные данные
	TourTitle  string  `json:"tourTitle"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`

	CustomerName   string              `json:"customerName"`
	CustomerEmail  string              `json:"customerEmail"`
	CustomerPhone  *string             `json:"customerPhone,omitempty"`
	Participants   int                 `json:"participants"`
	PaymentInfo    *domain.PaymentInfo `json:"paymentInfo,omitempty"`
	AdditionalInfo *string             `json:"additionalInfo,omitempty"`

	IsDeleted bool    `json:"isDeleted"`
	DeletedAt *string `json:"deletedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID.String(),
		TourID:         b.TourID.String(),
		ShiftID:        b.ShiftID.String(),
		Date:           b.Date.Format(domain.DateFormat),
		Status:         string(b.Status),
		TourTitle:      b.TourTitle,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		Participants:   b.Participants,
		PaymentInfo:    b.PaymentInfo,
		AdditionalInfo: b.AdditionalInfo,
		IsDeleted:      b.IsDeleted,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.DeletedAt != nil {
		deletedStr := b.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &deletedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	resp.Total = len(resp.Bookings)

	return resp
}
