package models

import (
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// CreateShiftRequest запрос на создание смены
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartTime string `json:"startTime" validate:"required"` // "09:00"
	EndTime   string `json:"endTime" validate:"required"`   // "12:00"
	Type      string `json:"type" validate:"required,oneof=whole_day hourly"`
	IsActive  *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// SetActiveRequest запрос на включение или выключение смены
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Type:      string(s.Type),
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainShiftList конвертирует список domain моделей в DTO
func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	resp := &ShiftListResponse{Shifts: make([]ShiftResponse, 0, len(shifts))}
	for _, s := range shifts {
		resp.Shifts = append(resp.Shifts, *FromDomainShift(s))
	}
	return resp
}
