package models

import (
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// SetAvailabilityRequest запрос на установку доступности даты
type SetAvailabilityRequest struct {
	Unavailable bool    `json:"unavailable"`
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// DateAvailabilityResponse состояние доступности даты
type DateAvailabilityResponse struct {
	Date        string     `json:"date"` // "2026-06-01"
	Unavailable bool       `json:"unavailable"`
	Reason      *string    `json:"reason,omitempty"`
	Explicit    bool       `json:"explicit"` // false - записи нет, дата доступна по умолчанию
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(o *domain.AvailabilityOverride, explicit bool) *DateAvailabilityResponse {
	resp := &DateAvailabilityResponse{
		Date:        o.Date.Format(domain.DateFormat),
		Unavailable: o.Unavailable,
		Reason:      o.Reason,
		Explicit:    explicit,
	}
	if explicit && !o.UpdatedAt.IsZero() {
		updatedAt := o.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
