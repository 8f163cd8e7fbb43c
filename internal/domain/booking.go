package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ErrInvalidBookingStatus возвращается при разборе неизвестного статуса
var ErrInvalidBookingStatus = errors.New("domain: invalid booking status")

// statusTransitions допустимые переходы, терминальные статусы переходов не имеют
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ParseBookingStatus converts a raw string into a known status
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingStatus, s)
	}
	return status, nil
}

// IsTerminal returns true when no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a tour reservation for one date and shift
type Booking struct {
	ID      uuid.UUID
	TourID  uuid.UUID
	ShiftID uuid.UUID
	Date    time.Time
	Status  BookingStatus

	// Denormalized data for history
	TourTitle  string
	TotalPrice float64
	Currency   string

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Participants  int

	PaymentInfo    *PaymentInfo
	AdditionalInfo *string

	IsDeleted bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its date
func (b *Booking) IsActive() bool {
	return !b.IsDeleted && (b.Status == StatusPending || b.Status == StatusConfirmed)
}

// PaymentInfo payment provider data stored as JSONB in bookings.payment_info
type PaymentInfo struct {
	Provider        string `json:"provider"`
	SessionID       string `json:"session_id,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	AmountTotal     int64  `json:"amount_total,omitempty"`
	Currency        string `json:"currency,omitempty"`
	Status          string `json:"status,omitempty"`
}

// Value реализует driver.Valuer
func (p *PaymentInfo) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("domain: marshal payment info: %w", err)
	}
	return raw, nil
}

// Scan реализует sql.Scanner
func (p *PaymentInfo) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = PaymentInfo{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("domain: unsupported payment info type %T", src)
	}
	if len(raw) == 0 {
		*p = PaymentInfo{}
		return nil
	}
	return json.Unmarshal(raw, p)
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	From           *time.Time     // Начало периода (опционально)
	To             *time.Time     // Конец периода (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	IncludeDeleted bool           // Включать ли мягко удаленные бронирования
}
