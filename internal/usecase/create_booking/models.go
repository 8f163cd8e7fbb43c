package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	TourID         uuid.UUID // ID тура
	ShiftID        uuid.UUID // ID смены
	Date           time.Time // Дата бронирования (без времени)
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  *string // Опционально
	Participants   int
	AdditionalInfo *string // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID      uuid.UUID
	TourID  uuid.UUID
	ShiftID uuid.UUID
	Date    time.Time
	Status  string

	// Денормализованные данные
	TourTitle  string
	TotalPrice float64
	Currency   string

	CustomerName   string
	CustomerEmail  string
	CustomerPhone  *string
	Participants   int
	AdditionalInfo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
