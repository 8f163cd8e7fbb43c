package check_shift_conflicts

import (
	"time"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// Request модель запроса проверки конфликтов смены
type Request struct {
	Date    time.Time // Дата без времени
	ShiftID uuid.UUID
}

// Response результат проверки, отказ - это значение, а не ошибка
type Response struct {
	Date        time.Time
	ShiftID     uuid.UUID
	HasConflict bool
	Code        domain.ConflictCode // Пусто, если конфликта нет
	Message     string
}
