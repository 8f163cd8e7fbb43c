package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.TourID == uuid.Nil {
		return fmt.Errorf("%w: tourId is required", ErrInvalidInput)
	}

	if req.ShiftID == uuid.Nil {
		return fmt.Errorf("%w: shiftId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if err := validate.Var(strings.TrimSpace(req.CustomerEmail), "required,email"); err != nil {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if req.Participants < domain.MinParticipants || req.Participants > domain.MaxParticipants {
		return fmt.Errorf("%w: participants must be in %d..%d", ErrInvalidInput, domain.MinParticipants, domain.MaxParticipants)
	}

	if req.AdditionalInfo != nil && len(*req.AdditionalInfo) > domain.MaxAdditionalInfoLen {
		return fmt.Errorf("%w: additional info exceeds %d characters", ErrInvalidInput, domain.MaxAdditionalInfoLen)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
