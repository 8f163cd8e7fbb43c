package get_unavailable_dates

import (
	"fmt"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}

	if req.Year < domain.MinYear || req.Year > domain.MaxYear {
		return fmt.Errorf("%w: year must be a 4-digit value", ErrInvalidInput)
	}

	return nil
}
