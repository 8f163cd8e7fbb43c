package check_shift_conflicts

import (
	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	checkShiftConflicts "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/check_shift_conflicts"
)

// ShiftCheckResponse HTTP response model
type ShiftCheckResponse struct {
	Date        string `json:"date"`
	ShiftID     string `json:"shiftId"`
	Available   bool   `json:"available"`
	HasConflict bool   `json:"hasConflict"`
	Code        string `json:"code,omitempty"`
	Message     string `json:"message"`
}

func FromUseCaseResponse(resp *checkShiftConflicts.Response) *ShiftCheckResponse {
	return &ShiftCheckResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ShiftID:     resp.ShiftID.String(),
		Available:   !resp.HasConflict,
		HasConflict: resp.HasConflict,
		Code:        string(resp.Code),
		Message:     resp.Message,
	}
}
