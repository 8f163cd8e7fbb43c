package check_shift_conflicts

import (
	"context"

	checkShiftConflicts "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/check_shift_conflicts"
)

type CheckShiftConflictsUseCase interface {
	Execute(ctx context.Context, req *checkShiftConflicts.Request) (*checkShiftConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
