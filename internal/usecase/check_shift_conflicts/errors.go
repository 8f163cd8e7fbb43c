package check_shift_conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_shift_conflicts: invalid input data")

	// ErrStore возвращается, когда доступность нельзя определить из-за хранилища
	ErrStore = errors.New("check_shift_conflicts: store unavailable")
)
