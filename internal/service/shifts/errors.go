package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shifts.service: shift not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("shifts.service: invalid input data")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("shifts.service: store unavailable")
)
