package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability.service: invalid input data")

	// ErrStore возвращается, когда хранилище не ответило
	ErrStore = errors.New("availability.service: store unavailable")
)
