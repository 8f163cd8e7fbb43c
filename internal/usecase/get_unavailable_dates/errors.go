package get_unavailable_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном годе или месяце
	ErrInvalidInput = errors.New("get_unavailable_dates: invalid input data")

	// ErrStore возвращается, когда хранилище не ответило
	// Пустой список при этой ошибке не означает, что все даты свободны
	ErrStore = errors.New("get_unavailable_dates: availability store unavailable")
)
