package availability

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из redis
	ErrCacheRead = errors.New("availability.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи или удаления в redis
	ErrCacheWrite = errors.New("availability.cache: failed to write")
)
