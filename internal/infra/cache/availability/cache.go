package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability:unavailable:"

// Cache кэширует список недоступных дат по месяцам
// При client == nil все операции ничего не делают, чтение всегда промах
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш месячной доступности
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// MonthKey ключ месяца в формате availability:unavailable:YYYY-MM
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d-%02d", keyPrefix, year, int(month))
}

// Enabled сообщает, подключен ли redis
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetMonth возвращает закэшированные даты месяца, второй результат false при промахе
func (c *Cache) GetMonth(ctx context.Context, year int, month time.Month) ([]string, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}

	key := MonthKey(year, month)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: GetMonth - get %s: %v", ErrCacheRead, key, err)
	}

	dates := make([]string, 0)
	if err := json.Unmarshal(raw, &dates); err != nil {
		return nil, false, fmt.Errorf("%w: GetMonth - unmarshal %s: %v", ErrCacheRead, key, err)
	}

	return dates, true, nil
}

// SetMonth сохраняет даты месяца на время ttl
func (c *Cache) SetMonth(ctx context.Context, year int, month time.Month, dates []string) error {
	if !c.Enabled() {
		return nil
	}

	if dates == nil {
		dates = []string{}
	}

	payload, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("%w: SetMonth - marshal: %v", ErrCacheWrite, err)
	}

	key := MonthKey(year, month)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetMonth - set %s: %v", ErrCacheWrite, key, err)
	}

	return nil
}

// InvalidateDate удаляет кэш месяца, которому принадлежит дата
func (c *Cache) InvalidateDate(ctx context.Context, date time.Time) error {
	if !c.Enabled() {
		return nil
	}

	key := MonthKey(date.Year(), date.Month())
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateDate - del %s: %v", ErrCacheWrite, key, err)
	}

	return nil
}
