package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("slots.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("slots.cache: failed to write")
)

// Cache кэш занятых времен начала по датам.
// nil *Cache означает выключенный кэш: чтения всегда промахиваются, записи игнорируются.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх уже настроенного клиента
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetOccupied возвращает занятые времена на дату. found=false означает промах.
func (c *Cache) GetOccupied(ctx context.Context, date time.Time) ([]types.TimeString, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, occupiedKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: GetOccupied - %v", ErrCacheRead, err)
	}

	var occupied []types.TimeString
	if err := json.Unmarshal(data, &occupied); err != nil {
		return nil, false, fmt.Errorf("%w: GetOccupied - decode: %v", ErrCacheRead, err)
	}
	return occupied, true, nil
}

// SetOccupied сохраняет занятые времена на дату с TTL
func (c *Cache) SetOccupied(ctx context.Context, date time.Time, occupied []types.TimeString) error {
	if c == nil {
		return nil
	}
	if occupied == nil {
		occupied = []types.TimeString{}
	}

	payload, err := json.Marshal(occupied)
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - encode: %v", ErrCacheWrite, err)
	}
	if err := c.client.Set(ctx, occupiedKey(date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetOccupied - %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate удаляет запись для даты
func (c *Cache) Invalidate(ctx context.Context, date time.Time) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, occupiedKey(date)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheWrite, err)
	}
	return nil
}

func occupiedKey(date time.Time) string {
	return "slots:occupied:" + date.Format(domain.DateFormat)
}
