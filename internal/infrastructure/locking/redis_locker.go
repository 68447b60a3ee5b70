package locking

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultLockTTL  = 10 * time.Second
	lockRetryPeriod = 100 * time.Millisecond
	lockKeyPrefix   = "order-lock:"
)

// obtainer is the part of redislock.Client the locker calls.
type obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

// RedisLocker serializes order mutations across API replicas.
type RedisLocker struct {
	client obtainer
	ttl    time.Duration
	log    *logrus.Logger
}

var _ interfaces.IOrderLocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		ttl:    LockTTL(os.Getenv("ORDER_LOCK_TTL")),
		log:    logging.GetLogger(),
	}
}

// LockTTL parses a duration such as "15s"; anything invalid gives the default.
func LockTTL(raw string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return defaultLockTTL
	}
	return d
}

func (l *RedisLocker) Lock(ctx context.Context, orderID string) (func(context.Context) error, error) {
	key := lockKeyPrefix + orderID
	lock, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetryPeriod), int(l.ttl/lockRetryPeriod)),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		l.log.WithField("order_id", orderID).Warn("[order][lock] lock not obtained")
		return nil, interfaces.ErrLockNotObtained
	}
	if err != nil {
		logging.LogError(l.log, "lock", "Lock", logrus.Fields{"order_id": orderID}, err)
		return nil, err
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}
