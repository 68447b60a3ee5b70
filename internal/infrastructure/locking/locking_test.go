package locking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"

	"github.com/bsm/redislock"
)

type fakeObtainer struct {
	key string
	ttl time.Duration
	opt *redislock.Options
	err error
}

func (f *fakeObtainer) Obtain(_ context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error) {
	f.key, f.ttl, f.opt = key, ttl, opt
	return nil, f.err
}

func TestLockTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"":      defaultLockTTL,
		"abc":   defaultLockTTL,
		"-5s":   defaultLockTTL,
		"30s":   30 * time.Second,
		" 2m ":  2 * time.Minute,
		"500ms": 500 * time.Millisecond,
	}
	for raw, want := range cases {
		if got := LockTTL(raw); got != want {
			t.Fatalf("LockTTL(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestRedisLocker_Lock(t *testing.T) {
	t.Run("not obtained", func(t *testing.T) {
		fo := &fakeObtainer{err: redislock.ErrNotObtained}
		l := &RedisLocker{client: fo, ttl: time.Second, log: logging.GetLogger()}

		release, err := l.Lock(context.Background(), "REQ-1")
		if !errors.Is(err, interfaces.ErrLockNotObtained) {
			t.Fatalf("expected ErrLockNotObtained, got %v", err)
		}
		if release != nil {
			t.Fatalf("release must be nil on failure")
		}
		if fo.key != "order-lock:REQ-1" || fo.ttl != time.Second {
			t.Fatalf("unexpected obtain call key=%s ttl=%s", fo.key, fo.ttl)
		}
		if fo.opt == nil || fo.opt.RetryStrategy == nil {
			t.Fatalf("expected a retry strategy")
		}
	})

	t.Run("redis error", func(t *testing.T) {
		boom := errors.New("connection refused")
		l := &RedisLocker{client: &fakeObtainer{err: boom}, ttl: time.Second, log: logging.GetLogger()}
		if _, err := l.Lock(context.Background(), "REQ-1"); !errors.Is(err, boom) {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

func TestLocalLocker(t *testing.T) {
	t.Run("serializes the same order", func(t *testing.T) {
		l := NewLocalLocker()
		var inside, maxInside int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := l.Lock(context.Background(), "REQ-1")
				if err != nil {
					t.Errorf("lock: %v", err)
					return
				}
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				_ = release(context.Background())
			}()
		}
		wg.Wait()
		if maxInside != 1 {
			t.Fatalf("expected exclusive access, saw %d holders", maxInside)
		}
		if len(l.locks) != 0 {
			t.Fatalf("expected lock table to be empty, got %d", len(l.locks))
		}
	})

	t.Run("different orders do not block", func(t *testing.T) {
		l := NewLocalLocker()
		r1, err := l.Lock(context.Background(), "REQ-1")
		if err != nil {
			t.Fatalf("lock REQ-1: %v", err)
		}
		defer r1(context.Background())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		r2, err := l.Lock(ctx, "REQ-2")
		if err != nil {
			t.Fatalf("lock REQ-2: %v", err)
		}
		_ = r2(context.Background())
	})

	t.Run("context canceled while waiting", func(t *testing.T) {
		l := NewLocalLocker()
		r1, _ := l.Lock(context.Background(), "REQ-1")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := l.Lock(ctx, "REQ-1"); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}

		_ = r1(context.Background())
		_ = r1(context.Background())
		if len(l.locks) != 0 {
			t.Fatalf("expected lock table to be empty, got %d", len(l.locks))
		}
	})
}
