package locking

import (
	"context"
	"sync"

	"morais_erp/internal/usecase/interfaces"
)

// LocalLocker serializes order mutations inside a single process. It is used
// when no Redis address is configured.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IOrderLocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, orderID string) (func(context.Context) error, error) {
	l.mu.Lock()
	kl, ok := l.locks[orderID]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[orderID] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		l.drop(orderID, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-kl.ch
			l.drop(orderID, kl)
		})
		return nil
	}, nil
}

func (l *LocalLocker) drop(orderID string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, orderID)
	}
}
