package interfaces

import "context"

// IOrderLocker serializes mutations of one requisition across requests and
// processes. The returned release function must be called exactly once.
type IOrderLocker interface {
	Lock(ctx context.Context, orderID string) (release func(context.Context) error, err error)
}
