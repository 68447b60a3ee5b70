package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a receivable at the payment provider. payload is the
// provider request body; the raw provider answer is returned so it can be
// stored next to the receivable.
type IPaymentGateway interface {
	Charge(ctx context.Context, payload json.RawMessage) (providerID string, providerStatus string, providerResponse json.RawMessage, err error)
}
