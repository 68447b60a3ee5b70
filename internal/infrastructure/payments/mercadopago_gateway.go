package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"morais_erp/internal/infrastructure/logging"
	"morais_erp/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentCreator is the part of payment.Client the gateway calls.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges receivables through the Mercado Pago payments API.
// Mock mode is decided by the caller; this type always talks to the provider.
type MercadoPagoGateway struct {
	client paymentCreator
	log    *logrus.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := logging.GetLogger()
	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logging.LogError(log, "payment", "NewMercadoPagoGateway", nil, err)
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	fields := logrus.Fields{"payload_len": len(payload)}
	g.log.WithFields(fields).Info("[receivable][gateway] charge start")

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		logging.LogError(g.log, "payment", "Charge", fields, err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logging.LogError(g.log, "payment", "Charge", fields, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logging.LogError(g.log, "payment", "Charge", fields, err)
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.WithFields(logrus.Fields{"provider_payment_id": id, "provider_status": resp.Status}).Info("[receivable][gateway] charge success")

	return id, resp.Status, b, nil
}
