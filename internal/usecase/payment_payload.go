package usecase

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayUnavailable      = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// gatewayErrorMarkers maps provider error fragments to domain errors, checked in order.
var gatewayErrorMarkers = []struct {
	err     error
	markers []string
}{
	{ErrPaymentGatewayCustomerNotFound, []string{"customer not found", `"code":2002`}},
	{ErrPaymentGatewayInvalidUsers, []string{"invalid users involved", `"code":2034`}},
	{ErrPaymentGatewayUnauthorized, []string{`"error":"unauthorized"`, `"status":401`}},
	{ErrPaymentGatewayBadRequest, []string{`"error":"bad_request"`, `"status":400`}},
}

// classifyGatewayError translates a provider failure; unknown failures pass through.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, m := range gatewayErrorMarkers {
		for _, marker := range m.markers {
			if strings.Contains(msg, marker) {
				return m.err
			}
		}
	}
	return err
}

func isPaymentGatewayMockEnabled() bool {
	return envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MERCADOPAGO_MOCK")
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func payerOf(m map[string]any) (map[string]any, bool) {
	payer, ok := m["payer"].(map[string]any)
	return payer, ok
}

func hasPayer(m map[string]any) bool {
	payer, ok := payerOf(m)
	return ok && (hasNonEmptyString(payer, "email") || hasPayerID(payer))
}

// ensurePayerDefaults fills the payer type and, in sandbox, a test payer email
// when neither payer.id nor payer.email was sent.
func ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := payerOf(m)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if isSandboxToken() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its email.
func normalizeSandboxPayer(m map[string]any) {
	payer, ok := payerOf(m)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !isSandboxToken() {
		return
	}
	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

func isSandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}
