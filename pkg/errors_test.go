package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: dynamo down" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}
	if NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound).Error() != "ORDER_NOT_FOUND: Order not found" {
		t.Fatalf("unexpected simple error string")
	}
}

func TestNewValidationError(t *testing.T) {
	type payload struct {
		ProjectID string  `validate:"required"`
		Amount    float64 `validate:"gt=0"`
	}
	err := validator.New().Struct(payload{})

	appErr := NewValidationError(err, http.StatusBadRequest)
	if appErr.HTTPStatus != http.StatusBadRequest || appErr.Code != "INVALID_REQUEST" {
		t.Fatalf("unexpected app error: %+v", appErr)
	}
	if appErr.Details["ProjectID"] != "is required" || appErr.Details["Amount"] != "must be greater than 0" {
		t.Fatalf("unexpected details: %+v", appErr.Details)
	}

	t.Run("non validation error", func(t *testing.T) {
		appErr := NewValidationError(errors.New("unexpected EOF"), http.StatusBadRequest)
		if appErr.Details != nil {
			t.Fatalf("expected no details, got %+v", appErr.Details)
		}
	})
}
