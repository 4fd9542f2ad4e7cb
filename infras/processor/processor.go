package processor

//go:generate go run go.uber.org/mock/mockgen -source=./processor.go -destination=./mocks/processor_mock.go -package=mocks

import (
	"context"
	"errors"
	"tripavail/config"
	"tripavail/infras/otel"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	DriverSandbox = "sandbox"
	DriverHTTP    = "http"
)

const (
	IntentStatusRequiresCapture = "requires_capture"
	IntentStatusSucceeded       = "succeeded"
	IntentStatusRefunded        = "refunded"
)

var (
	ErrDeclined       = errors.New("payment declined")
	ErrIntentNotFound = errors.New("payment intent not found")
	ErrInvalidAmount  = errors.New("invalid amount")
)

type AuthorizeRequest struct {
	Amount          decimal.Decimal
	Currency        string
	PaymentMethodID string
	Reference       string
	IdempotencyKey  string
}

type Intent struct {
	ID       string          `json:"id"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type Refund struct {
	ID       string          `json:"id"`
	IntentID string          `json:"intent_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// Processor is the external card processor. Every call carries an
// idempotency key so a retried call never moves money twice.
type Processor interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (Intent, error)
	Capture(ctx context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (Intent, error)
	Refund(ctx context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (Refund, error)
}

func New(cfg *config.Config, otel otel.Otel) Processor {
	switch cfg.Payment.Processor.Driver {
	case DriverHTTP:
		log.Info().Str("base_url", cfg.Payment.Processor.BaseURL).Msg("Using HTTP payment processor")

		return NewHTTP(cfg, otel)
	default:
		log.Warn().Msg("Using sandbox payment processor, no real funds will move")

		return NewSandbox()
	}
}
