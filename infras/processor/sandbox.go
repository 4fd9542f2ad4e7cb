package processor

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeclinedPaymentMethod always fails authorization in the sandbox.
const DeclinedPaymentMethod = "pm_card_declined"

type sandbox struct {
	mu      sync.Mutex
	intents map[string]*Intent
	refunds map[string]Refund
	keys    map[string]string
}

// NewSandbox returns an in-memory processor for development and tests.
func NewSandbox() Processor {
	return &sandbox{
		intents: map[string]*Intent{},
		refunds: map[string]Refund{},
		keys:    map[string]string{},
	}
}

func (s *sandbox) Authorize(_ context.Context, req AuthorizeRequest) (Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.keys[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		return *s.intents[id], nil
	}

	if !req.Amount.IsPositive() {
		return Intent{}, ErrInvalidAmount
	}

	if req.PaymentMethodID == DeclinedPaymentMethod {
		return Intent{}, fmt.Errorf("%w: card was declined", ErrDeclined)
	}

	intent := &Intent{
		ID:       "pi_" + uuid.NewString(),
		Status:   IntentStatusRequiresCapture,
		Amount:   req.Amount,
		Currency: req.Currency,
	}

	s.intents[intent.ID] = intent
	if req.IdempotencyKey != "" {
		s.keys[req.IdempotencyKey] = intent.ID
	}

	return *intent, nil
}

func (s *sandbox) Capture(_ context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[intentID]
	if !ok {
		return Intent{}, ErrIntentNotFound
	}

	if _, seen := s.keys[idempotencyKey]; seen && idempotencyKey != "" {
		return *intent, nil
	}

	if intent.Status != IntentStatusRequiresCapture || !amount.Equal(intent.Amount) {
		return Intent{}, fmt.Errorf("%w: cannot capture %s of intent in status %s", ErrInvalidAmount, amount, intent.Status)
	}

	intent.Status = IntentStatusSucceeded
	if idempotencyKey != "" {
		s.keys[idempotencyKey] = intentID
	}

	return *intent, nil
}

func (s *sandbox) Refund(_ context.Context, intentID string, amount decimal.Decimal, idempotencyKey string) (Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if refund, ok := s.refunds[idempotencyKey]; ok && idempotencyKey != "" {
		return refund, nil
	}

	intent, ok := s.intents[intentID]
	if !ok {
		return Refund{}, ErrIntentNotFound
	}

	if intent.Status != IntentStatusSucceeded || !amount.IsPositive() || amount.GreaterThan(intent.Amount) {
		return Refund{}, fmt.Errorf("%w: cannot refund %s of intent in status %s", ErrInvalidAmount, amount, intent.Status)
	}

	intent.Status = IntentStatusRefunded
	refund := Refund{
		ID:       "re_" + uuid.NewString(),
		IntentID: intentID,
		Amount:   amount,
	}

	if idempotencyKey != "" {
		s.refunds[idempotencyKey] = refund
	}

	return refund, nil
}
