package model

import (
	"time"
	"tripavail/shared/model"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPreAuthorized Status = "PRE_AUTHORIZED"
	StatusCaptured      Status = "CAPTURED"
	StatusRefunded      Status = "REFUNDED"
	StatusFailed        Status = "FAILED"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID              = "id"
	FieldBookingID       = "booking_id"
	FieldStatus          = "status"
	FieldRefundAmount    = "refund_amount"
	FieldCapturedAt      = "captured_at"
	FieldRefundedAt      = "refunded_at"
	FieldPaymentIntentID = "payment_intent_id"
)

// Payment is the single live payment of a booking. Declined attempts are kept
// as FAILED rows and do not count against that limit.
type Payment struct {
	ID              string          `db:"id"`
	BookingID       string          `db:"booking_id"`
	UserID          string          `db:"user_id"`
	Status          Status          `db:"status"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
	PaymentMethodID string          `db:"payment_method_id"`
	PaymentIntentID string          `db:"payment_intent_id"`
	IdempotencyKey  *string         `db:"idempotency_key"`
	RefundAmount    decimal.Decimal `db:"refund_amount"`
	FailureReason   string          `db:"failure_reason"`
	AuthorizedAt    *time.Time      `db:"authorized_at"`
	CapturedAt      *time.Time      `db:"captured_at"`
	RefundedAt      *time.Time      `db:"refunded_at"`
	model.Metadata
}
