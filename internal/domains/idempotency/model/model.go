package model

import "time"

type Operation string

const (
	OperationQuote        Operation = "booking.quote"
	OperationHold         Operation = "booking.hold"
	OperationPreAuthorize Operation = "payment.pre_authorize"
)

const (
	TableName  = "idempotency_keys"
	EntityName = "idempotency_key"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldOperation      = "operation"
	FieldIdempotencyKey = "idempotency_key"
)

// Record binds a caller supplied key, scoped to one user and operation, to
// the resource the first request produced.
type Record struct {
	ID             string    `db:"id"              json:"id"`
	UserID         string    `db:"user_id"         json:"userId"`
	Operation      Operation `db:"operation"       json:"operation"`
	IdempotencyKey string    `db:"idempotency_key" json:"idempotencyKey"`
	ResourceID     string    `db:"resource_id"     json:"resourceId"`
	RequestHash    string    `db:"request_hash"    json:"requestHash"`
	CreatedAt      time.Time `db:"created_at"      json:"createdAt"`
}
