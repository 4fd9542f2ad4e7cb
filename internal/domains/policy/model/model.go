package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeFlexible      Type = "FLEXIBLE"
	TypeModerate      Type = "MODERATE"
	TypeStrict        Type = "STRICT"
	TypeNonRefundable Type = "NON_REFUNDABLE"
)

const (
	FullRefundPercentage = 100
	NoRefundPercentage   = 0
)

var (
	ErrUnknownType     = errors.New("unknown cancellation policy type")
	ErrInvalidPolicy   = errors.New("invalid cancellation policy")
	ErrUnsupportedScan = errors.New("unsupported scan source")
)

func (t Type) Valid() bool {
	switch t {
	case TypeFlexible, TypeModerate, TypeStrict, TypeNonRefundable:
		return true
	default:
		return false
	}
}

func (t Type) Name() string {
	switch t {
	case TypeFlexible:
		return "Flexible"
	case TypeModerate:
		return "Moderate"
	case TypeStrict:
		return "Strict"
	case TypeNonRefundable:
		return "Non-Refundable"
	default:
		return string(t)
	}
}

// Policy is the frozen snapshot a booking carries from confirmation onwards.
// Thresholds are inclusive lower bounds in whole days before check-in.
type Policy struct {
	Type                    Type `json:"type"`
	FullRefundUntilDays     int  `json:"fullRefundUntilDays"`
	PartialRefundUntilDays  int  `json:"partialRefundUntilDays"`
	NoRefundUntilDays       int  `json:"noRefundUntilDays"`
	PartialRefundPercentage int  `json:"partialRefundPercentage"`
}

func (p Policy) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
	}

	if p.NoRefundUntilDays < 0 || p.PartialRefundUntilDays < p.NoRefundUntilDays || p.FullRefundUntilDays < p.PartialRefundUntilDays {
		return fmt.Errorf("%w: thresholds must satisfy 0 <= noRefund <= partial <= full", ErrInvalidPolicy)
	}

	if p.PartialRefundPercentage < NoRefundPercentage || p.PartialRefundPercentage > FullRefundPercentage {
		return fmt.Errorf("%w: partial refund percentage must be within 0..100", ErrInvalidPolicy)
	}

	return nil
}

func (p Policy) Value() (driver.Value, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cancellation policy: %w", err)
	}

	return string(raw), nil
}

func (p *Policy) Scan(src any) error {
	return scanJSON(src, p)
}

// RefundCalculation is computed once, at cancellation time, and stored on the booking.
type RefundCalculation struct {
	BookingID           string          `json:"bookingId"`
	PolicyType          Type            `json:"policyType"`
	TotalPaid           decimal.Decimal `json:"totalPaid"`
	RefundAmount        decimal.Decimal `json:"refundAmount"`
	RefundPercentage    int             `json:"refundPercentage"`
	DaysUntilCheckIn    int             `json:"daysUntilCheckIn"`
	CancellationDate    time.Time       `json:"cancellationDate"`
	CheckInDate         time.Time       `json:"checkInDate"`
	IsEligibleForRefund bool            `json:"isEligibleForRefund"`
	Reason              string          `json:"reason"`
}

func (r RefundCalculation) Value() (driver.Value, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refund calculation: %w", err)
	}

	return string(raw), nil
}

func (r *RefundCalculation) Scan(src any) error {
	return scanJSON(src, r)
}

func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), dest) //nolint:wrapcheck
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScan, src)
	}
}
