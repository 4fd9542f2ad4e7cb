package model

import (
	"time"
	catalogModel "tripavail/internal/domains/catalog/model"
	policyModel "tripavail/internal/domains/policy/model"
	pricingModel "tripavail/internal/domains/pricing/model"
	"tripavail/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusQuote               Status = "QUOTE"
	StatusHold                Status = "HOLD"
	StatusPaymentPending      Status = "PAYMENT_PENDING"
	StatusConfirmed           Status = "CONFIRMED"
	StatusCompleted           Status = "COMPLETED"
	StatusCancelledByGuest    Status = "CANCELLED_BY_GUEST"
	StatusCancelledByProvider Status = "CANCELLED_BY_PROVIDER"
	StatusExpiredHold         Status = "EXPIRED_HOLD"
)

// Terminal reports whether no transition leaves this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByGuest, StatusCancelledByProvider, StatusExpiredHold:
		return true
	default:
		return false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusQuote, StatusHold, StatusPaymentPending, StatusConfirmed,
		StatusCompleted, StatusCancelledByGuest, StatusCancelledByProvider, StatusExpiredHold:
		return true
	default:
		return false
	}
}

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                     = "id"
	FieldUserID                 = "user_id"
	FieldProviderID             = "provider_id"
	FieldStatus                 = "status"
	FieldHeldAt                 = "held_at"
	FieldHoldExpiresAt          = "hold_expires_at"
	FieldConfirmedAt            = "confirmed_at"
	FieldCancelledAt            = "cancelled_at"
	FieldCompletedAt            = "completed_at"
	FieldExpiredAt              = "expired_at"
	FieldPaymentIntentID        = "payment_intent_id"
	FieldCancellationPolicy     = "cancellation_policy"
	FieldCancellationPolicyJSON = "cancellation_policy_json"
	FieldRefundCalculation      = "refund_calculation"
	FieldRefundAmount           = "refund_amount"
)

// Booking is the reservation aggregate. PriceSnapshot is written once at
// quote time and CancellationPolicyJSON once at confirmation.
type Booking struct {
	ID                     string                         `db:"id"`
	UserID                 string                         `db:"user_id"`
	ProviderID             string                         `db:"provider_id"`
	PackageType            catalogModel.PackageType       `db:"package_type"`
	PackageID              string                         `db:"package_id"`
	CheckInDate            time.Time                      `db:"check_in_date"`
	CheckOutDate           time.Time                      `db:"check_out_date"`
	NumberOfGuests         int                            `db:"number_of_guests"`
	NumberOfRooms          int                            `db:"number_of_rooms"`
	SelectedRoomIDs        pq.StringArray                 `db:"selected_room_ids"`
	SelectedAddOns         pq.StringArray                 `db:"selected_add_ons"`
	PriceSnapshot          pricingModel.PriceSnapshot     `db:"price_snapshot"`
	Currency               string                         `db:"currency"`
	TotalPrice             decimal.Decimal                `db:"total_price"`
	Status                 Status                         `db:"status"`
	QuotedAt               time.Time                      `db:"quoted_at"`
	ExpiresAt              time.Time                      `db:"expires_at"`
	HeldAt                 *time.Time                     `db:"held_at"`
	HoldExpiresAt          *time.Time                     `db:"hold_expires_at"`
	ConfirmedAt            *time.Time                     `db:"confirmed_at"`
	CancelledAt            *time.Time                     `db:"cancelled_at"`
	CompletedAt            *time.Time                     `db:"completed_at"`
	ExpiredAt              *time.Time                     `db:"expired_at"`
	PaymentIntentID        *string                        `db:"payment_intent_id"`
	CancellationPolicy     *policyModel.Type              `db:"cancellation_policy"`
	CancellationPolicyJSON *policyModel.Policy            `db:"cancellation_policy_json"`
	RefundCalculation      *policyModel.RefundCalculation `db:"refund_calculation"`
	RefundAmount           decimal.NullDecimal            `db:"refund_amount"`
	IdempotencyKey         *string                        `db:"idempotency_key"`
	model.Metadata
}

// HoldExpired reports whether a HOLD has passed its deadline at now.
func (b Booking) HoldExpired(now time.Time) bool {
	return b.Status == StatusHold && b.HoldExpiresAt != nil && !now.Before(*b.HoldExpiresAt)
}

// OwnedBy reports whether userID placed the booking.
func (b Booking) OwnedBy(userID string) bool {
	return userID != "" && b.UserID == userID
}

// EventType names a lifecycle event published after a committed transition.
type EventType string

const (
	EventQuoted         EventType = "booking.quoted"
	EventHeld           EventType = "booking.held"
	EventPaymentPending EventType = "booking.payment_pending"
	EventConfirmed      EventType = "booking.confirmed"
	EventCancelled      EventType = "booking.cancelled"
	EventExpired        EventType = "booking.expired"
	EventCompleted      EventType = "booking.completed"
)

type Event struct {
	EventID    string    `json:"eventId"`
	Type       EventType `json:"type"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	ProviderID string    `json:"providerId"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
