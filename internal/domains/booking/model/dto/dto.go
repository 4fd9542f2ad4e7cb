package dto

import (
	"time"
	"tripavail/internal/domains/booking/model"
	catalogModel "tripavail/internal/domains/catalog/model"
	policyModel "tripavail/internal/domains/policy/model"
	pricingModel "tripavail/internal/domains/pricing/model"
	"tripavail/shared"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/timezone"
)

const moneyPlaces = 2

type QuoteRequest struct {
	PackageType     catalogModel.PackageType `json:"packageType"     validate:"required,oneof=HOTEL_PACKAGE TOUR_PACKAGE"`
	PackageID       string                   `json:"packageId"       validate:"required,uuid"`
	CheckInDate     string                   `json:"checkInDate"     validate:"required,date"`
	CheckOutDate    string                   `json:"checkOutDate"    validate:"omitempty,date"`
	NumberOfGuests  int                      `json:"numberOfGuests"  validate:"required,min=1"`
	NumberOfRooms   int                      `json:"numberOfRooms"   validate:"omitempty,min=1"`
	SelectedRoomIDs []string                 `json:"selectedRoomIds" validate:"omitempty,dive,uuid"`
	SelectedAddOns  []string                 `json:"selectedAddOns"  validate:"omitempty,dive,uuid"`
	IdempotencyKey  string                   `json:"idempotencyKey"  validate:"omitempty,idempotencykey"`
}

// Dates parses the stay. An empty check-out yields the zero time.
func (r QuoteRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, r.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if r.CheckOutDate == constant.Empty {
		return checkIn, checkOut, nil
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, r.CheckOutDate)

	return checkIn, checkOut, err //nolint:wrapcheck
}

// HoldRequest accepts the quote under either bookingId or quoteId.
type HoldRequest struct {
	BookingID      string `json:"bookingId"      validate:"required_without=QuoteID,omitempty,uuid"`
	QuoteID        string `json:"quoteId"        validate:"required_without=BookingID,omitempty,uuid"`
	IdempotencyKey string `json:"idempotencyKey" validate:"omitempty,idempotencykey"`
}

func (r HoldRequest) Target() string {
	if r.BookingID != constant.Empty {
		return r.BookingID
	}

	return r.QuoteID
}

type BookingResponse struct {
	ID                     string                         `json:"id"`
	UserID                 string                         `json:"userId"`
	ProviderID             string                         `json:"providerId"`
	PackageType            string                         `json:"packageType"`
	PackageID              string                         `json:"packageId"`
	CheckInDate            string                         `json:"checkInDate"`
	CheckOutDate           string                         `json:"checkOutDate"`
	NumberOfGuests         int                            `json:"numberOfGuests"`
	NumberOfRooms          int                            `json:"numberOfRooms"`
	SelectedRoomIDs        []string                       `json:"selectedRoomIds"`
	SelectedAddOns         []string                       `json:"selectedAddOns"`
	PriceSnapshot          pricingModel.PriceSnapshot     `json:"priceSnapshot"`
	Currency               string                         `json:"currency"`
	TotalPrice             string                         `json:"totalPrice"`
	Status                 string                         `json:"status"`
	QuotedAt               string                         `json:"quotedAt"`
	ExpiresAt              string                         `json:"expiresAt"`
	HeldAt                 *string                        `json:"heldAt"`
	HoldExpiresAt          *string                        `json:"holdExpiresAt"`
	ConfirmedAt            *string                        `json:"confirmedAt"`
	CancelledAt            *string                        `json:"cancelledAt"`
	CompletedAt            *string                        `json:"completedAt"`
	ExpiredAt              *string                        `json:"expiredAt"`
	PaymentIntentID        *string                        `json:"paymentIntentId"`
	CancellationPolicy     *string                        `json:"cancellationPolicy"`
	CancellationPolicyJSON *policyModel.Policy            `json:"cancellationPolicyJson"`
	RefundCalculation      *policyModel.RefundCalculation `json:"refundCalculation,omitempty"`
	RefundAmount           *string                        `json:"refundAmount,omitempty"`
	TotalPaid              *string                        `json:"totalPaid,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.ProviderID = booking.ProviderID
	r.PackageType = string(booking.PackageType)
	r.PackageID = booking.PackageID
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NumberOfGuests = booking.NumberOfGuests
	r.NumberOfRooms = booking.NumberOfRooms
	r.SelectedRoomIDs = nonNil(booking.SelectedRoomIDs)
	r.SelectedAddOns = nonNil(booking.SelectedAddOns)
	r.PriceSnapshot = booking.PriceSnapshot
	r.Currency = booking.Currency
	r.TotalPrice = booking.TotalPrice.StringFixed(moneyPlaces)
	r.Status = string(booking.Status)
	r.QuotedAt = timezone.Format(booking.QuotedAt, constant.DateFormat)
	r.ExpiresAt = timezone.Format(booking.ExpiresAt, constant.DateFormat)
	r.HeldAt = formatTime(booking.HeldAt)
	r.HoldExpiresAt = formatTime(booking.HoldExpiresAt)
	r.ConfirmedAt = formatTime(booking.ConfirmedAt)
	r.CancelledAt = formatTime(booking.CancelledAt)
	r.CompletedAt = formatTime(booking.CompletedAt)
	r.ExpiredAt = formatTime(booking.ExpiredAt)
	r.PaymentIntentID = booking.PaymentIntentID
	r.CancellationPolicyJSON = booking.CancellationPolicyJSON
	r.RefundCalculation = booking.RefundCalculation

	if booking.CancellationPolicy != nil {
		policy := string(*booking.CancellationPolicy)
		r.CancellationPolicy = &policy
	}

	if booking.RefundAmount.Valid {
		amount := booking.RefundAmount.Decimal.StringFixed(moneyPlaces)
		r.RefundAmount = &amount
	}

	if booking.RefundCalculation != nil {
		paid := booking.RefundCalculation.TotalPaid.StringFixed(moneyPlaces)
		r.TotalPaid = &paid
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
