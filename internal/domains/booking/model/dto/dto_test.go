package dto_test

import (
	"testing"
	"time"
	"tripavail/internal/domains/booking/model"
	"tripavail/internal/domains/booking/model/dto"
	policyModel "tripavail/internal/domains/policy/model"
	gModel "tripavail/shared/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequest_Dates(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.QuoteRequest
		wantCheckIn  time.Time
		wantCheckOut time.Time
		wantErr      bool
	}{
		{
			name:         "both dates",
			req:          dto.QuoteRequest{CheckInDate: "2026-12-01", CheckOutDate: "2026-12-03"},
			wantCheckIn:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			wantCheckOut: time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "check-out left for the package to decide",
			req:         dto.QuoteRequest{CheckInDate: "2026-12-01"},
			wantCheckIn: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "bad check-in",
			req:     dto.QuoteRequest{CheckInDate: "01/12/2026"},
			wantErr: true,
		},
		{
			name:    "bad check-out",
			req:     dto.QuoteRequest{CheckInDate: "2026-12-01", CheckOutDate: "tomorrow"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, checkOut, err := tt.req.Dates()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantCheckIn.Equal(checkIn))
			assert.True(t, tt.wantCheckOut.Equal(checkOut))
			assert.Equal(t, tt.wantCheckOut.IsZero(), checkOut.IsZero())
		})
	}
}

func TestHoldRequest_Target(t *testing.T) {
	assert.Equal(t, "booking-1", dto.HoldRequest{BookingID: "booking-1", QuoteID: "quote-1"}.Target())
	assert.Equal(t, "quote-1", dto.HoldRequest{QuoteID: "quote-1"}.Target())
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	policy := policyModel.TypeModerate

	booking := model.Booking{
		ID:                 "booking-1",
		UserID:             "user-1",
		ProviderID:         "provider-1",
		PackageID:          "package-1",
		CheckInDate:        time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC),
		CheckOutDate:       time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
		NumberOfGuests:     2,
		NumberOfRooms:      1,
		TotalPrice:         decimal.RequireFromString("220"),
		Status:             model.StatusCancelledByGuest,
		QuotedAt:           now,
		ExpiresAt:          now.Add(24 * time.Hour),
		CancellationPolicy: &policy,
		RefundAmount:       decimal.NewNullDecimal(decimal.RequireFromString("110")),
		RefundCalculation: &policyModel.RefundCalculation{
			TotalPaid:        decimal.RequireFromString("220"),
			RefundAmount:     decimal.RequireFromString("110"),
			RefundPercentage: 50,
		},
		Metadata: gModel.Metadata{CreatedBy: "user-1", ModifiedBy: "user-1", CreatedAt: now, ModifiedAt: now},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2026-10-11", res.CheckInDate)
	assert.Equal(t, "2026-10-13", res.CheckOutDate)
	assert.Equal(t, "220.00", res.TotalPrice)
	assert.Equal(t, string(model.StatusCancelledByGuest), res.Status)
	assert.NotNil(t, res.SelectedRoomIDs)
	assert.NotNil(t, res.SelectedAddOns)
	assert.Nil(t, res.HeldAt)
	require.NotNil(t, res.CancellationPolicy)
	assert.Equal(t, string(policyModel.TypeModerate), *res.CancellationPolicy)
	require.NotNil(t, res.RefundAmount)
	assert.Equal(t, "110.00", *res.RefundAmount)
	require.NotNil(t, res.TotalPaid)
	assert.Equal(t, "220.00", *res.TotalPaid)
	assert.Equal(t, "user-1", res.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{{ID: "b-1"}, {ID: "b-2"}, {ID: "b-3"}}

	var res dto.GetBookingsResponse
	res.FromModels(bookings, 21, 10)

	assert.Len(t, res.Bookings, 3)
	assert.Equal(t, "b-2", res.Bookings[1].ID)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
