package service_test

import (
	"testing"
	"time"
	catalogModel "tripavail/internal/domains/catalog/model"
	"tripavail/internal/domains/pricing/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func hotelDetail() catalogModel.Detail {
	return catalogModel.Detail{
		Package: catalogModel.Package{ID: "pkg-hotel", ProviderID: "prov-1", Type: catalogModel.PackageTypeHotel, Status: catalogModel.StatusPublished},
		Rooms: []catalogModel.Room{
			{ID: "room-std", Name: "Standard", PricePerNight: dec("100.00"), TotalUnits: 5},
			{ID: "room-dlx", Name: "Deluxe", PricePerNight: dec("150.00"), TotalUnits: 2},
		},
		AddOns: []catalogModel.AddOn{
			{ID: "addon-breakfast", Name: "Breakfast", Price: dec("12.50")},
		},
	}
}

func tourDetail() catalogModel.Detail {
	return catalogModel.Detail{
		Package: catalogModel.Package{ID: "pkg-tour", ProviderID: "prov-2", Type: catalogModel.PackageTypeTour, Status: catalogModel.StatusPublished, BasePrice: dec("400.00")},
		Rooms:   []catalogModel.Room{{ID: "departure", Name: "Departure", TotalUnits: 20}},
		AddOns:  []catalogModel.AddOn{{ID: "addon-photo", Name: "Photo pack", Price: dec("25.00")}},
	}
}

func TestNights(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "three nights", checkIn: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), checkOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), want: 3},
		{name: "same day", checkIn: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), checkOut: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "reversed", checkIn: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), checkOut: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: -3},
		{name: "non utc location", checkIn: time.Date(2025, 6, 1, 0, 0, 0, 0, jakarta), checkOut: time.Date(2025, 6, 3, 0, 0, 0, 0, jakarta), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestPricing_QuoteHotel(t *testing.T) {
	svc := service.NewWithRates(dec("0.10"), dec("0.10"))
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		in             service.QuoteInput
		wantSubtotal   string
		wantTax        string
		wantCommission string
		wantTotal      string
		wantErr        error
	}{
		{
			name: "default room, two rooms, three nights",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3),
				NumberOfGuests: 2, NumberOfRooms: 2,
			},
			wantSubtotal:   "600",
			wantTax:        "60",
			wantCommission: "60",
			wantTotal:      "660",
		},
		{
			name: "selected rooms with add-on",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2),
				NumberOfGuests: 3, NumberOfRooms: 2,
				SelectedRoomIDs:  []string{"room-std", "room-dlx"},
				SelectedAddOnIDs: []string{"addon-breakfast"},
			},
			// rooms (100+150)*2 = 500, breakfast 12.50*2 nights*2 rooms = 50
			wantSubtotal:   "550",
			wantTax:        "55",
			wantCommission: "55",
			wantTotal:      "605",
		},
		{
			name: "zero nights",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn,
				NumberOfGuests: 1, NumberOfRooms: 1,
			},
			wantErr: service.ErrInvalidDateRange,
		},
		{
			name: "room from another package",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1),
				NumberOfGuests: 1, NumberOfRooms: 1, SelectedRoomIDs: []string{"room-foreign"},
			},
			wantErr: service.ErrUnknownRoom,
		},
		{
			name: "room count mismatch",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1),
				NumberOfGuests: 1, NumberOfRooms: 3, SelectedRoomIDs: []string{"room-std"},
			},
			wantErr: service.ErrRoomCountMismatch,
		},
		{
			name: "unknown add-on",
			in: service.QuoteInput{
				Detail: hotelDetail(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1),
				NumberOfGuests: 1, NumberOfRooms: 1, SelectedAddOnIDs: []string{"addon-spa"},
			},
			wantErr: service.ErrUnknownAddOn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Quote(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.wantSubtotal).Equal(got.BasePrice), "subtotal %s", got.BasePrice)
			assert.True(t, dec(tt.wantTax).Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, dec(tt.wantCommission).Equal(got.Commission), "commission %s", got.Commission)
			assert.True(t, dec(tt.wantTotal).Equal(got.Total), "total %s", got.Total)
			assert.True(t, got.Total.Equal(got.Breakdown.GrandTotal))
			assert.True(t, got.Total.Equal(got.BasePrice.Add(got.Tax)), "commission must not be added to the total")
		})
	}
}

func TestPricing_QuoteTour(t *testing.T) {
	svc := service.NewWithRates(dec("0.10"), dec("0.10"))
	departure := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	got, err := svc.Quote(service.QuoteInput{
		Detail:           tourDetail(),
		CheckIn:          departure,
		CheckOut:         departure.AddDate(0, 0, 3),
		NumberOfGuests:   4,
		NumberOfRooms:    1,
		SelectedAddOnIDs: []string{"addon-photo", "addon-photo"},
	})
	require.NoError(t, err)

	// 400 base + 25*4 guests, duplicated add-on counted once
	assert.True(t, dec("500").Equal(got.BasePrice), "subtotal %s", got.BasePrice)
	assert.True(t, dec("550").Equal(got.Total), "total %s", got.Total)
	assert.True(t, dec("50").Equal(got.Commission), "commission %s", got.Commission)
	assert.True(t, dec("500").Equal(got.ProviderShare()), "provider share %s", got.ProviderShare())
	require.NotNil(t, got.Breakdown.PackagePrice)
	assert.True(t, dec("400").Equal(*got.Breakdown.PackagePrice))
}

func TestPricing_Rounding(t *testing.T) {
	svc := service.NewWithRates(dec("0.10"), dec("0.10"))
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	detail := hotelDetail()
	detail.Rooms[0].PricePerNight = dec("33.35")

	got, err := svc.Quote(service.QuoteInput{
		Detail: detail, CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1),
		NumberOfGuests: 1, NumberOfRooms: 1,
	})
	require.NoError(t, err)

	// 3.335 rounds half away from zero
	assert.True(t, dec("3.34").Equal(got.Tax), "tax %s", got.Tax)
	assert.True(t, dec("36.69").Equal(got.Total), "total %s", got.Total)
}
