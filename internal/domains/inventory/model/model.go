package model

import (
	"cmp"
	"slices"
	"time"
	"tripavail/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	NightTableName  = "inventory_nights"
	NightEntityName = "inventory_night"

	ClaimTableName  = "inventory_claims"
	ClaimEntityName = "inventory_claim"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldDate           = "date"
	FieldBookingID      = "booking_id"
	FieldAvailableUnits = "available_units"
	FieldReleasedAt     = "released_at"
	FieldExpiresAt      = "expires_at"
)

// Night is the capacity counter of one room type on one calendar date.
// 0 <= AvailableUnits <= TotalUnits holds at every commit.
type Night struct {
	RoomID         string          `db:"room_id"`
	Date           time.Time       `db:"date"`
	TotalUnits     int             `db:"total_units"`
	AvailableUnits int             `db:"available_units"`
	BasePrice      decimal.Decimal `db:"base_price"`
	ModifiedAt     time.Time       `db:"modified_at"`
}

// Claim records exactly what a hold decremented, so a release restores
// exactly those units once. ExpiresAt is cleared when the hold is paid for.
type Claim struct {
	ID         string     `db:"id"`
	BookingID  string     `db:"booking_id"`
	RoomID     string     `db:"room_id"`
	Date       time.Time  `db:"date"`
	Units      int        `db:"units"`
	ClaimedAt  time.Time  `db:"claimed_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	ReleasedAt *time.Time `db:"released_at"`
}

// Request asks for units of a room on one date.
type Request struct {
	RoomID string
	Date   time.Time
	Units  int
}

// Normalize merges requests for the same night and orders them by room then
// date. Every hold locks rows in this order so concurrent multi-night holds
// cannot deadlock.
func Normalize(requests []Request) []Request {
	merged := make(map[string]int, len(requests))
	order := make([]Request, 0, len(requests))

	for _, req := range requests {
		if req.Units <= 0 {
			continue
		}

		key := req.RoomID + "|" + req.Date.Format(time.DateOnly)
		if idx, ok := merged[key]; ok {
			order[idx].Units += req.Units

			continue
		}

		merged[key] = len(order)
		order = append(order, Request{RoomID: req.RoomID, Date: timezone.Date(req.Date), Units: req.Units})
	}

	slices.SortFunc(order, func(a, b Request) int {
		if c := cmp.Compare(a.RoomID, b.RoomID); c != 0 {
			return c
		}

		return a.Date.Compare(b.Date)
	})

	return order
}

// Nights lists every night a stay occupies, check-out excluded.
func Nights(checkIn, checkOut time.Time) []time.Time {
	var nights []time.Time

	for day := timezone.Date(checkIn); day.Before(timezone.Date(checkOut)); day = day.AddDate(0, 0, 1) {
		nights = append(nights, day)
	}

	return nights
}
