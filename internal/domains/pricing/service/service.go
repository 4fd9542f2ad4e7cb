package service

import (
	"errors"
	"fmt"
	"time"
	"tripavail/config"
	catalogModel "tripavail/internal/domains/catalog/model"
	"tripavail/internal/domains/pricing/model"
	"tripavail/shared/constant"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var (
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrUnknownRoom       = errors.New("selected room does not belong to package")
	ErrUnknownAddOn      = errors.New("selected add-on does not belong to package")
	ErrRoomCountMismatch = errors.New("numberOfRooms must match the number of selected rooms")
	ErrNoRooms           = errors.New("package has no bookable rooms")
)

type QuoteInput struct {
	Detail           catalogModel.Detail
	CheckIn          time.Time
	CheckOut         time.Time
	NumberOfGuests   int
	NumberOfRooms    int
	SelectedRoomIDs  []string
	SelectedAddOnIDs []string
}

// Pricing turns a selection into a price snapshot. It is the single source of
// truth for amounts, client supplied prices are never read.
type Pricing interface {
	Quote(in QuoteInput) (model.PriceSnapshot, error)
}

type serviceImpl struct {
	taxRate        decimal.Decimal
	commissionRate decimal.Decimal
}

func New(cfg *config.Config) Pricing {
	return NewWithRates(
		decimal.NewFromFloat(cfg.Booking.TaxRate),
		decimal.NewFromFloat(cfg.Booking.CommissionRate),
	)
}

func NewWithRates(taxRate, commissionRate decimal.Decimal) Pricing {
	return &serviceImpl{
		taxRate:        taxRate,
		commissionRate: commissionRate,
	}
}

// Nights counts calendar nights between two dates, ignoring clock time and DST shifts.
func Nights(checkIn, checkOut time.Time) int {
	from := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / constant.HoursPerDay)
}

func (s *serviceImpl) Quote(in QuoteInput) (model.PriceSnapshot, error) {
	var (
		breakdown model.Breakdown
		err       error
	)

	switch in.Detail.Package.Type {
	case catalogModel.PackageTypeHotel:
		breakdown, err = s.hotel(in)
	case catalogModel.PackageTypeTour:
		breakdown, err = s.tour(in)
	default:
		err = fmt.Errorf("unsupported package type %q", in.Detail.Package.Type)
	}

	if err != nil {
		return model.PriceSnapshot{}, err
	}

	subtotal := breakdown.Subtotal.Round(moneyPlaces)
	tax := subtotal.Mul(s.taxRate).Round(moneyPlaces)
	commission := subtotal.Mul(s.commissionRate).Round(moneyPlaces)
	total := subtotal.Add(tax)

	breakdown.Subtotal = subtotal
	breakdown.TaxRate = s.taxRate
	breakdown.TaxAmount = tax
	breakdown.CommissionRate = s.commissionRate
	breakdown.CommissionAmount = commission
	breakdown.GrandTotal = total

	return model.PriceSnapshot{
		BasePrice:  subtotal,
		Tax:        tax,
		Commission: commission,
		Total:      total,
		Breakdown:  breakdown,
	}, nil
}

func (s *serviceImpl) hotel(in QuoteInput) (model.Breakdown, error) {
	nights := Nights(in.CheckIn, in.CheckOut)
	if nights <= 0 {
		return model.Breakdown{}, ErrInvalidDateRange
	}

	rooms, err := SelectRooms(in.Detail, in.SelectedRoomIDs, in.NumberOfRooms)
	if err != nil {
		return model.Breakdown{}, err
	}

	nightCount := decimal.NewFromInt(int64(nights))
	subtotal := decimal.Zero
	charges := make([]model.Charge, 0, len(rooms))

	for _, room := range rooms {
		price := room.PricePerNight.Mul(nightCount)
		subtotal = subtotal.Add(price)
		charges = append(charges, model.Charge{ID: room.ID, Name: room.Name, Price: price})
	}

	addOns, err := selectAddOns(in.Detail, in.SelectedAddOnIDs)
	if err != nil {
		return model.Breakdown{}, err
	}

	multiplier := nightCount.Mul(decimal.NewFromInt(int64(len(rooms))))
	addOnCharges := make([]model.Charge, 0, len(addOns))

	for _, addOn := range addOns {
		price := addOn.Price.Mul(multiplier)
		subtotal = subtotal.Add(price)
		addOnCharges = append(addOnCharges, model.Charge{ID: addOn.ID, Name: addOn.Name, Price: price})
	}

	pricePerNight := rooms[0].PricePerNight

	return model.Breakdown{
		Nights:        nights,
		PricePerNight: &pricePerNight,
		RoomCharges:   charges,
		AddOns:        addOnCharges,
		Subtotal:      subtotal,
	}, nil
}

func (s *serviceImpl) tour(in QuoteInput) (model.Breakdown, error) {
	if in.CheckOut.Before(in.CheckIn) {
		return model.Breakdown{}, ErrInvalidDateRange
	}

	if _, ok := in.Detail.DefaultRoom(); !ok {
		return model.Breakdown{}, ErrNoRooms
	}

	addOns, err := selectAddOns(in.Detail, in.SelectedAddOnIDs)
	if err != nil {
		return model.Breakdown{}, err
	}

	packagePrice := in.Detail.Package.BasePrice
	subtotal := packagePrice
	guests := decimal.NewFromInt(int64(in.NumberOfGuests))
	addOnCharges := make([]model.Charge, 0, len(addOns))

	for _, addOn := range addOns {
		price := addOn.Price.Mul(guests)
		subtotal = subtotal.Add(price)
		addOnCharges = append(addOnCharges, model.Charge{ID: addOn.ID, Name: addOn.Name, Price: price})
	}

	return model.Breakdown{
		PackagePrice: &packagePrice,
		AddOns:       addOnCharges,
		Subtotal:     subtotal,
	}, nil
}

// SelectRooms resolves one entry per room unit. Without an explicit selection
// the package's first room is used numberOfRooms times.
func SelectRooms(detail catalogModel.Detail, selected []string, numberOfRooms int) ([]catalogModel.Room, error) {
	if len(selected) == 0 {
		room, ok := detail.DefaultRoom()
		if !ok {
			return nil, ErrNoRooms
		}

		rooms := make([]catalogModel.Room, numberOfRooms)
		for i := range rooms {
			rooms[i] = room
		}

		return rooms, nil
	}

	if len(selected) != numberOfRooms {
		return nil, ErrRoomCountMismatch
	}

	rooms := make([]catalogModel.Room, 0, len(selected))

	for _, id := range selected {
		room, ok := detail.Room(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, id)
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func selectAddOns(detail catalogModel.Detail, selected []string) ([]catalogModel.AddOn, error) {
	addOns := make([]catalogModel.AddOn, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))

	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		addOn, ok := detail.AddOn(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAddOn, id)
		}

		addOns = append(addOns, addOn)
	}

	return addOns, nil
}
