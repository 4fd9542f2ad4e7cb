package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedScan = errors.New("unsupported scan source")

// PriceSnapshot is written once when a quote is created and never recalculated.
type PriceSnapshot struct {
	BasePrice  decimal.Decimal `json:"basePrice"`
	Tax        decimal.Decimal `json:"tax"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
	Breakdown  Breakdown       `json:"breakdown"`
}

type Breakdown struct {
	Nights           int              `json:"nights,omitempty"`
	PricePerNight    *decimal.Decimal `json:"pricePerNight,omitempty"`
	RoomCharges      []Charge         `json:"roomCharges,omitempty"`
	PackagePrice     *decimal.Decimal `json:"packagePrice,omitempty"`
	AddOns           []Charge         `json:"addOns,omitempty"`
	Subtotal         decimal.Decimal  `json:"subtotal"`
	TaxRate          decimal.Decimal  `json:"taxRate"`
	TaxAmount        decimal.Decimal  `json:"taxAmount"`
	CommissionRate   decimal.Decimal  `json:"commissionRate"`
	CommissionAmount decimal.Decimal  `json:"commissionAmount"`
	GrandTotal       decimal.Decimal  `json:"grandTotal"`
}

type Charge struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProviderShare is what the provider is owed once the booking is confirmed.
func (p PriceSnapshot) ProviderShare() decimal.Decimal {
	return p.Total.Sub(p.Commission)
}

func (p PriceSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal price snapshot: %w", err)
	}

	return string(raw), nil
}

func (p *PriceSnapshot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, p) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), p) //nolint:wrapcheck
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScan, src)
	}
}
