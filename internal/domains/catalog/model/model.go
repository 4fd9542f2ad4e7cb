package model

import (
	policyModel "tripavail/internal/domains/policy/model"
	"tripavail/shared/model"

	"github.com/shopspring/decimal"
)

type PackageType string

const (
	PackageTypeHotel PackageType = "HOTEL_PACKAGE"
	PackageTypeTour  PackageType = "TOUR_PACKAGE"
)

func (t PackageType) Valid() bool {
	return t == PackageTypeHotel || t == PackageTypeTour
}

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID         = "id"
	FieldProviderID = "provider_id"
	FieldType       = "type"
	FieldStatus     = "status"
)

const (
	RoomTableName  = "package_rooms"
	RoomEntityName = "package_room"

	AddOnTableName  = "package_add_ons"
	AddOnEntityName = "package_add_on"

	FieldPackageID = "package_id"
	FieldName      = "name"
)

type Package struct {
	ID                     string              `db:"id"`
	ProviderID             string              `db:"provider_id"`
	Type                   PackageType         `db:"type"`
	Status                 string              `db:"status"`
	Name                   string              `db:"name"`
	BasePrice              decimal.Decimal     `db:"base_price"`
	Currency               string              `db:"currency"`
	CancellationPolicyType policyModel.Type    `db:"cancellation_policy_type"`
	CancellationPolicyJSON *policyModel.Policy `db:"cancellation_policy_json"`
	DurationDays           int                 `db:"duration_days"`
	model.Metadata
}

func (p Package) Published() bool {
	return p.Status == StatusPublished
}

// Room is a bookable room type. Tour packages carry exactly one, the departure.
type Room struct {
	ID            string          `db:"id"`
	PackageID     string          `db:"package_id"`
	Name          string          `db:"name"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	TotalUnits    int             `db:"total_units"`
	model.Metadata
}

type AddOn struct {
	ID        string          `db:"id"`
	PackageID string          `db:"package_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	model.Metadata
}

// Detail is a package with its rooms, in creation order, and add-ons.
type Detail struct {
	Package Package `json:"package"`
	Rooms   []Room  `json:"rooms"`
	AddOns  []AddOn `json:"addOns"`
}

func (d Detail) Room(id string) (Room, bool) {
	for _, room := range d.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}

func (d Detail) AddOn(id string) (AddOn, bool) {
	for _, addOn := range d.AddOns {
		if addOn.ID == id {
			return addOn, true
		}
	}

	return AddOn{}, false
}

// DefaultRoom is the first room of the package, used when no room is selected.
func (d Detail) DefaultRoom() (Room, bool) {
	if len(d.Rooms) == 0 {
		return Room{}, false
	}

	return d.Rooms[0], true
}
