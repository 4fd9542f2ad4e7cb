package dto

import (
	"net/http"
	"time"
	"tripavail/internal/domains/inventory/model"
	"tripavail/shared/constant"
)

type AvailabilityRequest struct {
	From string `json:"from" validate:"required,date"`
	To   string `json:"to"   validate:"required,date"`
}

func (r *AvailabilityRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.From = query.Get("from")
	r.To = query.Get("to")
}

// Range parses the dates. To is exclusive, like a check-out date.
func (r AvailabilityRequest) Range() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DateOnlyFormat, r.From)
	if err != nil {
		return from, to, err //nolint:wrapcheck
	}

	to, err = time.Parse(constant.DateOnlyFormat, r.To)

	return from, to, err //nolint:wrapcheck
}

type NightResponse struct {
	Date           string `json:"date"`
	TotalUnits     int    `json:"totalUnits"`
	AvailableUnits int    `json:"availableUnits"`
	BasePrice      string `json:"basePrice"`
}

type AvailabilityResponse struct {
	RoomID string          `json:"roomId"`
	Nights []NightResponse `json:"nights"`
}

func (r *AvailabilityResponse) FromModels(roomID string, nights []model.Night) {
	r.RoomID = roomID
	r.Nights = make([]NightResponse, len(nights))

	for i, night := range nights {
		r.Nights[i] = NightResponse{
			Date:           night.Date.Format(time.DateOnly),
			TotalUnits:     night.TotalUnits,
			AvailableUnits: night.AvailableUnits,
			BasePrice:      night.BasePrice.StringFixed(2),
		}
	}
}
