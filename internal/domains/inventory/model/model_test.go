package model_test

import (
	"testing"
	"time"
	"tripavail/internal/domains/inventory/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	d1 := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	got := model.Normalize([]model.Request{
		{RoomID: "b", Date: d1, Units: 1},
		{RoomID: "a", Date: d2, Units: 1},
		{RoomID: "a", Date: d1.Add(5 * time.Hour), Units: 2},
		{RoomID: "a", Date: d1, Units: 1},
		{RoomID: "c", Date: d1, Units: 0},
	})

	assert.Equal(t, []model.Request{
		{RoomID: "a", Date: d1, Units: 3},
		{RoomID: "a", Date: d2, Units: 1},
		{RoomID: "b", Date: d1, Units: 1},
	}, got)
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2025, time.March, 30, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.April, 2, 11, 0, 0, 0, time.UTC)

	got := model.Nights(checkIn, checkOut)

	assert.Equal(t, []time.Time{
		time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}, got)

	assert.Empty(t, model.Nights(checkOut, checkIn))
}
