package service_test

import (
	"testing"
	"time"
	"tripavail/internal/domains/policy/model"
	"tripavail/internal/domains/policy/service"
	"tripavail/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundPercentage_Presets(t *testing.T) {
	tests := []struct {
		name       string
		policyType model.Type
		days       int
		want       int
	}{
		{name: "flexible one day out", policyType: model.TypeFlexible, days: 1, want: 100},
		{name: "flexible same day", policyType: model.TypeFlexible, days: 0, want: 0},
		{name: "moderate ten days out", policyType: model.TypeModerate, days: 10, want: 100},
		{name: "moderate exactly seven days", policyType: model.TypeModerate, days: 7, want: 100},
		{name: "moderate six days", policyType: model.TypeModerate, days: 6, want: 50},
		{name: "moderate exactly one day", policyType: model.TypeModerate, days: 1, want: 50},
		{name: "moderate same day", policyType: model.TypeModerate, days: 0, want: 0},
		{name: "strict thirty days", policyType: model.TypeStrict, days: 30, want: 100},
		{name: "strict twenty nine days", policyType: model.TypeStrict, days: 29, want: 50},
		{name: "strict exactly seven days", policyType: model.TypeStrict, days: 7, want: 50},
		{name: "strict six days", policyType: model.TypeStrict, days: 6, want: 0},
		{name: "non refundable far out", policyType: model.TypeNonRefundable, days: 365, want: 0},
		{name: "check-in already passed", policyType: model.TypeFlexible, days: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := service.Preset(tt.policyType)
			require.NoError(t, err)

			assert.Equal(t, tt.want, service.RefundPercentage(policy, tt.days))
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := service.Preset("LENIENT")

	assert.ErrorIs(t, err, model.ErrUnknownType)
}

func TestResolve(t *testing.T) {
	custom := &model.Policy{
		Type:                    model.TypeModerate,
		FullRefundUntilDays:     14,
		PartialRefundUntilDays:  3,
		NoRefundUntilDays:       3,
		PartialRefundPercentage: 25,
	}

	tests := []struct {
		name     string
		typ      model.Type
		explicit *model.Policy
		want     model.Policy
		wantErr  bool
	}{
		{
			name: "falls back to preset",
			typ:  model.TypeStrict,
			want: model.Policy{Type: model.TypeStrict, FullRefundUntilDays: 30, PartialRefundUntilDays: 7, NoRefundUntilDays: 7, PartialRefundPercentage: 50},
		},
		{
			name:     "explicit policy wins",
			typ:      model.TypeModerate,
			explicit: custom,
			want:     *custom,
		},
		{
			name:     "explicit policy with inverted thresholds",
			typ:      model.TypeModerate,
			explicit: &model.Policy{Type: model.TypeModerate, FullRefundUntilDays: 1, PartialRefundUntilDays: 5},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Resolve(tt.typ, tt.explicit)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	checkIn := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "exactly ten days", now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "partial day is floored", now: time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC), want: 9},
		{name: "same instant", now: checkIn, want: 0},
		{name: "after check-in", now: checkIn.Add(time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DaysUntil(tt.now, checkIn))
		})
	}
}

func TestDaysUntil_AppTimezone(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, timezone.Init("UTC")) })
	require.NoError(t, timezone.Init("America/New_York"))

	moderate, err := service.Preset(model.TypeModerate)
	require.NoError(t, err)

	// DATE columns come back as UTC midnight.
	checkIn := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		wantDays    int
		wantPercent int
	}{
		{
			name:        "evening seven calendar days out keeps the full refund",
			now:         time.Date(2026, 10, 13, 21, 0, 0, 0, timezone.Location()),
			wantDays:    7,
			wantPercent: 100,
		},
		{
			name:        "local midnight of check-in day",
			now:         time.Date(2026, 10, 21, 0, 0, 0, 0, timezone.Location()),
			wantDays:    0,
			wantPercent: 0,
		},
		{
			name:        "one hour before local midnight",
			now:         time.Date(2026, 10, 20, 23, 0, 0, 0, timezone.Location()),
			wantDays:    0,
			wantPercent: 0,
		},
		{
			name:        "two days before in the evening",
			now:         time.Date(2026, 10, 19, 20, 0, 0, 0, timezone.Location()),
			wantDays:    1,
			wantPercent: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDays, service.DaysUntil(tt.now, checkIn))

			got := service.Calculate(service.CalculateInput{
				Policy:    moderate,
				TotalPaid: decimal.RequireFromString("100.00"),
				CheckIn:   checkIn,
				Now:       tt.now,
			})

			assert.Equal(t, tt.wantPercent, got.RefundPercentage)
		})
	}
}

func TestCalculate(t *testing.T) {
	moderate, err := service.Preset(model.TypeModerate)
	require.NoError(t, err)

	checkIn := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("330.00")

	tests := []struct {
		name         string
		now          time.Time
		wantPercent  int
		wantRefund   string
		wantEligible bool
	}{
		{
			name:         "ten days before check-in refunds everything",
			now:          checkIn.AddDate(0, 0, -10),
			wantPercent:  100,
			wantRefund:   "330",
			wantEligible: true,
		},
		{
			name:         "three days before check-in refunds half",
			now:          checkIn.AddDate(0, 0, -3),
			wantPercent:  50,
			wantRefund:   "165",
			wantEligible: true,
		},
		{
			name:         "twelve hours before check-in refunds nothing",
			now:          checkIn.Add(-12 * time.Hour),
			wantPercent:  0,
			wantRefund:   "0",
			wantEligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Calculate(service.CalculateInput{
				BookingID: "b-1",
				Policy:    moderate,
				TotalPaid: total,
				CheckIn:   checkIn,
				Now:       tt.now,
			})

			assert.Equal(t, "b-1", got.BookingID)
			assert.Equal(t, model.TypeModerate, got.PolicyType)
			assert.Equal(t, tt.wantPercent, got.RefundPercentage)
			assert.True(t, decimal.RequireFromString(tt.wantRefund).Equal(got.RefundAmount), "refund %s", got.RefundAmount)
			assert.Equal(t, tt.wantEligible, got.IsEligibleForRefund)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestForced(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("275.50")

	got := service.Forced("b-2", model.TypeStrict, total, checkIn, now)

	assert.Equal(t, 100, got.RefundPercentage)
	assert.True(t, total.Equal(got.RefundAmount))
	assert.Equal(t, 0, got.DaysUntilCheckIn)
	assert.True(t, got.IsEligibleForRefund)
}

func TestApplyPercentage_Rounding(t *testing.T) {
	tests := []struct {
		amount  string
		percent int
		want    string
	}{
		{amount: "100.01", percent: 50, want: "50.01"},
		{amount: "33.33", percent: 50, want: "16.67"},
		{amount: "10.00", percent: 0, want: "0"},
		{amount: "99.99", percent: 100, want: "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := service.ApplyPercentage(decimal.RequireFromString(tt.amount), tt.percent)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
