package service

import (
	"fmt"
	"math"
	"time"
	"tripavail/internal/domains/policy/model"
	"tripavail/shared/timezone"

	"github.com/shopspring/decimal"
)

const percentDivisor = 100

var presets = map[model.Type]model.Policy{
	model.TypeFlexible: {
		Type:                    model.TypeFlexible,
		FullRefundUntilDays:     1,
		PartialRefundUntilDays:  1,
		NoRefundUntilDays:       1,
		PartialRefundPercentage: 0,
	},
	model.TypeModerate: {
		Type:                    model.TypeModerate,
		FullRefundUntilDays:     7,
		PartialRefundUntilDays:  1,
		NoRefundUntilDays:       1,
		PartialRefundPercentage: 50,
	},
	model.TypeStrict: {
		Type:                    model.TypeStrict,
		FullRefundUntilDays:     30,
		PartialRefundUntilDays:  7,
		NoRefundUntilDays:       7,
		PartialRefundPercentage: 50,
	},
	model.TypeNonRefundable: {
		Type: model.TypeNonRefundable,
	},
}

// Preset returns the default thresholds for a policy type.
func Preset(policyType model.Type) (model.Policy, error) {
	policy, ok := presets[policyType]
	if !ok {
		return model.Policy{}, fmt.Errorf("%w: %q", model.ErrUnknownType, policyType)
	}

	return policy, nil
}

// Resolve picks the package's explicit policy when it has one, the preset otherwise.
func Resolve(policyType model.Type, explicit *model.Policy) (model.Policy, error) {
	if explicit != nil && explicit.Type != "" {
		if err := explicit.Validate(); err != nil {
			return model.Policy{}, err
		}

		return *explicit, nil
	}

	return Preset(policyType)
}

// DaysUntil floors the distance from now to local midnight of the check-in day
// to whole days.
func DaysUntil(now, checkIn time.Time) int {
	return int(math.Floor(timezone.StartOfDay(checkIn).Sub(now).Hours() / 24)) //nolint:mnd
}

func RefundPercentage(policy model.Policy, daysUntilCheckIn int) int {
	switch {
	case policy.Type == model.TypeNonRefundable, daysUntilCheckIn < 0:
		return model.NoRefundPercentage
	case daysUntilCheckIn >= policy.FullRefundUntilDays:
		return model.FullRefundPercentage
	case daysUntilCheckIn < policy.NoRefundUntilDays:
		return model.NoRefundPercentage
	case daysUntilCheckIn >= policy.PartialRefundUntilDays:
		return policy.PartialRefundPercentage
	default:
		return model.NoRefundPercentage
	}
}

type CalculateInput struct {
	BookingID string
	Policy    model.Policy
	TotalPaid decimal.Decimal
	CheckIn   time.Time
	Now       time.Time
}

func Calculate(in CalculateInput) model.RefundCalculation {
	days := DaysUntil(in.Now, in.CheckIn)
	percentage := RefundPercentage(in.Policy, days)

	return model.RefundCalculation{
		BookingID:           in.BookingID,
		PolicyType:          in.Policy.Type,
		TotalPaid:           in.TotalPaid,
		RefundAmount:        ApplyPercentage(in.TotalPaid, percentage),
		RefundPercentage:    percentage,
		DaysUntilCheckIn:    days,
		CancellationDate:    in.Now,
		CheckInDate:         in.CheckIn,
		IsEligibleForRefund: percentage > model.NoRefundPercentage,
		Reason:              reason(in.Policy.Type, percentage, days),
	}
}

// Forced is the provider-initiated refund, always the full amount paid.
func Forced(bookingID string, policyType model.Type, totalPaid decimal.Decimal, checkIn, now time.Time) model.RefundCalculation {
	return model.RefundCalculation{
		BookingID:           bookingID,
		PolicyType:          policyType,
		TotalPaid:           totalPaid,
		RefundAmount:        totalPaid,
		RefundPercentage:    model.FullRefundPercentage,
		DaysUntilCheckIn:    DaysUntil(now, checkIn),
		CancellationDate:    now,
		CheckInDate:         checkIn,
		IsEligibleForRefund: totalPaid.IsPositive(),
		Reason:              "Cancelled by provider: full refund",
	}
}

// ApplyPercentage scales amount and rounds half away from zero to cents.
func ApplyPercentage(amount decimal.Decimal, percentage int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percentage))).Div(decimal.NewFromInt(percentDivisor)).Round(2)
}

func reason(policyType model.Type, percentage, days int) string {
	switch percentage {
	case model.FullRefundPercentage:
		return fmt.Sprintf("%s policy: Full refund (cancelled %d days before check-in)", policyType.Name(), days)
	case model.NoRefundPercentage:
		return fmt.Sprintf("%s policy: No refund (cancelled %d days before check-in)", policyType.Name(), days)
	default:
		return fmt.Sprintf("%s policy: Partial refund %d%% (cancelled %d days before check-in)", policyType.Name(), percentage, days)
	}
}
