package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tripavail/infras/otel"
	"tripavail/infras/processor"
	"tripavail/internal/domains/payment/model"
	"tripavail/internal/domains/payment/model/dto"
	"tripavail/internal/domains/payment/repository"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"
	gModel "tripavail/shared/model"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	keyPrefixAuthorize = "authorize"
	keyPrefixCapture   = "capture"
	keyPrefixRefund    = "refund"
)

var ErrAlreadyPaid = failure.BadRequestFromString("Booking already has a payment")

type AuthorizeInput struct {
	BookingID       string
	UserID          string
	Amount          decimal.Decimal
	Currency        string
	PaymentMethodID string
	IdempotencyKey  string
}

// Payment drives the external processor. Processor calls carry keys derived
// from the booking, so a retried transaction never authorizes, captures or
// refunds twice.
type Payment interface {
	AuthorizeTx(ctx context.Context, sqltx *sqlx.Tx, in AuthorizeInput) (model.Payment, error)
	CaptureTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, amount decimal.Decimal) (model.Payment, error)
	RefundTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, amount decimal.Decimal) (model.Payment, error)
	RecordDecline(ctx context.Context, in AuthorizeInput, reason string) error
	GetByBooking(ctx context.Context, bookingID string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo      repository.Payment
	processor processor.Processor
	otel      otel.Otel
}

func New(repo repository.Payment, processor processor.Processor, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:      repo,
		processor: processor,
		otel:      otel,
	}
}

// ProcessorKey scopes a processor idempotency key to one booking.
func ProcessorKey(prefix, bookingID string, parts ...string) string {
	key := prefix + ":" + bookingID
	for _, part := range parts {
		key += ":" + part
	}

	return key
}

func (s *serviceImpl) AuthorizeTx(ctx context.Context, sqltx *sqlx.Tx, in AuthorizeInput) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.AuthorizeTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.GetForUpdateTx(ctx, sqltx, liveByBooking(in.BookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if existing.ID != constant.Empty {
		return res, ErrAlreadyPaid
	}

	intent, err := s.processor.Authorize(ctx, processor.AuthorizeRequest{
		Amount:          in.Amount,
		Currency:        in.Currency,
		PaymentMethodID: in.PaymentMethodID,
		Reference:       in.BookingID,
		IdempotencyKey:  ProcessorKey(keyPrefixAuthorize, in.BookingID, in.PaymentMethodID),
	})
	if err != nil {
		return res, processorFailure(err, "failed to authorize payment")
	}

	now := timezone.Now()
	res = model.Payment{
		ID:              uuid.NewString(),
		BookingID:       in.BookingID,
		UserID:          in.UserID,
		Status:          model.StatusPreAuthorized,
		Amount:          in.Amount,
		Currency:        in.Currency,
		PaymentMethodID: in.PaymentMethodID,
		PaymentIntentID: intent.ID,
		IdempotencyKey:  optional(in.IdempotencyKey),
		RefundAmount:    decimal.Zero,
		AuthorizedAt:    &now,
		Metadata:        metadata(in.UserID, now),
	}

	if err = s.repo.InsertTx(ctx, sqltx, res); err != nil {
		log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to insert payment")

		return res, fmt.Errorf("failed to insert payment: %w", err)
	}

	log.Info().Str("booking_id", in.BookingID).Str("payment_intent_id", intent.ID).Msg("payment pre-authorized")

	return res, nil
}

// CaptureTx returns a payment already captured unchanged.
func (s *serviceImpl) CaptureTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, amount decimal.Decimal) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CaptureTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.lockLive(ctx, sqltx, bookingID)
	if err != nil {
		return res, err
	}

	switch res.Status {
	case model.StatusCaptured:
		return res, nil
	case model.StatusPreAuthorized:
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("Cannot capture payment with status %s", res.Status)) //nolint:wrapcheck
	}

	if !amount.Equal(res.Amount) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Capture amount %s does not match authorized amount %s", amount.StringFixed(2), res.Amount.StringFixed(2))) //nolint:wrapcheck
	}

	if _, err = s.processor.Capture(ctx, res.PaymentIntentID, amount, ProcessorKey(keyPrefixCapture, bookingID)); err != nil {
		return res, processorFailure(err, "failed to capture payment")
	}

	now := timezone.Now()

	if err = s.transition(ctx, sqltx, res, model.StatusCaptured, map[string]any{
		model.FieldCapturedAt: now,
	}, now); err != nil {
		return res, err
	}

	res.Status = model.StatusCaptured
	res.CapturedAt = &now

	return res, nil
}

// RefundTx refunds once per booking. A second call returns the refunded payment.
func (s *serviceImpl) RefundTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, amount decimal.Decimal) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.RefundTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.lockLive(ctx, sqltx, bookingID)
	if err != nil {
		return res, err
	}

	switch res.Status {
	case model.StatusRefunded:
		return res, nil
	case model.StatusCaptured:
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("Cannot refund payment with status %s", res.Status)) //nolint:wrapcheck
	}

	if !amount.IsPositive() || amount.GreaterThan(res.Amount) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Refund amount must be between 0.01 and %s", res.Amount.StringFixed(2))) //nolint:wrapcheck
	}

	if _, err = s.processor.Refund(ctx, res.PaymentIntentID, amount, ProcessorKey(keyPrefixRefund, bookingID)); err != nil {
		return res, processorFailure(err, "failed to refund payment")
	}

	now := timezone.Now()

	if err = s.transition(ctx, sqltx, res, model.StatusRefunded, map[string]any{
		model.FieldRefundAmount: amount,
		model.FieldRefundedAt:   now,
	}, now); err != nil {
		return res, err
	}

	res.Status = model.StatusRefunded
	res.RefundAmount = amount
	res.RefundedAt = &now

	return res, nil
}

// RecordDecline keeps a FAILED attempt after its transaction rolled back.
func (s *serviceImpl) RecordDecline(ctx context.Context, in AuthorizeInput, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.RecordDecline")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	err = s.repo.Insert(ctx, model.Payment{
		ID:              uuid.NewString(),
		BookingID:       in.BookingID,
		UserID:          in.UserID,
		Status:          model.StatusFailed,
		Amount:          in.Amount,
		Currency:        in.Currency,
		PaymentMethodID: in.PaymentMethodID,
		RefundAmount:    decimal.Zero,
		FailureReason:   reason,
		Metadata:        metadata(in.UserID, now),
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to record declined payment")

		return fmt.Errorf("failed to record declined payment: %w", err)
	}

	return nil
}

// GetByBooking returns the booking's live payment to its payer or an admin.
func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.Get(ctx, liveByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") //nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if payment.UserID != userID && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return res, failure.Forbidden("You can only view your own payments") //nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) lockLive(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (model.Payment, error) {
	payment, err := s.repo.GetForUpdateTx(ctx, sqltx, liveByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock payment")

		return payment, fmt.Errorf("failed to lock payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, failure.NotFound("payment not found") //nolint:wrapcheck
	}

	return payment, nil
}

func (s *serviceImpl) transition(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment, to model.Status, fields map[string]any, now time.Time) error {
	fields[model.FieldStatus] = to
	fields[constant.FieldModifiedAt] = now

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: payment.ID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "current_status", Field: model.FieldStatus, Value: payment.Status, Operator: gDto.FilterOperatorEq},
		},
	}

	affected, err := s.repo.UpdateTxCount(ctx, sqltx, fields, filter)
	if err != nil {
		log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	if affected != 1 {
		return failure.Conflict("payment was modified concurrently") //nolint:wrapcheck
	}

	log.Info().Str("payment_id", payment.ID).Str("from", string(payment.Status)).Str("to", string(to)).Msg("payment transitioned")

	return nil
}

func processorFailure(err error, msg string) error {
	if errors.Is(err, processor.ErrDeclined) {
		log.Warn().Err(err).Msg("payment declined")

		return failure.PaymentDeclined(err.Error()) //nolint:wrapcheck
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

func liveByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusFailed, Operator: gDto.FilterOperatorNotEq},
		},
	}
}

func metadata(userID string, now time.Time) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  userID,
		ModifiedBy: userID,
	}
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}
