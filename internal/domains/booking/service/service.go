package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"
	"tripavail/config"
	"tripavail/infras/metrics"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/internal/domains/booking/event"
	"tripavail/internal/domains/booking/model"
	"tripavail/internal/domains/booking/model/dto"
	"tripavail/internal/domains/booking/repository"
	catalogModel "tripavail/internal/domains/catalog/model"
	catalogService "tripavail/internal/domains/catalog/service"
	idempotencyModel "tripavail/internal/domains/idempotency/model"
	idempotencyService "tripavail/internal/domains/idempotency/service"
	inventoryModel "tripavail/internal/domains/inventory/model"
	inventoryService "tripavail/internal/domains/inventory/service"
	ledgerService "tripavail/internal/domains/ledger/service"
	paymentDto "tripavail/internal/domains/payment/model/dto"
	paymentService "tripavail/internal/domains/payment/service"
	policyModel "tripavail/internal/domains/policy/model"
	policyService "tripavail/internal/domains/policy/service"
	pricingService "tripavail/internal/domains/pricing/service"
	"tripavail/shared"
	"tripavail/shared/cache"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"
	gModel "tripavail/shared/model"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

const (
	transitionQuote          = "quote"
	transitionHold           = "hold"
	transitionPreAuthorize   = "pre_authorize"
	transitionConfirm        = "confirm"
	transitionCancelGuest    = "cancel_guest"
	transitionCancelProvider = "cancel_provider"
	transitionComplete       = "complete"
	transitionExpire         = "expire"
)

var (
	ErrInvalidPackage    = failure.BadRequestFromString("invalid package")
	ErrNotQuoteOwner     = failure.Forbidden("You do not own this quote")
	ErrQuoteExpired      = failure.BadRequestFromString("Quote has expired")
	ErrHoldExpired       = failure.BadRequestFromString("Hold has expired")
	ErrNotPayer          = failure.Forbidden("You can only pay for your own bookings")
	ErrNotGuest          = failure.Forbidden("You can only cancel your own bookings")
	ErrNotProvider       = failure.Forbidden("You can only manage bookings for your own packages")
	ErrNotViewer         = failure.Forbidden("You can only view your own bookings")
	ErrConcurrentUpdate  = failure.Conflict("booking was modified concurrently")
	ErrMissingActor      = failure.Unauthorized("missing authenticated user")
	ErrCheckOutRequired  = failure.BadRequestFromString("checkOutDate is required for hotel packages")
	ErrCheckInInPast     = failure.BadRequestFromString("checkInDate must not be in the past")
	ErrInvalidStatus     = failure.BadRequestFromString("invalid status filter")
	ErrPolicyUnavailable = failure.Internal("booking has no cancellation policy snapshot")
)

var sortableColumns = []string{constant.FieldCreatedAt, "check_in_date", "total_price", model.FieldStatus}

// Booking is the reservation state machine. Every transition runs in one
// transaction that locks the booking row, so a rejected transition leaves the
// booking, its inventory, payment and ledger untouched.
type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.BookingResponse, error)
	Hold(ctx context.Context, req dto.HoldRequest) (dto.BookingResponse, error)
	PreAuthorize(ctx context.Context, req paymentDto.PreAuthorizeRequest) (paymentDto.PaymentResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	CancelByGuest(ctx context.Context, id string) (dto.BookingResponse, error)
	CancelByProvider(ctx context.Context, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	// ExpireHold moves one overdue HOLD to EXPIRED_HOLD and returns its units.
	// It reports false when the booking is not an overdue hold.
	ExpireHold(ctx context.Context, id string) (bool, error)
	// ExpireHolds expires up to limit overdue holds and returns how many it expired.
	ExpireHolds(ctx context.Context, limit int) (int, error)
}

type serviceImpl struct {
	repo        repository.Booking
	catalog     catalogService.Catalog
	pricing     pricingService.Pricing
	inventory   inventoryService.Inventory
	payment     paymentService.Payment
	ledger      ledgerService.Ledger
	idempotency idempotencyService.Idempotency
	transactor  postgres.Transactor
	publisher   event.Publisher
	metrics     metrics.Metrics
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	catalog catalogService.Catalog,
	pricing pricingService.Pricing,
	inventory inventoryService.Inventory,
	payment paymentService.Payment,
	ledger ledgerService.Ledger,
	idempotency idempotencyService.Idempotency,
	transactor postgres.Transactor,
	publisher event.Publisher,
	metrics metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		catalog:     catalog,
		pricing:     pricing,
		inventory:   inventory,
		payment:     payment,
		ledger:      ledger,
		idempotency: idempotency,
		transactor:  transactor,
		publisher:   publisher,
		metrics:     metrics,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	replayed := false
	defer func() { s.observe(transitionQuote, err, replayed) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	fingerprint := idempotencyService.Fingerprint(req)

	if req.IdempotencyKey != constant.Empty {
		id, found, err := s.idempotency.Lookup(ctx, who.id, idempotencyModel.OperationQuote, req.IdempotencyKey, fingerprint)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if found {
			replayed = true

			return s.load(ctx, id)
		}
	}

	booking, err := s.newQuote(ctx, who, req)
	if err != nil {
		return res, err
	}

	ownerID := booking.ID

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if req.IdempotencyKey != constant.Empty {
			var reserved bool

			ownerID, reserved, err = s.idempotency.ReserveTx(ctx, sqltx, who.id, idempotencyModel.OperationQuote, req.IdempotencyKey, fingerprint, booking.ID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !reserved {
				return nil
			}
		}

		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			log.Error().Err(err).Msg("failed to insert quote")

			return fmt.Errorf("failed to insert quote: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.IdempotencyKey != constant.Empty {
		s.idempotency.Remember(ctx, who.id, idempotencyModel.OperationQuote, req.IdempotencyKey, fingerprint, ownerID)
	}

	if ownerID != booking.ID {
		replayed = true

		return s.load(ctx, ownerID)
	}

	log.Info().Str("booking_id", booking.ID).Str("package_id", booking.PackageID).Str("total", booking.TotalPrice.StringFixed(2)).Msg("quote created")

	s.forget(ctx)
	s.publisher.Publish(ctx, booking, model.EventQuoted)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) newQuote(ctx context.Context, who actor, req dto.QuoteRequest) (model.Booking, error) {
	detail, err := s.catalog.GetPackage(ctx, req.PackageID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return model.Booking{}, ErrInvalidPackage
		}

		return model.Booking{}, err //nolint:wrapcheck
	}

	if !detail.Package.Published() || detail.Package.Type != req.PackageType {
		return model.Booking{}, ErrInvalidPackage
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	now := timezone.Now()
	numberOfRooms := max(req.NumberOfRooms, 1)

	switch req.PackageType {
	case catalogModel.PackageTypeHotel:
		if checkOut.IsZero() {
			return model.Booking{}, ErrCheckOutRequired
		}

		if checkIn.Before(timezone.Date(now)) {
			return model.Booking{}, ErrCheckInInPast
		}
	case catalogModel.PackageTypeTour:
		if checkOut.IsZero() {
			checkOut = checkIn.AddDate(0, 0, max(detail.Package.DurationDays, 1))
		}
	}

	snapshot, err := s.pricing.Quote(pricingService.QuoteInput{
		Detail:           detail,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		NumberOfGuests:   req.NumberOfGuests,
		NumberOfRooms:    numberOfRooms,
		SelectedRoomIDs:  req.SelectedRoomIDs,
		SelectedAddOnIDs: req.SelectedAddOns,
	})
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	rooms, err := claimedRooms(detail, req.SelectedRoomIDs, numberOfRooms)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	currency := detail.Package.Currency
	if currency == constant.Empty {
		currency = s.cfg.Booking.Currency
	}

	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          who.id,
		ProviderID:      detail.Package.ProviderID,
		PackageType:     req.PackageType,
		PackageID:       req.PackageID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		NumberOfRooms:   numberOfRooms,
		SelectedRoomIDs: pq.StringArray(rooms),
		SelectedAddOns:  pq.StringArray(nonNil(req.SelectedAddOns)),
		PriceSnapshot:   snapshot,
		Currency:        currency,
		TotalPrice:      snapshot.Total,
		Status:          model.StatusQuote,
		QuotedAt:        now,
		ExpiresAt:       now.Add(time.Duration(s.cfg.Booking.QuoteTTLHours) * time.Hour),
		IdempotencyKey:  optional(req.IdempotencyKey),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  who.id,
			ModifiedBy: who.id,
		},
	}, nil
}

func (s *serviceImpl) Hold(ctx context.Context, req dto.HoldRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Hold")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	replayed := false
	defer func() { s.observe(transitionHold, err, replayed) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	id := req.Target()
	fingerprint := idempotencyService.Fingerprint(req)

	if req.IdempotencyKey != constant.Empty {
		ownerID, found, err := s.idempotency.Lookup(ctx, who.id, idempotencyModel.OperationHold, req.IdempotencyKey, fingerprint)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if found {
			replayed = true

			return s.load(ctx, ownerID)
		}
	}

	var (
		booking model.Booking
		expired []model.Booking
	)

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		expired = nil

		booking, err = s.lock(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if !booking.OwnedBy(who.id) {
			return ErrNotQuoteOwner
		}

		if req.IdempotencyKey != constant.Empty {
			_, reserved, err := s.idempotency.ReserveTx(ctx, sqltx, who.id, idempotencyModel.OperationHold, req.IdempotencyKey, fingerprint, booking.ID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !reserved {
				replayed = true

				return nil
			}
		}

		now := timezone.Now()

		switch booking.Status {
		case model.StatusQuote:
		case model.StatusHold:
			if booking.HoldExpired(now) {
				return ErrHoldExpired
			}

			replayed = true

			return nil
		default:
			return failure.StateConflict(string(booking.Status), string(model.StatusQuote)) //nolint:wrapcheck
		}

		if !now.Before(booking.ExpiresAt) {
			return ErrQuoteExpired
		}

		requests := claimRequests(booking)

		overdue, err := s.inventory.OverdueHoldsTx(ctx, sqltx, requests, now)
		if err != nil {
			return err //nolint:wrapcheck
		}

		for _, overdueID := range overdue {
			stale, ok, err := s.expireTx(ctx, sqltx, overdueID, now)
			if err != nil {
				return err
			}

			if ok {
				expired = append(expired, stale)
			}
		}

		holdExpiresAt := now.Add(time.Duration(s.cfg.Booking.HoldTTLMinutes) * time.Minute)

		if err := s.inventory.ClaimTx(ctx, sqltx, booking.ID, requests, &holdExpiresAt); err != nil {
			return err //nolint:wrapcheck
		}

		booking, err = s.transitionTx(ctx, sqltx, booking, model.StatusHold, map[string]any{
			model.FieldHeldAt:        now,
			model.FieldHoldExpiresAt: holdExpiresAt,
		}, who.id, now)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.IdempotencyKey != constant.Empty {
		s.idempotency.Remember(ctx, who.id, idempotencyModel.OperationHold, req.IdempotencyKey, fingerprint, booking.ID)
	}

	s.afterExpiry(ctx, expired)

	if !replayed {
		s.forget(ctx, booking.ID)
		s.publisher.Publish(ctx, booking, model.EventHeld)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) PreAuthorize(ctx context.Context, req paymentDto.PreAuthorizeRequest) (res paymentDto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PreAuthorize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	replayed := false
	defer func() { s.observe(transitionPreAuthorize, err, replayed) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	fingerprint := idempotencyService.Fingerprint(req)

	if req.IdempotencyKey != constant.Empty {
		bookingID, found, err := s.idempotency.Lookup(ctx, who.id, idempotencyModel.OperationPreAuthorize, req.IdempotencyKey, fingerprint)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if found {
			replayed = true

			return s.payment.GetByBooking(ctx, bookingID) //nolint:wrapcheck
		}
	}

	var (
		booking model.Booking
		input   paymentService.AuthorizeInput
	)

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lock(ctx, sqltx, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.OwnedBy(who.id) {
			return ErrNotPayer
		}

		if req.IdempotencyKey != constant.Empty {
			_, reserved, err := s.idempotency.ReserveTx(ctx, sqltx, who.id, idempotencyModel.OperationPreAuthorize, req.IdempotencyKey, fingerprint, booking.ID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !reserved {
				replayed = true

				return nil
			}
		}

		now := timezone.Now()

		if booking.Status != model.StatusHold {
			return failure.StateConflict(string(booking.Status), string(model.StatusHold)) //nolint:wrapcheck
		}

		if booking.HoldExpired(now) {
			return failure.StateConflict(string(model.StatusExpiredHold), string(model.StatusHold)) //nolint:wrapcheck
		}

		input = paymentService.AuthorizeInput{
			BookingID:       booking.ID,
			UserID:          who.id,
			Amount:          booking.PriceSnapshot.Total,
			Currency:        booking.Currency,
			PaymentMethodID: req.PaymentMethodID,
			IdempotencyKey:  req.IdempotencyKey,
		}

		payment, err := s.payment.AuthorizeTx(ctx, sqltx, input)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.inventory.FirmTx(ctx, sqltx, booking.ID); err != nil {
			return err //nolint:wrapcheck
		}

		booking, err = s.transitionTx(ctx, sqltx, booking, model.StatusPaymentPending, map[string]any{
			model.FieldPaymentIntentID: payment.PaymentIntentID,
		}, who.id, now)
		if err != nil {
			return err
		}

		res.FromModel(payment)

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusPaymentRequired {
			if recordErr := s.payment.RecordDecline(ctx, input, err.Error()); recordErr != nil {
				log.Error().Err(recordErr).Str("booking_id", input.BookingID).Msg("failed to record declined payment")
			}
		}

		return res, err //nolint:wrapcheck
	}

	if req.IdempotencyKey != constant.Empty {
		s.idempotency.Remember(ctx, who.id, idempotencyModel.OperationPreAuthorize, req.IdempotencyKey, fingerprint, booking.ID)
	}

	if replayed {
		return s.payment.GetByBooking(ctx, booking.ID) //nolint:wrapcheck
	}

	s.forget(ctx, booking.ID)
	s.publisher.Publish(ctx, booking, model.EventPaymentPending)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.observe(transitionConfirm, err, false) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lock(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if !booking.OwnedBy(who.id) && !who.admin() {
			return failure.Forbidden("You can only confirm your own bookings") //nolint:wrapcheck
		}

		if booking.Status != model.StatusPaymentPending {
			return failure.BadRequestFromString(fmt.Sprintf("Cannot confirm booking with status %s. Must be %s.", booking.Status, model.StatusPaymentPending)) //nolint:wrapcheck
		}

		detail, err := s.catalog.GetPackage(ctx, booking.PackageID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		policy, err := policyService.Resolve(detail.Package.CancellationPolicyType, detail.Package.CancellationPolicyJSON)
		if err != nil {
			log.Error().Err(err).Str("package_id", booking.PackageID).Msg("failed to resolve cancellation policy")

			return fmt.Errorf("failed to resolve cancellation policy: %w", err)
		}

		if _, err := s.payment.CaptureTx(ctx, sqltx, booking.ID, booking.PriceSnapshot.Total); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := s.ledger.RecordConfirmationTx(ctx, sqltx, ledgerService.ConfirmationInput{
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			ProviderID: booking.ProviderID,
			Total:      booking.PriceSnapshot.Total,
			Commission: booking.PriceSnapshot.Commission,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		now := timezone.Now()

		booking, err = s.transitionTx(ctx, sqltx, booking, model.StatusConfirmed, map[string]any{
			model.FieldConfirmedAt:            now,
			model.FieldCancellationPolicy:     policy.Type,
			model.FieldCancellationPolicyJSON: policy,
		}, who.id, now)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.forget(ctx, booking.ID)
	s.publisher.Publish(ctx, booking, model.EventConfirmed)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CancelByGuest(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelByGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.observe(transitionCancelGuest, err, false) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	return s.cancel(ctx, id, model.StatusCancelledByGuest, func(booking model.Booking, now time.Time) (policyModel.RefundCalculation, error) {
		if !booking.OwnedBy(who.id) {
			return policyModel.RefundCalculation{}, ErrNotGuest
		}

		if err := requireCancellable(booking); err != nil {
			return policyModel.RefundCalculation{}, err
		}

		policy, err := frozenPolicy(booking)
		if err != nil {
			return policyModel.RefundCalculation{}, err
		}

		return policyService.Calculate(policyService.CalculateInput{
			BookingID: booking.ID,
			Policy:    policy,
			TotalPaid: booking.TotalPrice,
			CheckIn:   booking.CheckInDate,
			Now:       now,
		}), nil
	})
}

func (s *serviceImpl) CancelByProvider(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelByProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.observe(transitionCancelProvider, err, false) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	return s.cancel(ctx, id, model.StatusCancelledByProvider, func(booking model.Booking, now time.Time) (policyModel.RefundCalculation, error) {
		if booking.ProviderID != who.id && !who.admin() {
			return policyModel.RefundCalculation{}, ErrNotProvider
		}

		if err := requireCancellable(booking); err != nil {
			return policyModel.RefundCalculation{}, err
		}

		var policyType policyModel.Type
		if booking.CancellationPolicy != nil {
			policyType = *booking.CancellationPolicy
		}

		return policyService.Forced(booking.ID, policyType, booking.TotalPrice, booking.CheckInDate, now), nil
	})
}

type refundFunc func(booking model.Booking, now time.Time) (policyModel.RefundCalculation, error)

// cancel refunds, reverses the ledger and returns the inventory in the same
// transaction as the status flip. A zero refund skips the processor but still
// posts zero reversals.
func (s *serviceImpl) cancel(ctx context.Context, id string, to model.Status, refund refundFunc) (res dto.BookingResponse, err error) {
	who, _ := actorFrom(ctx)

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lock(ctx, sqltx, id)
		if err != nil {
			return err
		}

		now := timezone.Now()

		calculation, err := refund(booking, now)
		if err != nil {
			return err
		}

		if calculation.RefundAmount.IsPositive() {
			if _, err := s.payment.RefundTx(ctx, sqltx, booking.ID, calculation.RefundAmount); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if _, err := s.ledger.RecordRefundTx(ctx, sqltx, ledgerService.RefundInput{
			BookingID:        booking.ID,
			UserID:           booking.UserID,
			ProviderID:       booking.ProviderID,
			Total:            booking.PriceSnapshot.Total,
			Commission:       booking.PriceSnapshot.Commission,
			RefundPercentage: calculation.RefundPercentage,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := s.inventory.ReleaseTx(ctx, sqltx, booking.ID); err != nil {
			return err //nolint:wrapcheck
		}

		booking, err = s.transitionTx(ctx, sqltx, booking, to, map[string]any{
			model.FieldCancelledAt:       now,
			model.FieldRefundCalculation: calculation,
			model.FieldRefundAmount:      calculation.RefundAmount,
		}, who.id, now)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.forget(ctx, booking.ID)
	s.publisher.Publish(ctx, booking, model.EventCancelled)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.observe(transitionComplete, err, false) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err = s.lock(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if booking.ProviderID != who.id && !who.admin() {
			return ErrNotProvider
		}

		if booking.Status != model.StatusConfirmed {
			return failure.BadRequestFromString(fmt.Sprintf("Cannot complete booking with status %s. Must be %s.", booking.Status, model.StatusConfirmed)) //nolint:wrapcheck
		}

		now := timezone.Now()

		due := booking.CheckOutDate
		if booking.PackageType == catalogModel.PackageTypeTour {
			due = booking.CheckInDate
		}

		if timezone.Date(now).Before(timezone.Date(due)) {
			return failure.BadRequestFromString(fmt.Sprintf("Booking cannot be completed before %s", due.Format(constant.DateOnlyFormat))) //nolint:wrapcheck
		}

		booking, err = s.transitionTx(ctx, sqltx, booking, model.StatusCompleted, map[string]any{
			model.FieldCompletedAt: now,
		}, who.id, now)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.forget(ctx, booking.ID)
	s.publisher.Publish(ctx, booking, model.EventCompleted)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")
	} else {
		res, err = s.load(ctx, id)
		if err != nil {
			return res, err
		}

		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to save booking to cache")
		}
	}

	if res.UserID != who.id && res.ProviderID != who.id && !who.admin() {
		return dto.BookingResponse{}, ErrNotViewer
	}

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	who, err := actorFrom(ctx)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: who.id, Operator: gDto.FilterOperatorEq},
		},
	}

	if status != constant.Empty {
		if !model.Status(status).Valid() {
			return res, ErrInvalidStatus
		}

		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq})
	}

	if !slices.Contains(sortableColumns, params.SortBy) {
		params.SortBy = constant.DefaultValueSortBy
	}

	if params.SortDir != gDto.SortDirAsc {
		params.SortDir = constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) ExpireHold(ctx context.Context, id string) (expired bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExpireHold")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, expired, err = s.expireTx(ctx, sqltx, id, timezone.Now())

		return err
	})
	if err != nil {
		s.observe(transitionExpire, err, false)

		return false, err //nolint:wrapcheck
	}

	if expired {
		s.afterExpiry(ctx, []model.Booking{booking})
	}

	return expired, nil
}

func (s *serviceImpl) ExpireHolds(ctx context.Context, limit int) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExpireHolds")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusHold, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldHoldExpiresAt, Value: timezone.Now(), Operator: gDto.FilterOperatorLessEq},
		},
	}

	params := gDto.QueryParams{Limit: limit, SortBy: model.FieldHoldExpiresAt, SortDir: gDto.SortDirAsc}

	overdue, err := s.repo.GetAll(ctx, params, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to find expired holds")

		return 0, fmt.Errorf("failed to find expired holds: %w", err)
	}

	var errs []error

	for _, booking := range overdue {
		expired, err := s.ExpireHold(ctx, booking.ID)
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to expire hold")

			errs = append(errs, err)

			continue
		}

		if expired {
			count++
		}
	}

	return count, errors.Join(errs...)
}

// expireTx re-checks the hold under the row lock, so a hold paid for in the
// meantime is left alone.
func (s *serviceImpl) expireTx(ctx context.Context, sqltx *sqlx.Tx, id string, now time.Time) (model.Booking, bool, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, false, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty || !booking.HoldExpired(now) {
		return booking, false, nil
	}

	released, err := s.inventory.ReleaseTx(ctx, sqltx, booking.ID)
	if err != nil {
		return booking, false, err //nolint:wrapcheck
	}

	booking, err = s.transitionTx(ctx, sqltx, booking, model.StatusExpiredHold, map[string]any{
		model.FieldExpiredAt: now,
	}, booking.UserID, now)
	if err != nil {
		return booking, false, err
	}

	log.Info().Str("booking_id", booking.ID).Int("released_units", released).Msg("hold expired")

	return booking, true, nil
}

func (s *serviceImpl) afterExpiry(ctx context.Context, expired []model.Booking) {
	if len(expired) == 0 {
		return
	}

	ids := make([]string, len(expired))

	for i, booking := range expired {
		ids[i] = booking.ID

		s.observe(transitionExpire, nil, false)
		s.publisher.Publish(ctx, booking, model.EventExpired)
	}

	s.metrics.ObserveExpiredHolds(len(expired))
	s.forget(ctx, ids...)
}

func (s *serviceImpl) lock(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// transitionTx flips the status only if nobody changed it since we read it,
// then reads the row back.
func (s *serviceImpl) transitionTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, to model.Status, fields map[string]any, by string, now time.Time) (model.Booking, error) {
	fields[model.FieldStatus] = to
	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = by

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: booking.ID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "current_status", Field: model.FieldStatus, Value: booking.Status, Operator: gDto.FilterOperatorEq},
		},
	}

	affected, err := s.repo.UpdateTxCount(ctx, sqltx, fields, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking")

		return booking, fmt.Errorf("failed to update booking: %w", err)
	}

	if affected != 1 {
		return booking, ErrConcurrentUpdate
	}

	updated, err := s.repo.GetTx(ctx, sqltx, shared.FilterByID(booking.ID, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to reload booking")

		return booking, fmt.Errorf("failed to reload booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("from", string(booking.Status)).Str("to", string(to)).Msg("booking transitioned")

	return updated, nil
}

func (s *serviceImpl) forget(ctx context.Context, ids ...string) {
	c := context.WithoutCancel(ctx)

	for _, id := range ids {
		cacheKey := shared.BuildCacheKey(cacheGetBooking, id)
		if err := s.cache.Delete(c, cacheKey); err != nil {
			log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to delete booking cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
}

func (s *serviceImpl) observe(transition string, err error, replayed bool) {
	switch {
	case err == nil && replayed:
		s.metrics.ObserveTransition(transition, metrics.OutcomeReplayed)
	case err == nil:
		s.metrics.ObserveTransition(transition, metrics.OutcomeSuccess)
	case failure.GetCode(err) < http.StatusInternalServerError:
		s.metrics.ObserveTransition(transition, metrics.OutcomeRejected)
	default:
		s.metrics.ObserveTransition(transition, metrics.OutcomeFailed)
	}
}

func requireCancellable(booking model.Booking) error {
	if booking.Status != model.StatusConfirmed {
		return failure.BadRequestFromString(fmt.Sprintf("Cannot cancel booking with status %s. Only %s bookings can be cancelled.", booking.Status, model.StatusConfirmed)) //nolint:wrapcheck
	}

	return nil
}

// frozenPolicy is the snapshot taken at confirmation, never the live policy.
func frozenPolicy(booking model.Booking) (policyModel.Policy, error) {
	if booking.CancellationPolicyJSON != nil {
		return *booking.CancellationPolicyJSON, nil
	}

	if booking.CancellationPolicy != nil {
		return policyService.Preset(*booking.CancellationPolicy) //nolint:wrapcheck
	}

	return policyModel.Policy{}, ErrPolicyUnavailable
}

// claimRequests lists the units a hold takes. Tours claim one departure unit
// per guest on the check-in date, hotels one unit per room per night.
func claimRequests(booking model.Booking) []inventoryModel.Request {
	if booking.PackageType == catalogModel.PackageTypeTour {
		requests := make([]inventoryModel.Request, 0, len(booking.SelectedRoomIDs))
		for _, roomID := range booking.SelectedRoomIDs {
			requests = append(requests, inventoryModel.Request{RoomID: roomID, Date: booking.CheckInDate, Units: booking.NumberOfGuests})
		}

		return requests
	}

	nights := inventoryModel.Nights(booking.CheckInDate, booking.CheckOutDate)
	requests := make([]inventoryModel.Request, 0, len(nights)*len(booking.SelectedRoomIDs))

	for _, roomID := range booking.SelectedRoomIDs {
		for _, night := range nights {
			requests = append(requests, inventoryModel.Request{RoomID: roomID, Date: night, Units: 1})
		}
	}

	return requests
}

// claimedRooms resolves the room units a quote will hold, one id per unit.
func claimedRooms(detail catalogModel.Detail, selected []string, numberOfRooms int) ([]string, error) {
	if detail.Package.Type == catalogModel.PackageTypeTour {
		room, ok := detail.DefaultRoom()
		if !ok {
			return nil, pricingService.ErrNoRooms
		}

		return []string{room.ID}, nil
	}

	rooms, err := pricingService.SelectRooms(detail, selected, numberOfRooms)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	return ids, nil
}

type actor struct {
	id   string
	role string
}

func (a actor) admin() bool {
	return a.role == constant.RoleAdmin || a.role == constant.RoleSuperAdmin
}

func actorFrom(ctx context.Context) (actor, error) {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if id == constant.Empty {
		return actor{}, ErrMissingActor
	}

	return actor{id: id, role: role}, nil
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
