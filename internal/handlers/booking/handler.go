package booking

import (
	"context"
	"net/http"
	"tripavail/infras/otel"
	"tripavail/internal/domains/booking/model/dto"
	"tripavail/internal/domains/booking/service"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/validator"
	"tripavail/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.Post("/hold", handler.Hold)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
		routerGroup.Post("/{id}/cancel/guest", handler.CancelByGuest)
		routerGroup.Post("/{id}/cancel/provider", handler.CancelByProvider)
		routerGroup.Post("/{id}/complete", handler.Complete)
	})
}

// Quote prices a stay and stores it as a 24 hour quote.
// @Summary Create a quote
// @Description Price a hotel or tour package for the given dates and guests. The quote reserves no inventory.
// @Tags Booking
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key, used when the body has none"
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking in QUOTE"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/quote [post]
// @Security BearerAuth
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	key, err := validator.IdempotencyKey(req.IdempotencyKey, request.Header.Get(constant.RequestHeaderIdempotencyKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate idempotency key header")

		response.WithError(writer, err)

		return
	}

	req.IdempotencyKey = key

	booking, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quote")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quote created " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// Hold reserves the quoted nights for 15 minutes.
// @Summary Hold a quote
// @Description Claim inventory for every night of the quote. Either all nights are held or none.
// @Tags Booking
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key, used when the body has none"
// @Param request body dto.HoldRequest true "Hold Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking in HOLD"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/hold [post]
// @Security BearerAuth
func (handler *Handler) Hold(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Hold")
	defer scope.End()

	req := dto.HoldRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	key, err := validator.IdempotencyKey(req.IdempotencyKey, request.Header.Get(constant.RequestHeaderIdempotencyKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate idempotency key header")

		response.WithError(writer, err)

		return
	}

	req.IdempotencyKey = key

	booking, err := handler.service.Hold(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to hold booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking held " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// Confirm captures the payment and confirms the booking.
// @Summary Confirm a booking
// @Description Capture the pre-authorized payment, post the ledger entries and freeze the cancellation policy.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking in CONFIRMED"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "Confirm", "failed to confirm booking", handler.service.Confirm)
}

// CancelByGuest cancels a confirmed booking under its frozen policy.
// @Summary Cancel a booking as the guest
// @Description Refund according to the cancellation policy captured at confirmation and release the inventory.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking in CANCELLED_BY_GUEST with refundCalculation"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel/guest [post]
// @Security BearerAuth
func (handler *Handler) CancelByGuest(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "CancelByGuest", "failed to cancel booking", handler.service.CancelByGuest)
}

// CancelByProvider cancels a confirmed booking with a full refund.
// @Summary Cancel a booking as the provider
// @Description Refund the guest in full regardless of policy and release the inventory.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking in CANCELLED_BY_PROVIDER with refundAmount"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel/provider [post]
// @Security BearerAuth
func (handler *Handler) CancelByProvider(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "CancelByProvider", "failed to cancel booking", handler.service.CancelByProvider)
}

// Complete closes a confirmed booking after the stay.
// @Summary Complete a booking
// @Description Move a confirmed booking to COMPLETED once its check-out date has been reached.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking in COMPLETED"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) Complete(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "Complete", "failed to complete booking", handler.service.Complete)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Visible to the guest, the package provider and admins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetMyBookings lists the caller's bookings.
// @Summary Get my bookings
// @Description Paginated bookings of the authenticated user, optionally filtered by status.
// @Tags Booking
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "created_at, check_in_date, total_price or status"
// @Param sort_dir query string false "ASC or DESC"
// @Param status query string false "Filter by booking status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	bookings, err := handler.service.GetMine(ctx, queryParams, request.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}

type transitionFunc func(ctx context.Context, id string) (dto.BookingResponse, error)

func (handler *Handler) transition(writer http.ResponseWriter, request *http.Request, name, failMsg string, fn transitionFunc) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := fn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Str("trace_id", scope.TraceID()).Msg(failMsg)

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + booking.Status + " by user " + user)

	response.WithJSON(writer, http.StatusOK, booking)
}
