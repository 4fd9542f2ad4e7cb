package payment

import (
	"net/http"
	"tripavail/infras/otel"
	bookingService "tripavail/internal/domains/booking/service"
	"tripavail/internal/domains/payment/model/dto"
	"tripavail/internal/domains/payment/service"
	"tripavail/shared/constant"
	"tripavail/shared/validator"
	"tripavail/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	booking bookingService.Booking
	service service.Payment
	otel    otel.Otel
}

func New(booking bookingService.Booking, service service.Payment, otel otel.Otel) Handler {
	return Handler{
		booking: booking,
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/pre-authorize", handler.PreAuthorize)
		routerGroup.Get("/bookings/{id}", handler.GetByBooking)
	})
}

// PreAuthorize authorizes the held amount with the processor.
// @Summary Pre-authorize a held booking
// @Description Authorize the booking total with manual capture and move the booking to PAYMENT_PENDING. A declined card leaves the booking in HOLD.
// @Tags Payment
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key, used when the body has none"
// @Param request body dto.PreAuthorizeRequest true "Pre-authorize Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment in PRE_AUTHORIZED"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/pre-authorize [post]
// @Security BearerAuth
func (handler *Handler) PreAuthorize(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreAuthorize")
	defer scope.End()

	req := dto.PreAuthorizeRequest{}

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

	payment, err := handler.booking.PreAuthorize(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to pre-authorize payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment pre-authorized for booking " + payment.BookingID)

	response.WithJSON(writer, http.StatusCreated, payment)
}

// GetByBooking retrieves the live payment of a booking.
// @Summary Get the payment of a booking
// @Description Visible to whoever may view the booking.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetByBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if _, err := handler.booking.Get(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	payment, err := handler.service.GetByBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(writer, http.StatusOK, payment)
}
