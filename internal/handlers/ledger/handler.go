package ledger

import (
	"net/http"
	"tripavail/infras/otel"
	bookingService "tripavail/internal/domains/booking/service"
	"tripavail/internal/domains/ledger/service"
	"tripavail/shared/constant"
	"tripavail/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	booking bookingService.Booking
	service service.Ledger
	otel    otel.Otel
}

func New(booking bookingService.Booking, service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		booking: booking,
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ledger", func(routerGroup chi.Router) {
		routerGroup.Get("/bookings/{id}", handler.GetBookingEntries)
		routerGroup.Post("/bookings/{id}/export", handler.ExportBookingStatement)
		routerGroup.Get("/accounts/{account}/balance", handler.GetAccountBalance)
		routerGroup.Get("/providers/{id}/earnings", handler.GetProviderEarnings)
		routerGroup.Get("/platform/revenue", handler.GetPlatformRevenue)
	})
}

// GetBookingEntries lists the ledger entries of a booking.
// @Summary Get booking ledger
// @Description Entries in posting order with the net movement of every account touched.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingLedgerResponse] "Booking ledger"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingEntries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingEntries")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if _, err := handler.booking.Get(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	ledger, err := handler.service.GetBookingEntries(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking ledger")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking ledger retrieved successfully")

	response.WithJSON(writer, http.StatusOK, ledger)
}

// ExportBookingStatement uploads a CSV statement of a booking.
// @Summary Export booking statement
// @Description Render the booking's ledger entries as CSV and store them in object storage.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ExportResponse] "Statement location"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/bookings/{id}/export [post]
// @Security BearerAuth
func (handler *Handler) ExportBookingStatement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookingStatement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	export, err := handler.service.ExportBookingStatement(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to export booking statement")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking statement exported to " + export.URL)

	response.WithJSON(writer, http.StatusOK, export)
}

// GetAccountBalance returns the totals of any ledger account.
// @Summary Get account balance
// @Description Accounts are platform:escrow, platform:revenue, traveler:{id} or provider:{id}.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param account path string true "Account name"
// @Success 200 {object} response.Data[dto.BalanceResponse] "Account balance"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/accounts/{account}/balance [get]
// @Security BearerAuth
func (handler *Handler) GetAccountBalance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccountBalance")
	defer scope.End()

	account := chi.URLParam(request, constant.RequestParamAccount)

	balance, err := handler.service.GetAccountBalance(ctx, account)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("account", account).Msg("failed to get account balance")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Account balance retrieved successfully")

	response.WithJSON(writer, http.StatusOK, balance)
}

// GetProviderEarnings returns a provider's net earnings.
// @Summary Get provider earnings
// @Description Providers may only read their own earnings.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Data[dto.EarningsResponse] "Provider earnings"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/providers/{id}/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetProviderEarnings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderEarnings")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	earnings, err := handler.service.GetProviderEarnings(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("provider_id", id).Msg("failed to get provider earnings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Provider earnings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, earnings)
}

// GetPlatformRevenue returns the platform's commission totals.
// @Summary Get platform revenue
// @Tags Ledger
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RevenueResponse] "Platform revenue"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/platform/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetPlatformRevenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlatformRevenue")
	defer scope.End()

	revenue, err := handler.service.GetPlatformRevenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get platform revenue")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Platform revenue retrieved successfully")

	response.WithJSON(writer, http.StatusOK, revenue)
}
