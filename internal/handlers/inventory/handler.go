package inventory

import (
	"net/http"
	"tripavail/infras/otel"
	"tripavail/internal/domains/inventory/model/dto"
	"tripavail/internal/domains/inventory/service"
	"tripavail/shared/constant"
	"tripavail/shared/failure"
	"tripavail/shared/validator"
	"tripavail/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms/{id}/availability", handler.GetAvailability)
	})
}

// GetAvailability lists the nightly inventory of a room.
// @Summary Get room availability
// @Description Nights from the from date up to, but excluding, the to date.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param from query string true "First night (YYYY-MM-DD)"
// @Param to query string true "Exclusive end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Nightly availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/rooms/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	roomID := chi.URLParam(request, constant.RequestParamID)

	req := dto.AvailabilityRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(writer, err)

		return
	}

	from, to, err := req.Range()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability range")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	nights, err := handler.service.Availability(ctx, roomID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	res := dto.AvailabilityResponse{}
	res.FromModels(roomID, nights)

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
