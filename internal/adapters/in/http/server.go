// Package http exposes the request lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases; domain
// errors map onto status codes in one place so every endpoint reports
// conflicts and validation failures the same way.
package http

import (
	"errors"
	"net/http"

	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/core/application/usecases/queries"
	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the request lifecycle.
type Server struct {
	// Command handlers
	approvePickupHandler     commands.ApprovePickupCommandHandler
	approvePickupByIDHandler commands.ApprovePickupByIDCommandHandler
	approveDeliveryHandler   commands.ApproveDeliveryCommandHandler
	markInTransitHandler     commands.MarkInTransitCommandHandler
	markDeliveredHandler     commands.MarkDeliveredCommandHandler
	proposePickupDateHandler commands.ProposePickupDateCommandHandler

	// Query handlers
	getOpenRequestsHandler   queries.GetOpenRequestsQueryHandler
	getRequestHistoryHandler queries.GetRequestHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	approvePickupHandler commands.ApprovePickupCommandHandler,
	approvePickupByIDHandler commands.ApprovePickupByIDCommandHandler,
	approveDeliveryHandler commands.ApproveDeliveryCommandHandler,
	markInTransitHandler commands.MarkInTransitCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	proposePickupDateHandler commands.ProposePickupDateCommandHandler,
	getOpenRequestsHandler queries.GetOpenRequestsQueryHandler,
	getRequestHistoryHandler queries.GetRequestHistoryQueryHandler,
) *Server {
	return &Server{
		approvePickupHandler:     approvePickupHandler,
		approvePickupByIDHandler: approvePickupByIDHandler,
		approveDeliveryHandler:   approveDeliveryHandler,
		markInTransitHandler:     markInTransitHandler,
		markDeliveredHandler:     markDeliveredHandler,
		proposePickupDateHandler: proposePickupDateHandler,
		getOpenRequestsHandler:   getOpenRequestsHandler,
		getRequestHistoryHandler: getRequestHistoryHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/pickups/approve", s.ApprovePickup)
	api.POST("/pickups/propose-date", s.ProposePickupDate)
	api.POST("/requests/:requestId/approve-pickup", s.ApprovePickupByID)
	api.POST("/requests/:requestId/approve-delivery", s.ApproveDelivery)
	api.POST("/requests/:requestId/in-transit", s.MarkInTransit)
	api.POST("/requests/:requestId/delivered", s.MarkDelivered)
	api.GET("/requests/open", s.GetOpenRequests)
	api.GET("/requests/:requestId/history", s.GetRequestHistory)
}

// ApprovePickup handles POST /api/v1/pickups/approve.
// Approves the latest pending pickup of a client+vehicle pair.
func (s *Server) ApprovePickup(ctx echo.Context) error {
	var body ApprovePickupRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "clientId is not a valid UUID")
	}
	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicleId is not a valid UUID")
	}

	cmd, err := commands.NewApprovePickupCommand(clientID, vehicleID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	requestID, err := s.approvePickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RequestIDResponse{RequestID: requestID.String()})
}

// ApprovePickupByID handles POST /api/v1/requests/:requestId/approve-pickup.
func (s *Server) ApprovePickupByID(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	requestID, err := requestIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApprovePickupByIDCommand(requestID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	id, err := s.approvePickupByIDHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RequestIDResponse{RequestID: id.String()})
}

// ApproveDelivery handles POST /api/v1/requests/:requestId/approve-delivery.
func (s *Server) ApproveDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	requestID, err := requestIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveDeliveryCommand(requestID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.approveDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkInTransit handles POST /api/v1/requests/:requestId/in-transit.
// A no-op for pickup requests, which have no transit leg.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	requestID, err := requestIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkInTransitCommand(requestID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markInTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/requests/:requestId/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	requestID, err := requestIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDeliveredCommand(requestID, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProposePickupDate handles POST /api/v1/pickups/propose-date.
func (s *Server) ProposePickupDate(ctx echo.Context) error {
	var body ProposePickupDateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "clientId is not a valid UUID")
	}
	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicleId is not a valid UUID")
	}

	cmd, err := commands.NewProposePickupDateCommand(clientID, vehicleID, body.ProposedDate, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.proposePickupDateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenRequests handles GET /api/v1/requests/open.
func (s *Server) GetOpenRequests(ctx echo.Context) error {
	query := queries.NewGetOpenRequestsQuery()

	open, err := s.getOpenRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OpenRequest, len(open))
	for i, req := range open {
		var desiredDate *string
		if req.DesiredDate != nil {
			d := req.DesiredDate.Format(request.DateLayout)
			desiredDate = &d
		}

		response[i] = OpenRequest{
			ID:          req.ID.String(),
			VehicleID:   req.VehicleID.String(),
			ClientID:    req.ClientID.String(),
			Kind:        req.Kind.String(),
			Status:      req.Status.String(),
			DesiredDate: desiredDate,
			WindowStart: req.WindowStart,
			WindowEnd:   req.WindowEnd,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRequestHistory handles GET /api/v1/requests/:requestId/history.
func (s *Server) GetRequestHistory(ctx echo.Context) error {
	requestID, err := requestIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetRequestHistoryQuery(requestID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.getRequestHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]HistoryEntry, len(history))
	for i, entry := range history {
		response[i] = HistoryEntry{
			Type:       string(entry.Type),
			StatusFrom: entry.StatusFrom.String(),
			StatusTo:   entry.StatusTo.String(),
			ActorID:    entry.ActorID.String(),
			ActorRole:  string(entry.ActorRole),
			Notes:      entry.Notes,
			OccurredAt: entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("X-Actor-Id header is required")
	}

	actorID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("X-Actor-Id is not a valid UUID")
	}
	return actorID, nil
}

func requestIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return kernel.UUID{}, errors.New("requestId is not a valid UUID")
	}
	return requestID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain errors onto HTTP status codes: unknown objects are
// 404, validation failures 400, lost-update conflicts 409, everything else 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrPreconditionFailed):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
