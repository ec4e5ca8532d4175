package http

import (
	"errors"
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the logistics use cases over HTTP.
// It coordinates between echo handlers and application command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	createOrderParcelsHandler commands.CreateOrderParcelsCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	createUnitHandler         commands.CreateUnitCommandHandler
	loadParcelHandler         commands.LoadParcelCommandHandler
	unloadParcelHandler       commands.UnloadParcelCommandHandler
	loadOrderParcelsHandler   commands.LoadOrderParcelsCommandHandler
	loadPalletHandler         commands.LoadPalletIntoDispatchCommandHandler
	sealPalletHandler         commands.SealPalletCommandHandler
	unsealPalletHandler       commands.UnsealPalletCommandHandler
	changeDispatchHandler     commands.ChangeDispatchStatusCommandHandler
	changeTransportHandler    commands.ChangeTransportStatusCommandHandler
	receiveParcelHandler      commands.ReceiveParcelInWarehouseCommandHandler
	assignDeliveryHandler     commands.AssignDeliveryCommandHandler
	recordAttemptHandler      commands.RecordDeliveryAttemptCommandHandler

	// Query handlers
	trackParcelHandler   queries.TrackParcelQueryHandler
	parcelHistoryHandler queries.GetParcelHistoryQueryHandler
	unitParcelsHandler   queries.GetUnitParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createOrderParcelsHandler commands.CreateOrderParcelsCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createUnitHandler commands.CreateUnitCommandHandler,
	loadParcelHandler commands.LoadParcelCommandHandler,
	unloadParcelHandler commands.UnloadParcelCommandHandler,
	loadOrderParcelsHandler commands.LoadOrderParcelsCommandHandler,
	loadPalletHandler commands.LoadPalletIntoDispatchCommandHandler,
	sealPalletHandler commands.SealPalletCommandHandler,
	unsealPalletHandler commands.UnsealPalletCommandHandler,
	changeDispatchHandler commands.ChangeDispatchStatusCommandHandler,
	changeTransportHandler commands.ChangeTransportStatusCommandHandler,
	receiveParcelHandler commands.ReceiveParcelInWarehouseCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	recordAttemptHandler commands.RecordDeliveryAttemptCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	parcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	unitParcelsHandler queries.GetUnitParcelsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		createOrderParcelsHandler: createOrderParcelsHandler,
		deleteOrderHandler:        deleteOrderHandler,
		createUnitHandler:         createUnitHandler,
		loadParcelHandler:         loadParcelHandler,
		unloadParcelHandler:       unloadParcelHandler,
		loadOrderParcelsHandler:   loadOrderParcelsHandler,
		loadPalletHandler:         loadPalletHandler,
		sealPalletHandler:         sealPalletHandler,
		unsealPalletHandler:       unsealPalletHandler,
		changeDispatchHandler:     changeDispatchHandler,
		changeTransportHandler:    changeTransportHandler,
		receiveParcelHandler:      receiveParcelHandler,
		assignDeliveryHandler:     assignDeliveryHandler,
		recordAttemptHandler:      recordAttemptHandler,
		trackParcelHandler:        trackParcelHandler,
		parcelHistoryHandler:      parcelHistoryHandler,
		unitParcelsHandler:        unitParcelsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/parcels", s.CreateOrderParcels)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/units", s.CreateUnit)
	api.POST("/units/:kind/:id/parcels", s.LoadParcel)
	api.DELETE("/units/:kind/:id/parcels/:code", s.UnloadParcel)
	api.POST("/units/:kind/:id/orders", s.LoadOrderParcels)
	api.POST("/units/:kind/:id/status", s.ChangeUnitStatus)
	api.GET("/units/:kind/:id/parcels", s.GetUnitParcels)

	api.POST("/pallets/:id/seal", s.SealPallet)
	api.POST("/pallets/:id/unseal", s.UnsealPallet)
	api.POST("/dispatches/:id/pallets", s.LoadPalletIntoDispatch)

	api.POST("/warehouses/:id/parcels", s.ReceiveParcelInWarehouse)

	api.POST("/deliveries", s.AssignDelivery)
	api.POST("/deliveries/attempts", s.RecordDeliveryAttempt)

	api.GET("/parcels/:code", s.TrackParcel)
	api.GET("/parcels/:code/history", s.GetParcelHistory)
}

// CreateOrder handles POST /api/v1/orders - opens an empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agencyID, err := kernel.UUIDFromString(req.AgencyID)
	if err != nil {
		return badRequest(ctx, "Invalid agency id: "+err.Error())
	}
	service, err := parseServiceKind(req.Service)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(agencyID, req.CustomerName, service)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrderResponse{
		ID:     created.ID.String(),
		Number: created.Number,
	})
}

// CreateOrderParcels handles POST /api/v1/orders/:id/parcels - order intake.
func (s *Server) CreateOrderParcels(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req IntakeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		weight, weightErr := kernel.NewWeightFromString(item.Weight)
		if weightErr != nil {
			return writeError(ctx, weightErr)
		}
		items = append(items, commands.OrderItem{
			Description: item.Description,
			Weight:      weight,
		})
	}

	cmd, err := commands.NewCreateOrderParcelsCommand(orderID, req.AgencyCode, items, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	codes, err := s.createOrderParcelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IntakeResponse{TrackingCodes: codes})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - soft-deletes an order and
// its parcels.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateUnit handles POST /api/v1/units - creates a containment unit.
func (s *Server) CreateUnit(ctx echo.Context) error {
	var req CreateUnitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := parseContainmentKind(req.Kind)
	if err != nil {
		return writeError(ctx, err)
	}
	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}

	cmd, err := commands.NewCreateUnitCommand(kind, ownerID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createUnitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedUnitResponse{
		ID:     created.ID.String(),
		Number: created.Number,
	})
}

// LoadParcel handles POST /api/v1/units/:kind/:id/parcels - attaches one
// parcel to a unit.
func (s *Server) LoadParcel(ctx echo.Context) error {
	kind, unitID, err := unitRef(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req LoadParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewLoadParcelCommand(kind, unitID, req.TrackingCode, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.loadParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnloadParcel handles DELETE /api/v1/units/:kind/:id/parcels/:code -
// detaches one parcel from a unit. The acting operator comes from the
// actorId query parameter because DELETE carries no body. Container and
// flight removals name the warehouse that takes the parcel back through the
// warehouseId query parameter.
func (s *Server) UnloadParcel(ctx echo.Context) error {
	kind, unitID, err := unitRef(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	actorID, err := kernel.UUIDFromString(ctx.QueryParam("actorId"))
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	warehouseID, err := optionalID(ctx.QueryParam("warehouseId"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id: "+err.Error())
	}

	cmd, err := commands.NewUnloadParcelCommand(kind, unitID, ctx.Param("code"), actorID, warehouseID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.unloadParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LoadOrderParcels handles POST /api/v1/units/:kind/:id/orders - loads every
// eligible parcel of an order into the unit.
func (s *Server) LoadOrderParcels(ctx echo.Context) error {
	kind, unitID, err := unitRef(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req LoadOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewLoadOrderParcelsCommand(kind, unitID, orderID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.loadOrderParcelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkResponse{Loaded: result.Loaded, Skipped: result.Skipped})
}

// ChangeUnitStatus handles POST /api/v1/units/:kind/:id/status - advances a
// dispatch or transport unit through its lifecycle.
func (s *Server) ChangeUnitStatus(ctx echo.Context) error {
	kind, unitID, err := unitRef(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	var warehouseID *kernel.UUID
	if req.WarehouseID != "" {
		id, idErr := kernel.UUIDFromString(req.WarehouseID)
		if idErr != nil {
			return badRequest(ctx, "Invalid warehouse id: "+idErr.Error())
		}
		warehouseID = &id
	}

	switch kind {
	case parcel.ContainmentDispatch:
		status, statusErr := parseDispatchStatus(req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		cmd, cmdErr := commands.NewChangeDispatchStatusCommand(unitID, status, warehouseID, actorID)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.changeDispatchHandler.Handle(ctx.Request().Context(), cmd)
	case parcel.ContainmentContainer, parcel.ContainmentFlight:
		status, statusErr := parseTransportStatus(req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		cmd, cmdErr := commands.NewChangeTransportStatusCommand(kind, unitID, status, warehouseID, actorID)
		if cmdErr != nil {
			return writeError(ctx, cmdErr)
		}
		err = s.changeTransportHandler.Handle(ctx.Request().Context(), cmd)
	default:
		return badRequest(ctx, "Pallets change status through seal and unseal")
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SealPallet handles POST /api/v1/pallets/:id/seal.
func (s *Server) SealPallet(ctx echo.Context) error {
	palletID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid pallet id: "+err.Error())
	}

	cmd, err := commands.NewSealPalletCommand(palletID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.sealPalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnsealPallet handles POST /api/v1/pallets/:id/unseal.
func (s *Server) UnsealPallet(ctx echo.Context) error {
	palletID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid pallet id: "+err.Error())
	}

	cmd, err := commands.NewUnsealPalletCommand(palletID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.unsealPalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LoadPalletIntoDispatch handles POST /api/v1/dispatches/:id/pallets - loads
// a sealed pallet's parcels into the dispatch.
func (s *Server) LoadPalletIntoDispatch(ctx echo.Context) error {
	dispatchID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid dispatch id: "+err.Error())
	}

	var req LoadPalletRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	palletID, err := kernel.UUIDFromString(req.PalletID)
	if err != nil {
		return badRequest(ctx, "Invalid pallet id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewLoadPalletIntoDispatchCommand(palletID, dispatchID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.loadPalletHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkResponse{Loaded: result.Loaded, Skipped: result.Skipped})
}

// ReceiveParcelInWarehouse handles POST /api/v1/warehouses/:id/parcels.
func (s *Server) ReceiveParcelInWarehouse(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id: "+err.Error())
	}

	var req ReceiveParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewReceiveParcelInWarehouseCommand(warehouseID, req.TrackingCode, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.receiveParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/deliveries - books a parcel for
// last-mile delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var req AssignDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}
	routeID, err := optionalID(req.RouteID)
	if err != nil {
		return badRequest(ctx, "Invalid route id: "+err.Error())
	}
	courierID, err := optionalID(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewAssignDeliveryCommand(req.TrackingCode, routeID, courierID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordDeliveryAttempt handles POST /api/v1/deliveries/attempts.
func (s *Server) RecordDeliveryAttempt(ctx echo.Context) error {
	var req RecordAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(
		req.TrackingCode, req.Delivered, req.RecipientName, req.Note, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordAttemptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackParcel handles GET /api/v1/parcels/:code - public tracking lookup.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ParcelResponse{
		ID:              found.ID.String(),
		TrackingCode:    found.TrackingCode,
		Description:     found.Description,
		Weight:          found.Weight.String(),
		Service:         found.Service,
		AgencyID:        found.AgencyID.String(),
		OrderID:         optionalString(found.OrderID),
		Status:          found.Status,
		StatusDetail:    found.StatusDetail,
		ContainmentKind: found.ContainmentKind,
		ContainmentID:   optionalString(found.ContainmentID),
	})
}

// GetParcelHistory handles GET /api/v1/parcels/:code/history - the parcel's
// event trail. With public=1 internal events are filtered out and messages
// are replaced with their customer-facing text.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	publicOnly := ctx.QueryParam("public") == "1"
	query, err := queries.NewGetParcelHistoryQuery(ctx.Param("code"), publicOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.parcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(history))
	for i, entry := range history {
		response[i] = HistoryEntryResponse{
			EventType:       entry.EventType,
			ResultingStatus: entry.ResultingStatus,
			Message:         entry.Message,
			UnitKind:        entry.UnitKind,
			UnitID:          optionalString(entry.UnitID),
			OccurredAt:      entry.OccurredAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnitParcels handles GET /api/v1/units/:kind/:id/parcels - lists the
// parcels currently attached to a unit.
func (s *Server) GetUnitParcels(ctx echo.Context) error {
	kind, unitID, err := unitRef(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUnitParcelsQuery(kind, unitID)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels, err := s.unitParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UnitParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = UnitParcelResponse{
			ID:           p.ID.String(),
			TrackingCode: p.TrackingCode,
			Description:  p.Description,
			Weight:       p.Weight.String(),
			Service:      p.Service,
			Status:       p.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// unitRef resolves the :kind and :id path segments into a unit reference.
func unitRef(ctx echo.Context) (parcel.ContainmentKind, kernel.UUID, error) {
	kind, err := parseContainmentKind(ctx.Param("kind"))
	if err != nil {
		return parcel.ContainmentNone, kernel.UUID{}, err
	}
	unitID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return parcel.ContainmentNone, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("unit id", err)
	}
	return kind, unitID, nil
}

func optionalID(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyAttached), errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
