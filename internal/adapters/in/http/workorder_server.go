package http

import (
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"

	"github.com/labstack/echo/v4"
)

// WorkOrderServer handles the assignment coordinator's REST API.
// It coordinates between HTTP handlers and application use cases.
type WorkOrderServer struct {
	// Command handlers
	createHandler       commands.CreateWorkOrderCommandHandler
	updateHandler       commands.UpdateWorkOrderCommandHandler
	deleteHandler       commands.DeleteWorkOrderCommandHandler
	assignHandler       commands.AssignWorkOrderCommandHandler
	unassignHandler     commands.UnassignWorkOrderCommandHandler
	changeStatusHandler commands.ChangeWorkOrderStatusCommandHandler

	// Query handlers
	getWorkOrdersHandler       queries.GetWorkOrdersQueryHandler
	getWorkOrderHandler        queries.GetWorkOrderQueryHandler
	getStatusCountsHandler     queries.GetStatusCountsQueryHandler
	getTechnicianCountsHandler queries.GetTechnicianCountsQueryHandler
}

// NewWorkOrderServer creates a coordinator server with the required command
// and query handlers.
func NewWorkOrderServer(
	createHandler commands.CreateWorkOrderCommandHandler,
	updateHandler commands.UpdateWorkOrderCommandHandler,
	deleteHandler commands.DeleteWorkOrderCommandHandler,
	assignHandler commands.AssignWorkOrderCommandHandler,
	unassignHandler commands.UnassignWorkOrderCommandHandler,
	changeStatusHandler commands.ChangeWorkOrderStatusCommandHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
	getStatusCountsHandler queries.GetStatusCountsQueryHandler,
	getTechnicianCountsHandler queries.GetTechnicianCountsQueryHandler,
) *WorkOrderServer {
	return &WorkOrderServer{
		createHandler:              createHandler,
		updateHandler:              updateHandler,
		deleteHandler:              deleteHandler,
		assignHandler:              assignHandler,
		unassignHandler:            unassignHandler,
		changeStatusHandler:        changeStatusHandler,
		getWorkOrdersHandler:       getWorkOrdersHandler,
		getWorkOrderHandler:        getWorkOrderHandler,
		getStatusCountsHandler:     getStatusCountsHandler,
		getTechnicianCountsHandler: getTechnicianCountsHandler,
	}
}

// RegisterRoutes attaches the coordinator's routes to the echo instance.
func (s *WorkOrderServer) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/work-orders", s.CreateWorkOrder)
	e.GET("/api/work-orders", s.GetWorkOrders)
	e.GET("/api/work-orders/stats/statuses", s.GetStatusCounts)
	e.GET("/api/work-orders/stats/technicians", s.GetTechnicianCounts)
	e.GET("/api/work-orders/:id", s.GetWorkOrder)
	e.PUT("/api/work-orders/:id", s.UpdateWorkOrder)
	e.DELETE("/api/work-orders/:id", s.DeleteWorkOrder)
	e.PATCH("/api/work-orders/:id/assign", s.AssignWorkOrder)
	e.PATCH("/api/work-orders/:id/unassign", s.UnassignWorkOrder)
	e.PATCH("/api/work-orders/:id/status", s.ChangeWorkOrderStatus)
}

// CreateWorkOrder handles POST /api/work-orders - registers a new work order.
func (s *WorkOrderServer) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	priority, err := workorder.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(ctx, err)
	}

	lineItems := make([]commands.LineItemInput, len(req.LineItems))
	for i, item := range req.LineItems {
		lineItems[i] = commands.LineItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
		}
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		workOrderID,
		req.Title,
		req.Description,
		priority,
		workorder.CustomerInfo{
			Name:  req.CustomerName,
			Phone: req.CustomerPhone,
			Email: req.CustomerEmail,
		},
		req.ServiceAddress,
		req.EstimatedDurationMinutes,
		req.EstimatedCost,
		req.ScheduledDate,
		lineItems,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: workOrderID.String()})
}

// GetWorkOrders handles GET /api/work-orders - lists work orders, optionally
// filtered by the status or technician_id query parameters.
func (s *WorkOrderServer) GetWorkOrders(ctx echo.Context) error {
	query, err := workOrderListQuery(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	workOrders, err := s.getWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]WorkOrderSummaryResponse, len(workOrders))
	for i, summary := range workOrders {
		response[i] = toWorkOrderSummaryResponse(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

func workOrderListQuery(ctx echo.Context) (queries.GetWorkOrdersQuery, error) {
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := workorder.StatusFromString(raw)
		if err != nil {
			return queries.GetWorkOrdersQuery{}, err
		}
		return queries.NewGetWorkOrdersByStatusQuery(status)
	}

	if raw := ctx.QueryParam("technician_id"); raw != "" {
		technicianID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.GetWorkOrdersQuery{}, err
		}
		return queries.NewGetWorkOrdersByTechnicianQuery(technicianID)
	}

	return queries.NewGetWorkOrdersQuery(), nil
}

// GetWorkOrder handles GET /api/work-orders/:id - retrieves one work order
// with its line items.
func (s *WorkOrderServer) GetWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetWorkOrderQuery(workOrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderDetailResponse(detail))
}

// UpdateWorkOrder handles PUT /api/work-orders/:id - updates the editable
// fields of a work order.
func (s *WorkOrderServer) UpdateWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	priority, err := workorder.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkOrderCommand(
		workOrderID,
		req.Title,
		req.Description,
		priority,
		workorder.CustomerInfo{
			Name:  req.CustomerName,
			Phone: req.CustomerPhone,
			Email: req.CustomerEmail,
		},
		req.ServiceAddress,
		req.EstimatedDurationMinutes,
		req.EstimatedCost,
		req.ScheduledDate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderAggregateResponse(updated, ""))
}

// DeleteWorkOrder handles DELETE /api/work-orders/:id.
func (s *WorkOrderServer) DeleteWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteWorkOrderCommand(workOrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWorkOrder handles PATCH /api/work-orders/:id/assign - assigns a work
// order to the technician named in the body, or to the best available match
// when the body names none. Responds with the updated work order, enriched
// with the technician's display name when the directory answered.
func (s *WorkOrderServer) AssignWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var technicianID *kernel.UUID
	if req.TechnicianID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.TechnicianID)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		technicianID = &parsed
	}

	cmd, err := commands.NewAssignWorkOrderCommand(workOrderID, technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderAggregateResponse(result.WorkOrder, result.TechnicianName))
}

// UnassignWorkOrder handles PATCH /api/work-orders/:id/unassign - releases the
// work order back to the pending pool.
func (s *WorkOrderServer) UnassignWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnassignWorkOrderCommand(workOrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.unassignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderAggregateResponse(updated, ""))
}

// ChangeWorkOrderStatus handles PATCH /api/work-orders/:id/status - moves the
// work order through its lifecycle.
func (s *WorkOrderServer) ChangeWorkOrderStatus(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(workOrderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderAggregateResponse(updated, ""))
}

// GetStatusCounts handles GET /api/work-orders/stats/statuses - work-order
// counts grouped by status.
func (s *WorkOrderServer) GetStatusCounts(ctx echo.Context) error {
	counts, err := s.getStatusCountsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetStatusCountsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusCountResponse, len(counts))
	for i, count := range counts {
		response[i] = StatusCountResponse{Status: count.Status, Count: count.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTechnicianCounts handles GET /api/work-orders/stats/technicians -
// active work-order counts grouped by assigned technician.
func (s *WorkOrderServer) GetTechnicianCounts(ctx echo.Context) error {
	counts, err := s.getTechnicianCountsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetTechnicianCountsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TechnicianCountResponse, len(counts))
	for i, count := range counts {
		response[i] = TechnicianCountResponse{
			TechnicianID: count.TechnicianID.String(),
			Count:        count.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
