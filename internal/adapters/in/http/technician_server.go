package http

import (
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// TechnicianServer handles the technician directory's REST API. Single
// technician reads and skill matching go straight to the repository; the
// list endpoint goes through the read model.
type TechnicianServer struct {
	// Command handlers
	createHandler         commands.CreateTechnicianCommandHandler
	updateHandler         commands.UpdateTechnicianCommandHandler
	deleteHandler         commands.DeleteTechnicianCommandHandler
	changeStatusHandler   commands.ChangeTechnicianStatusCommandHandler
	changeLocationHandler commands.ChangeTechnicianLocationCommandHandler

	// Query handlers
	getTechniciansHandler  queries.GetTechniciansQueryHandler
	getStatusCountsHandler queries.GetTechnicianStatusCountsQueryHandler

	repository ports.TechnicianRepository
	matcher    services.TechnicianMatcher
}

// NewTechnicianServer creates a directory server with the required command
// and query handlers.
func NewTechnicianServer(
	createHandler commands.CreateTechnicianCommandHandler,
	updateHandler commands.UpdateTechnicianCommandHandler,
	deleteHandler commands.DeleteTechnicianCommandHandler,
	changeStatusHandler commands.ChangeTechnicianStatusCommandHandler,
	changeLocationHandler commands.ChangeTechnicianLocationCommandHandler,
	getTechniciansHandler queries.GetTechniciansQueryHandler,
	getStatusCountsHandler queries.GetTechnicianStatusCountsQueryHandler,
	repository ports.TechnicianRepository,
) *TechnicianServer {
	return &TechnicianServer{
		createHandler:          createHandler,
		updateHandler:          updateHandler,
		deleteHandler:          deleteHandler,
		changeStatusHandler:    changeStatusHandler,
		changeLocationHandler:  changeLocationHandler,
		getTechniciansHandler:  getTechniciansHandler,
		getStatusCountsHandler: getStatusCountsHandler,
		repository:             repository,
		matcher:                services.NewTechnicianMatcher(),
	}
}

// RegisterRoutes attaches the directory's routes to the echo instance.
func (s *TechnicianServer) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/technicians", s.CreateTechnician)
	e.GET("/api/technicians", s.GetTechnicians)
	e.GET("/api/technicians/available", s.GetAvailableTechnicians)
	e.GET("/api/technicians/stats/statuses", s.GetStatusCounts)
	e.POST("/api/technicians/match", s.MatchTechnician)
	e.GET("/api/technicians/:id", s.GetTechnician)
	e.PUT("/api/technicians/:id", s.UpdateTechnician)
	e.DELETE("/api/technicians/:id", s.DeleteTechnician)
	e.PATCH("/api/technicians/:id/status", s.ChangeTechnicianStatus)
	e.PATCH("/api/technicians/:id/location", s.ChangeTechnicianLocation)
}

// CreateTechnician handles POST /api/technicians - registers a new
// technician, available by default.
func (s *TechnicianServer) CreateTechnician(ctx echo.Context) error {
	var req CreateTechnicianRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	technicianID := kernel.NewUUID()
	cmd, err := commands.NewCreateTechnicianCommand(
		technicianID,
		req.Name,
		req.Email,
		req.Phone,
		req.CurrentLocation,
		req.Skills,
		req.ExperienceYears,
		req.HourlyRate,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: technicianID.String()})
}

// GetTechnicians handles GET /api/technicians - lists technicians,
// optionally filtered by the status, skill or location query parameters.
func (s *TechnicianServer) GetTechnicians(ctx echo.Context) error {
	query, err := technicianListQuery(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	technicians, err := s.getTechniciansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TechnicianResponse, len(technicians))
	for i, profile := range technicians {
		response[i] = toTechnicianResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

func technicianListQuery(ctx echo.Context) (queries.GetTechniciansQuery, error) {
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := technician.StatusFromString(raw)
		if err != nil {
			return queries.GetTechniciansQuery{}, err
		}
		return queries.NewGetTechniciansByStatusQuery(status)
	}

	if skill := ctx.QueryParam("skill"); skill != "" {
		return queries.NewGetTechniciansBySkillQuery(skill)
	}

	if location := ctx.QueryParam("location"); location != "" {
		return queries.NewGetTechniciansByLocationQuery(location)
	}

	return queries.NewGetTechniciansQuery(), nil
}

// GetTechnician handles GET /api/technicians/:id - retrieves one technician.
func (s *TechnicianServer) GetTechnician(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.repository.Get(ctx.Request().Context(), technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTechnicianAggregateResponse(aggregate))
}

// UpdateTechnician handles PUT /api/technicians/:id - updates a technician's
// profile.
func (s *TechnicianServer) UpdateTechnician(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateTechnicianRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateTechnicianCommand(
		technicianID,
		req.Name,
		req.Email,
		req.Phone,
		req.CurrentLocation,
		req.Skills,
		req.ExperienceYears,
		req.HourlyRate,
		req.MaxConcurrentOrders,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTechnician handles DELETE /api/technicians/:id.
func (s *TechnicianServer) DeleteTechnician(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteTechnicianCommand(technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeTechnicianStatus handles PATCH /api/technicians/:id/status.
func (s *TechnicianServer) ChangeTechnicianStatus(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
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

	status, err := technician.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeTechnicianStatusCommand(technicianID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeTechnicianLocation handles PATCH /api/technicians/:id/location -
// moves a technician without touching the rest of the profile.
func (s *TechnicianServer) ChangeTechnicianLocation(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeTechnicianLocationCommand(technicianID, req.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableTechnicians handles GET /api/technicians/available - lists the
// current pool of available technicians. The coordinator's matching path
// consumes this endpoint.
func (s *TechnicianServer) GetAvailableTechnicians(ctx echo.Context) error {
	query, err := queries.NewGetTechniciansByStatusQuery(technician.StatusAvailable)
	if err != nil {
		return writeError(ctx, err)
	}

	technicians, err := s.getTechniciansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TechnicianResponse, len(technicians))
	for i, profile := range technicians {
		response[i] = toTechnicianResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusCounts handles GET /api/technicians/stats/statuses - technician
// counts grouped by status.
func (s *TechnicianServer) GetStatusCounts(ctx echo.Context) error {
	counts, err := s.getStatusCountsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetTechnicianStatusCountsQuery(),
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

// MatchTechnician handles POST /api/technicians/match - picks the best
// available technician for the requested skills. Workload is not consulted
// here; callers that need the workload-aware pick assign through the
// coordinator.
func (s *TechnicianServer) MatchTechnician(ctx echo.Context) error {
	var req MatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	candidates, err := s.repository.GetAllAvailable(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	best, err := s.matcher.FindBest(req.Skills, candidates, nil)
	if err != nil {
		return writeError(ctx, err)
	}
	if best == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No available technician matches the required skills",
		})
	}

	return ctx.JSON(http.StatusOK, toTechnicianAggregateResponse(best))
}
