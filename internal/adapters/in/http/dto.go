package http

import (
	"time"

	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

// Work-order wire types.

// CreateWorkOrderRequest is the body of POST /api/work-orders.
type CreateWorkOrderRequest struct {
	Title                    string            `json:"title"`
	Description              string            `json:"description"`
	Priority                 string            `json:"priority"`
	CustomerName             string            `json:"customer_name"`
	CustomerPhone            string            `json:"customer_phone"`
	CustomerEmail            string            `json:"customer_email"`
	ServiceAddress           string            `json:"service_address"`
	EstimatedDurationMinutes int               `json:"estimated_duration_minutes"`
	EstimatedCost            decimal.Decimal   `json:"estimated_cost"`
	ScheduledDate            *time.Time        `json:"scheduled_date,omitempty"`
	LineItems                []LineItemRequest `json:"line_items,omitempty"`
}

// LineItemRequest is one billable line in a work-order create request.
type LineItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// UpdateWorkOrderRequest is the body of PUT /api/work-orders/:id.
type UpdateWorkOrderRequest struct {
	Title                    string          `json:"title"`
	Description              string          `json:"description"`
	Priority                 string          `json:"priority"`
	CustomerName             string          `json:"customer_name"`
	CustomerPhone            string          `json:"customer_phone"`
	CustomerEmail            string          `json:"customer_email"`
	ServiceAddress           string          `json:"service_address"`
	EstimatedDurationMinutes int             `json:"estimated_duration_minutes"`
	EstimatedCost            decimal.Decimal `json:"estimated_cost"`
	ScheduledDate            *time.Time      `json:"scheduled_date,omitempty"`
}

// AssignRequest is the body of PATCH /api/work-orders/:id/assign. An absent
// technician id asks the coordinator to pick the best available technician.
type AssignRequest struct {
	TechnicianID *string `json:"technician_id,omitempty"`
}

// ChangeStatusRequest is the body of PATCH status endpoints on both
// services.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeLocationRequest is the body of PATCH /api/technicians/:id/location.
type ChangeLocationRequest struct {
	Location string `json:"location"`
}

// MatchRequest is the body of POST /api/technicians/match.
type MatchRequest struct {
	Skills []string `json:"skills"`
}

// IDResponse carries the identifier of a freshly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// WorkOrderSummaryResponse is one element of the work-order list response.
type WorkOrderSummaryResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	CustomerName         string     `json:"customer_name"`
	ServiceAddress       string     `json:"service_address"`
	AssignedTechnicianID *string    `json:"assigned_technician_id,omitempty"`
	TechnicianName       string     `json:"technician_name,omitempty"`
	ScheduledDate        *time.Time `json:"scheduled_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// WorkOrderDetailResponse is the full work-order representation.
type WorkOrderDetailResponse struct {
	ID                       string             `json:"id"`
	Title                    string             `json:"title"`
	Description              string             `json:"description"`
	Priority                 string             `json:"priority"`
	Status                   string             `json:"status"`
	CustomerName             string             `json:"customer_name"`
	CustomerPhone            string             `json:"customer_phone"`
	CustomerEmail            string             `json:"customer_email"`
	ServiceAddress           string             `json:"service_address"`
	AssignedTechnicianID     *string            `json:"assigned_technician_id,omitempty"`
	TechnicianName           string             `json:"technician_name,omitempty"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	EstimatedCost            decimal.Decimal    `json:"estimated_cost"`
	ScheduledDate            *time.Time         `json:"scheduled_date,omitempty"`
	StartedAt                *time.Time         `json:"started_at,omitempty"`
	CompletedAt              *time.Time         `json:"completed_at,omitempty"`
	LineItems                []LineItemResponse `json:"line_items"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

// LineItemResponse is one billable line in the detail response.
type LineItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// StatusCountResponse is one row of the status statistics response.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TechnicianCountResponse is one row of the technician statistics response.
type TechnicianCountResponse struct {
	TechnicianID string `json:"technician_id"`
	Count        int    `json:"count"`
}

// Technician wire types.

// CreateTechnicianRequest is the body of POST /api/technicians.
type CreateTechnicianRequest struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	CurrentLocation string          `json:"current_location"`
	Skills          []string        `json:"skills"`
	ExperienceYears int             `json:"experience_years"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
}

// UpdateTechnicianRequest is the body of PUT /api/technicians/:id.
type UpdateTechnicianRequest struct {
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	CurrentLocation     string          `json:"current_location"`
	Skills              []string        `json:"skills"`
	ExperienceYears     int             `json:"experience_years"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	MaxConcurrentOrders int             `json:"max_concurrent_orders"`
}

// TechnicianResponse is the technician representation shared by the list,
// detail and match endpoints. The coordinator's directory client consumes
// the same shape.
type TechnicianResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Status              string          `json:"status"`
	CurrentLocation     string          `json:"current_location"`
	Skills              []string        `json:"skills"`
	ExperienceYears     int             `json:"experience_years"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	MaxConcurrentOrders int             `json:"max_concurrent_orders"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int             `json:"version"`
}

func toWorkOrderSummaryResponse(summary queries.GetWorkOrdersQueryResponse) WorkOrderSummaryResponse {
	resp := WorkOrderSummaryResponse{
		ID:             summary.ID.String(),
		Title:          summary.Title,
		Priority:       summary.Priority,
		Status:         summary.Status,
		CustomerName:   summary.CustomerName,
		ServiceAddress: summary.ServiceAddress,
		TechnicianName: summary.TechnicianName,
		ScheduledDate:  summary.ScheduledDate,
		CreatedAt:      summary.CreatedAt,
	}
	if summary.AssignedTechnicianID != nil {
		id := summary.AssignedTechnicianID.String()
		resp.AssignedTechnicianID = &id
	}
	return resp
}

func toWorkOrderDetailResponse(detail queries.GetWorkOrderQueryResponse) WorkOrderDetailResponse {
	items := make([]LineItemResponse, 0, len(detail.LineItems))
	for _, item := range detail.LineItems {
		items = append(items, LineItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			TotalCost: item.TotalCost,
		})
	}

	resp := WorkOrderDetailResponse{
		ID:                       detail.ID.String(),
		Title:                    detail.Title,
		Description:              detail.Description,
		Priority:                 detail.Priority,
		Status:                   detail.Status,
		CustomerName:             detail.CustomerName,
		CustomerPhone:            detail.CustomerPhone,
		CustomerEmail:            detail.CustomerEmail,
		ServiceAddress:           detail.ServiceAddress,
		TechnicianName:           detail.TechnicianName,
		EstimatedDurationMinutes: detail.EstimatedDurationMinutes,
		EstimatedCost:            detail.EstimatedCost,
		ScheduledDate:            detail.ScheduledDate,
		StartedAt:                detail.StartedAt,
		CompletedAt:              detail.CompletedAt,
		LineItems:                items,
		CreatedAt:                detail.CreatedAt,
		UpdatedAt:                detail.UpdatedAt,
	}
	if detail.AssignedTechnicianID != nil {
		id := detail.AssignedTechnicianID.String()
		resp.AssignedTechnicianID = &id
	}
	return resp
}

// toWorkOrderAggregateResponse renders a freshly committed aggregate, used
// by the mutation endpoints that answer with the updated work order. The
// technician name comes from the best-effort directory lookup and may be
// empty.
func toWorkOrderAggregateResponse(aggregate *workorder.WorkOrder, technicianName string) WorkOrderDetailResponse {
	items := make([]LineItemResponse, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemResponse{
			ID:        item.ID().String(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitCost:  item.UnitCost(),
			TotalCost: item.TotalCost(),
		})
	}

	customer := aggregate.Customer()
	resp := WorkOrderDetailResponse{
		ID:                       aggregate.ID().String(),
		Title:                    aggregate.Title(),
		Description:              aggregate.Description(),
		Priority:                 aggregate.Priority().String(),
		Status:                   aggregate.Status().String(),
		CustomerName:             customer.Name,
		CustomerPhone:            customer.Phone,
		CustomerEmail:            customer.Email,
		ServiceAddress:           aggregate.ServiceAddress(),
		TechnicianName:           technicianName,
		EstimatedDurationMinutes: aggregate.EstimatedDurationMinutes(),
		EstimatedCost:            aggregate.EstimatedCost(),
		ScheduledDate:            aggregate.ScheduledDate(),
		StartedAt:                aggregate.StartedAt(),
		CompletedAt:              aggregate.CompletedAt(),
		LineItems:                items,
		CreatedAt:                aggregate.CreatedAt(),
		UpdatedAt:                aggregate.UpdatedAt(),
	}
	if assigned := aggregate.AssignedTechnician(); assigned != nil {
		id := assigned.String()
		resp.AssignedTechnicianID = &id
	}
	return resp
}

func toTechnicianResponse(profile queries.GetTechniciansQueryResponse) TechnicianResponse {
	return TechnicianResponse{
		ID:                  profile.ID.String(),
		Name:                profile.Name,
		Email:               profile.Email,
		Phone:               profile.Phone,
		Status:              profile.Status,
		CurrentLocation:     profile.CurrentLocation,
		Skills:              profile.Skills,
		ExperienceYears:     profile.ExperienceYears,
		HourlyRate:          profile.HourlyRate,
		MaxConcurrentOrders: profile.MaxConcurrentOrders,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
		Version:             profile.Version,
	}
}

func toTechnicianAggregateResponse(aggregate *technician.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:                  aggregate.ID().String(),
		Name:                aggregate.Name(),
		Email:               aggregate.Email(),
		Phone:               aggregate.Phone(),
		Status:              aggregate.Status().String(),
		CurrentLocation:     aggregate.CurrentLocation(),
		Skills:              aggregate.Skills(),
		ExperienceYears:     aggregate.ExperienceYears(),
		HourlyRate:          aggregate.HourlyRate(),
		MaxConcurrentOrders: aggregate.MaxConcurrentOrders(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Version:             aggregate.Version(),
	}
}
