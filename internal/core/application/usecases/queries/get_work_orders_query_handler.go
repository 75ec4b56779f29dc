package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler retrieves work-order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// Assigned technician names are resolved through the technician directory;
// a directory failure is logged and leaves the name empty rather than
// failing the query.
type GetWorkOrdersQueryHandler struct {
	db        *gorm.DB
	directory ports.TechnicianDirectory
	logger    *zap.Logger
}

// NewGetWorkOrdersQueryHandler creates a handler for work-order list queries.
func NewGetWorkOrdersQueryHandler(
	db *gorm.DB,
	directory ports.TechnicianDirectory,
	logger *zap.Logger,
) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{
		db:        db,
		directory: directory,
		logger:    logger,
	}
}

// Handle executes the query and returns work-order summaries sorted by
// creation time, honoring the query's optional status and technician filters.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			title,
			priority,
			status,
			customer_name,
			service_address,
			assigned_technician_id,
			scheduled_date,
			created_at
		FROM work_orders
	`
	args := make([]any, 0, 1)

	switch {
	case query.Status() != nil:
		sql += " WHERE status = ?"
		args = append(args, query.Status().String())
	case query.TechnicianID() != nil:
		sql += " WHERE assigned_technician_id = ?"
		args = append(args, query.TechnicianID().Bytes())
	}

	sql += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workOrders := make([]GetWorkOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetWorkOrdersQueryResponse
		var id uuid.UUID
		var technicianID *uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.Priority,
			&resp.Status,
			&resp.CustomerName,
			&resp.ServiceAddress,
			&technicianID,
			&resp.ScheduledDate,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = workOrderID

		if technicianID != nil {
			tID, tErr := kernel.UUIDFromBytes((*technicianID)[:])
			if tErr != nil {
				return nil, tErr
			}
			resp.AssignedTechnicianID = &tID
		}

		workOrders = append(workOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	h.resolveTechnicianNames(ctx, workOrders)

	return workOrders, nil
}

// resolveTechnicianNames fills in technician names for assigned summaries.
// Each distinct technician is looked up once per query; a failed lookup is
// logged and leaves the affected names empty.
func (h GetWorkOrdersQueryHandler) resolveTechnicianNames(
	ctx context.Context,
	workOrders []GetWorkOrdersQueryResponse,
) {
	names := make(map[kernel.UUID]string)

	for i := range workOrders {
		technicianID := workOrders[i].AssignedTechnicianID
		if technicianID == nil {
			continue
		}

		name, seen := names[*technicianID]
		if !seen {
			var err error
			name, err = h.directory.GetName(ctx, *technicianID)
			if err != nil {
				h.logger.Warn("failed to resolve technician name",
					zap.String("technician_id", technicianID.String()),
					zap.Error(err))
				name = ""
			}
			names[*technicianID] = name
		}

		workOrders[i].TechnicianName = name
	}
}
