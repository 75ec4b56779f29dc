package queries

import (
	"context"
	"database/sql"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler retrieves a single work order with its line items.
// The assigned technician's name is resolved through the technician
// directory; a directory failure is logged and leaves the name empty rather
// than failing the query.
type GetWorkOrderQueryHandler struct {
	db        *gorm.DB
	directory ports.TechnicianDirectory
	logger    *zap.Logger
}

// NewGetWorkOrderQueryHandler creates a handler for single work-order
// queries.
func NewGetWorkOrderQueryHandler(
	db *gorm.DB,
	directory ports.TechnicianDirectory,
	logger *zap.Logger,
) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{
		db:        db,
		directory: directory,
		logger:    logger,
	}
}

// Handle executes the query to retrieve one work order.
// Returns an ObjectNotFoundError when the work order does not exist.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (GetWorkOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	resp, err := h.loadWorkOrder(ctx, query.WorkOrderID())
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	resp.LineItems, err = h.loadLineItems(ctx, query.WorkOrderID())
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	if resp.AssignedTechnicianID != nil {
		name, nameErr := h.directory.GetName(ctx, *resp.AssignedTechnicianID)
		if nameErr != nil {
			h.logger.Warn("failed to resolve technician name",
				zap.String("work_order_id", resp.ID.String()),
				zap.String("technician_id", resp.AssignedTechnicianID.String()),
				zap.Error(nameErr))
		} else {
			resp.TechnicianName = name
		}
	}

	return resp, nil
}

func (h GetWorkOrderQueryHandler) loadWorkOrder(
	ctx context.Context,
	workOrderID kernel.UUID,
) (GetWorkOrderQueryResponse, error) {
	var resp GetWorkOrderQueryResponse
	var id uuid.UUID
	var technicianID *uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			description,
			priority,
			status,
			customer_name,
			customer_phone,
			customer_email,
			service_address,
			assigned_technician_id,
			estimated_duration_minutes,
			estimated_cost,
			scheduled_date,
			started_at,
			completed_at,
			created_at,
			updated_at
		FROM work_orders
		WHERE id = ?
	`, workOrderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Title,
		&resp.Description,
		&resp.Priority,
		&resp.Status,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.ServiceAddress,
		&technicianID,
		&resp.EstimatedDurationMinutes,
		&resp.EstimatedCost,
		&resp.ScheduledDate,
		&resp.StartedAt,
		&resp.CompletedAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundError("work_order", workOrderID.String())
		}
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}

	if technicianID != nil {
		tID, tErr := kernel.UUIDFromBytes((*technicianID)[:])
		if tErr != nil {
			return resp, tErr
		}
		resp.AssignedTechnicianID = &tID
	}

	return resp, nil
}

func (h GetWorkOrderQueryHandler) loadLineItems(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]LineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			unit_cost
		FROM work_order_line_items
		WHERE work_order_id = ?
	`, workOrderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)

	for rows.Next() {
		var item LineItemResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &item.Name, &item.Quantity, &item.UnitCost); err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		item.TotalCost = item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
