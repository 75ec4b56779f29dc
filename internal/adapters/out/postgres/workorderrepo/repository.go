package workorderrepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order and its line items to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order using a versioned compare-and-swap.
// The row is updated only while its stored version still matches the
// aggregate's version; a stale aggregate is rejected with a
// ConcurrencyConflictError. Line items are replaced wholesale.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var technicianID any
	if dto.AssignedTechnicianID != nil {
		technicianID = *dto.AssignedTechnicianID
	}

	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"title":                      dto.Title,
			"description":                dto.Description,
			"priority":                   dto.Priority,
			"status":                     dto.Status,
			"customer_name":              dto.Customer.Name,
			"customer_phone":             dto.Customer.Phone,
			"customer_email":             dto.Customer.Email,
			"service_address":            dto.ServiceAddress,
			"assigned_technician_id":     technicianID,
			"estimated_duration_minutes": dto.EstimatedDurationMinutes,
			"estimated_cost":             dto.EstimatedCost,
			"scheduled_date":             dto.ScheduledDate,
			"started_at":                 dto.StartedAt,
			"completed_at":               dto.CompletedAt,
			"updated_at":                 dto.UpdatedAt,
			"version":                    aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("work_order", aggregate.ID().String())
	}

	if err := r.replaceLineItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceLineItems synchronizes the line-item rows with the aggregate state.
func (r *GormWorkOrderRepository) replaceLineItems(ctx context.Context, dto WorkOrderDTO) error {
	if err := r.db.WithContext(ctx).
		Where("work_order_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.LineItems) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.LineItems).Error
}

// Get retrieves a work order with its line items by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).Preload("LineItems").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work_order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a work order and its line items from the database.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("work_order_id = ?", id.Bytes()).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work_order", id.String())
	}

	return nil
}

// GetFirstInPendingStatus retrieves the oldest work order awaiting assignment.
func (r *GormWorkOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).Preload("LineItems").
		Order("created_at").
		First(&dto, "status = ?", workorder.StatusPending.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work_order", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveWorkloads returns the number of active work orders per technician.
// A work order counts while it is assigned, in progress or on hold.
func (r *GormWorkOrderRepository) GetActiveWorkloads(ctx context.Context) (map[kernel.UUID]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			assigned_technician_id,
			COUNT(*)
		FROM work_orders
		WHERE assigned_technician_id IS NOT NULL
		  AND status IN (?, ?, ?)
		GROUP BY assigned_technician_id
	`,
		workorder.StatusAssigned.String(),
		workorder.StatusInProgress.String(),
		workorder.StatusOnHold.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workloads := make(map[kernel.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		var count int

		if err = rows.Scan(&id, &count); err != nil {
			return nil, err
		}

		technicianID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		workloads[technicianID] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workloads, nil
}
