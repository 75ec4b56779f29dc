// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. This package implements the repository pattern
// for the work-order domain aggregate, handling the conversion between domain
// entities and database representations.
package workorderrepo

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderDTO represents the database structure for persisting work-order
// aggregates. Maps work-order domain entities to relational database tables
// with proper indexing for efficient querying by status and technician
// assignment.
type WorkOrderDTO struct {
	ID                       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title                    string      `gorm:"not null"`
	Description              string
	Priority                 string      `gorm:"type:varchar(16);not null"`
	Status                   string      `gorm:"type:varchar(16);not null;index"`
	Customer                 CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	ServiceAddress           string
	AssignedTechnicianID     *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedDurationMinutes int
	EstimatedCost            decimal.Decimal `gorm:"type:numeric(12,2)"`
	ScheduledDate            *time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Version                  int           `gorm:"not null"`
	LineItems                []LineItemDTO `gorm:"foreignKey:WorkOrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for work-order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// CustomerDTO represents the embedded customer contact columns within the
// work-order table.
type CustomerDTO struct {
	Name  string
	Phone string
	Email string
}

// LineItemDTO represents the database structure for work-order line items.
// Line items are owned by their work order and are removed with it.
type LineItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Quantity    int
	UnitCost    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "work_order_line_items"
}

// fromDomain converts a work-order domain aggregate to its database
// representation, including the optional technician assignment and all owned
// line items.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	var technicianID *uuid.UUID
	if id := aggregate.AssignedTechnician(); id != nil {
		raw := id.Bytes()
		technicianID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			ID:          item.ID().Bytes(),
			WorkOrderID: aggregate.ID().Bytes(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitCost:    item.UnitCost(),
		})
	}

	customer := aggregate.Customer()

	return WorkOrderDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Priority:    aggregate.Priority().String(),
		Status:      aggregate.Status().String(),
		Customer: CustomerDTO{
			Name:  customer.Name,
			Phone: customer.Phone,
			Email: customer.Email,
		},
		ServiceAddress:           aggregate.ServiceAddress(),
		AssignedTechnicianID:     technicianID,
		EstimatedDurationMinutes: aggregate.EstimatedDurationMinutes(),
		EstimatedCost:            aggregate.EstimatedCost(),
		ScheduledDate:            aggregate.ScheduledDate(),
		StartedAt:                aggregate.StartedAt(),
		CompletedAt:              aggregate.CompletedAt(),
		CreatedAt:                aggregate.CreatedAt(),
		UpdatedAt:                aggregate.UpdatedAt(),
		Version:                  aggregate.Version(),
		LineItems:                items,
	}
}

// toDomain converts a database DTO to a work-order domain aggregate.
// Reconstructs the complete aggregate including status, technician assignment
// and line items using RestoreWorkOrder.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var technicianID *kernel.UUID
	if dto.AssignedTechnicianID != nil {
		tID, technicianErr := kernel.UUIDFromBytes((*dto.AssignedTechnicianID)[:])
		if technicianErr != nil {
			return nil, technicianErr
		}

		technicianID = &tID
	}

	priority, err := workorder.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := workorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*workorder.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := workorder.NewLineItem(itemID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitCost)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return workorder.RestoreWorkOrder(
		id,
		dto.Title,
		dto.Description,
		priority,
		status,
		workorder.CustomerInfo{
			Name:  dto.Customer.Name,
			Phone: dto.Customer.Phone,
			Email: dto.Customer.Email,
		},
		dto.ServiceAddress,
		technicianID,
		dto.EstimatedDurationMinutes,
		dto.EstimatedCost,
		dto.ScheduledDate,
		dto.StartedAt,
		dto.CompletedAt,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
