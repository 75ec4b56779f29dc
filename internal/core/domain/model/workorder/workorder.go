package workorder

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through the NewWorkOrder or RestoreWorkOrder factory functions.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

	// ErrTitleIsRequired is returned when attempting to create a work order without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// CustomerInfo groups the customer contact fields carried on a work order.
// It is a plain value object with no invariants of its own; any field may be
// empty.
type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

// WorkOrder represents a unit of field-service work. It is the aggregate root
// that manages the work-order lifecycle from creation through assignment to
// completion, together with its owned line items.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier and a non-empty title
//   - Priority and status are always valid enumeration members
//   - Status transitions follow the state machine defined on Status
//   - A Pending work order has no assigned technician; Assigned and
//     InProgress work orders always have one
//   - startedAt and completedAt are written once, on the first entry into
//     InProgress and Completed respectively
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
//
// The assigned technician is a weak reference: the aggregate stores only the
// id and never resolves or owns the technician record.
type WorkOrder struct {
	// id is the unique identifier for the work order
	id kernel.UUID

	// title is the short summary of the requested work
	title string

	// description holds the detailed problem statement
	description string

	// priority is the urgency classification
	priority Priority

	// status is the current state in the work-order lifecycle
	status Status

	// customer holds the customer contact fields
	customer CustomerInfo

	// serviceAddress is the free-text location where the work happens
	serviceAddress string

	// assignedTechnicianID is the assigned technician's id (nil if unassigned)
	assignedTechnicianID *kernel.UUID

	// estimatedDurationMinutes is the expected time on site
	estimatedDurationMinutes int

	// estimatedCost is the quoted cost
	estimatedCost decimal.Decimal

	// scheduledDate is when the work is planned to happen
	scheduledDate *time.Time

	// startedAt is set on the first transition into InProgress
	startedAt *time.Time

	// completedAt is set on the first transition into Completed
	completedAt *time.Time

	// lineItems are the billable parts and tasks owned by this work order
	lineItems []*LineItem

	// createdAt and updatedAt are audit timestamps
	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency counter checked on every update
	version int

	// isConstructed ensures the work order was created via a factory function
	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder in Pending status with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - title: short summary (must be non-empty)
//   - description: detailed problem statement (may be empty)
//   - priority: urgency classification (must be a valid Priority)
//   - customer: customer contact fields
//   - serviceAddress: free-text service location
//
// The work order starts unassigned, in Pending status, at version 1.
func NewWorkOrder(
	id kernel.UUID,
	title string,
	description string,
	priority Priority,
	customer CustomerInfo,
	serviceAddress string,
) (*WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, ErrTitleIsRequired
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &WorkOrder{
		id:             id,
		title:          title,
		description:    description,
		priority:       priority,
		status:         StatusPending,
		customer:       customer,
		serviceAddress: serviceAddress,
		estimatedCost:  decimal.Zero,
		createdAt:      now,
		updatedAt:      now,
		version:        1,
		isConstructed:  true,
	}, nil
}

// RestoreWorkOrder reconstructs a WorkOrder aggregate from persistent storage.
// Unlike NewWorkOrder it accepts the complete persisted state, including
// lifecycle timestamps, line items and the version counter, and re-validates
// the status/technician consistency rule:
//
//   - Pending work orders must not reference a technician
//   - Assigned and InProgress work orders must reference one
//   - OnHold, Completed and Cancelled may carry the reference as history
func RestoreWorkOrder(
	id kernel.UUID,
	title string,
	description string,
	priority Priority,
	status Status,
	customer CustomerInfo,
	serviceAddress string,
	assignedTechnicianID *kernel.UUID,
	estimatedDurationMinutes int,
	estimatedCost decimal.Decimal,
	scheduledDate *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	lineItems []*LineItem,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, ErrTitleIsRequired
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateTechnicianConsistency(status, assignedTechnicianID); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	items := make([]*LineItem, len(lineItems))
	copy(items, lineItems)

	return &WorkOrder{
		id:                       id,
		title:                    title,
		description:              description,
		priority:                 priority,
		status:                   status,
		customer:                 customer,
		serviceAddress:           serviceAddress,
		assignedTechnicianID:     assignedTechnicianID,
		estimatedDurationMinutes: estimatedDurationMinutes,
		estimatedCost:            estimatedCost,
		scheduledDate:            scheduledDate,
		startedAt:                startedAt,
		completedAt:              completedAt,
		lineItems:                items,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
		version:                  version,
		isConstructed:            true,
	}, nil
}

// validateTechnicianConsistency enforces which statuses may carry a
// technician reference.
func validateTechnicianConsistency(status Status, technicianID *kernel.UUID) error {
	if status == StatusPending && technicianID != nil {
		return errs.NewValueIsInvalidError("a pending work order cannot reference a technician")
	}
	if (status == StatusAssigned || status == StatusInProgress) && technicianID == nil {
		return errs.NewValueIsInvalidError("an assigned work order must reference a technician")
	}
	return nil
}

// Validate ensures the WorkOrder instance was properly constructed.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// Title returns the short summary of the requested work.
func (w *WorkOrder) Title() string {
	return w.title
}

// Description returns the detailed problem statement.
func (w *WorkOrder) Description() string {
	return w.description
}

// Priority returns the urgency classification.
func (w *WorkOrder) Priority() Priority {
	return w.priority
}

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() Status {
	return w.status
}

// Customer returns the customer contact fields.
func (w *WorkOrder) Customer() CustomerInfo {
	return w.customer
}

// ServiceAddress returns the free-text service location.
func (w *WorkOrder) ServiceAddress() string {
	return w.serviceAddress
}

// AssignedTechnician returns the assigned technician's id.
// Returns nil if no technician is assigned.
func (w *WorkOrder) AssignedTechnician() *kernel.UUID {
	return w.assignedTechnicianID
}

// EstimatedDurationMinutes returns the expected time on site.
func (w *WorkOrder) EstimatedDurationMinutes() int {
	return w.estimatedDurationMinutes
}

// EstimatedCost returns the quoted cost.
func (w *WorkOrder) EstimatedCost() decimal.Decimal {
	return w.estimatedCost
}

// ScheduledDate returns when the work is planned to happen, nil if unscheduled.
func (w *WorkOrder) ScheduledDate() *time.Time {
	return w.scheduledDate
}

// StartedAt returns when work first entered InProgress, nil if it never did.
func (w *WorkOrder) StartedAt() *time.Time {
	return w.startedAt
}

// CompletedAt returns when work first entered Completed, nil if it never did.
func (w *WorkOrder) CompletedAt() *time.Time {
	return w.completedAt
}

// LineItems returns the owned line items.
// The returned slice is a copy to prevent external modification.
func (w *WorkOrder) LineItems() []*LineItem {
	out := make([]*LineItem, len(w.lineItems))
	copy(out, w.lineItems)
	return out
}

// CreatedAt returns the creation audit timestamp.
func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

// UpdatedAt returns the last-modification audit timestamp.
func (w *WorkOrder) UpdatedAt() time.Time {
	return w.updatedAt
}

// Version returns the optimistic-concurrency counter as loaded from storage.
// The repository uses it as the compare-and-swap guard on update.
func (w *WorkOrder) Version() int {
	return w.version
}

// Assign sets the technician reference and moves the work order to Assigned.
//
// Assignment is rejected only from terminal statuses. Reassigning an already
// assigned, in-progress or on-hold work order is permitted and replaces the
// reference; the status returns to Assigned in every case.
//
// The remote technician-status update is not part of this method: the
// aggregate records the local fact of assignment only.
func (w *WorkOrder) Assign(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	if err := w.status.ValidateAssign(); err != nil {
		return err
	}

	w.assignedTechnicianID = &technicianID
	w.status = StatusAssigned
	w.touch()
	return nil
}

// Unassign clears the technician reference and resets the status to Pending.
//
// Returns the previously assigned technician's id so the caller can notify
// the directory; the returned pointer is nil when no technician was assigned.
// Unassignment is rejected from terminal statuses.
func (w *WorkOrder) Unassign() (*kernel.UUID, error) {
	if w.status.IsTerminal() {
		return nil, &InvalidTransitionError{From: w.status, To: StatusPending}
	}

	previous := w.assignedTechnicianID
	w.assignedTechnicianID = nil
	w.status = StatusPending
	w.touch()
	return previous, nil
}

// ChangeStatus performs an explicit status transition.
//
// Requesting the current status is an idempotent no-op: nothing changes, no
// error is returned and no timestamps move. Entering InProgress for the first
// time records startedAt; entering Completed for the first time records
// completedAt. Both are written at most once, so a retried transition leaves
// them untouched.
func (w *WorkOrder) ChangeStatus(target Status) error {
	newStatus, err := w.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if newStatus == w.status {
		return nil
	}

	now := time.Now().UTC()
	if newStatus == StatusInProgress && w.startedAt == nil {
		w.startedAt = &now
	}
	if newStatus == StatusCompleted && w.completedAt == nil {
		w.completedAt = &now
	}

	w.status = newStatus
	w.touch()
	return nil
}

// Update replaces the mutable descriptive fields of the work order.
// Lifecycle fields (status, technician reference, started/completed
// timestamps) are untouched; those change only through the dedicated
// operations.
func (w *WorkOrder) Update(
	title string,
	description string,
	priority Priority,
	customer CustomerInfo,
	serviceAddress string,
	estimatedDurationMinutes int,
	estimatedCost decimal.Decimal,
	scheduledDate *time.Time,
) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	w.title = title
	w.description = description
	w.priority = priority
	w.customer = customer
	w.serviceAddress = serviceAddress
	w.estimatedDurationMinutes = estimatedDurationMinutes
	w.estimatedCost = estimatedCost
	w.scheduledDate = scheduledDate
	w.touch()
	return nil
}

// SetEstimates records the expected duration, quoted cost, and planned date.
// Used when registering a new work order; later changes go through Update.
func (w *WorkOrder) SetEstimates(durationMinutes int, cost decimal.Decimal, scheduledDate *time.Time) error {
	if durationMinutes < 0 {
		return errs.NewValueIsInvalidError("estimatedDurationMinutes must not be negative")
	}
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("estimatedCost must not be negative")
	}

	w.estimatedDurationMinutes = durationMinutes
	w.estimatedCost = cost
	w.scheduledDate = scheduledDate
	w.touch()
	return nil
}

// AddLineItem creates a new line item and attaches it to the work order.
func (w *WorkOrder) AddLineItem(name string, quantity int, unitCost decimal.Decimal) error {
	item, err := NewLineItem(kernel.NewUUID(), name, quantity, unitCost)
	if err != nil {
		return err
	}

	w.lineItems = append(w.lineItems, item)
	w.touch()
	return nil
}

// touch advances the last-modification timestamp.
func (w *WorkOrder) touch() {
	w.updatedAt = time.Now().UTC()
}
