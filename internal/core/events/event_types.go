package events

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
)

// EventType enumerates supported change-event identifiers.
type EventType string

const (
	EventWorkOrderCreated       EventType = "work_order_created"
	EventWorkOrderUpdated       EventType = "work_order_updated"
	EventWorkOrderAssigned      EventType = "work_order_assigned"
	EventWorkOrderUnassigned    EventType = "work_order_unassigned"
	EventWorkOrderStatusChanged EventType = "work_order_status_changed"
	EventWorkOrderDeleted       EventType = "work_order_deleted"
	EventTechnicianAssigned     EventType = "technician_assigned"
	EventTechnicianUnassigned   EventType = "technician_unassigned"
)

// Event represents a change notification emitted after a successful local
// mutation. Events are informational only: delivery is fire-and-forget and no
// consumer outcome ever affects the originating operation.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	WorkOrderID  string      `json:"work_order_id"`
	TechnicianID *string     `json:"technician_id,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload,omitempty"`
}

// StatusChangedPayload accompanies EventWorkOrderStatusChanged.
type StatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// NewWorkOrderEvent builds an event scoped to a work order.
func NewWorkOrderEvent(eventType EventType, workOrderID kernel.UUID) Event {
	return Event{
		ID:          kernel.NewUUID().String(),
		Type:        eventType,
		WorkOrderID: workOrderID.String(),
		Timestamp:   time.Now().UTC(),
	}
}

// NewTechnicianEvent builds an event scoped to a work order and a technician.
func NewTechnicianEvent(eventType EventType, workOrderID, technicianID kernel.UUID) Event {
	technician := technicianID.String()
	return Event{
		ID:           kernel.NewUUID().String(),
		Type:         eventType,
		WorkOrderID:  workOrderID.String(),
		TechnicianID: &technician,
		Timestamp:    time.Now().UTC(),
	}
}

// NewStatusChangedEvent builds the status-change event with its payload.
func NewStatusChangedEvent(workOrderID kernel.UUID, oldStatus, newStatus string) Event {
	event := NewWorkOrderEvent(EventWorkOrderStatusChanged, workOrderID)
	event.Payload = StatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus}
	return event
}
