// Package workorder provides domain entities and business logic for work-order
// management in the field-service system. It implements the WorkOrder aggregate
// root with lifecycle management, technician assignment and state transitions.
//
// The package includes:
//   - WorkOrder: The aggregate root that manages work-order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid work-order status transitions
//   - Priority: An ordered urgency classification
//   - LineItem: A billable part or task owned by a work order
//
// Key business rules:
//   - Work orders must have a valid unique identifier and a non-empty title
//   - Status follows a defined workflow: Pending -> Assigned -> InProgress -> Completed,
//     with OnHold as a pause state and Cancelled reachable from any non-terminal status
//   - Completed and Cancelled are terminal; no transition leaves them
//   - Assignment and reassignment are allowed from any non-terminal status;
//     unassignment returns the work order to Pending
//   - startedAt and completedAt are recorded once, on first entry into
//     InProgress and Completed respectively
//   - Every mutation is guarded by an optimistic-concurrency version counter
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
