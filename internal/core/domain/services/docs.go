// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the field-service system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TechnicianMatcher: A domain service for selecting the best technician for a work order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
