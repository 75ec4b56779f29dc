// Package technician provides domain entities and business logic for the
// technician directory in the field-service system. It implements the
// Technician aggregate root with availability management and the skill
// profile used for work-order matching.
//
// The package includes:
//   - Technician: The aggregate root that manages technician identity, availability, and skills
//   - Status: The availability enumeration (Available, Busy, OnBreak, Offline)
//
// Key business rules:
//   - Technicians must have a valid unique identifier and a non-empty name
//   - Only Available technicians are eligible for new assignments
//   - Skills are stored deduplicated and matched case-sensitively
//   - Each technician carries a positive max-concurrent-orders cap, defaulting to 3
//   - Status changes have no transition graph; any valid status may follow any other
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package technician
