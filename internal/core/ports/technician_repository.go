package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technician
// aggregates in the directory service.
type TechnicianRepository interface {
	// Add persists a new technician aggregate to storage.
	// The technician must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *technician.Technician) error

	// Update persists changes to an existing technician aggregate using a
	// versioned compare-and-swap. When the stored version no longer matches
	// the aggregate's version the update is rejected with a
	// ConcurrencyConflictError and no state changes.
	Update(ctx context.Context, aggregate *technician.Technician) error

	// Get retrieves a technician aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error)

	// Delete removes a technician aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllAvailable retrieves all technicians in Available status.
	// Used as the candidate pool for work-order matching.
	GetAllAvailable(ctx context.Context) ([]*technician.Technician, error)
}
