package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
)

// TechnicianDirectory is the coordinator's gateway to the technician
// directory service. All calls are remote and best-effort from the caller's
// point of view: orchestration logs failures and continues, it never rolls
// back a committed local mutation because a directory call failed.
type TechnicianDirectory interface {
	// UpdateStatus asks the directory to move a technician to the given
	// status. Used to flip technicians between Busy and Available around
	// assignment changes.
	UpdateStatus(ctx context.Context, id kernel.UUID, status technician.Status) error

	// GetName fetches a technician's display name for response enrichment.
	GetName(ctx context.Context, id kernel.UUID) (string, error)

	// GetAvailable fetches the current pool of Available technicians,
	// used as the candidate snapshot for auto-assignment.
	GetAvailable(ctx context.Context) ([]*technician.Technician, error)
}
