package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTechnicianCountsQueryHandler counts work orders grouped by their
// assigned technician.
type GetTechnicianCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetTechnicianCountsQueryHandler creates a handler for technician-count
// queries.
func NewGetTechnicianCountsQueryHandler(db *gorm.DB) GetTechnicianCountsQueryHandler {
	return GetTechnicianCountsQueryHandler{db: db}
}

// Handle executes the query and returns one row per technician that has work
// orders referencing them.
func (h GetTechnicianCountsQueryHandler) Handle(
	ctx context.Context,
	query GetTechnicianCountsQuery,
) ([]TechnicianCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]TechnicianCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			assigned_technician_id,
			COUNT(*)
		FROM work_orders
		WHERE assigned_technician_id IS NOT NULL
		GROUP BY assigned_technician_id
		ORDER BY assigned_technician_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count TechnicianCountResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &count.Count); err != nil {
			return nil, err
		}

		technicianID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		count.TechnicianID = technicianID

		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
