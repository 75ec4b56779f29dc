package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTechnicianStatusCountsQueryHandler counts technicians grouped by status.
type GetTechnicianStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetTechnicianStatusCountsQueryHandler creates a handler for technician
// status-count queries.
func NewGetTechnicianStatusCountsQueryHandler(db *gorm.DB) GetTechnicianStatusCountsQueryHandler {
	return GetTechnicianStatusCountsQueryHandler{db: db}
}

// Handle executes the query and returns one row per status that currently
// has technicians, sorted by status for stable output.
func (h GetTechnicianStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetTechnicianStatusCountsQuery,
) ([]StatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]StatusCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM technicians
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count StatusCountResponse
		if err = rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
