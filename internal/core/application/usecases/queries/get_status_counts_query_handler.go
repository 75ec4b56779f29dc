package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStatusCountsQueryHandler counts work orders grouped by status.
type GetStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusCountsQueryHandler creates a handler for status-count queries.
func NewGetStatusCountsQueryHandler(db *gorm.DB) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{db: db}
}

// Handle executes the query and returns one row per status that currently
// has work orders, sorted by status for stable output.
func (h GetStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusCountsQuery,
) ([]StatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]StatusCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM work_orders
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
