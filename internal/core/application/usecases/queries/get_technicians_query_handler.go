package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTechniciansQueryHandler retrieves technician profiles from the
// directory database.
type GetTechniciansQueryHandler struct {
	db *gorm.DB
}

// NewGetTechniciansQueryHandler creates a handler for technician list
// queries. Requires a GORM database connection for query execution.
func NewGetTechniciansQueryHandler(db *gorm.DB) GetTechniciansQueryHandler {
	return GetTechniciansQueryHandler{db: db}
}

// Handle executes the query and returns technician profiles sorted by name,
// honoring the query's optional status, skill and location filters.
func (h GetTechniciansQueryHandler) Handle(
	ctx context.Context,
	query GetTechniciansQuery,
) ([]GetTechniciansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_location,
			experience_years,
			hourly_rate,
			max_concurrent_orders,
			created_at,
			updated_at,
			version
		FROM technicians
	`
	args := make([]any, 0, 1)

	switch {
	case query.Status() != nil:
		sql += " WHERE status = ?"
		args = append(args, query.Status().String())
	case query.Skill() != "":
		sql += " WHERE id IN (SELECT technician_id FROM technician_skills WHERE skill = ?)"
		args = append(args, query.Skill())
	case query.Location() != "":
		sql += " WHERE current_location = ?"
		args = append(args, query.Location())
	}

	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	technicians := make([]GetTechniciansQueryResponse, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var resp GetTechniciansQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.Status,
			&resp.CurrentLocation,
			&resp.ExperienceYears,
			&resp.HourlyRate,
			&resp.MaxConcurrentOrders,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&resp.Version,
		)
		if err != nil {
			return nil, err
		}

		technicianID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = technicianID
		resp.Skills = make([]string, 0)

		technicians = append(technicians, resp)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachSkills(ctx, ids, technicians); err != nil {
		return nil, err
	}

	return technicians, nil
}

// attachSkills loads the skill rows for the selected technicians in one
// query and distributes them onto the responses.
func (h GetTechniciansQueryHandler) attachSkills(
	ctx context.Context,
	ids []uuid.UUID,
	technicians []GetTechniciansQueryResponse,
) error {
	if len(ids) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]int, len(technicians))
	for i, id := range ids {
		byID[id] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			technician_id,
			skill
		FROM technician_skills
		WHERE technician_id IN ?
		ORDER BY technician_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var skill string

		if err = rows.Scan(&id, &skill); err != nil {
			return err
		}

		if i, ok := byID[id]; ok {
			technicians[i].Skills = append(technicians[i].Skills, skill)
		}
	}

	return rows.Err()
}
