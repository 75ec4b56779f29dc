package technicianrepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB, tracker aggregateTracker) *GormTechnicianRepository {
	return &GormTechnicianRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new technician and its skill rows to the database.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing technician using a versioned compare-and-swap.
// A stale aggregate is rejected with a ConcurrencyConflictError. Skill rows
// are replaced wholesale.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TechnicianDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"name":                  dto.Name,
			"email":                 dto.Email,
			"phone":                 dto.Phone,
			"status":                dto.Status,
			"current_location":      dto.CurrentLocation,
			"experience_years":      dto.ExperienceYears,
			"hourly_rate":           dto.HourlyRate,
			"max_concurrent_orders": dto.MaxConcurrentOrders,
			"updated_at":            dto.UpdatedAt,
			"version":               aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("technician", aggregate.ID().String())
	}

	if err := r.replaceSkills(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceSkills synchronizes the skill rows with the aggregate state.
func (r *GormTechnicianRepository) replaceSkills(ctx context.Context, dto TechnicianDTO) error {
	if err := r.db.WithContext(ctx).
		Where("technician_id = ?", dto.ID).
		Delete(&SkillDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Skills) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Skills).Error
}

// Get retrieves a technician with its skills by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).Preload("Skills").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a technician and its skill rows from the database.
func (r *GormTechnicianRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("technician_id = ?", id.Bytes()).
		Delete(&SkillDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TechnicianDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("technician", id.String())
	}

	return nil
}

// GetAllAvailable retrieves all technicians in Available status.
func (r *GormTechnicianRepository) GetAllAvailable(ctx context.Context) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	if err := r.db.WithContext(ctx).Preload("Skills").
		Find(&dtos, "status = ?", technician.StatusAvailable.String()).Error; err != nil {
		return nil, err
	}

	technicians := make([]*technician.Technician, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}

	return technicians, nil
}
