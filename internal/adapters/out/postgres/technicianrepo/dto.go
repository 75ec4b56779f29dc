// Package technicianrepo provides data transfer objects and mapping functions
// for technician persistence in the directory service.
package technicianrepo

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TechnicianDTO represents the database structure for persisting technician
// aggregates, with an index on status for the availability queries used
// during matching.
type TechnicianDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"not null"`
	Email               string
	Phone               string
	Status              string `gorm:"type:varchar(16);not null;index"`
	CurrentLocation     string
	ExperienceYears     int
	HourlyRate          decimal.Decimal `gorm:"type:numeric(12,2)"`
	MaxConcurrentOrders int
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int        `gorm:"not null"`
	Skills              []SkillDTO `gorm:"foreignKey:TechnicianID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for technician entities.
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// SkillDTO represents a single technician skill row. Position preserves the
// order the skills were registered in.
type SkillDTO struct {
	TechnicianID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Skill        string    `gorm:"primaryKey"`
	Position     int
}

// TableName specifies the database table name for technician skills.
func (SkillDTO) TableName() string {
	return "technician_skills"
}

// fromDomain converts a technician domain aggregate to its database
// representation including its skill rows.
func fromDomain(aggregate *technician.Technician) TechnicianDTO {
	skills := make([]SkillDTO, 0, len(aggregate.Skills()))
	for i, skill := range aggregate.Skills() {
		skills = append(skills, SkillDTO{
			TechnicianID: aggregate.ID().Bytes(),
			Skill:        skill,
			Position:     i,
		})
	}

	return TechnicianDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Email:               aggregate.Email(),
		Phone:               aggregate.Phone(),
		Status:              aggregate.Status().String(),
		CurrentLocation:     aggregate.CurrentLocation(),
		ExperienceYears:     aggregate.ExperienceYears(),
		HourlyRate:          aggregate.HourlyRate(),
		MaxConcurrentOrders: aggregate.MaxConcurrentOrders(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Version:             aggregate.Version(),
		Skills:              skills,
	}
}

// toDomain converts a database DTO to a technician domain aggregate using
// RestoreTechnician.
func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := technician.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	skills := make([]string, len(dto.Skills))
	for _, skillDTO := range dto.Skills {
		skills[skillDTO.Position] = skillDTO.Skill
	}

	return technician.RestoreTechnician(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		status,
		dto.CurrentLocation,
		skills,
		dto.ExperienceYears,
		dto.HourlyRate,
		dto.MaxConcurrentOrders,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
