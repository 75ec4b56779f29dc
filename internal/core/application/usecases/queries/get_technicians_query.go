package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTechniciansQueryIsNotConstructed = errors.New(
	"GetTechniciansQuery must be created via a NewGetTechnicians*Query constructor",
)

// GetTechniciansQuery retrieves technician profiles from the directory,
// optionally narrowed to one status, one skill, or one location. The
// unfiltered form returns the whole directory.
//
// Example:
//
//	query, err := NewGetTechniciansBySkillQuery("plumbing")
//	if err != nil {
//	    return err
//	}
//
//	technicians, err := handler.Handle(ctx, query)
type GetTechniciansQuery struct {
	status   *technician.Status
	skill    string
	location string

	guard guard.ConstructorGuard
}

// NewGetTechniciansQuery creates a query to retrieve all technicians.
func NewGetTechniciansQuery() GetTechniciansQuery {
	return GetTechniciansQuery{guard: guard.NewConstructorGuard()}
}

// NewGetTechniciansByStatusQuery creates a query narrowed to one status.
func NewGetTechniciansByStatusQuery(status technician.Status) (GetTechniciansQuery, error) {
	if err := status.Validate(); err != nil {
		return GetTechniciansQuery{}, err
	}

	return GetTechniciansQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetTechniciansBySkillQuery creates a query narrowed to technicians
// holding the given skill. Skills match case-sensitively.
func NewGetTechniciansBySkillQuery(skill string) (GetTechniciansQuery, error) {
	if skill == "" {
		return GetTechniciansQuery{}, errs.NewValueIsRequiredError("skill")
	}

	return GetTechniciansQuery{
		skill: skill,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGetTechniciansByLocationQuery creates a query narrowed to technicians
// whose current location matches exactly.
func NewGetTechniciansByLocationQuery(location string) (GetTechniciansQuery, error) {
	if location == "" {
		return GetTechniciansQuery{}, errs.NewValueIsRequiredError("location")
	}

	return GetTechniciansQuery{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetTechniciansQuery) Validate() error {
	return q.guard.Validate(ErrGetTechniciansQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q GetTechniciansQuery) Status() *technician.Status {
	return q.status
}

// Skill returns the skill filter, or the empty string when unfiltered.
func (q GetTechniciansQuery) Skill() string {
	return q.skill
}

// Location returns the location filter, or the empty string when unfiltered.
func (q GetTechniciansQuery) Location() string {
	return q.location
}

// GetTechniciansQueryResponse represents a technician profile in the read
// model.
type GetTechniciansQueryResponse struct {
	ID                  kernel.UUID
	Name                string
	Email               string
	Phone               string
	Status              string
	CurrentLocation     string
	Skills              []string
	ExperienceYears     int
	HourlyRate          decimal.Decimal
	MaxConcurrentOrders int
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int
}
