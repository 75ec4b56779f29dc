package technician

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultMaxConcurrentOrders is the workload cap applied when a technician is
// created without an explicit one.
const DefaultMaxConcurrentOrders = 3

// Domain errors for technician operations.
var (
	// ErrNameIsRequired is returned when attempting to create a technician without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTechnicianIsNotConstructed is returned when using an improperly initialized Technician.
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician constructor")
)

// Technician represents a field-service worker in the directory.
// It is an aggregate root that manages technician identity, availability and
// the skill profile the matcher selects on.
//
// Business rules:
//   - Technician must have a valid UUID and a non-empty name
//   - Status is always a valid enumeration member; a new technician starts Available
//   - Skills are stored deduplicated and matched case-sensitively
//   - Max concurrent orders is always positive, defaulting to 3
//   - Experience years and hourly rate are never negative
type Technician struct {
	// id uniquely identifies the technician
	id kernel.UUID
	// name is the technician's display name
	name string
	// email and phone are contact fields (may be empty)
	email string
	phone string
	// status is the current availability state
	status Status
	// currentLocation is a free-text position, e.g. "North district"
	currentLocation string
	// skills are the capabilities offered, matched case-sensitively
	skills []string
	// experienceYears ranks technicians during selection
	experienceYears int
	// hourlyRate is the billing rate
	hourlyRate decimal.Decimal
	// maxConcurrentOrders caps the active workload
	maxConcurrentOrders int
	// createdAt and updatedAt are audit timestamps
	createdAt time.Time
	updatedAt time.Time
	// version is the optimistic-concurrency counter checked on every update
	version int
	// guard ensures the technician was properly constructed
	guard guard.ConstructorGuard
}

// NewTechnician creates a new Technician with the specified parameters.
// The technician starts Available with the default workload cap and version 1.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - email, phone: contact fields (may be empty)
//   - currentLocation: free-text position (may be empty)
//   - skills: offered capabilities (deduplicated, may be empty)
//   - experienceYears: must not be negative
//   - hourlyRate: must not be negative
func NewTechnician(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	currentLocation string,
	skills []string,
	experienceYears int,
	hourlyRate decimal.Decimal,
) (*Technician, error) {
	now := time.Now().UTC()
	technician := &Technician{
		email:               email,
		phone:               phone,
		status:              StatusAvailable,
		currentLocation:     currentLocation,
		maxConcurrentOrders: DefaultMaxConcurrentOrders,
		createdAt:           now,
		updatedAt:           now,
		version:             1,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		technician.setID(id),
		technician.setName(name),
		technician.setSkills(skills),
		technician.setExperienceYears(experienceYears),
		technician.setHourlyRate(hourlyRate),
	); err != nil {
		return nil, err
	}

	return technician, nil
}

// RestoreTechnician reconstructs a Technician aggregate from persistent
// storage. Unlike NewTechnician it accepts the complete persisted state,
// including the status, workload cap, audit timestamps and version counter.
func RestoreTechnician(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	status Status,
	currentLocation string,
	skills []string,
	experienceYears int,
	hourlyRate decimal.Decimal,
	maxConcurrentOrders int,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Technician, error) {
	technician := &Technician{
		email:           email,
		phone:           phone,
		currentLocation: currentLocation,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		technician.setID(id),
		technician.setName(name),
		technician.setStatus(status),
		technician.setSkills(skills),
		technician.setExperienceYears(experienceYears),
		technician.setHourlyRate(hourlyRate),
		technician.setMaxConcurrentOrders(maxConcurrentOrders),
		technician.setVersion(version),
	); err != nil {
		return nil, err
	}

	return technician, nil
}

// IsEqual compares two technicians by their unique identifiers.
func (t *Technician) IsEqual(other *Technician) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// Validate checks if the Technician was properly constructed.
func (t *Technician) Validate() error {
	if t == nil {
		return ErrTechnicianIsNotConstructed
	}
	return t.guard.Validate(ErrTechnicianIsNotConstructed)
}

// ID returns the technician's unique identifier.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// Name returns the technician's display name.
func (t *Technician) Name() string {
	return t.name
}

// Email returns the technician's email address.
func (t *Technician) Email() string {
	return t.email
}

// Phone returns the technician's phone number.
func (t *Technician) Phone() string {
	return t.phone
}

// Status returns the current availability state.
func (t *Technician) Status() Status {
	return t.status
}

// CurrentLocation returns the free-text position.
func (t *Technician) CurrentLocation() string {
	return t.currentLocation
}

// Skills returns the offered capabilities.
// The returned slice is a copy to prevent external modification.
func (t *Technician) Skills() []string {
	out := make([]string, len(t.skills))
	copy(out, t.skills)
	return out
}

// ExperienceYears returns the technician's years of experience.
func (t *Technician) ExperienceYears() int {
	return t.experienceYears
}

// HourlyRate returns the billing rate.
func (t *Technician) HourlyRate() decimal.Decimal {
	return t.hourlyRate
}

// MaxConcurrentOrders returns the active-workload cap.
func (t *Technician) MaxConcurrentOrders() int {
	return t.maxConcurrentOrders
}

// CreatedAt returns the creation audit timestamp.
func (t *Technician) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last-modification audit timestamp.
func (t *Technician) UpdatedAt() time.Time {
	return t.updatedAt
}

// Version returns the optimistic-concurrency counter as loaded from storage.
func (t *Technician) Version() int {
	return t.version
}

// IsAvailable reports whether the technician can accept new work orders.
func (t *Technician) IsAvailable() bool {
	return t.status == StatusAvailable
}

// HasSkills reports whether the technician's skill set is a superset of the
// required skills. Matching is case-sensitive; an empty requirement always
// matches.
func (t *Technician) HasSkills(required []string) bool {
	for _, skill := range required {
		if !t.hasSkill(skill) {
			return false
		}
	}
	return true
}

// MatchingSkillCount returns how many of the required skills the technician
// offers. The matcher uses it as the tie-breaker between equally experienced
// candidates.
func (t *Technician) MatchingSkillCount(required []string) int {
	count := 0
	for _, skill := range required {
		if t.hasSkill(skill) {
			count++
		}
	}
	return count
}

// ChangeStatus replaces the availability state.
// Any valid status may follow any other; there is no transition graph.
func (t *Technician) ChangeStatus(status Status) error {
	if err := t.setStatus(status); err != nil {
		return err
	}

	t.touch()
	return nil
}

// ChangeLocation moves the technician to a new free-text position.
// The location may be empty; an empty string means "unknown".
func (t *Technician) ChangeLocation(location string) {
	t.currentLocation = location
	t.touch()
}

// Update replaces the mutable profile fields of the technician.
// Status is untouched; it changes only through ChangeStatus.
func (t *Technician) Update(
	name string,
	email string,
	phone string,
	currentLocation string,
	skills []string,
	experienceYears int,
	hourlyRate decimal.Decimal,
	maxConcurrentOrders int,
) error {
	if err := errors.Join(
		t.setName(name),
		t.setSkills(skills),
		t.setExperienceYears(experienceYears),
		t.setHourlyRate(hourlyRate),
		t.setMaxConcurrentOrders(maxConcurrentOrders),
	); err != nil {
		return err
	}

	t.email = email
	t.phone = phone
	t.currentLocation = currentLocation
	t.touch()
	return nil
}

// AddSkill appends a capability to the skill set if not already present.
func (t *Technician) AddSkill(skill string) error {
	if skill == "" {
		return errs.NewValueIsRequiredError("skill")
	}
	if t.hasSkill(skill) {
		return nil
	}

	t.skills = append(t.skills, skill)
	t.touch()
	return nil
}

// hasSkill reports whether the skill set contains the exact skill.
func (t *Technician) hasSkill(skill string) bool {
	for _, s := range t.skills {
		if s == skill {
			return true
		}
	}
	return false
}

// touch advances the last-modification timestamp.
func (t *Technician) touch() {
	t.updatedAt = time.Now().UTC()
}

// setID sets the technician's unique identifier with validation.
func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

// setName sets the technician's name with validation.
func (t *Technician) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	t.name = name
	return nil
}

// setStatus sets the availability state with validation.
func (t *Technician) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}

// setSkills stores the skill set deduplicated, preserving first-seen order.
func (t *Technician) setSkills(skills []string) error {
	deduplicated := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		if skill == "" {
			return errs.NewValueIsRequiredError("skill")
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		deduplicated = append(deduplicated, skill)
	}

	t.skills = deduplicated
	return nil
}

// setExperienceYears sets the years of experience with validation.
func (t *Technician) setExperienceYears(years int) error {
	if years < 0 {
		return errs.NewValueIsOutOfRangeError("experienceYears", years, 0, 100)
	}

	t.experienceYears = years
	return nil
}

// setHourlyRate sets the billing rate with validation.
func (t *Technician) setHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("hourlyRate must not be negative")
	}

	t.hourlyRate = rate
	return nil
}

// setMaxConcurrentOrders sets the workload cap with validation.
func (t *Technician) setMaxConcurrentOrders(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsOutOfRangeError("maxConcurrentOrders", limit, 1, 100)
	}

	t.maxConcurrentOrders = limit
	return nil
}

// setVersion sets the optimistic-concurrency counter with validation.
func (t *Technician) setVersion(version int) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}

	t.version = version
	return nil
}
