package services

import (
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
)

// TechnicianMatcher is a domain service responsible for selecting the best
// technician for a work order from a candidate snapshot.
//
// Key responsibilities:
//   - Filtering candidates on availability, skills, and workload capacity
//   - Ranking eligible candidates by experience
//   - Breaking exact experience ties by matching-skill count
//
// Business rules:
//   - Only Available technicians are eligible
//   - A candidate's skill set must cover every required skill (case-sensitive)
//   - A candidate whose active workload has reached their cap is skipped
//   - More experience wins; on an exact tie, more matching skills wins;
//     remaining ties fall to iteration order
//   - An empty result is a normal outcome, not an error
//
// Example usage:
//
//	matcher := NewTechnicianMatcher()
//	best, err := matcher.FindBest([]string{"plumbing"}, candidates, workloads)
//	if err != nil {
//	    // Handle validation failure
//	}
//	if best == nil {
//	    // No eligible technician; work order stays pending
//	}
type TechnicianMatcher struct{}

// NewTechnicianMatcher creates a new TechnicianMatcher instance.
func NewTechnicianMatcher() TechnicianMatcher {
	return TechnicianMatcher{}
}

// FindBest selects the best technician for the required skills.
//
// Parameters:
//   - requiredSkills: skills the work order demands (may be empty)
//   - candidates: snapshot of technicians to consider
//   - workloads: active work-order counts keyed by technician id; a missing
//     entry means zero. A nil map disables workload filtering entirely, for
//     callers that rank on profile alone.
//
// Returns:
//   - *technician.Technician: the winning candidate, or nil when none is eligible
//   - error: validation error if a candidate was improperly constructed
func (m TechnicianMatcher) FindBest(
	requiredSkills []string,
	candidates []*technician.Technician,
	workloads map[kernel.UUID]int,
) (*technician.Technician, error) {
	var best *technician.Technician
	bestMatching := 0

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !m.isEligible(candidate, requiredSkills, workloads) {
			continue
		}

		matching := candidate.MatchingSkillCount(requiredSkills)
		if best == nil ||
			candidate.ExperienceYears() > best.ExperienceYears() ||
			(candidate.ExperienceYears() == best.ExperienceYears() && matching > bestMatching) {
			best = candidate
			bestMatching = matching
		}
	}

	return best, nil
}

// isEligible applies the availability, skill, and workload filters.
func (m TechnicianMatcher) isEligible(
	candidate *technician.Technician,
	requiredSkills []string,
	workloads map[kernel.UUID]int,
) bool {
	if !candidate.IsAvailable() {
		return false
	}
	if !candidate.HasSkills(requiredSkills) {
		return false
	}
	if workloads != nil && workloads[candidate.ID()] >= candidate.MaxConcurrentOrders() {
		return false
	}
	return true
}
