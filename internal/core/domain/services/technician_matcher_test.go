package services_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidate(t *testing.T, name string, status technician.Status,
	skills []string, experienceYears int, maxConcurrent int,
) *technician.Technician {
	t.Helper()

	now := time.Now().UTC()
	tech, err := technician.RestoreTechnician(kernel.NewUUID(), name, "", "",
		status, "", skills, experienceYears, decimal.NewFromInt(80),
		maxConcurrent, now, now, 1)
	require.NoError(t, err)
	return tech
}

func TestTechnicianMatcher_FindBest(t *testing.T) {
	matcher := services.NewTechnicianMatcher()

	t.Run("should select the most experienced eligible technician", func(t *testing.T) {
		junior := newCandidate(t, "Junior", technician.StatusAvailable,
			[]string{"plumbing"}, 2, 3)
		senior := newCandidate(t, "Senior", technician.StatusAvailable,
			[]string{"plumbing"}, 10, 3)
		mid := newCandidate(t, "Mid", technician.StatusAvailable,
			[]string{"plumbing"}, 6, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{junior, senior, mid}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(senior))
	})

	t.Run("should break exact experience ties by matching skill count", func(t *testing.T) {
		generalist := newCandidate(t, "Generalist", technician.StatusAvailable,
			[]string{"plumbing", "electrical", "hvac"}, 5, 3)
		specialist := newCandidate(t, "Specialist", technician.StatusAvailable,
			[]string{"plumbing", "electrical"}, 5, 3)

		best, err := matcher.FindBest([]string{"plumbing", "electrical", "hvac"},
			[]*technician.Technician{specialist, generalist}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(generalist))
	})

	t.Run("should not apply skill tie-breaker across different experience", func(t *testing.T) {
		// More experience wins even when another candidate matches more of the
		// required skills.
		experienced := newCandidate(t, "Experienced", technician.StatusAvailable,
			[]string{"plumbing"}, 9, 3)
		skilled := newCandidate(t, "Skilled", technician.StatusAvailable,
			[]string{"plumbing", "hvac"}, 4, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{skilled, experienced}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(experienced))
	})

	t.Run("should keep first candidate on full tie", func(t *testing.T) {
		first := newCandidate(t, "First", technician.StatusAvailable,
			[]string{"plumbing"}, 5, 3)
		second := newCandidate(t, "Second", technician.StatusAvailable,
			[]string{"plumbing"}, 5, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{first, second}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(first))
	})

	t.Run("should skip unavailable technicians", func(t *testing.T) {
		busy := newCandidate(t, "Busy", technician.StatusBusy,
			[]string{"plumbing"}, 10, 3)
		onBreak := newCandidate(t, "OnBreak", technician.StatusOnBreak,
			[]string{"plumbing"}, 9, 3)
		offline := newCandidate(t, "Offline", technician.StatusOffline,
			[]string{"plumbing"}, 8, 3)
		available := newCandidate(t, "Available", technician.StatusAvailable,
			[]string{"plumbing"}, 1, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{busy, onBreak, offline, available}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(available))
	})

	t.Run("should skip technicians missing a required skill", func(t *testing.T) {
		partial := newCandidate(t, "Partial", technician.StatusAvailable,
			[]string{"plumbing"}, 10, 3)
		complete := newCandidate(t, "Complete", technician.StatusAvailable,
			[]string{"plumbing", "electrical"}, 3, 3)

		best, err := matcher.FindBest([]string{"plumbing", "electrical"},
			[]*technician.Technician{partial, complete}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(complete))
	})

	t.Run("should skip technicians at their workload cap", func(t *testing.T) {
		loaded := newCandidate(t, "Loaded", technician.StatusAvailable,
			[]string{"plumbing"}, 10, 3)
		free := newCandidate(t, "Free", technician.StatusAvailable,
			[]string{"plumbing"}, 2, 3)
		workloads := map[kernel.UUID]int{
			loaded.ID(): 3,
			free.ID():   2,
		}

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{loaded, free}, workloads)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(free))
	})

	t.Run("should treat missing workload entry as zero", func(t *testing.T) {
		tech := newCandidate(t, "Fresh", technician.StatusAvailable,
			[]string{"plumbing"}, 2, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{tech}, map[kernel.UUID]int{})

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(tech))
	})

	t.Run("should disable workload filter when workloads are nil", func(t *testing.T) {
		loaded := newCandidate(t, "Loaded", technician.StatusAvailable,
			[]string{"plumbing"}, 10, 1)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{loaded}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(loaded))
	})

	t.Run("should match any available technician when no skills required", func(t *testing.T) {
		unskilled := newCandidate(t, "Unskilled", technician.StatusAvailable, nil, 3, 3)

		best, err := matcher.FindBest(nil,
			[]*technician.Technician{unskilled}, nil)

		require.NoError(t, err)
		require.NotNil(t, best)
		assert.True(t, best.IsEqual(unskilled))
	})

	t.Run("should return nil when no technician is eligible", func(t *testing.T) {
		busy := newCandidate(t, "Busy", technician.StatusBusy,
			[]string{"plumbing"}, 10, 3)

		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{busy}, nil)

		require.NoError(t, err)
		assert.Nil(t, best)
	})

	t.Run("should return nil for empty candidate pool", func(t *testing.T) {
		best, err := matcher.FindBest([]string{"plumbing"}, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, best)
	})

	t.Run("should reject improperly constructed candidates", func(t *testing.T) {
		best, err := matcher.FindBest([]string{"plumbing"},
			[]*technician.Technician{{}}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, technician.ErrTechnicianIsNotConstructed)
		assert.Nil(t, best)
	})
}
