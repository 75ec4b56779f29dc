package technician_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewTechnician(t *testing.T, skills ...string) *technician.Technician {
	t.Helper()

	tech, err := technician.NewTechnician(
		kernel.NewUUID(),
		"Sam Okafor",
		"sam@example.com",
		"555-0199",
		"North district",
		skills,
		5,
		decimal.NewFromInt(85),
	)
	require.NoError(t, err)
	return tech
}

func TestNewTechnician(t *testing.T) {
	t.Run("should create technician with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		tech, err := technician.NewTechnician(id, "Sam Okafor", "sam@example.com",
			"555-0199", "North district", []string{"plumbing", "electrical"},
			5, decimal.NewFromInt(85))

		require.NoError(t, err)
		require.NoError(t, tech.Validate())
		assert.Equal(t, id, tech.ID())
		assert.Equal(t, "Sam Okafor", tech.Name())
		assert.Equal(t, "sam@example.com", tech.Email())
		assert.Equal(t, "555-0199", tech.Phone())
		assert.Equal(t, technician.StatusAvailable, tech.Status())
		assert.Equal(t, "North district", tech.CurrentLocation())
		assert.Equal(t, []string{"plumbing", "electrical"}, tech.Skills())
		assert.Equal(t, 5, tech.ExperienceYears())
		assert.True(t, decimal.NewFromInt(85).Equal(tech.HourlyRate()))
		assert.Equal(t, technician.DefaultMaxConcurrentOrders, tech.MaxConcurrentOrders())
		assert.Equal(t, 1, tech.Version())
	})

	t.Run("should deduplicate skills preserving order", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing", "electrical", "plumbing")

		assert.Equal(t, []string{"plumbing", "electrical"}, tech.Skills())
	})

	t.Run("should reject invalid UUID", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.UUID{}, "Sam", "", "", "",
			nil, 0, decimal.Zero)

		require.Error(t, err)
		assert.Nil(t, tech)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.NewUUID(), "", "", "", "",
			nil, 0, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, technician.ErrNameIsRequired)
		assert.Nil(t, tech)
	})

	t.Run("should reject negative experience", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.NewUUID(), "Sam", "", "", "",
			nil, -1, decimal.Zero)

		require.Error(t, err)
		assert.Nil(t, tech)
	})

	t.Run("should reject negative hourly rate", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.NewUUID(), "Sam", "", "", "",
			nil, 0, decimal.NewFromInt(-10))

		require.Error(t, err)
		assert.Nil(t, tech)
	})

	t.Run("should reject empty skill entries", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.NewUUID(), "Sam", "", "", "",
			[]string{"plumbing", ""}, 0, decimal.Zero)

		require.Error(t, err)
		assert.Nil(t, tech)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := technician.NewTechnician(kernel.UUID{}, "", "", "", "",
			nil, -1, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, technician.ErrNameIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestTechnician_Validate(t *testing.T) {
	t.Run("should reject technician created without constructor", func(t *testing.T) {
		tech := &technician.Technician{}

		err := tech.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, technician.ErrTechnicianIsNotConstructed)
	})

	t.Run("should reject nil technician", func(t *testing.T) {
		var tech *technician.Technician

		err := tech.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, technician.ErrTechnicianIsNotConstructed)
	})
}

func TestTechnician_IsAvailable(t *testing.T) {
	t.Run("should be available only in Available status", func(t *testing.T) {
		tech := mustNewTechnician(t)
		assert.True(t, tech.IsAvailable())

		for _, status := range []technician.Status{
			technician.StatusBusy,
			technician.StatusOnBreak,
			technician.StatusOffline,
		} {
			require.NoError(t, tech.ChangeStatus(status))
			assert.False(t, tech.IsAvailable(), "%s should not be available", status)
		}

		require.NoError(t, tech.ChangeStatus(technician.StatusAvailable))
		assert.True(t, tech.IsAvailable())
	})
}

func TestTechnician_ChangeStatus(t *testing.T) {
	t.Run("should allow any valid status from any other", func(t *testing.T) {
		tech := mustNewTechnician(t)

		require.NoError(t, tech.ChangeStatus(technician.StatusOffline))
		require.NoError(t, tech.ChangeStatus(technician.StatusBusy))
		require.NoError(t, tech.ChangeStatus(technician.StatusOnBreak))
		require.NoError(t, tech.ChangeStatus(technician.StatusAvailable))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		tech := mustNewTechnician(t)

		err := tech.ChangeStatus(technician.StatusUnknown)

		require.Error(t, err)
		assert.Equal(t, technician.StatusAvailable, tech.Status())
	})
}

func TestTechnician_ChangeLocation(t *testing.T) {
	tech := mustNewTechnician(t)

	tech.ChangeLocation("South district")
	assert.Equal(t, "South district", tech.CurrentLocation())

	tech.ChangeLocation("")
	assert.Empty(t, tech.CurrentLocation())
}

func TestTechnician_HasSkills(t *testing.T) {
	t.Run("should match skill supersets", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing", "electrical", "hvac")

		assert.True(t, tech.HasSkills([]string{"plumbing"}))
		assert.True(t, tech.HasSkills([]string{"plumbing", "hvac"}))
		assert.True(t, tech.HasSkills(nil))
		assert.True(t, tech.HasSkills([]string{}))
	})

	t.Run("should reject missing skills", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing")

		assert.False(t, tech.HasSkills([]string{"electrical"}))
		assert.False(t, tech.HasSkills([]string{"plumbing", "electrical"}))
	})

	t.Run("should match case-sensitively", func(t *testing.T) {
		tech := mustNewTechnician(t, "Plumbing")

		assert.False(t, tech.HasSkills([]string{"plumbing"}))
		assert.True(t, tech.HasSkills([]string{"Plumbing"}))
	})
}

func TestTechnician_MatchingSkillCount(t *testing.T) {
	t.Run("should count intersecting skills", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing", "electrical")

		assert.Equal(t, 2, tech.MatchingSkillCount([]string{"plumbing", "electrical", "hvac"}))
		assert.Equal(t, 1, tech.MatchingSkillCount([]string{"plumbing", "hvac"}))
		assert.Equal(t, 0, tech.MatchingSkillCount([]string{"hvac"}))
		assert.Equal(t, 0, tech.MatchingSkillCount(nil))
	})
}

func TestTechnician_Update(t *testing.T) {
	t.Run("should replace profile fields", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing")

		err := tech.Update("Sam O. Okafor", "sam.o@example.com", "555-0200",
			"South district", []string{"plumbing", "hvac"}, 7,
			decimal.NewFromInt(95), 5)

		require.NoError(t, err)
		assert.Equal(t, "Sam O. Okafor", tech.Name())
		assert.Equal(t, "South district", tech.CurrentLocation())
		assert.Equal(t, []string{"plumbing", "hvac"}, tech.Skills())
		assert.Equal(t, 7, tech.ExperienceYears())
		assert.Equal(t, 5, tech.MaxConcurrentOrders())
	})

	t.Run("should not touch status", func(t *testing.T) {
		tech := mustNewTechnician(t)
		require.NoError(t, tech.ChangeStatus(technician.StatusBusy))

		err := tech.Update("Sam", "", "", "", nil, 1, decimal.Zero, 3)

		require.NoError(t, err)
		assert.Equal(t, technician.StatusBusy, tech.Status())
	})

	t.Run("should reject non-positive workload cap", func(t *testing.T) {
		tech := mustNewTechnician(t)

		err := tech.Update("Sam", "", "", "", nil, 1, decimal.Zero, 0)

		require.Error(t, err)
		assert.Equal(t, technician.DefaultMaxConcurrentOrders, tech.MaxConcurrentOrders())
	})
}

func TestTechnician_AddSkill(t *testing.T) {
	t.Run("should append new skill", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing")

		require.NoError(t, tech.AddSkill("hvac"))

		assert.Equal(t, []string{"plumbing", "hvac"}, tech.Skills())
	})

	t.Run("should ignore duplicate skill", func(t *testing.T) {
		tech := mustNewTechnician(t, "plumbing")

		require.NoError(t, tech.AddSkill("plumbing"))

		assert.Equal(t, []string{"plumbing"}, tech.Skills())
	})

	t.Run("should reject empty skill", func(t *testing.T) {
		tech := mustNewTechnician(t)

		err := tech.AddSkill("")

		require.Error(t, err)
	})
}

func TestRestoreTechnician(t *testing.T) {
	t.Run("should restore complete persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		created := time.Now().UTC().Add(-48 * time.Hour)
		updated := time.Now().UTC().Add(-time.Hour)

		tech, err := technician.RestoreTechnician(id, "Sam Okafor", "sam@example.com",
			"555-0199", technician.StatusBusy, "North district",
			[]string{"plumbing"}, 5, decimal.NewFromInt(85), 4, created, updated, 7)

		require.NoError(t, err)
		require.NoError(t, tech.Validate())
		assert.Equal(t, id, tech.ID())
		assert.Equal(t, technician.StatusBusy, tech.Status())
		assert.Equal(t, 4, tech.MaxConcurrentOrders())
		assert.Equal(t, created, tech.CreatedAt())
		assert.Equal(t, updated, tech.UpdatedAt())
		assert.Equal(t, 7, tech.Version())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		now := time.Now().UTC()

		tech, err := technician.RestoreTechnician(kernel.NewUUID(), "Sam", "", "",
			technician.StatusUnknown, "", nil, 0, decimal.Zero, 3, now, now, 1)

		require.Error(t, err)
		assert.Nil(t, tech)
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		now := time.Now().UTC()

		tech, err := technician.RestoreTechnician(kernel.NewUUID(), "Sam", "", "",
			technician.StatusAvailable, "", nil, 0, decimal.Zero, 3, now, now, 0)

		require.Error(t, err)
		assert.Nil(t, tech)
	})
}

func TestStatus(t *testing.T) {
	t.Run("should parse and format wire representations", func(t *testing.T) {
		testCases := []struct {
			status technician.Status
			wire   string
		}{
			{technician.StatusAvailable, "AVAILABLE"},
			{technician.StatusBusy, "BUSY"},
			{technician.StatusOnBreak, "ON_BREAK"},
			{technician.StatusOffline, "OFFLINE"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.wire, tc.status.String())

			parsed, err := technician.StatusFromString(tc.wire)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, input := range []string{"", "available", "UNKNOWN", "ON-BREAK"} {
			status, err := technician.StatusFromString(input)

			require.Error(t, err)
			assert.Equal(t, technician.StatusUnknown, status)
		}
	})

	t.Run("should validate only defined statuses", func(t *testing.T) {
		require.NoError(t, technician.StatusAvailable.Validate())
		require.Error(t, technician.StatusUnknown.Validate())
		require.Error(t, technician.Status(99).Validate())
	})
}
