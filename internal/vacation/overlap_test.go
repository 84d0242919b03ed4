package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice41/calendario/internal/domain"
)

func overlapFixtures() ([]*domain.Employee, []*domain.VacationRequest) {
	employees := []*domain.Employee{
		{ID: "emp-1", Name: "João Silva", Role: domain.RoleMotoristas},
		{ID: "emp-2", Name: "Maria Santos", Role: domain.RoleMotoristas},
		{ID: "emp-3", Name: "Pedro Costa", Role: domain.RoleArmazem},
	}

	vacations := []*domain.VacationRequest{
		{
			ID:         "vac-1",
			EmployeeID: "emp-2",
			StartDate:  domain.NewDate(2024, time.July, 1),
			EndDate:    domain.NewDate(2024, time.July, 5),
			Status:     domain.StatusApproved,
		},
		{
			ID:         "vac-2",
			EmployeeID: "emp-3",
			StartDate:  domain.NewDate(2024, time.July, 1),
			EndDate:    domain.NewDate(2024, time.July, 5),
			Status:     domain.StatusApproved,
		},
		{
			ID:         "vac-3",
			EmployeeID: "emp-2",
			StartDate:  domain.NewDate(2024, time.July, 8),
			EndDate:    domain.NewDate(2024, time.July, 12),
			Status:     domain.StatusRejected,
		},
	}

	return employees, vacations
}

func TestFindOverlaps_SameRoleOnly(t *testing.T) {
	employees, vacations := overlapFixtures()

	// emp-1 (Motoristas) quer 3 a 10 de julho: apanha vac-1 (emp-2, mesmo
	// cargo) mas não vac-2 (Armazém) nem vac-3 (rejeitado)
	overlaps := FindOverlaps(
		domain.NewDate(2024, time.July, 3),
		domain.NewDate(2024, time.July, 10),
		domain.RoleMotoristas,
		"",
		vacations,
		employees,
	)

	require.Len(t, overlaps, 1)
	assert.Equal(t, "vac-1", overlaps[0].ID)
}

func TestFindOverlaps_InclusiveBoundaries(t *testing.T) {
	employees, vacations := overlapFixtures()

	// intervalo que toca vac-1 apenas no último dia
	overlaps := FindOverlaps(
		domain.NewDate(2024, time.July, 5),
		domain.NewDate(2024, time.July, 6),
		domain.RoleMotoristas,
		"",
		vacations,
		employees,
	)

	require.Len(t, overlaps, 1)
	assert.Equal(t, "vac-1", overlaps[0].ID)
}

func TestFindOverlaps_NoIntersection(t *testing.T) {
	employees, vacations := overlapFixtures()

	overlaps := FindOverlaps(
		domain.NewDate(2024, time.July, 15),
		domain.NewDate(2024, time.July, 19),
		domain.RoleMotoristas,
		"",
		vacations,
		employees,
	)

	assert.Empty(t, overlaps)
}

func TestFindOverlaps_ExcludesOwnRecordDuringEdit(t *testing.T) {
	employees, vacations := overlapFixtures()

	overlaps := FindOverlaps(
		domain.NewDate(2024, time.July, 1),
		domain.NewDate(2024, time.July, 5),
		domain.RoleMotoristas,
		"vac-1",
		vacations,
		employees,
	)

	assert.Empty(t, overlaps)
}

func TestFindOverlaps_UnknownEmployeeRoleIgnored(t *testing.T) {
	employees, vacations := overlapFixtures()

	// registo de um funcionário que já não existe no snapshot
	vacations = append(vacations, &domain.VacationRequest{
		ID:         "vac-orfao",
		EmployeeID: "emp-apagado",
		StartDate:  domain.NewDate(2024, time.July, 1),
		EndDate:    domain.NewDate(2024, time.July, 5),
		Status:     domain.StatusApproved,
	})

	overlaps := FindOverlaps(
		domain.NewDate(2024, time.July, 1),
		domain.NewDate(2024, time.July, 5),
		domain.RoleMotoristas,
		"",
		vacations,
		employees,
	)

	require.Len(t, overlaps, 1)
	assert.Equal(t, "vac-1", overlaps[0].ID)
}
