package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice41/calendario/internal/domain"
)

func makeVacation() *domain.VacationRequest {
	return &domain.VacationRequest{
		ID:         "vac-1",
		EmployeeID: "emp-1",
		StartDate:  domain.NewDate(2024, time.June, 3),
		EndDate:    domain.NewDate(2024, time.June, 7),
		Status:     domain.StatusApproved,
		Notes:      "notas",
	}
}

func TestRemoveDay_OutOfRange(t *testing.T) {
	v := makeVacation()

	plan := RemoveDay(v, domain.NewDate(2024, time.June, 10))
	assert.Equal(t, PlanNone, plan.Kind)
	assert.Nil(t, plan.Update)
	assert.Nil(t, plan.Create)
}

func TestRemoveDay_SingleDayRecord(t *testing.T) {
	day := domain.NewDate(2024, time.June, 5)
	v := &domain.VacationRequest{
		ID:         "vac-1",
		EmployeeID: "emp-1",
		StartDate:  day,
		EndDate:    day,
	}

	plan := RemoveDay(v, day)
	assert.Equal(t, PlanDelete, plan.Kind)
}

func TestRemoveDay_FirstDayShrinksStart(t *testing.T) {
	v := makeVacation()

	plan := RemoveDay(v, v.StartDate)
	require.Equal(t, PlanShrinkStart, plan.Kind)
	require.NotNil(t, plan.Update)

	assert.Equal(t, v.ID, plan.Update.ID)
	assert.True(t, plan.Update.StartDate.Equal(domain.NewDate(2024, time.June, 4)))
	assert.True(t, plan.Update.EndDate.Equal(v.EndDate))

	// o registo original não é alterado
	assert.True(t, v.StartDate.Equal(domain.NewDate(2024, time.June, 3)))
}

func TestRemoveDay_LastDayShrinksEnd(t *testing.T) {
	v := makeVacation()

	plan := RemoveDay(v, v.EndDate)
	require.Equal(t, PlanShrinkEnd, plan.Kind)
	require.NotNil(t, plan.Update)

	assert.Equal(t, v.ID, plan.Update.ID)
	assert.True(t, plan.Update.StartDate.Equal(v.StartDate))
	assert.True(t, plan.Update.EndDate.Equal(domain.NewDate(2024, time.June, 6)))
}

func TestRemoveDay_MiddleDaySplits(t *testing.T) {
	v := makeVacation()

	plan := RemoveDay(v, domain.NewDate(2024, time.June, 5))
	require.Equal(t, PlanSplit, plan.Kind)
	require.Len(t, plan.Create, 2)

	first, second := plan.Create[0], plan.Create[1]

	assert.True(t, first.StartDate.Equal(domain.NewDate(2024, time.June, 3)))
	assert.True(t, first.EndDate.Equal(domain.NewDate(2024, time.June, 4)))
	assert.True(t, second.StartDate.Equal(domain.NewDate(2024, time.June, 6)))
	assert.True(t, second.EndDate.Equal(domain.NewDate(2024, time.June, 7)))

	// os novos registos herdam o funcionário, o estado e as notas, mas
	// recebem ids próprios
	for _, created := range plan.Create {
		assert.Equal(t, v.EmployeeID, created.EmployeeID)
		assert.Equal(t, v.Status, created.Status)
		assert.Equal(t, v.Notes, created.Notes)
		assert.NotEmpty(t, created.ID)
		assert.NotEqual(t, v.ID, created.ID)
	}
	assert.NotEqual(t, first.ID, second.ID)
}
