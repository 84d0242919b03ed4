package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice41/calendario/internal/domain"
)

func TestSegment_SingleGroup(t *testing.T) {
	// segunda a sexta da mesma semana, sem feriados
	start := domain.NewDate(2024, time.June, 3)
	end := domain.NewDate(2024, time.June, 7)

	groups, err := Segment(start, end)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.True(t, groups[0].Start.Equal(start))
	assert.True(t, groups[0].End.Equal(end))
}

func TestSegment_WeekendSplitsIntoTwoGroups(t *testing.T) {
	// quinta 6 a terça 11: o fim de semana (8 e 9) e o feriado de segunda (10,
	// Dia de Portugal) são descartados
	start := domain.NewDate(2024, time.June, 6)
	end := domain.NewDate(2024, time.June, 11)

	groups, err := Segment(start, end)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.True(t, groups[0].Start.Equal(domain.NewDate(2024, time.June, 6)))
	assert.True(t, groups[0].End.Equal(domain.NewDate(2024, time.June, 7)))
	assert.True(t, groups[1].Start.Equal(domain.NewDate(2024, time.June, 11)))
	assert.True(t, groups[1].End.Equal(domain.NewDate(2024, time.June, 11)))
}

func TestSegment_HolidayMidWeekSplits(t *testing.T) {
	// 1 de maio de 2024 cai numa quarta-feira
	start := domain.NewDate(2024, time.April, 29)
	end := domain.NewDate(2024, time.May, 3)

	groups, err := Segment(start, end)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.True(t, groups[0].Start.Equal(domain.NewDate(2024, time.April, 29)))
	assert.True(t, groups[0].End.Equal(domain.NewDate(2024, time.April, 30)))
	assert.True(t, groups[1].Start.Equal(domain.NewDate(2024, time.May, 2)))
	assert.True(t, groups[1].End.Equal(domain.NewDate(2024, time.May, 3)))
}

func TestSegment_OnlyWeekend(t *testing.T) {
	start := domain.NewDate(2024, time.June, 8)
	end := domain.NewDate(2024, time.June, 9)

	groups, err := Segment(start, end)
	assert.ErrorIs(t, err, ErrNoBusinessDays)
	assert.Nil(t, groups)
}

func TestSegment_SingleBusinessDay(t *testing.T) {
	day := domain.NewDate(2024, time.June, 5)

	groups, err := Segment(day, day)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Start.Equal(day))
	assert.True(t, groups[0].End.Equal(day))
}

func TestBuildRequests(t *testing.T) {
	groups := []domain.DateRange{
		{Start: domain.NewDate(2024, time.June, 6), End: domain.NewDate(2024, time.June, 7)},
		{Start: domain.NewDate(2024, time.June, 11), End: domain.NewDate(2024, time.June, 11)},
	}

	requests := BuildRequests(groups, "emp-1", domain.StatusPending, "férias de verão")
	require.Len(t, requests, 2)

	ids := map[string]bool{}
	for i, req := range requests {
		assert.NotEmpty(t, req.ID)
		assert.False(t, ids[req.ID], "ids repetidos")
		ids[req.ID] = true

		assert.Equal(t, "emp-1", req.EmployeeID)
		assert.Equal(t, domain.StatusPending, req.Status)
		assert.Equal(t, "férias de verão", req.Notes)
		assert.True(t, req.StartDate.Equal(groups[i].Start))
		assert.True(t, req.EndDate.Equal(groups[i].End))
	}
}
