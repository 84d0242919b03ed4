package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice41/calendario/internal/domain"
)

func TestForYear_ThirteenHolidaysSortedAndUnique(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		hs := ForYear(year)
		require.Len(t, hs, 13, "ano %d", year)

		seen := map[string]bool{}
		for i, h := range hs {
			assert.Equal(t, year, h.Date.Year())
			assert.True(t, h.IsNational)
			assert.False(t, seen[h.Date.String()], "feriado duplicado em %s", h.Date)
			seen[h.Date.String()] = true

			if i > 0 {
				assert.True(t, hs[i-1].Date.Before(h.Date), "feriados fora de ordem no ano %d", year)
			}
		}
	}
}

func TestEasterDate_ReferenceYears(t *testing.T) {
	tests := []struct {
		year     int
		expected domain.Date
	}{
		{2024, domain.NewDate(2024, time.March, 31)},
		{2025, domain.NewDate(2025, time.April, 20)},
		{2026, domain.NewDate(2026, time.April, 5)},
		{2027, domain.NewDate(2027, time.March, 28)},
		{2030, domain.NewDate(2030, time.April, 21)},
	}

	for _, tt := range tests {
		assert.True(t, easterDate(tt.year).Equal(tt.expected), "Páscoa de %d: esperado %s, obtido %s", tt.year, tt.expected, easterDate(tt.year))
	}
}

func TestForYear_MovableHolidaysDerivedFromEaster(t *testing.T) {
	// Páscoa de 2024: 31 de março
	hs := ForYear(2024)

	byName := map[string]domain.Holiday{}
	for _, h := range hs {
		byName[h.Name] = h
	}

	require.Contains(t, byName, "Sexta-feira Santa")
	require.Contains(t, byName, "Páscoa")
	require.Contains(t, byName, "Corpo de Deus")

	assert.True(t, byName["Sexta-feira Santa"].Date.Equal(domain.NewDate(2024, time.March, 29)))
	assert.True(t, byName["Páscoa"].Date.Equal(domain.NewDate(2024, time.March, 31)))
	assert.True(t, byName["Corpo de Deus"].Date.Equal(domain.NewDate(2024, time.May, 30)))
}

func TestLookup(t *testing.T) {
	h, ok := Lookup(domain.NewDate(2024, time.June, 10))
	require.True(t, ok)
	assert.Equal(t, "Dia de Portugal", h.Name)

	_, ok = Lookup(domain.NewDate(2024, time.June, 11))
	assert.False(t, ok)
}

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		date     domain.Date
		expected bool
	}{
		{"segunda-feira normal", domain.NewDate(2024, time.June, 3), true},
		{"sábado", domain.NewDate(2024, time.June, 8), false},
		{"domingo", domain.NewDate(2024, time.June, 9), false},
		{"feriado num dia de semana", domain.NewDate(2024, time.June, 10), false},
		{"Natal", domain.NewDate(2024, time.December, 25), false},
		{"véspera de Natal", domain.NewDate(2024, time.December, 24), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBusinessDay(tt.date))
		})
	}
}
