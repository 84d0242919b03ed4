// Package holidays calcula os feriados nacionais portugueses de um dado ano
// e responde a consultas de dias úteis. O conjunto é fixo: 10 feriados de data
// certa e 3 feriados móveis derivados da Páscoa, num total de 13 por ano.
package holidays

import (
	"sort"
	"time"

	"github.com/ice41/calendario/internal/domain"
)

// easterDate calcula a data da Páscoa para um dado ano (gregoriano) através
// do algoritmo de Meeus/Jones/Butcher (congruência de Gauss).
func easterDate(year int) domain.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return domain.NewDate(year, time.Month(month), day)
}

// ForYear devolve os 13 feriados nacionais do ano, ordenados por data.
// O cálculo é repetido a cada chamada; com um conjunto fixo de 13 feriados
// não há necessidade de cache.
func ForYear(year int) []domain.Holiday {
	easter := easterDate(year)

	hs := []domain.Holiday{
		{Date: domain.NewDate(year, time.January, 1), Name: "Ano Novo"},
		{Date: domain.NewDate(year, time.April, 25), Name: "Dia da Liberdade"},
		{Date: domain.NewDate(year, time.May, 1), Name: "Dia do Trabalhador"},
		{Date: domain.NewDate(year, time.June, 10), Name: "Dia de Portugal"},
		{Date: domain.NewDate(year, time.August, 15), Name: "Assunção de Nossa Senhora"},
		{Date: domain.NewDate(year, time.October, 5), Name: "Implantação da República"},
		{Date: domain.NewDate(year, time.November, 1), Name: "Dia de Todos os Santos"},
		{Date: domain.NewDate(year, time.December, 1), Name: "Restauração da Independência"},
		{Date: domain.NewDate(year, time.December, 8), Name: "Imaculada Conceição"},
		{Date: domain.NewDate(year, time.December, 25), Name: "Natal"},
		{Date: easter.AddDays(-2), Name: "Sexta-feira Santa"},
		{Date: easter, Name: "Páscoa"},
		{Date: easter.AddDays(60), Name: "Corpo de Deus"},
	}

	for i := range hs {
		hs[i].IsNational = true
	}

	sort.Slice(hs, func(i, j int) bool {
		return hs[i].Date.Before(hs[j].Date)
	})

	return hs
}

// Lookup procura o feriado correspondente à data, se existir.
func Lookup(d domain.Date) (domain.Holiday, bool) {
	for _, h := range ForYear(d.Year()) {
		if h.Date.Equal(d) {
			return h, true
		}
	}
	return domain.Holiday{}, false
}

// IsBusinessDay indica se a data é um dia útil: nem sábado, nem domingo,
// nem feriado nacional.
func IsBusinessDay(d domain.Date) bool {
	if d.IsWeekend() {
		return false
	}
	_, holiday := Lookup(d)
	return !holiday
}
