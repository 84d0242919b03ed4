// Package vacation contém o motor de intervalos de férias: segmentação de
// períodos em grupos contíguos de dias úteis, deteção de sobreposições entre
// funcionários do mesmo cargo e remoção de dias individuais de um registo.
// Todas as operações são computações puras sobre valores em memória; a
// persistência é responsabilidade de quem as chama.
package vacation

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ice41/calendario/internal/domain"
	"github.com/ice41/calendario/internal/holidays"
)

// ErrNoBusinessDays indica que o período pedido não contém nenhum dia útil.
// Nada deve ser persistido quando este erro é devolvido.
var ErrNoBusinessDays = errors.New("não há dias úteis no período selecionado")

// Segment divide o período fechado [start, end] em grupos contíguos de dias
// úteis. Fins de semana e feriados são descartados; cada salto superior a um
// dia de calendário entre dias úteis retidos quebra o grupo.
func Segment(start, end domain.Date) ([]domain.DateRange, error) {
	businessDays := []domain.Date{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if holidays.IsBusinessDay(d) {
			businessDays = append(businessDays, d)
		}
	}

	if len(businessDays) == 0 {
		return nil, ErrNoBusinessDays
	}

	groups := []domain.DateRange{}
	current := domain.DateRange{Start: businessDays[0], End: businessDays[0]}

	for _, day := range businessDays[1:] {
		if domain.DaysBetween(current.End, day) != 1 {
			groups = append(groups, current)
			current = domain.DateRange{Start: day, End: day}
			continue
		}
		current.End = day
	}
	groups = append(groups, current)

	return groups, nil
}

// BuildRequests converte os grupos segmentados em novos registos de férias.
// Todos partilham o funcionário, o estado e as notas; cada um recebe um id
// próprio gerado aqui.
func BuildRequests(groups []domain.DateRange, employeeID string, status domain.VacationStatus, notes string) []*domain.VacationRequest {
	requests := make([]*domain.VacationRequest, 0, len(groups))
	for _, g := range groups {
		requests = append(requests, &domain.VacationRequest{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			StartDate:  g.Start,
			EndDate:    g.End,
			Status:     status,
			Notes:      notes,
		})
	}
	return requests
}
