package vacation

import (
	"github.com/ice41/calendario/internal/domain"
)

// FindOverlaps devolve os registos de férias não rejeitados de funcionários
// com o cargo indicado cujo intervalo interseta [start, end] (limites
// inclusivos). excludeID permite ignorar o próprio registo durante uma edição.
// O resultado é apenas um aviso para quem está a marcar férias, nunca um
// bloqueio; a ordem segue a do snapshot recebido.
func FindOverlaps(start, end domain.Date, role domain.Role, excludeID string, vacations []*domain.VacationRequest, employees []*domain.Employee) []*domain.VacationRequest {
	rolesByID := make(map[string]domain.Role, len(employees))
	for _, e := range employees {
		rolesByID[e.ID] = e.Role
	}

	overlaps := []*domain.VacationRequest{}
	for _, v := range vacations {
		if excludeID != "" && v.ID == excludeID {
			continue
		}
		if v.Status == domain.StatusRejected {
			continue
		}
		if rolesByID[v.EmployeeID] != role {
			continue
		}
		if !start.After(v.EndDate) && !end.Before(v.StartDate) {
			overlaps = append(overlaps, v)
		}
	}

	return overlaps
}
