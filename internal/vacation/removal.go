package vacation

import (
	"github.com/google/uuid"
	"github.com/ice41/calendario/internal/domain"
)

// PlanKind identifica o efeito da remoção de um dia sobre um registo de férias.
type PlanKind int

const (
	// PlanNone: o dia não pertence ao intervalo; não há nada a fazer.
	PlanNone PlanKind = iota
	// PlanDelete: o registo cobria apenas esse dia e deve ser apagado.
	PlanDelete
	// PlanShrinkStart: o dia era o primeiro do intervalo; o início avança um dia.
	PlanShrinkStart
	// PlanShrinkEnd: o dia era o último do intervalo; o fim recua um dia.
	PlanShrinkEnd
	// PlanSplit: o dia estava no meio; o registo original é substituído por dois novos.
	PlanSplit
)

// RemovalPlan descreve as mutações a aplicar à persistência. Update está
// preenchido nos planos de encolhimento; Create nos de divisão, com dois
// registos novos que herdam funcionário, estado e notas mas recebem ids
// próprios (o id original é reformado).
type RemovalPlan struct {
	Kind   PlanKind
	Update *domain.VacationRequest
	Create []*domain.VacationRequest
}

// RemoveDay calcula o plano resultante de retirar um único dia do registo.
// O plano é um valor; cabe ao chamador executá-lo contra a persistência. A
// execução do PlanSplit (apagar + criar dois) não é atómica entre chamadas à
// persistência; uma falha parcial deixa estado órfão e tem de ser reportada.
func RemoveDay(v *domain.VacationRequest, day domain.Date) RemovalPlan {
	if day.Before(v.StartDate) || day.After(v.EndDate) {
		return RemovalPlan{Kind: PlanNone}
	}

	if v.StartDate.Equal(v.EndDate) {
		return RemovalPlan{Kind: PlanDelete}
	}

	if day.Equal(v.StartDate) {
		updated := *v
		updated.StartDate = day.AddDays(1)
		return RemovalPlan{Kind: PlanShrinkStart, Update: &updated}
	}

	if day.Equal(v.EndDate) {
		updated := *v
		updated.EndDate = day.AddDays(-1)
		return RemovalPlan{Kind: PlanShrinkEnd, Update: &updated}
	}

	first := &domain.VacationRequest{
		ID:         uuid.NewString(),
		EmployeeID: v.EmployeeID,
		StartDate:  v.StartDate,
		EndDate:    day.AddDays(-1),
		Status:     v.Status,
		Notes:      v.Notes,
	}
	second := &domain.VacationRequest{
		ID:         uuid.NewString(),
		EmployeeID: v.EmployeeID,
		StartDate:  day.AddDays(1),
		EndDate:    v.EndDate,
		Status:     v.Status,
		Notes:      v.Notes,
	}

	return RemovalPlan{Kind: PlanSplit, Create: []*domain.VacationRequest{first, second}}
}
