package domain

import (
	"time"
)

type VacationStatus string

const (
	StatusPending  VacationStatus = "Pending"
	StatusApproved VacationStatus = "Approved"
	StatusRejected VacationStatus = "Rejected"
)

func (s VacationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// VacationRequest é um registo de férias com intervalo fechado de datas.
// O id é gerado por quem cria o registo (UUID), nunca pela base de dados.
// Os registos criados pela via de segmentação só contêm dias úteis; edições
// diretas de administradores podem violar essa convenção e não são revalidadas.
type VacationRequest struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	StartDate  Date           `json:"startDate"`
	EndDate    Date           `json:"endDate"`
	Status     VacationStatus `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	Version    int32          `json:"-"`
}

// DateRange é um intervalo fechado de datas de calendário.
type DateRange struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}
