package domain

import (
	"time"
)

type Role string

const (
	RoleFinanceiro Role = "Departamento Financeiro"
	RoleImportacao Role = "Importação"
	RoleExportacao Role = "Exportação"
	RoleAereo      Role = "Departamento Aereo"
	RoleMaritimo   Role = "Departamento Maritimo"
	RoleArmazem    Role = "Armazém"
	RoleNacional   Role = "Departamento Nacional"
	RoleMotoristas Role = "Motoristas"
	RoleOutro      Role = "Outro"
)

var Roles = []Role{
	RoleFinanceiro,
	RoleImportacao,
	RoleExportacao,
	RoleAereo,
	RoleMaritimo,
	RoleArmazem,
	RoleNacional,
	RoleMotoristas,
	RoleOutro,
}

// Valid indica se o cargo pertence ao conjunto fechado de cargos da empresa.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	Color      string    `json:"color"`
	CodeHash   string    `json:"-"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}
