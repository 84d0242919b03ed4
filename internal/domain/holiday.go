package domain

// Holiday é um feriado derivado do calendário do ano; nunca é persistido.
type Holiday struct {
	Date       Date   `json:"date"`
	Name       string `json:"name"`
	IsNational bool   `json:"isNational"`
}
