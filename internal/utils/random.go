package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/ice41/calendario/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"João", "Maria", "Pedro", "Ana", "Tiago", "Sofia", "Miguel", "Inês",
	"Rui", "Beatriz", "André", "Carolina", "Diogo", "Marta", "Nuno", "Rita",
	"Bruno", "Catarina", "Carlos", "Teresa",
}
var commonSurnames = []string{
	"Silva", "Santos", "Ferreira", "Pereira", "Oliveira", "Costa", "Rodrigues",
	"Martins", "Sousa", "Fernandes", "Gonçalves", "Gomes", "Lopes", "Marques",
	"Alves", "Almeida", "Ribeiro", "Pinto", "Carvalho", "Teixeira",
}

func GenerateRandomPortugueseName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + surname
}

func GenerateRandomRole() domain.Role {
	return domain.Roles[rand.Intn(len(domain.Roles))]
}

// calendarColors são as cores atribuídas aos funcionários no calendário.
var calendarColors = []string{
	"#3b82f6", "#ef4444", "#22c55e", "#f59e0b", "#8b5cf6",
	"#ec4899", "#14b8a6", "#f97316", "#6366f1", "#84cc16",
}

func RandomCalendarColor() string {
	return calendarColors[rand.Intn(len(calendarColors))]
}

var digits = "0123456789"

// GenerateEmailFromName deriva um email simples a partir do nome, só para os
// dados de demonstração.
func GenerateEmailFromName(name string, emailDomainName string) string {
	local := ""
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			local += string(r)
		case r >= 'A' && r <= 'Z':
			local += string(r + ('a' - 'A'))
		}
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

func GenerateRandomEmployee(code string, emailDomainName string) (*domain.Employee, error) {
	name := GenerateRandomPortugueseName()
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := GenerateRandomRole()

	employee := &domain.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      GenerateEmailFromName(name, emailDomainName),
		Role:       role,
		Department: string(role),
		Color:      RandomCalendarColor(),
		CodeHash:   string(codeHash),
	}

	return employee, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func GenerateRandomCode(length int) string {
	random_code := make([]rune, length)
	for i := range random_code {
		random_code[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_code)
}
