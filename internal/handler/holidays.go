package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ice41/calendario/internal/holidays"
)

// GetHolidays devolve os feriados nacionais do ano pedido (por omissão, o
// ano corrente).
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			h.badRequest(w, r, errors.New("ano inválido"))
			return
		}
		year = parsed
	}

	h.successResponse(w, r, "feriados obtidos com sucesso", holidays.ForYear(year))
}
