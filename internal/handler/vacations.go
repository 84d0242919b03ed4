package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ice41/calendario/internal/domain"
	"github.com/ice41/calendario/internal/vacation"
	amqp "github.com/rabbitmq/amqp091-go"
)

func (h *Handler) GetAllVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := h.repository.GetAllVacations()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lista de férias obtida com sucesso", vacations)
}

// CreateVacation cria um registo único sem segmentação. É uma operação de
// administrador; o intervalo é gravado tal como foi recebido, incluindo fins
// de semana e feriados.
func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId" validate:"required,uuid"`
		StartDate  string `json:"startDate" validate:"required"`
		EndDate    string `json:"endDate" validate:"required"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("data de início inválida"))
		return
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("data de fim inválida"))
		return
	}
	if endDate.Before(startDate) {
		h.badRequest(w, r, errors.New("a data de fim é anterior à data de início"))
		return
	}

	status := domain.VacationStatus(req.Status)
	if req.Status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		h.badRequest(w, r, errors.New("estado inválido"))
		return
	}

	if _, err := h.repository.GetEmployeeByID(req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "funcionário não encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	v := &domain.VacationRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		Notes:      req.Notes,
	}

	if err := h.repository.CreateVacation(v); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "férias criadas com sucesso", v)
}

// CreateSegmentedVacations é a marcação normal de férias: o período pedido é
// dividido em grupos contíguos de dias úteis e cada grupo dá origem a um
// registo próprio, tudo numa única transação.
func (h *Handler) CreateSegmentedVacations(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId" validate:"required,uuid"`
		StartDate  string `json:"startDate" validate:"required"`
		EndDate    string `json:"endDate" validate:"required"`
		Notes      string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("data de início inválida"))
		return
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("data de fim inválida"))
		return
	}
	if endDate.Before(startDate) {
		h.badRequest(w, r, errors.New("a data de fim é anterior à data de início"))
		return
	}

	// quem não é administrador só marca férias para si próprio
	isAdmin := r.Context().Value(IsAdminCtxKey).(bool)
	sub := r.Context().Value(SubCtxKey).(string)
	if !isAdmin && sub != req.EmployeeID {
		h.errorResponse(w, r, "só pode marcar férias para si próprio")
		return
	}

	if _, err := h.repository.GetEmployeeByID(req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "funcionário não encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	groups, err := vacation.Segment(startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, vacation.ErrNoBusinessDays):
			h.errorResponse(w, r, "não há dias úteis no período selecionado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	requests := vacation.BuildRequests(groups, req.EmployeeID, domain.StatusPending, req.Notes)

	if err := h.repository.CreateVacationsBatch(requests); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "férias marcadas com sucesso", requests)
}

// GetOverlaps devolve os registos de funcionários do mesmo cargo que se
// sobrepõem ao intervalo pedido. É apenas um aviso para quem está a marcar;
// nunca impede a marcação.
func (h *Handler) GetOverlaps(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := domain.ParseDate(query.Get("start"))
	if err != nil {
		h.badRequest(w, r, errors.New("data de início inválida"))
		return
	}
	endDate, err := domain.ParseDate(query.Get("end"))
	if err != nil {
		h.badRequest(w, r, errors.New("data de fim inválida"))
		return
	}

	role := domain.Role(query.Get("role"))
	if !role.Valid() {
		h.badRequest(w, r, errors.New("cargo inválido"))
		return
	}

	excludeID := query.Get("excludeId")

	vacations, err := h.repository.GetAllVacations()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	overlaps := vacation.FindOverlaps(startDate, endDate, role, excludeID, vacations, employees)

	h.successResponse(w, r, "sobreposições obtidas com sucesso", overlaps)
}

func (h *Handler) GetVacation(w http.ResponseWriter, r *http.Request) {
	v := r.Context().Value(VacationInfoCtx).(*domain.VacationRequest)
	h.successResponse(w, r, "férias obtidas com sucesso", v)
}

func (h *Handler) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate *string `json:"startDate"`
		EndDate   *string `json:"endDate"`
		Status    *string `json:"status"`
		Notes     *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	v := r.Context().Value(VacationInfoCtx).(*domain.VacationRequest)
	previousStatus := v.Status

	if req.StartDate != nil {
		startDate, err := domain.ParseDate(*req.StartDate)
		if err != nil {
			h.badRequest(w, r, errors.New("data de início inválida"))
			return
		}
		v.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := domain.ParseDate(*req.EndDate)
		if err != nil {
			h.badRequest(w, r, errors.New("data de fim inválida"))
			return
		}
		v.EndDate = endDate
	}
	if v.EndDate.Before(v.StartDate) {
		h.badRequest(w, r, errors.New("a data de fim é anterior à data de início"))
		return
	}
	if req.Status != nil {
		status := domain.VacationStatus(*req.Status)
		if !status.Valid() {
			h.badRequest(w, r, errors.New("estado inválido"))
			return
		}
		v.Status = status
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}

	if err := h.repository.UpdateVacation(v); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "não foi possível atualizar as férias, tente novamente")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// quando o estado muda, o funcionário é avisado por email
	if v.Status != previousStatus {
		if err := h.publishVacationStatusMail(v); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "férias atualizadas com sucesso", v)
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	v := r.Context().Value(VacationInfoCtx).(*domain.VacationRequest)

	if err := h.repository.DeleteVacation(v.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "registo de férias não encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "férias removidas com sucesso", nil)
}

// RemoveVacationDay retira um único dia de um registo de férias. Conforme a
// posição do dia, o registo é apagado, encolhido num dos extremos ou dividido
// em dois registos novos.
func (h *Handler) RemoveVacationDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day string `json:"day" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := domain.ParseDate(req.Day)
	if err != nil {
		h.badRequest(w, r, errors.New("data inválida"))
		return
	}

	v := r.Context().Value(VacationInfoCtx).(*domain.VacationRequest)

	plan := vacation.RemoveDay(v, day)

	switch plan.Kind {
	case vacation.PlanNone:
		h.errorResponse(w, r, "o dia não pertence a este registo de férias")
		return

	case vacation.PlanDelete:
		if err := h.repository.DeleteVacation(v.ID); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "dia removido com sucesso", nil)
		return

	case vacation.PlanShrinkStart, vacation.PlanShrinkEnd:
		if err := h.repository.UpdateVacation(plan.Update); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "não foi possível atualizar as férias, tente novamente")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		h.successResponse(w, r, "dia removido com sucesso", plan.Update)
		return

	case vacation.PlanSplit:
		// a divisão não é atómica: primeiro apaga-se o registo original e
		// depois criam-se os dois novos; uma falha na segunda fase deixa os
		// dias do funcionário perdidos e tem de ficar registada
		if err := h.repository.DeleteVacation(v.ID); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if err := h.repository.CreateVacationsBatch(plan.Create); err != nil {
			slog.Error("divisão de férias incompleta: o registo original foi apagado mas os novos não foram criados",
				"vacationId", v.ID, "employeeId", v.EmployeeID, "error", err)
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "dia removido com sucesso", plan.Create)
		return
	}

	h.internalServerError(w, r, errors.New("plano de remoção desconhecido"))
}

func (h *Handler) publishVacationStatusMail(v *domain.VacationRequest) error {
	employee, err := h.repository.GetEmployeeByID(v.EmployeeID)
	if err != nil {
		return err
	}

	mailMessage := domain.MailMessage{
		Type: "vacation_status",
		To:   employee.Email,
		Data: domain.VacationStatusMailData{
			Name:      employee.Name,
			StartDate: v.StartDate.String(),
			EndDate:   v.EndDate.String(),
			Status:    string(v.Status),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
