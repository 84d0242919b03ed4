package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/pt"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt"
	"github.com/ice41/calendario/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/ice41/calendario/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	pt := pt.New()
	uni := ut.New(pt, pt)
	trans, _ := uni.GetTranslator("pt")
	if err := pt_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Autenticação
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-code", func(r chi.Router) {
			r.Post("/require", h.RequireResetCode)
			r.Post("/confirm", h.ConfirmResetCode)
		})
	})

	// As rotas seguintes exigem sessão iniciada
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/holidays", h.GetHolidays)

		r.Route("/employees", func(r chi.Router) {
			r.With(h.requireAdmin).Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees) // qualquer funcionário pode ver o calendário completo
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.requireAdmin).Patch("/", h.UpdateEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.requireAdmin).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", h.GetAllVacations)
			r.With(h.requireAdmin).Post("/", h.CreateVacation)
			r.Post("/segmented", h.CreateSegmentedVacations)
			r.Get("/overlaps", h.GetOverlaps)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.vacationInfo)
				r.Get("/", h.GetVacation)
				r.With(h.requireAdmin).Patch("/", h.UpdateVacation)
				r.With(h.requireAdmin).Delete("/", h.DeleteVacation)
				r.With(h.requireAdmin).Post("/remove-day", h.RemoveVacationDay)
			})
		})
	})
}
