package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/ice41/calendario/internal/config"
	"github.com/ice41/calendario/internal/domain"
	"github.com/ice41/calendario/internal/handler"
	"github.com/ice41/calendario/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * criar o logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * carregar a configuração
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	/**********************************************
	 * ligar à base de dados
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("não foi possível criar a pool de ligações", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open só cria a pool, não liga logo à base de dados; é preciso um ping explícito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("não foi possível ligar à base de dados", "error", err)
		return
	}

	/**********************************************
	 * criar o repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * garantir que o administrador inicial existe
	 **********************************************/
	codeHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Code), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("não foi possível gerar o hash do código do administrador inicial", "error", err)
		return
	}
	initialAdmin := &domain.Employee{
		ID:       uuid.NewString(),
		Name:     cfg.InitialAdmin.Name,
		Email:    cfg.InitialAdmin.Email,
		Role:     domain.RoleOutro,
		CodeHash: string(codeHash),
		IsAdmin:  true,
	}
	if err := repo.CreateEmployee(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				// o administrador inicial já existe, não há nada a fazer
			default:
				logger.Error("não foi possível criar o administrador inicial", "error", err)
				return
			}
		default:
			logger.Error("não foi possível criar o administrador inicial", "error", err)
			return
		}
	}

	/**********************************************
	 * ligar ao rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("não foi possível ligar ao rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	// abrir o canal
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("não foi possível abrir o canal", "error", err)
		return
	}
	defer ch.Close()

	// declarar a fila
	_, err = ch.QueueDeclare(
		"notification_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("não foi possível declarar a fila", "error", err)
		return
	}

	/**********************************************
	 * ligar ao redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * criar o handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("não foi possível criar o handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * arrancar o servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("a arrancar o servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("não foi possível arrancar o servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("a desligar o servidor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha ao desligar o servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor desligado com sucesso")
}
