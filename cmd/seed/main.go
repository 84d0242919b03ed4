package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/ice41/calendario/internal/config"
	"github.com/ice41/calendario/internal/domain"
	"github.com/ice41/calendario/internal/repository"
	"github.com/ice41/calendario/internal/utils"
	"github.com/ice41/calendario/internal/vacation"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operação a executar (1: inserir funcionários aleatórios, 2: inserir férias aleatórias)")
	flag.IntVar(&n, "n", 5, "número de registos a inserir")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// carregar a configuração
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// criar a pool de ligações
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

	// criar o repository
	repo := repository.NewRepository(cfg, dbpool)

	// executar a operação
	switch op {
	case 0:
		slog.Error("nenhuma operação indicada")
	case 1:
		if n <= 0 {
			slog.Error("indique um número válido de funcionários")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Code, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("não foi possível gerar o funcionário", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateEmployee(employee); err != nil {
					slog.Error("não foi possível inserir o funcionário", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("funcionários inseridos com sucesso", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("indique um número válido de registos de férias")
			return
		}

		// carregar todos os funcionários
		employees, err := repo.GetAllEmployees()
		if err != nil {
			slog.Error("não foi possível obter os funcionários", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("não há funcionários na base de dados; execute primeiro -op 1")
			return
		}

		cnt := 0
		year := time.Now().Year()
		for i := 0; i < n; i++ {
			employee := employees[rand.Intn(len(employees))]

			// escolher um período aleatório de até duas semanas dentro do ano
			start := domain.NewDate(year, time.January, 1).AddDays(rand.Intn(350))
			end := start.AddDays(rand.Intn(14))

			groups, err := vacation.Segment(start, end)
			if err != nil {
				if errors.Is(err, vacation.ErrNoBusinessDays) {
					continue
				}
				slog.Error("não foi possível segmentar o período", slog.String("error", err.Error()))
				continue
			}

			requests := vacation.BuildRequests(groups, employee.ID, domain.StatusApproved, "")
			if err := repo.CreateVacationsBatch(requests); err != nil {
				slog.Error("não foi possível inserir as férias", slog.String("error", err.Error()))
				continue
			}

			cnt += len(requests)
		}

		slog.Info("férias inseridas com sucesso", slog.Int("count", cnt))
	default:
		slog.Error("operação inválida")
	}
}
