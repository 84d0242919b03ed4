package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ice41/calendario/internal/config"
	"github.com/ice41/calendario/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * criar o logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * carregar a configuração
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * criar o cliente de email
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("não foi possível criar o cliente de email", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// confirmar que a ligação ao servidor de email funciona
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("não foi possível ligar ao servidor de email", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * ligar ao RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("não foi possível ligar ao RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// abrir o canal
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("não foi possível abrir o canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// declarar a fila
	q, err := ch.QueueDeclare(
		"notification_queue", // nome da fila
		true,                 // durável
		false,                // auto-delete desligado para a fila sobreviver sem consumidores
		false,                // não exclusiva
		false,                // esperar pela confirmação do RabbitMQ
		nil,                  // argumentos extra
	)
	if err != nil {
		logger.Error("não foi possível declarar a fila", slog.String("error", err.Error()))
		return
	}

	// escutar o CTRL+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// consumir as mensagens
	msgs, err := ch.Consume(
		q.Name, // fila
		"",     // identificador do consumidor, atribuído pelo RabbitMQ
		false,  // sem ack automático
		false,  // não exclusiva
		false,  // no-local não é suportado pelo RabbitMQ
		false,  // esperar pela resposta do RabbitMQ
		nil,    // argumentos extra
	)
	if err != nil {
		logger.Error("não foi possível consumir as mensagens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// contexto para terminar a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensagem recebida", slog.String("message", string(msg.Body)))
				// desserializar a mensagem
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("falha ao desserializar a mensagem", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// construir o email
				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("não foi possível definir o remetente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("não foi possível definir o destinatário", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// escolher o modelo conforme o tipo do email
				switch mailMessage.Type {
				case "employee_created":
					tmpl, err := template.ParseFiles("./templates/novo_funcionario_email.html")
					if err != nil {
						logger.Error("não foi possível carregar o modelo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("não foi possível preencher o corpo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Calendário de Férias - Dados de acesso")
				case "reset_code":
					tmpl, err := template.ParseFiles("./templates/repor_codigo_email.html")
					if err != nil {
						logger.Error("não foi possível carregar o modelo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("não foi possível preencher o corpo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Calendário de Férias - Repor código de acesso")
				case "vacation_status":
					tmpl, err := template.ParseFiles("./templates/estado_ferias_email.html")
					if err != nil {
						logger.Error("não foi possível carregar o modelo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("não foi possível preencher o corpo do email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Calendário de Férias - Estado do pedido de férias")
				default:
					logger.Error("tipo de email não suportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// enviar o email
				if err := client.DialAndSend(m); err != nil {
					logger.Error("falha ao enviar o email", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // voltar a pôr a mensagem na fila
					continue
				}

				// confirmar a mensagem
				_ = msg.Ack(false)
			}
		}
	}()

	// esperar pelo CTRL+C
	logger.Info("à espera de mensagens... (CTRL+C para sair)")
	<-sigChan

	// terminar de forma ordeira
	slog.Info("a desligar o mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker desligado com sucesso")
}
