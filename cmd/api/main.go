package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/suagrafica/leads-api/internal/config"
	"github.com/suagrafica/leads-api/internal/infra/database"
	"github.com/suagrafica/leads-api/internal/infra/http/handlers"
	"github.com/suagrafica/leads-api/internal/infra/http/middleware"
	"github.com/suagrafica/leads-api/internal/infra/integration/gemini"
	"github.com/suagrafica/leads-api/internal/infra/mail"
	"github.com/suagrafica/leads-api/internal/infra/queue"
	"github.com/suagrafica/leads-api/internal/infra/webhook"
	"github.com/suagrafica/leads-api/internal/usecase"
)

func main() {
	log.Println("ℹ️  Iniciando a API do Sua Gráfica Bot...")
	godotenv.Load()

	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ ERRO [DB] ao conectar no PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("❌ ERRO [DB] ao configurar as tabelas: %v", err)
	}

	// 1. Fila de eventos (opcional, ausência degrada como o webhook)
	var rabbitMQ *queue.RabbitMQ
	var producer queue.EventPublisherInterface
	if cfg.AMQPUrl != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.AMQPUrl)
		if err != nil {
			log.Printf("⚠️ AVISO [Fila]: RabbitMQ indisponível, eventos desativados: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	// 2. Repositórios
	leadRepo := database.NewLeadRepository(db)
	quoteRepo := database.NewQuoteRepository(db)

	// 3. Gateways e Adapters
	var iaClient usecase.AIClientInterface
	if cfg.GeminiAPIKey != "" {
		iaClient = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
		log.Println("✅  [Gemini] Cliente inicializado.")
	}

	var notifier usecase.WebhookNotifierInterface
	if cfg.SalesWebhookURL != "" {
		notifier = webhook.NewNotifier(cfg.SalesWebhookURL)
	}

	var mailSender usecase.EmailService
	if cfg.MailHost != "" {
		mailSender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}

	// 4. UseCases
	chatUC := usecase.NewChatUseCase(leadRepo, iaClient)
	finalizeUC := usecase.NewFinalizeLeadUseCase(leadRepo, mailSender, producer, cfg.SalesAlertEmail)
	recommendUC := usecase.NewRecommendUseCase(leadRepo, iaClient)
	saveQuoteUC := usecase.NewSaveQuoteUseCase(quoteRepo, leadRepo, notifier, producer)

	// 5. Handlers
	chatHandler := handlers.NewChatHandler(chatUC)
	leadHandler := handlers.NewLeadHandler(finalizeUC)
	recommendationHandler := handlers.NewRecommendationHandler(recommendUC)
	quoteHandler := handlers.NewQuoteHandler(saveQuoteUC)
	statusHandler := handlers.NewStatusHandler(leadRepo, cfg.N8NSecretKey)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn, iaClient != nil, notifier != nil)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "API Sua Gráfica Bot está rodando!"}`))
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/chat", chatHandler.Handle)
	r.Post("/api/save-lead", leadHandler.Handle)
	r.Post("/api/generate-recommendations", recommendationHandler.Handle)
	r.Post("/api/save-quote", quoteHandler.Handle)
	r.Post("/api/update-status-n8n", statusHandler.Handle)

	addr := ":" + cfg.Port
	log.Printf("🔥 API Sua Gráfica Bot rodando na porta %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
