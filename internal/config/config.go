package config

import (
	"log"
	"os"
	"strconv"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config é montada uma vez no boot e injetada nos componentes.
// Nenhum handler lê variável de ambiente depois daqui.
type Config struct {
	DatabaseURL     string
	GeminiAPIKey    string
	GeminiBaseURL   string
	SalesWebhookURL string
	N8NSecretKey    string
	AMQPUrl         string
	MailHost        string
	MailPort        int
	MailUser        string
	MailPass        string
	SalesAlertEmail string
	Port            string
}

func Load() Config {
	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:   os.Getenv("GEMINI_BASE_URL"),
		SalesWebhookURL: os.Getenv("SALES_WEBHOOK_URL"),
		N8NSecretKey:    os.Getenv("N8N_SECRET_KEY"),
		AMQPUrl:         os.Getenv("AMQP_URL"),
		MailHost:        os.Getenv("MAIL_HOST"),
		MailPort:        587,
		MailUser:        os.Getenv("MAIL_USER"),
		MailPass:        os.Getenv("MAIL_PASS"),
		SalesAlertEmail: os.Getenv("SALES_ALERT_EMAIL"),
		Port:            os.Getenv("PORT"),
	}

	if cfg.GeminiBaseURL == "" {
		cfg.GeminiBaseURL = defaultGeminiBaseURL
	}
	if cfg.Port == "" {
		cfg.Port = "5001"
	}
	if p := os.Getenv("MAIL_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.MailPort = port
		}
	}

	if cfg.DatabaseURL == "" || cfg.GeminiAPIKey == "" {
		log.Println("❌ ERRO CRÍTICO: DATABASE_URL ou GEMINI_API_KEY não encontradas.")
	}
	if cfg.SalesWebhookURL == "" {
		log.Println("⚠️ AVISO: SALES_WEBHOOK_URL não configurada. Webhook de vendas desativado.")
	}
	if cfg.N8NSecretKey == "" {
		// Sem segredo não há fallback: o endpoint do N8N recusa tudo com 401.
		log.Println("⚠️ AVISO: N8N_SECRET_KEY não configurada. /api/update-status-n8n recusará todas as chamadas.")
	}

	return cfg
}
