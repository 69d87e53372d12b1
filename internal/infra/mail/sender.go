package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const hotLeadAlertTemplate = `Lead quente identificado pelo bot!

Lead #{{.LeadID}}
Nome: {{.Nome}}
Cargo: {{.Cargo}}
WhatsApp: {{.Whatsapp}}

Entre em contato o quanto antes.
`

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendHotLeadAlert avisa o time de vendas quando a finalização classifica
// um lead como Quente.
func (s *EmailSender) SendHotLeadAlert(to string, data HotLeadAlertData) error {
	t, err := template.New("hot-lead").Parse(hotLeadAlertTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@suagrafica.com.br")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🔥 Lead Quente #%d - %s", data.LeadID, data.Nome))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
