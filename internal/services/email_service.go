package services

import (
	"fmt"
	"log"

	"github.com/resendlabs/resend-go"
)

// EmailService sends transactional email through Resend.
type EmailService struct {
	client *resend.Client
	from   string
}

// NewEmailService creates an EmailService. An empty API key leaves the
// service in no-op mode so local development works without Resend.
func NewEmailService(apiKey, from string) *EmailService {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &EmailService{client: client, from: from}
}

// SendPasswordResetEmail delivers the reset link for the given token.
func (s *EmailService) SendPasswordResetEmail(to, name, resetURL string) error {
	if s.client == nil {
		log.Printf("[Email] Resend not configured, skipping reset email to %s", to)
		return nil
	}

	html := fmt.Sprintf(`<p>Hola %s,</p>
<p>Recibimos una solicitud para restablecer tu contraseña. El enlace vence en 15 minutos.</p>
<p><a href="%s">Restablecer contraseña</a></p>
<p>Si no solicitaste este cambio, ignora este correo.</p>`, name, resetURL)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "Restablece tu contraseña",
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		log.Printf("[Email] Failed to send reset email to %s: %v", to, err)
		return err
	}

	return nil
}

// SendWelcomeEmail greets a newly registered user. Failures are logged only.
func (s *EmailService) SendWelcomeEmail(to, name string) error {
	if s.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "¡Bienvenido a Recarga!",
		Html: fmt.Sprintf(`<p>Hola %s,</p>
<p>Tu cuenta está lista. Ya puedes recargar saldo a cualquier número en segundos.</p>`, name),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		log.Printf("[Email] Failed to send welcome email to %s: %v", to, err)
		return err
	}

	return nil
}
