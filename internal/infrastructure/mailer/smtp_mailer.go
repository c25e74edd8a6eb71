package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Tienda-api/internal/application/notification"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

var _ notification.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correos por SMTP. Implementa el puerto Mailer del
// servicio de notificaciones.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendWelcomeEmail envía el correo de bienvenida a un usuario recién registrado.
func (m *SMTPMailer) SendWelcomeEmail(to, username string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "¡Bienvenido a Tienda!")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\n"+
			"Gracias por registrarte en Tienda. Nos alegra tenerte en la comunidad.\n\n"+
			"Si tienes cualquier duda, responde a este correo.\n\n"+
			"Saludos,\nEl equipo de Tienda", username))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo de bienvenida a %s: %w", to, err)
	}
	return nil
}
