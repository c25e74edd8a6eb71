package notification

import (
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// Consumer consume eventos de usuario creado y envía el correo de
// bienvenida. Es un componente independiente del registro: la entrega es al
// menos una vez, por lo que un correo duplicado es aceptable; un fallo de
// envío se registra y el consumo continúa.
type Consumer struct {
	mailer Mailer
	log    *logger.Logger
}

// NewConsumer construye el consumidor.
func NewConsumer(mailer Mailer, log *logger.Logger) *Consumer {
	return &Consumer{mailer: mailer, log: log}
}

// Run consume del canal hasta que se cierre. Pensado para ejecutarse en su
// propia goroutine; retorna cuando el bus cierra la suscripción.
func (c *Consumer) Run(events <-chan interface{}) {
	for evt := range events {
		e, ok := evt.(domain.UserCreatedEvent)
		if !ok {
			c.log.Warn().Msg("evento inesperado en el topic de bienvenida")
			continue
		}
		c.log.Info().Str("username", e.Username).Msg("evento de usuario creado recibido")
		if err := c.mailer.SendWelcomeEmail(e.Email, e.Username); err != nil {
			c.log.Error().Err(err).Str("email", e.Email).Msg("no se pudo enviar el correo de bienvenida")
			continue
		}
		c.log.Info().Str("email", e.Email).Msg("correo de bienvenida enviado")
	}
}
