package domain

import "time"

// WelcomeEmailTopic topic donde se publica el evento de usuario creado.
// El servicio de notificaciones lo consume para enviar el correo de bienvenida.
const WelcomeEmailTopic = "welcome-email-topic"

// UserCreatedEvent se publica tras registrar exitosamente un usuario.
// La entrega es al menos una vez: el consumidor debe tolerar duplicados.
type UserCreatedEvent struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
