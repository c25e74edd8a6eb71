package notification

// Mailer puerto hacia el transporte de correo.
type Mailer interface {
	SendWelcomeEmail(to, username string) error
}
