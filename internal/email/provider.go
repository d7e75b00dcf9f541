package email

// Provider - интерфейс для отправки писем.
// Транспорт (SMTP и т.п.) скрыт за этой границей.
type Provider interface {
	// SendResetCode отправляет 6-значный код сброса пароля
	SendResetCode(to, code string) error
	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name string) error
}
