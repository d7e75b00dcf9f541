package app

// NoopEmailProvider используется для локальной разработки без SMTP.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) SendResetCode(to, code string) error { return nil }
func (m *NoopEmailProvider) SendWelcome(to, name string) error   { return nil }
