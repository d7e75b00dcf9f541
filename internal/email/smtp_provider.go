package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Config конфигурация SMTP отправителя
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// Validate проверяет валидность конфигурации
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider реализация Provider поверх gomail
type SMTPProvider struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP отправитель
func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}, nil
}

// SendResetCode отправляет код сброса пароля
func (p *SMTPProvider) SendResetCode(to, code string) error {
	body, err := render(resetCodeTemplate, map[string]string{"Code": code})
	if err != nil {
		return err
	}
	return p.send(to, "Password reset code", body)
}

// SendWelcome отправляет приветственное письмо
func (p *SMTPProvider) SendWelcome(to, name string) error {
	body, err := render(welcomeTemplate, map[string]string{"Name": name})
	if err != nil {
		return err
	}
	return p.send(to, "Welcome to InspiraHub", body)
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return p.dialer.DialAndSend(m)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
