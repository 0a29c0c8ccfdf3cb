// Package email implementa ports.EmailSender: SMTP con gomail o, sin servidor configurado, solo log.
package email

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/config"
)

var (
	_ ports.EmailSender = (*SMTPSender)(nil)
	_ ports.EmailSender = (*LogSender)(nil)
)

// Dialer abstrae gomail.Dialer para poder sustituirlo en tests.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envía correos HTML vía SMTP.
type SMTPSender struct {
	dialer       Dialer
	from         string
	appName      string
	resetURL     string
	resetMinutes int
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig, appName string, resetMinutes int) *SMTPSender {
	return NewSMTPSenderWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), cfg, appName, resetMinutes)
}

// NewSMTPSenderWithDialer permite inyectar el dialer.
func NewSMTPSenderWithDialer(d Dialer, cfg config.SMTPConfig, appName string, resetMinutes int) *SMTPSender {
	return &SMTPSender{dialer: d, from: cfg.From, appName: appName, resetURL: cfg.ResetURL, resetMinutes: resetMinutes}
}

// SendPasswordReset envía el enlace de recuperación (resetURL?token=...).
func (s *SMTPSender) SendPasswordReset(_ context.Context, user *entity.User, token string) error {
	body, err := render(resetTmpl, resetData{Name: user.Name, Link: resetLink(s.resetURL, token), Minutes: s.resetMinutes})
	if err != nil {
		return fmt.Errorf("render reset mail: %w", err)
	}
	return s.send(user.Email, "Recuperación de contraseña", body)
}

// SendWelcome envía al primer usuario de la empresa su contraseña inicial.
func (s *SMTPSender) SendWelcome(_ context.Context, user *entity.User, company *entity.Company, initialPassword string) error {
	body, err := render(welcomeTmpl, welcomeData{
		AppName:  s.appName,
		Name:     user.Name,
		Company:  company.Name,
		RUT:      company.RUT,
		Email:    user.Email,
		Password: initialPassword,
	})
	if err != nil {
		return fmt.Errorf("render welcome mail: %w", err)
	}
	return s.send(user.Email, "Bienvenido a "+s.appName, body)
}

func (s *SMTPSender) send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// LogSender registra los correos en el log en lugar de enviarlos (SMTP_HOST vacío).
type LogSender struct {
	log      zerolog.Logger
	resetURL string
}

// NewLogSender construye el sender de desarrollo.
func NewLogSender(log zerolog.Logger, resetURL string) *LogSender {
	return &LogSender{log: log, resetURL: resetURL}
}

func (s *LogSender) SendPasswordReset(_ context.Context, user *entity.User, token string) error {
	s.log.Info().Str("to", user.Email).Str("link", resetLink(s.resetURL, token)).Msg("correo de recuperación (SMTP deshabilitado)")
	return nil
}

// SendWelcome no registra la contraseña inicial.
func (s *LogSender) SendWelcome(_ context.Context, user *entity.User, company *entity.Company, _ string) error {
	s.log.Info().Str("to", user.Email).Str("company", company.Name).Msg("correo de bienvenida (SMTP deshabilitado)")
	return nil
}

func resetLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
