package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/config"
)

type captureDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *captureDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func bodyOf(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSMTPSender_PasswordReset(t *testing.T) {
	d := &captureDialer{}
	s := NewSMTPSenderWithDialer(d, config.SMTPConfig{From: "no-reply@bo.cl", ResetURL: "https://app.bo.cl/reset"}, "Backoffice", 15)

	err := s.SendPasswordReset(context.Background(), &entity.User{Name: "Ana", Email: "ana@acme.cl"}, "tok123")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"ana@acme.cl"}, m.GetHeader("To"))
	assert.Equal(t, []string{"no-reply@bo.cl"}, m.GetHeader("From"))
	assert.Contains(t, bodyOf(t, m), "tok123")
}

func TestSMTPSender_WelcomeError(t *testing.T) {
	d := &captureDialer{err: errors.New("conexión rechazada")}
	s := NewSMTPSenderWithDialer(d, config.SMTPConfig{From: "no-reply@bo.cl"}, "Backoffice", 15)

	err := s.SendWelcome(context.Background(),
		&entity.User{Name: "acme", Email: "contacto@acme.cl"},
		&entity.Company{Name: "acme", RUT: "76086428-5"}, "Xy7#abcd")
	assert.Error(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"Bienvenido a Backoffice"}, d.sent[0].GetHeader("Subject"))
}

func TestLogSender_NoRegistraPassword(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(zerolog.New(&buf), "http://localhost/reset")

	require.NoError(t, s.SendWelcome(context.Background(), &entity.User{Email: "a@b.cl"}, &entity.Company{Name: "acme"}, "secreta-123"))
	assert.NotContains(t, buf.String(), "secreta-123")

	require.NoError(t, s.SendPasswordReset(context.Background(), &entity.User{Email: "a@b.cl"}, "tok"))
	assert.Contains(t, buf.String(), "token=tok")
}

func TestResetLink(t *testing.T) {
	assert.Equal(t, "https://app.bo.cl/reset?lang=es&token=abc", resetLink("https://app.bo.cl/reset?lang=es", "abc"))
}
