package usecase_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/rut"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

type welcomeMail struct {
	user     *entity.User
	company  *entity.Company
	password string
}

// fakeMailer registra los correos en lugar de enviarlos.
type fakeMailer struct {
	mu      sync.Mutex
	welcome []welcomeMail
	resets  map[string]string
	err     error
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, user *entity.User, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resets == nil {
		f.resets = map[string]string{}
	}
	f.resets[user.Email] = token
	return f.err
}

func (f *fakeMailer) SendWelcome(_ context.Context, user *entity.User, company *entity.Company, initial string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcome = append(f.welcome, welcomeMail{user: user, company: company, password: initial})
	return f.err
}

// validRUT genera un rut con dígito verificador correcto a partir de un número.
func validRUT(n int) string {
	body := fmt.Sprintf("%d", 10000000+n)
	dv, err := rut.ComputeVerificationDigit(body)
	if err != nil {
		panic(err)
	}
	return body + "-" + string(dv)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
