package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/rut"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

const (
	testPassword = "clave-segura-1"
	santiagoID   = 1
)

type fakeMailer struct {
	resets map[string]string
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, u *entity.User, token string) error {
	f.resets[u.Email] = token
	return nil
}

func (f *fakeMailer) SendWelcome(context.Context, *entity.User, *entity.Company, string) error {
	return nil
}

type fakeReceipts struct{}

func (fakeReceipts) GeneratePaymentReceipt(context.Context, *entity.Payment) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// testEnv app completa sobre el store en memoria con un admin y un usuario por empresa.
type testEnv struct {
	app      *fiber.App
	store    *memory.Store
	tokens   *auth.TokenService
	mailer   *fakeMailer
	admin    *entity.User
	userA    *entity.User
	userB    *entity.User
	companyA *entity.Company
	companyB *entity.Company
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	store.AddCity(entity.City{ID: santiagoID, Name: "santiago", Region: "metropolitana"})
	store.AddPayment(entity.Payment{
		ID:     uuid.NewString(),
		Status: entity.PaymentStatus{ID: 1, Name: "pagado"},
		Method: entity.PaymentMethod{ID: 1, Name: "transferencia"},
		Amount: decimal.RequireFromString("15000.50"),
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	hash, err := password.Hash(testPassword)
	require.NoError(t, err)
	now := time.Now()

	env := &testEnv{store: store, mailer: &fakeMailer{resets: map[string]string{}}}
	mkCompany := func(name string, n int) *entity.Company {
		c := &entity.Company{ID: uuid.NewString(), Name: name, RUT: validRUT(n), CityID: santiagoID, Email: name + "@bo.cl", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, store.Companies().Create(ctx, c))
		return c
	}
	mkUser := func(name string, companyID *string) *entity.User {
		u := &entity.User{ID: uuid.NewString(), CompanyID: companyID, Name: name, Email: name + "@bo.cl", PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, store.Users().Create(ctx, u))
		return u
	}
	env.companyA = mkCompany("acme", 900)
	env.companyB = mkCompany("globex", 901)
	env.admin = mkUser("root", nil)
	env.userA = mkUser("ana", &env.companyA.ID)
	env.userB = mkUser("beto", &env.companyB.ID)

	env.tokens = auth.NewTokenService(config.JWTConfig{Secret: "test-secret-key-for-unit-tests", ResetExpiration: 15, Issuer: "backoffice-test"})
	log := zerolog.Nop()
	deps := apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(store.Users(), store.Companies(), store.Roles(), env.tokens, env.mailer, log),
		CompanyUC: usecase.NewCompanyUseCase(store.Companies(), store.Cities(), store.Users(), store, env.mailer, log),
		UserUC:    usecase.NewUserUseCase(store.Users(), store.Companies()),
		CityUC:    usecase.NewCityUseCase(store.Cities()),
		PaymentUC: usecase.NewPaymentUseCase(store.Payments(), fakeReceipts{}),
		Metrics:   apphttp.NewMetrics("backoffice_test"),
		Log:       log,
		AppName:   "backoffice-test",
	}
	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(env.app, deps)
	return env
}

func validRUT(n int) string {
	body := fmt.Sprintf("%d", 10000000+n)
	dv, err := rut.ComputeVerificationDigit(body)
	if err != nil {
		panic(err)
	}
	return body + "-" + string(dv)
}

// bearer devuelve el header Authorization para el usuario.
func (e *testEnv) bearer(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := e.tokens.Issue(u.ID, u.Email)
	require.NoError(t, err)
	return "Bearer " + tok
}

// do lanza la petición; body se serializa a JSON si no es nil.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorsOf(t *testing.T, resp *http.Response) []dto.ErrorItem {
	t.Helper()
	return decode[dto.ErrorResponse](t, resp).Errors
}
