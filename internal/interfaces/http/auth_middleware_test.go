package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
)

// stubAuthenticator acepta solo el token "valido".
type stubAuthenticator struct {
	actor *entity.User
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if token != "valido" {
		return nil, domain.ErrUnauthorized
	}
	return s.actor, nil
}

func buildGuardApp(actor *entity.User) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	guard := apphttp.AuthMiddleware(stubAuthenticator{actor: actor})
	app.Get("/me", guard, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": apphttp.GetActor(c).ID})
	})
	app.Get("/admin", guard, apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_FuentesDelToken(t *testing.T) {
	app := buildGuardApp(&entity.User{ID: "user-1"})

	cases := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"bearer", map[string]string{"Authorization": "Bearer valido"}, http.StatusOK},
		{"bearer en minúsculas", map[string]string{"Authorization": "bearer valido"}, http.StatusOK},
		{"x-token", map[string]string{"x-token": "valido"}, http.StatusOK},
		{"sin token", nil, http.StatusUnauthorized},
		{"esquema distinto", map[string]string{"Authorization": "Basic valido"}, http.StatusUnauthorized},
		{"token inválido", map[string]string{"Authorization": "Bearer otro"}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(t, app, "/me", tc.headers)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_MismoCuerpo401(t *testing.T) {
	app := buildGuardApp(&entity.User{ID: "user-1"})

	missing := errorsOf(t, request(t, app, "/me", nil))
	invalid := errorsOf(t, request(t, app, "/me", map[string]string{"x-token": "basura"}))
	require.Len(t, missing, 1)
	assert.Equal(t, missing, invalid)
	assert.Equal(t, domain.LocationHeaders, missing[0].Location)
}

func TestRequireAdmin(t *testing.T) {
	companyID := "company-a"

	admin := buildGuardApp(&entity.User{ID: "root"})
	resp := request(t, admin, "/admin", map[string]string{"x-token": "valido"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	scoped := buildGuardApp(&entity.User{ID: "user-1", CompanyID: &companyID})
	resp = request(t, scoped, "/admin", map[string]string{"x-token": "valido"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioEliminado(t *testing.T) {
	env := newTestEnv(t)
	header := env.bearer(t, env.userA)

	resp := env.do(t, http.MethodGet, "/api/auth/renew", header, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, env.store.Users().SoftDelete(context.Background(), env.userA.ID, time.Now()))
	resp = env.do(t, http.MethodGet, "/api/auth/renew", header, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
