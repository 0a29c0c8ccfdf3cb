package http_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

func TestUsers_AislamientoPorTenant(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)

	other := env.do(t, http.MethodGet, "/api/users/"+env.userB.ID, a, nil)
	missing := env.do(t, http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000000", a, nil)
	assert.Equal(t, http.StatusNotFound, other.StatusCode)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	otherItems := errorsOf(t, other)
	missingItems := errorsOf(t, missing)
	require.Len(t, otherItems, 1)
	require.Len(t, missingItems, 1)
	assert.Equal(t, missingItems[0].Param, otherItems[0].Param)
	assert.Equal(t, missingItems[0].Location, otherItems[0].Location)

	resp := env.do(t, http.MethodPut, "/api/users/"+env.userB.ID, a, map[string]string{"name": "hack"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = env.do(t, http.MethodDelete, "/api/users/"+env.userB.ID, a, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/users", a, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.UserResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, env.userA.ID, list[0].ID)
}

func TestUserCreate_HTTP(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)

	resp := env.do(t, http.MethodPost, "/api/users", a, dto.CreateUserRequest{Name: "Carla", Email: "Carla@Acme.cl", Password: "secreta123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "carla@acme.cl", out.Email)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, env.companyA.ID, *out.CompanyID)

	resp = env.do(t, http.MethodPost, "/api/users", a, dto.CreateUserRequest{Name: "Otra", Email: "BETO@bo.cl", Password: "secreta123"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	items := errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "email", items[0].Param)

	resp = env.do(t, http.MethodPost, "/api/users", a, dto.CreateUserRequest{Name: "Corta", Email: "corta@acme.cl", Password: "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserList_Paginacion_HTTP(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)
	for i := 0; i < 22; i++ {
		body := dto.CreateUserRequest{Name: fmt.Sprintf("u%02d", i), Email: fmt.Sprintf("u%02d@acme.cl", i), Password: "secreta123"}
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", a, body).StatusCode)
	}

	resp := env.do(t, http.MethodGet, "/api/users?skip=20&limit=10", a, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.UserListResponse](t, resp)
	assert.Equal(t, 23, page.Count)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Rows, 3)
}

func TestUserUpdate_ReasignarEmpresa_HTTP(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)

	resp := env.do(t, http.MethodPut, "/api/users/"+env.userA.ID, a, map[string]string{"company_id": env.companyB.ID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	items := errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "company_id", items[0].Param)

	resp = env.do(t, http.MethodPut, "/api/users/"+env.userA.ID, a, map[string]string{"company_id": "no-es-uuid"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUser_DeleteRestore_HTTP(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)
	created := decode[dto.UserResponse](t, env.do(t, http.MethodPost, "/api/users", a,
		dto.CreateUserRequest{Name: "Carla", Email: "carla@acme.cl", Password: "secreta123"}))
	path := "/api/users/" + created.ID

	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, path, a, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, path, a, nil).StatusCode)

	resp := env.do(t, http.MethodPost, path+"/restore", env.bearer(t, env.userB), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "otro tenant no restaura")

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, path+"/restore", a, nil).StatusCode)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, path, a, nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, path+"/restore", a, nil).StatusCode)
}

func TestPasswordDemasiadoLarga_HTTP(t *testing.T) {
	env := newTestEnv(t)
	a := env.bearer(t, env.userA)
	long := strings.Repeat("a", 80)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		param  string
	}{
		{"crear usuario", http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "Carla", Email: "carla@acme.cl", Password: long}, "password"},
		{"actualizar usuario", http.MethodPut, "/api/users/" + env.userA.ID, map[string]string{"password": long}, "password"},
		{"cambiar contraseña", http.MethodPut, "/api/auth/password", dto.ChangePasswordRequest{OldPassword: testPassword, NewPassword: long}, "new_password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, tc.method, tc.path, a, tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			items := errorsOf(t, resp)
			require.Len(t, items, 1)
			assert.Equal(t, tc.param, items[0].Param)
			assert.Equal(t, "body", items[0].Location)
			assert.Nil(t, items[0].Value)
			assert.Contains(t, items[0].Msg, "72 bytes")
		})
	}

	// La contraseña vigente no cambió.
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@bo.cl", Password: testPassword})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
