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

func companyBody(n int) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:    fmt.Sprintf("Empresa %02d", n),
		RUT:     validRUT(n),
		CityID:  santiagoID,
		Address: "Av. Siempre Viva 742",
		Phone:   "56912345678",
		Email:   fmt.Sprintf("contacto%02d@empresa.cl", n),
	}
}

func TestCompanies_SoloAdministrador(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/companies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/companies", env.bearer(t, env.userA), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/companies", env.bearer(t, env.admin), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCompanyCreate_HTTP(t *testing.T) {
	env := newTestEnv(t)
	admin := env.bearer(t, env.admin)

	resp := env.do(t, http.MethodPost, "/api/companies", admin, companyBody(1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.CreateCompanyResponse](t, resp)
	assert.Equal(t, "empresa 01", out.Name)
	assert.Len(t, out.InitialPassword, 12)

	// El primer usuario puede iniciar sesión con la contraseña inicial.
	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: out.Email, Password: out.InitialPassword})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	dup := companyBody(2)
	dup.RUT = strings.ToUpper(out.RUT)
	resp = env.do(t, http.MethodPost, "/api/companies", admin, dup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	items := errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "rut", items[0].Param)
	assert.Equal(t, "body", items[0].Location)
}

func TestCompanyCreate_Validacion(t *testing.T) {
	env := newTestEnv(t)

	bad := companyBody(1)
	bad.RUT = "76086428-1"
	bad.Phone = "abc"
	bad.Email = ""
	resp := env.do(t, http.MethodPost, "/api/companies", env.bearer(t, env.admin), bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	items := errorsOf(t, resp)
	params := make([]string, 0, len(items))
	for _, it := range items {
		params = append(params, it.Param)
	}
	assert.ElementsMatch(t, []string{"rut", "phone", "email"}, params)

	city := companyBody(1)
	city.CityID = 999
	resp = env.do(t, http.MethodPost, "/api/companies", env.bearer(t, env.admin), city)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	items = errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "city_id", items[0].Param)
}

func TestCompanyList_HTTP(t *testing.T) {
	env := newTestEnv(t)
	admin := env.bearer(t, env.admin)
	for i := 1; i <= 21; i++ {
		resp := env.do(t, http.MethodPost, "/api/companies", admin, companyBody(i))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// 21 creadas + acme + globex
	resp := env.do(t, http.MethodGet, "/api/companies?skip=20&limit=10", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.CompanyListResponse](t, resp)
	assert.Equal(t, 23, page.Count)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Rows, 3)

	resp = env.do(t, http.MethodGet, "/api/companies", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]dto.CompanyResponse](t, resp)
	assert.Len(t, all, 23)
	assert.Equal(t, "acme", all[0].Name)

	resp = env.do(t, http.MethodGet, "/api/companies?limit=0", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/companies?limit=abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompany_DeleteRestore_HTTP(t *testing.T) {
	env := newTestEnv(t)
	admin := env.bearer(t, env.admin)
	path := "/api/companies/" + env.companyA.ID

	resp := env.do(t, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, decode[dto.CompanyResponse](t, resp).DeletedAt)

	resp = env.do(t, http.MethodGet, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	items := errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, fmt.Sprintf("El id: %s no se encuentra en la base de datos", env.companyA.ID), items[0].Msg)
	assert.Equal(t, "params", items[0].Location)

	resp = env.do(t, http.MethodPost, path+"/restore", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodGet, path, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, path+"/restore", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	items = errorsOf(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, fmt.Sprintf("El id: %s no ha sido eliminado", env.companyA.ID), items[0].Msg)
}

func TestCompanyUpdate_SinCampos_HTTP(t *testing.T) {
	env := newTestEnv(t)
	admin := env.bearer(t, env.admin)
	path := "/api/companies/" + env.companyA.ID

	before := decode[dto.CompanyResponse](t, env.do(t, http.MethodGet, path, admin, nil))
	resp := env.do(t, http.MethodPut, path, admin, map[string]string{"desconocido": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decode[dto.CompanyResponse](t, resp)
	assert.Equal(t, before, after)
}
