package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-api/pkg/password"
)

type tenants struct {
	store  *memory.Store
	uc     *usecase.UserUseCase
	admin  *entity.User
	actorA *entity.User
	actorB *entity.User
}

func newTenants(t *testing.T) tenants {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now()
	for _, id := range []string{"company-a", "company-b"} {
		require.NoError(t, store.Companies().Create(ctx, &entity.Company{ID: id, Name: id, RUT: id, CreatedAt: now, UpdatedAt: now}))
	}
	mk := func(id string, companyID *string) *entity.User {
		u := &entity.User{ID: id, CompanyID: companyID, Name: id, Email: id + "@bo.cl", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, store.Users().Create(ctx, u))
		return u
	}
	return tenants{
		store:  store,
		uc:     usecase.NewUserUseCase(store.Users(), store.Companies()),
		admin:  mk("admin", nil),
		actorA: mk("user-a", strPtr("company-a")),
		actorB: mk("user-b", strPtr("company-b")),
	}
}

func TestUserCreate_AsignaEmpresaDelActor(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)

	out, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana", Email: "Ana@Acme.CL", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, "company-a", *out.CompanyID)
	assert.Equal(t, "ana@acme.cl", out.Email)
	assert.Equal(t, "Ana", out.Name)

	stored, err := tt.store.Users().FindByID(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("secreta123", stored.PasswordHash))

	admin, err := tt.uc.Create(ctx, tt.admin, dto.CreateUserRequest{Name: "Root 2", Email: "root2@bo.cl", Password: "secreta123"})
	require.NoError(t, err)
	assert.Nil(t, admin.CompanyID)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	tt := newTenants(t)
	_, err := tt.uc.Create(context.Background(), tt.actorA, dto.CreateUserRequest{Name: "x", Email: "USER-B@bo.cl", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUser_OtroTenantEsNoEncontrado(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)

	_, errOther := tt.uc.GetByID(ctx, tt.actorA, tt.actorB.ID)
	_, errMissing := tt.uc.GetByID(ctx, tt.actorA, "nope")
	require.Error(t, errOther)
	assert.ErrorIs(t, errOther, domain.ErrNotFound)

	var feOther, feMissing *domain.FieldError
	require.ErrorAs(t, errOther, &feOther)
	require.ErrorAs(t, errMissing, &feMissing)
	assert.Equal(t, feMissing.Location, feOther.Location)
	assert.Equal(t, feMissing.Param, feOther.Param)
	assert.Equal(t, fmt.Sprintf("El id: %s no se encuentra en la base de datos", tt.actorB.ID), feOther.Msg)

	_, err := tt.uc.Update(ctx, tt.actorA, tt.actorB.ID, dto.UpdateUserRequest{Name: strPtr("hack")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = tt.uc.Delete(ctx, tt.actorA, tt.actorB.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El administrador solo ve usuarios sin empresa.
	_, err = tt.uc.GetByID(ctx, tt.admin, tt.actorA.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserList_AlcanceYPaginacion(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	for i := 0; i < 22; i++ {
		_, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: fmt.Sprintf("u%02d", i), Email: fmt.Sprintf("u%02d@a.cl", i), Password: "secreta123"})
		require.NoError(t, err)
	}

	page, err := tt.uc.List(ctx, tt.actorA, &dto.PageRequest{Skip: 20, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 23, page.Count)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Rows, 3)

	onlyB, err := tt.uc.List(ctx, tt.actorB, nil)
	require.NoError(t, err)
	require.Len(t, onlyB.Rows, 1)
	assert.Equal(t, tt.actorB.ID, onlyB.Rows[0].ID)
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	created, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana", Email: "ana@a.cl", Password: "secreta123"})
	require.NoError(t, err)

	same, err := tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, *created, *same)

	out, err := tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{Email: strPtr("ANA.M@a.cl"), Password: strPtr("otra-clave-1")})
	require.NoError(t, err)
	assert.Equal(t, "ana.m@a.cl", out.Email)
	stored, err := tt.store.Users().FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("otra-clave-1", stored.PasswordHash))

	_, err = tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{Email: strPtr("user-a@bo.cl")})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_ReasignarEmpresa(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	created, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana", Email: "ana@a.cl", Password: "secreta123"})
	require.NoError(t, err)

	_, err = tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{CompanyID: strPtr("company-b")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{CompanyID: strPtr("company-a")})
	require.NoError(t, err)
	assert.Equal(t, "company-a", *out.CompanyID)

	root, err := tt.uc.Create(ctx, tt.admin, dto.CreateUserRequest{Name: "Op", Email: "op@bo.cl", Password: "secreta123"})
	require.NoError(t, err)
	_, err = tt.uc.Update(ctx, tt.admin, root.ID, dto.UpdateUserRequest{CompanyID: strPtr("no-existe")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	moved, err := tt.uc.Update(ctx, tt.admin, root.ID, dto.UpdateUserRequest{CompanyID: strPtr("company-b")})
	require.NoError(t, err)
	assert.Equal(t, "company-b", *moved.CompanyID)
}

func TestUser_DeleteRestoreCiclo(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	created, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana", Email: "ana@a.cl", Password: "secreta123"})
	require.NoError(t, err)

	_, err = tt.uc.Delete(ctx, tt.actorA, created.ID)
	require.NoError(t, err)
	_, err = tt.uc.GetByID(ctx, tt.actorA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = tt.uc.Restore(ctx, tt.actorB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "otro tenant no puede restaurar")

	_, err = tt.uc.Restore(ctx, tt.actorA, created.ID)
	require.NoError(t, err)
	_, err = tt.uc.GetByID(ctx, tt.actorA, created.ID)
	require.NoError(t, err)

	_, err = tt.uc.Restore(ctx, tt.actorA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotDeleted)
}

func TestUser_PasswordDemasiadoLarga(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	long := strings.Repeat("a", 80)

	_, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana", Email: "ana@a.cl", Password: long})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "password", fe.Param)
	assert.Nil(t, fe.Value)

	_, err = tt.uc.Update(ctx, tt.actorA, tt.actorA.ID, dto.UpdateUserRequest{Password: strPtr(long)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_NombreSeGuardaComoSeEscribe(t *testing.T) {
	ctx := context.Background()
	tt := newTenants(t)
	created, err := tt.uc.Create(ctx, tt.actorA, dto.CreateUserRequest{Name: "Ana Pérez", Email: "ana@a.cl", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", created.Name)

	out, err := tt.uc.Update(ctx, tt.actorA, created.ID, dto.UpdateUserRequest{Name: strPtr("Ana María Pérez")})
	require.NoError(t, err)
	assert.Equal(t, "Ana María Pérez", out.Name)
}
