// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
// Replica las restricciones únicas de PostgreSQL (rut, email) y el rollback de TxRunner.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.RoleRepository    = (*RoleRepo)(nil)
	_ repository.CityRepository    = (*CityRepo)(nil)
	_ repository.PaymentRepository = (*PaymentRepo)(nil)
	_ repository.CompanyRepository = (*txCompanyRepo)(nil)
	_ repository.UserRepository    = (*txUserRepo)(nil)
	_ ports.TxRunner               = (*Store)(nil)
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	companies map[string]entity.Company
	users     map[string]entity.User
	roles     map[int]entity.Role
	userRoles map[string][]int
	cities    map[int]entity.City
	payments  map[string]entity.Payment
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		companies: map[string]entity.Company{},
		users:     map[string]entity.User{},
		roles:     map[int]entity.Role{},
		userRoles: map[string][]int{},
		cities:    map[int]entity.City{},
		payments:  map[string]entity.Payment{},
	}
}

// Companies repositorio de empresas.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Roles repositorio de roles.
func (s *Store) Roles() *RoleRepo { return &RoleRepo{s: s} }

// Cities repositorio de ciudades.
func (s *Store) Cities() *CityRepo { return &CityRepo{s: s} }

// Payments repositorio de pagos.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

// Run ejecuta fn como una transacción: si retorna error se deshacen solo las filas que fn
// escribió, dejando intactas las escrituras hechas fuera de la transacción.
// Las transacciones se serializan entre sí.
func (s *Store) Run(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{
		companies: map[string]*entity.Company{},
		users:     map[string]*entity.User{},
	}
	if err := fn(&txCompanyRepo{CompanyRepo: s.Companies(), j: j}, &txUserRepo{UserRepo: s.Users(), j: j}); err != nil {
		s.rollback(j)
		return err
	}
	return nil
}

// journal imagen previa de cada fila escrita dentro de una transacción (nil = no existía).
type journal struct {
	companies map[string]*entity.Company
	users     map[string]*entity.User
}

func (s *Store) rollback(j *journal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, before := range j.companies {
		if before == nil {
			delete(s.companies, id)
			continue
		}
		s.companies[id] = *before
	}
	for id, before := range j.users {
		if before == nil {
			delete(s.users, id)
			continue
		}
		s.users[id] = *before
	}
}

// txCompanyRepo registra la imagen previa antes de cada escritura.
type txCompanyRepo struct {
	*CompanyRepo
	j *journal
}

func (r *txCompanyRepo) remember(id string) {
	if _, seen := r.j.companies[id]; seen {
		return
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.companies[id]; ok {
		r.j.companies[id] = &c
		return
	}
	r.j.companies[id] = nil
}

func (r *txCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	r.remember(c.ID)
	return r.CompanyRepo.Create(ctx, c)
}

func (r *txCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	r.remember(c.ID)
	return r.CompanyRepo.Update(ctx, c)
}

func (r *txCompanyRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	r.remember(id)
	return r.CompanyRepo.SoftDelete(ctx, id, at)
}

func (r *txCompanyRepo) Restore(ctx context.Context, id string) error {
	r.remember(id)
	return r.CompanyRepo.Restore(ctx, id)
}

// txUserRepo registra la imagen previa antes de cada escritura.
type txUserRepo struct {
	*UserRepo
	j *journal
}

func (r *txUserRepo) remember(id string) {
	if _, seen := r.j.users[id]; seen {
		return
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		r.j.users[id] = &u
		return
	}
	r.j.users[id] = nil
}

func (r *txUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.remember(u.ID)
	return r.UserRepo.Create(ctx, u)
}

func (r *txUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.remember(u.ID)
	return r.UserRepo.Update(ctx, u)
}

func (r *txUserRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	r.remember(id)
	return r.UserRepo.SoftDelete(ctx, id, at)
}

func (r *txUserRepo) Restore(ctx context.Context, id string) error {
	r.remember(id)
	return r.UserRepo.Restore(ctx, id)
}

// AddCity registra una ciudad (seed).
func (s *Store) AddCity(c entity.City) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[c.ID] = c
}

// AddPayment registra un pago (seed).
func (s *Store) AddPayment(p entity.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = p
}

// AddRole registra un rol con sus permisos.
func (s *Store) AddRole(r entity.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[r.ID] = r
}

// AssignRole asigna un rol existente a un usuario.
func (s *Store) AssignRole(userID string, roleID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userRoles[userID] = append(s.userRoles[userID], roleID)
}

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ s *Store }

// Create inserta la empresa. Rut repetido (incluso de una eliminada): domain.ErrDuplicate.
func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.rutTaken(c.RUT, c.ID) {
		return domain.ErrDuplicate
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r *CompanyRepo) GetByID(_ context.Context, id string, includeDeleted bool) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[id]
	if !ok || (c.IsDeleted() && !includeDeleted) {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepo) GetByRUT(_ context.Context, rut string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if c.RUT == rut {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.rutTaken(c.RUT, c.ID) {
		return domain.ErrDuplicate
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	r.s.mu.RLock()
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		if !c.IsDeleted() {
			list = append(list, &c)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, limit, offset), nil
}

func (r *CompanyRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, c := range r.s.companies {
		if !c.IsDeleted() {
			n++
		}
	}
	return n, nil
}

func (r *CompanyRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok || c.IsDeleted() {
		return domain.ErrNotFound
	}
	c.DeletedAt = &at
	c.UpdatedAt = at
	r.s.companies[id] = c
	return nil
}

func (r *CompanyRepo) Restore(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !c.IsDeleted() {
		return domain.ErrNotDeleted
	}
	c.DeletedAt = nil
	c.UpdatedAt = time.Now()
	r.s.companies[id] = c
	return nil
}

func (r *CompanyRepo) rutTaken(rut, selfID string) bool {
	for id, c := range r.s.companies {
		if id != selfID && c.RUT == rut {
			return true
		}
	}
	return false
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

// Create inserta el usuario. Email repetido: domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users[u.ID] = stripUser(*u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, scope repository.TenantScope, id string, includeDeleted bool) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok || !scope.Matches(u.CompanyID) || (u.IsDeleted() && !includeDeleted) {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok || u.IsDeleted() {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string, includeDeleted bool) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) && (includeDeleted || !u.IsDeleted()) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users[u.ID] = stripUser(*u)
	return nil
}

func (r *UserRepo) List(_ context.Context, scope repository.TenantScope, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	list := make([]*entity.User, 0)
	for _, u := range r.s.users {
		if !u.IsDeleted() && scope.Matches(u.CompanyID) {
			list = append(list, &u)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, limit, offset), nil
}

func (r *UserRepo) Count(_ context.Context, scope repository.TenantScope) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, u := range r.s.users {
		if !u.IsDeleted() && scope.Matches(u.CompanyID) {
			n++
		}
	}
	return n, nil
}

func (r *UserRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok || u.IsDeleted() {
		return domain.ErrNotFound
	}
	u.DeletedAt = &at
	u.UpdatedAt = at
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) Restore(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !u.IsDeleted() {
		return domain.ErrNotDeleted
	}
	u.DeletedAt = nil
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) emailTaken(email, selfID string) bool {
	for id, u := range r.s.users {
		if id != selfID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// RoleRepo roles en memoria.
type RoleRepo struct{ s *Store }

func (r *RoleRepo) ListByUser(_ context.Context, userID string) ([]entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	roles := make([]entity.Role, 0, len(r.s.userRoles[userID]))
	for _, id := range r.s.userRoles[userID] {
		if role, ok := r.s.roles[id]; ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

// CityRepo ciudades en memoria.
type CityRepo struct{ s *Store }

func (r *CityRepo) GetByID(_ context.Context, id int) (*entity.City, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.cities[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CityRepo) List(_ context.Context) ([]*entity.City, error) {
	r.s.mu.RLock()
	list := make([]*entity.City, 0, len(r.s.cities))
	for _, c := range r.s.cities {
		list = append(list, &c)
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// PaymentRepo pagos en memoria.
type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentRepo) List(_ context.Context, limit, offset int) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	list := make([]*entity.Payment, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		if p.DeletedAt == nil {
			list = append(list, &p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, limit, offset), nil
}

func (r *PaymentRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.payments {
		if p.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return list[:0]
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// stripUser descarta las relaciones cargadas: el store solo guarda columnas.
func stripUser(u entity.User) entity.User {
	u.Company = nil
	u.Roles = nil
	return u
}
