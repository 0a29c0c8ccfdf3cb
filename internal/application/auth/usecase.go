package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/textnorm"
)

// Mensajes de login. Email y contraseña fallan con errores distintos.
const (
	msgEmailNotFound  = "Email no existe o fue eliminado"
	msgWrongPassword  = "Contraseña incorrecta"
	msgWrongOldPasswd = "La contraseña actual es incorrecta"
	msgInvalidReset   = "El token de recuperación es inválido o expiró"
)

// AuthUseCase casos de uso de autenticación: login, renovación, guard y gestión de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	tokens      *TokenService
	mailer      ports.EmailSender
	log         zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository,
	tokens *TokenService,
	mailer ports.EmailSender,
	log zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		tokens:      tokens,
		mailer:      mailer,
		log:         log,
	}
}

// Login verifica email/password, genera el token y retorna token + usuario con empresa y roles.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := textnorm.Email(in.Email)
	user, err := uc.userRepo.GetByEmail(ctx, email, false)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewFieldError(domain.ErrEmailNotFound, in.Email, msgEmailNotFound, "email", domain.LocationBody)
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.NewFieldError(domain.ErrWrongPassword, nil, msgWrongPassword, "password", domain.LocationBody)
	}
	if err := uc.loadGraph(ctx, user); err != nil {
		return nil, err
	}
	return uc.session(user)
}

// Renew emite un token nuevo para el actor ya autenticado, sin volver a pedir contraseña.
func (uc *AuthUseCase) Renew(ctx context.Context, actor *entity.User) (*dto.LoginResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if actor.Roles == nil {
		if err := uc.loadGraph(ctx, actor); err != nil {
			return nil, err
		}
	}
	return uc.session(actor)
}

// Authenticate resuelve el actor a partir de un token de acceso.
// Token ausente o inválido, usuario inexistente o eliminado: siempre domain.ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	id, err := uc.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByID(ctx, id.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.loadGraph(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PasswordRecovery envía un token de recuperación si el email pertenece a un usuario activo.
// No informa si el email existe: el handler responde lo mismo en ambos casos.
func (uc *AuthUseCase) PasswordRecovery(ctx context.Context, in dto.PasswordRecoveryRequest) error {
	user, err := uc.userRepo.GetByEmail(ctx, textnorm.Email(in.Email), false)
	if err != nil {
		return err
	}
	if user == nil {
		uc.log.Debug().Str("email", in.Email).Msg("recuperación solicitada para email inexistente")
		return nil
	}
	tok, err := uc.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		return err
	}
	if err := uc.mailer.SendPasswordReset(ctx, user, tok); err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID).Msg("no se pudo enviar el correo de recuperación")
	}
	return nil
}

// PasswordReset fija una nueva contraseña usando un token de recuperación.
func (uc *AuthUseCase) PasswordReset(ctx context.Context, resetToken string, in dto.PasswordResetRequest) error {
	invalid := domain.NewFieldError(domain.ErrInvalidToken, nil, msgInvalidReset, "x-reset-token", domain.LocationHeaders)
	id, err := uc.tokens.ValidateReset(resetToken)
	if err != nil {
		return invalid
	}
	user, err := uc.userRepo.FindByID(ctx, id.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return invalid
	}
	return uc.setPassword(ctx, user, in.Password, "password")
}

// ChangePassword cambia la contraseña del actor verificando la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor *entity.User, in dto.ChangePasswordRequest) error {
	if !password.Verify(in.OldPassword, actor.PasswordHash) {
		return domain.NewFieldError(domain.ErrWrongPassword, nil, msgWrongOldPasswd, "old_password", domain.LocationBody)
	}
	return uc.setPassword(ctx, actor, in.NewPassword, "new_password")
}

// UpdateProfile actualiza nombre y email del propio actor. Otro id responde como inexistente.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, actor *entity.User, id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if actor.ID != id {
		return nil, domain.IDNotFound(id)
	}
	user := *actor
	changed := false
	if in.Name != nil {
		user.Name = *in.Name
		changed = true
	}
	if in.Email != nil {
		email := textnorm.Email(*in.Email)
		if email != user.Email {
			if err := uc.checkEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
		changed = true
	}
	if changed {
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, &user); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				return nil, domain.EmailInUse(user.Email)
			}
			return nil, err
		}
	}
	out := dto.NewUserResponse(&user)
	return &out, nil
}

// EnsureAdmin crea el administrador global (sin empresa) si el email aún no está registrado.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, plain string) error {
	email = textnorm.Email(email)
	existing, err := uc.userRepo.GetByEmail(ctx, email, true)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := password.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return domain.PasswordTooLong("password", password.MaxBytes)
	}
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "administrador",
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	uc.log.Info().Str("email", email).Msg("administrador inicial creado")
	return nil
}

func (uc *AuthUseCase) session(user *entity.User) (*dto.LoginResponse, error) {
	tok, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: dto.NewProfileResponse(user), Token: tok}, nil
}

// loadGraph carga la empresa y el grafo rol -> permisos del usuario.
func (uc *AuthUseCase) loadGraph(ctx context.Context, user *entity.User) error {
	if user.CompanyID != nil {
		company, err := uc.companyRepo.GetByID(ctx, *user.CompanyID, true)
		if err != nil {
			return err
		}
		user.Company = company
	}
	roles, err := uc.roleRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []entity.Role{}
	}
	user.Roles = roles
	return nil
}

func (uc *AuthUseCase) setPassword(ctx context.Context, user *entity.User, plain, param string) error {
	hash, err := password.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return domain.PasswordTooLong(param, password.MaxBytes)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	updated := *user
	updated.PasswordHash = hash
	updated.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, &updated)
}

func (uc *AuthUseCase) checkEmailFree(ctx context.Context, email, selfID string) error {
	other, err := uc.userRepo.GetByEmail(ctx, email, true)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.EmailInUse(email)
	}
	return nil
}
