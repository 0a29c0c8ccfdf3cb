package auth

import (
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
)

// Identity identidad contenida en un token válido.
type Identity struct {
	ID    string
	Email string
}

// TokenService emite y valida tokens firmados con el secreto cargado al arrancar.
// Los errores nunca exponen el motivo criptográfico.
type TokenService struct {
	cfg config.JWTConfig
}

// NewTokenService construye el servicio de tokens.
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// Issue emite un token de acceso. Expiration 0 = sin vencimiento.
func (s *TokenService) Issue(userID, email string) (string, error) {
	return s.issue(userID, email, jwt.PurposeAccess, s.cfg.Expiration)
}

// IssueReset emite un token de recuperación de contraseña de corta duración.
func (s *TokenService) IssueReset(userID, email string) (string, error) {
	return s.issue(userID, email, jwt.PurposeReset, s.cfg.ResetExpiration)
}

// Validate valida un token de acceso.
func (s *TokenService) Validate(token string) (Identity, error) {
	return s.validate(token, jwt.PurposeAccess)
}

// ValidateReset valida un token de recuperación.
func (s *TokenService) ValidateReset(token string) (Identity, error) {
	return s.validate(token, jwt.PurposeReset)
}

func (s *TokenService) issue(userID, email, purpose string, expMinutes int) (string, error) {
	tok, err := jwt.Generate(s.cfg.Secret, userID, email, purpose, s.cfg.Issuer, expMinutes)
	if err != nil {
		return "", domain.ErrTokenGeneration
	}
	return tok, nil
}

func (s *TokenService) validate(token, purpose string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrInvalidToken
	}
	id, email, err := jwt.Parse(s.cfg.Secret, token, purpose, s.cfg.Issuer)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}
	return Identity{ID: id, Email: email}, nil
}
