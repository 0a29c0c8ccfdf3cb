package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// LocalActor key en c.Locals del usuario autenticado.
const LocalActor = "actor"

// HeaderToken header alternativo a Authorization: Bearer.
const HeaderToken = "x-token"

// Authenticator valida un token y devuelve el usuario activo con su empresa y roles.
// Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware exige un token válido (Bearer o x-token) y deja el actor en c.Locals.
// Token ausente, inválido o de un usuario eliminado responden el mismo 401.
func AuthMiddleware(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := a.Authenticate(c.UserContext(), tokenOf(c))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// RequireAdmin permite el paso solo al administrador global (usuario sin empresa).
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return writeError(c, domain.ErrUnauthorized)
		}
		if !actor.IsAdmin() {
			return writeError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetActor devuelve el usuario autenticado (nil fuera de AuthMiddleware).
func GetActor(c *fiber.Ctx) *entity.User {
	actor, _ := c.Locals(LocalActor).(*entity.User)
	return actor
}

func tokenOf(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get(HeaderToken))
}
