package ports

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// EmailSender envía los correos transaccionales de la aplicación.
type EmailSender interface {
	// SendPasswordReset envía el enlace con el token de recuperación de contraseña.
	SendPasswordReset(ctx context.Context, user *entity.User, token string) error
	// SendWelcome envía al primer usuario de una empresa su contraseña inicial.
	SendWelcome(ctx context.Context, user *entity.User, company *entity.Company, initialPassword string) error
}
