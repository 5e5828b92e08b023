package users

import (
	"context"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// Repository persists user records. Lookups of a missing record return
// common.ErrorNotFound; writes that would duplicate an email return
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTakenByOther(ctx context.Context, email, exceptID string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
