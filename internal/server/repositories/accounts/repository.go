package accounts

import (
	"context"

	"github.com/nutritrip/identity/internal/server/models"
)

type Repository interface {
	// FindByEmail returns the account with the given email, or
	// common.ErrorNotFound when no such account exists.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// MaxID returns the highest assigned account id, 0 when the table is empty.
	MaxID(ctx context.Context) (int64, error)

	Create(ctx context.Context, account *models.Account) error
}
