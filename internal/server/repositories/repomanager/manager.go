package repomanager

import (
	"context"
	"database/sql"

	"github.com/nutritrip/identity/internal/dbx"
	"github.com/nutritrip/identity/internal/server/repositories/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}
