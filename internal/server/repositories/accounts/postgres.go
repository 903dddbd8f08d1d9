package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nutritrip/identity/internal/common"
	"github.com/nutritrip/identity/internal/dbx"
	"github.com/nutritrip/identity/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {

	query :=
		`SELECT id, email, password_hash, display_name, date_of_birth, gender, last_period_date, created_at
		 FROM accounts
		 WHERE email = $1
		 `

	account := &models.Account{}
	var lastPeriod sql.NullTime

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.DateOfBirth, &account.Gender, &lastPeriod, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if lastPeriod.Valid {
		account.LastPeriodDate = &lastPeriod.Time
	}

	return account, nil
}

func (r *PostgresRepository) MaxID(ctx context.Context) (int64, error) {

	query := `SELECT COALESCE(MAX(id), 0) FROM accounts`

	var maxID int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return maxID, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {

	query :=
		`INSERT INTO accounts (id, email, password_hash, display_name, date_of_birth, gender, last_period_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	var lastPeriod sql.NullTime
	if account.LastPeriodDate != nil {
		lastPeriod = sql.NullTime{Time: *account.LastPeriodDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.DisplayName,
		account.DateOfBirth, account.Gender, lastPeriod)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
