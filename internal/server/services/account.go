// Package services contains server-side business logic. This file implements
// AccountService, which handles the signup and login workflows and issues
// session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nutritrip/identity/internal/common"
	"github.com/nutritrip/identity/internal/dbx"
	"github.com/nutritrip/identity/internal/server/auth"
	"github.com/nutritrip/identity/internal/server/config"
	"github.com/nutritrip/identity/internal/server/models"
	"github.com/nutritrip/identity/internal/server/password"
	"github.com/nutritrip/identity/internal/server/repositories/repomanager"
	"github.com/sethvargo/go-retry"
)

// signupTxOptions is a seam: the sqlite database used in tests accepts only
// the default isolation level.
var signupTxOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}

// SignUpParams carries the fields of a signup request. Callers run Validate
// before invoking SignUp.
type SignUpParams struct {
	Email          string
	Password       string
	DisplayName    string
	DateOfBirth    time.Time
	Gender         string
	LastPeriodDate *time.Time
}

// Identity is returned to the client after a successful signup or login.
type Identity struct {
	ID           int64
	Email        string
	DisplayName  string
	SessionToken string
}

// AccountService provides the credential lifecycle operations:
// - SignUp: uniqueness check, id assignment, persistence
// - Login: credential lookup and verification
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	queryTimeout          time.Duration
}

// NewAccountService constructs an AccountService using repositories and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                    db,
		repomanager:           m,
		hasher:                password.NewHasher(cfg.BcryptCost),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		queryTimeout:          cfg.QueryTimeout,
	}
}

// SignUp registers a new account. The uniqueness check, id assignment and
// insert all run inside one serializable transaction, so two concurrent
// signups cannot observe the same MAX(id); the loser of the race fails and
// rolls back. An existing email yields common.ErrorDuplicateEmail without
// any mutation.
func (s *AccountService) SignUp(ctx context.Context, p SignUpParams) (*Identity, error) {

	// Hash before the transaction: bcrypt is slow on purpose and must not
	// extend the serializable window.
	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var account *models.Account

	// Serialization conflicts between concurrent signups abort one of the
	// transactions; retry those a few times before giving up.
	backoff := retry.WithMaxRetries(3, retry.NewConstant(10*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		txErr := dbx.WithTx(ctx, s.db, signupTxOptions, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.Accounts(tx)

			_, err := repo.FindByEmail(ctx, p.Email)
			if err == nil {
				return common.ErrorDuplicateEmail
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}

			maxID, err := repo.MaxID(ctx)
			if err != nil {
				return err
			}

			account = &models.Account{
				ID:             maxID + 1,
				Email:          p.Email,
				PasswordHash:   hash,
				DisplayName:    p.DisplayName,
				DateOfBirth:    p.DateOfBirth,
				Gender:         p.Gender,
				LastPeriodDate: p.LastPeriodDate,
			}
			return repo.Create(ctx, account)
		})
		if isSerializationFailure(txErr) {
			return retry.RetryableError(txErr)
		}
		return txErr
	})

	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return s.identity(account)
}

// Login verifies the credentials for the given email. A missing account and
// a wrong password both yield common.ErrorInvalidCredentials so that the
// response does not reveal which one it was.
func (s *AccountService) Login(ctx context.Context, email, plaintext string) (*Identity, error) {

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if !s.hasher.Verify(plaintext, account.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.identity(account)
}

// isSerializationFailure reports whether err is a PostgreSQL serialization
// failure (40001) or deadlock (40P01), both safe to retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// opContext bounds a store operation with the configured query timeout.
func (s *AccountService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *AccountService) identity(account *models.Account) (*Identity, error) {
	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &Identity{
		ID:           account.ID,
		Email:        account.Email,
		DisplayName:  account.DisplayName,
		SessionToken: token,
	}, nil
}
