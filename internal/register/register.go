package register

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/nutritrip/identity/internal/server/config"
	"github.com/nutritrip/identity/internal/server/repositories/repomanager"
	"github.com/nutritrip/identity/internal/server/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const dateLayout = "2006-01-02"

// Run prompts for the account fields, creates the account against the
// configured store, and prints the assigned id.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)

	email, err := getSimpleText(reader, "Email", out)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(reader, "Display name", out)
	if err != nil {
		return err
	}

	dobText, err := getSimpleText(reader, "Date of birth (YYYY-MM-DD)", out)
	if err != nil {
		return err
	}
	dob, err := time.Parse(dateLayout, dobText)
	if err != nil {
		return fmt.Errorf("invalid date of birth: %w", err)
	}

	gender, err := getSimpleText(reader, "Gender (M/F/O)", out)
	if err != nil {
		return err
	}

	lastPeriodText, err := getSimpleText(reader, "Last period date (YYYY-MM-DD, empty to skip)", out)
	if err != nil {
		return err
	}
	var lastPeriod *time.Time
	if lastPeriodText != "" {
		lp, err := time.Parse(dateLayout, lastPeriodText)
		if err != nil {
			return fmt.Errorf("invalid last period date: %w", err)
		}
		lastPeriod = &lp
	}

	pw, err := getPassword(out)
	if err != nil {
		return err
	}

	params := services.SignUpParams{
		Email:          email,
		Password:       string(pw),
		DisplayName:    displayName,
		DateOfBirth:    dob,
		Gender:         gender,
		LastPeriodDate: lastPeriod,
	}

	// Same rules the HTTP boundary applies; nothing unchecked reaches SignUp.
	if fields := params.Validate(); fields != nil {
		problems := make([]string, 0, len(fields))
		for field, code := range fields {
			problems = append(problems, field+": "+code)
		}
		sort.Strings(problems)
		return fmt.Errorf("invalid input: %s", strings.Join(problems, ", "))
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	svc := services.NewAccountService(db, rm, cfg)

	identity, err := svc.SignUp(ctx, params)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created account id=%d email=%s\n", identity.ID, identity.Email)
	return nil
}

// Main is the entrypoint used by cmd/register.
func Main() {
	if err := Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
