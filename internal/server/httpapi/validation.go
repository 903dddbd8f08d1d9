package httpapi

import (
	"net/mail"
	"time"

	"github.com/nutritrip/identity/internal/server/services"
)

const dateLayout = "2006-01-02"

type signupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	DisplayName    string `json:"display_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	LastPeriodDate string `json:"last_period_date,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	SessionToken string `json:"session_token"`
}

// validateSignup parses the wire-level fields and checks the result against
// the account invariants. On failure it returns a field→message map;
// validation never reaches the store.
func validateSignup(req signupRequest) (services.SignUpParams, map[string]string) {
	fields := make(map[string]string)

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		fields["date_of_birth"] = "invalid_date"
	}

	var lastPeriod *time.Time
	if req.LastPeriodDate != "" {
		lp, err := time.Parse(dateLayout, req.LastPeriodDate)
		if err != nil {
			fields["last_period_date"] = "invalid_date"
		} else {
			lastPeriod = &lp
		}
	}

	params := services.SignUpParams{
		Email:          req.Email,
		Password:       req.Password,
		DisplayName:    req.DisplayName,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		LastPeriodDate: lastPeriod,
	}
	for field, code := range params.Validate() {
		fields[field] = code
	}

	if len(fields) > 0 {
		return services.SignUpParams{}, fields
	}
	return params, nil
}

func validateLogin(req loginRequest) map[string]string {
	fields := make(map[string]string)

	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "invalid_email_format"
	}
	if req.Password == "" {
		fields["password"] = "password_required"
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}
