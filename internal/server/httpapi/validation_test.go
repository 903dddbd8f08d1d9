package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignupRequest() signupRequest {
	return signupRequest{
		Email:       "a@x.com",
		Password:    "secret1",
		DisplayName: "Ana",
		DateOfBirth: "2000-01-01",
		Gender:      "F",
	}
}

func TestValidateSignup_Valid(t *testing.T) {
	params, fields := validateSignup(validSignupRequest())
	require.Nil(t, fields)

	assert.Equal(t, "a@x.com", params.Email)
	assert.Equal(t, "Ana", params.DisplayName)
	assert.Equal(t, "F", params.Gender)
	assert.Equal(t, 2000, params.DateOfBirth.Year())
	assert.Nil(t, params.LastPeriodDate)
}

func TestValidateSignup_OptionalDate(t *testing.T) {
	req := validSignupRequest()
	req.LastPeriodDate = "2024-05-20"

	params, fields := validateSignup(req)
	require.Nil(t, fields)
	require.NotNil(t, params.LastPeriodDate)
	assert.Equal(t, "2024-05-20", params.LastPeriodDate.Format(dateLayout))
}

func TestValidateSignup_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*signupRequest)
		field  string
		want   string
	}{
		{"bad email", func(r *signupRequest) { r.Email = "not-an-email" }, "email", "invalid_email_format"},
		{"empty email", func(r *signupRequest) { r.Email = "" }, "email", "invalid_email_format"},
		{"display-name email form", func(r *signupRequest) { r.Email = "Ana <a@x.com>" }, "email", "invalid_email_format"},
		{"short password", func(r *signupRequest) { r.Password = "abc" }, "password", "password_too_short"},
		{"blank display name", func(r *signupRequest) { r.DisplayName = "   " }, "display_name", "display_name_required"},
		{"bad gender", func(r *signupRequest) { r.Gender = "X" }, "gender", "invalid_gender"},
		{"lowercase gender", func(r *signupRequest) { r.Gender = "f" }, "gender", "invalid_gender"},
		{"bad dob", func(r *signupRequest) { r.DateOfBirth = "01/01/2000" }, "date_of_birth", "invalid_date"},
		{"impossible dob", func(r *signupRequest) { r.DateOfBirth = "2000-02-30" }, "date_of_birth", "invalid_date"},
		{"bad optional date", func(r *signupRequest) { r.LastPeriodDate = "yesterday" }, "last_period_date", "invalid_date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignupRequest()
			tc.mutate(&req)

			_, fields := validateSignup(req)
			require.NotNil(t, fields)
			assert.Equal(t, tc.want, fields[tc.field])
		})
	}
}

func TestValidateSignup_MinimumPasswordBoundary(t *testing.T) {
	req := validSignupRequest()
	req.Password = "123456"

	_, fields := validateSignup(req)
	assert.Nil(t, fields, "six characters is the minimum and must pass")

	req.Password = "12345"
	_, fields = validateSignup(req)
	require.NotNil(t, fields)
	assert.Equal(t, "password_too_short", fields["password"])
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, validateLogin(loginRequest{Email: "a@x.com", Password: "p"}))

	fields := validateLogin(loginRequest{Email: "nope", Password: ""})
	require.NotNil(t, fields)
	assert.Equal(t, "invalid_email_format", fields["email"])
	assert.Equal(t, "password_required", fields["password"])
}
