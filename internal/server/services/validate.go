package services

import (
	"net/mail"
	"strings"

	"github.com/nutritrip/identity/internal/server/models"
)

const minPasswordLength = 6

// Validate checks the signup fields against the account invariants and
// returns a field→code map, nil when everything is valid. Every caller of
// SignUp runs this first, whichever surface the request came in on.
func (p SignUpParams) Validate() map[string]string {
	fields := make(map[string]string)

	// The address must stand alone: "Ana <a@x.com>" parses, but storing the
	// whole string as the unique email would let one mailbox register twice.
	addr, err := mail.ParseAddress(p.Email)
	if err != nil || addr.Address != p.Email {
		fields["email"] = "invalid_email_format"
	}
	if len(p.Password) < minPasswordLength {
		fields["password"] = "password_too_short"
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		fields["display_name"] = "display_name_required"
	}
	if !validGender(p.Gender) {
		fields["gender"] = "invalid_gender"
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

func validGender(g string) bool {
	switch g {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}
