package models

import "time"

// Gender values accepted on signup.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Account is a persisted user identity. PasswordHash is the bcrypt output
// of the credential hasher; the plaintext password never reaches this struct.
type Account struct {
	ID             int64
	Email          string
	PasswordHash   string
	DisplayName    string
	DateOfBirth    time.Time
	Gender         string
	LastPeriodDate *time.Time
	CreatedAt      time.Time
}
