package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	id, err := GetAccountIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetAccountIDFromToken error: %v", err)
	}
	if id != 42 {
		t.Fatalf("account id mismatch: got %d want 42", id)
	}
}

func TestGetAccountIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetAccountIDFromToken(tok, secret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestGetAccountIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(42, []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetAccountIDFromToken(tok, []byte("secret-b")); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestGetAccountIDFromToken_RejectsOtherSigningMethods(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	// Signed with the right secret but a different HMAC variant; the parser
	// accepts HS256 only.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(42, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := GetAccountIDFromToken(tok, secret); err == nil {
		t.Fatalf("expected error for token signed with a different method")
	}
}

func TestGetAccountIDFromToken_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := GetAccountIDFromToken("not-a-token", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
