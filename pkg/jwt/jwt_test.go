package jwt

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundtrip(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "maria", "Maria Lopez", "cashier")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID || claims.Username != "maria" || claims.Role != "cashier" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Errorf("garbage token validated")
	}
	if _, err := ValidateToken(""); err == nil {
		t.Errorf("empty token validated")
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "key-one")
	token, err := GenerateToken(uuid.New(), "maria", "Maria Lopez", "cashier")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "key-two")
	if _, err := ValidateToken(token); err == nil {
		t.Errorf("token signed with another key validated")
	}
}
