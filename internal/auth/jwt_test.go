package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_RejectsUnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("user-1", "a@example.com", "ADMIN"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestGenerateToken_RejectsEmptyUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "a@example.com", RoleCustomer); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "a@example.com", RoleRestaurantOwner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@example.com" || claims.Role != RoleRestaurantOwner {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestValidateToken_RejectsForeignRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// A structurally valid token whose role this system never issues
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID": "user-1",
		"email":  "a@example.com",
		"role":   "SUPERUSER",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for a role this system never issues")
	}
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "a@example.com", RoleCustomer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "a-different-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected validation failure under a different secret")
	}
}

func TestTokenTTL_ConfigurableViaEnv(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "2")
	if got := tokenTTL(); got != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %v", got)
	}

	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	if got := tokenTTL(); got != defaultTokenTTL {
		t.Errorf("expected default TTL for bad value, got %v", got)
	}
}
