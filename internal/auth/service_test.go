package auth

import (
	"context"
	"errors"
	"testing"
)

func register(t *testing.T, svc *Service, username string) *User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "Password@123",
		Role:     RoleCustomer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return user
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	register(t, service, "testuser")

	user := repo.users["testuser"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == "Password@123" {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password@123",
		Role:     "ADMIN",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "12345",
		Role:     RoleCustomer,
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	register(t, service, "testuser")

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "testuser",
		Email:    "other@example.com",
		Password: "Password@123",
		Role:     RoleCustomer,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service := NewService(NewInMemoryUserRepository())
	register(t, service, "testuser")

	_, _, err := service.Login(context.Background(), "testuser", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service := NewService(NewInMemoryUserRepository())
	created := register(t, service, "testuser")

	user, token, err := service.Login(context.Background(), "testuser", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != created.ID {
		t.Errorf("login returned a different user")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.UserID != created.ID || claims.Email != created.Email || claims.Role != RoleCustomer {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestChangePasswordChecksOldPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	user := register(t, service, "testuser")

	err := service.ChangePassword(context.Background(), user.ID, "wrong-old", "NewPassword@123")
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Fatalf("expected ErrWrongOldPassword, got %v", err)
	}
}

func TestChangePasswordUpdatesHash(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service := NewService(NewInMemoryUserRepository())
	user := register(t, service, "testuser")

	err := service.ChangePassword(context.Background(), user.ID, "Password@123", "NewPassword@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := service.Login(context.Background(), "testuser", "Password@123"); err == nil {
		t.Error("old password should no longer work")
	}
	if _, _, err := service.Login(context.Background(), "testuser", "NewPassword@123"); err != nil {
		t.Errorf("new password should work: %v", err)
	}
}
