package services

import (
	"errors"
	"testing"
	"time"

	"backend/models"
	"backend/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register("a@example.com", "hunter2hunter2", "Test User")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Error("register returned empty token")
	}
	if user.Password == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}

	// duplicate email conflicts
	if _, _, err := svc.Register("a@example.com", "other-password", "Other"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate register err = %v, want ErrConflict", err)
	}

	if _, _, err := svc.Login("a@example.com", "hunter2hunter2"); err != nil {
		t.Errorf("login: %v", err)
	}
	if _, _, err := svc.Login("a@example.com", "wrong"); err == nil {
		t.Error("login with wrong password succeeded")
	}
	if _, _, err := svc.Login("nobody@example.com", "hunter2hunter2"); err == nil {
		t.Error("login with unknown email succeeded")
	}
}

func TestResetPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	svc := NewAuthService(db)

	if _, _, err := svc.Register("a@example.com", "hunter2hunter2", "Test User"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// plant a valid reset token the way ForgotPassword would
	var user models.User
	db.Where("email = ?", "a@example.com").First(&user)
	user.ResetToken = "ABC123"
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	db.Save(&user)

	if err := svc.ResetPassword("a@example.com", "WRONG1", "newpassword123"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("wrong token err = %v, want ErrInvalidInput", err)
	}
	if err := svc.ResetPassword("a@example.com", "ABC123", "newpassword123"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, _, err := svc.Login("a@example.com", "newpassword123"); err != nil {
		t.Errorf("login after reset: %v", err)
	}
	// the token is single use
	if err := svc.ResetPassword("a@example.com", "ABC123", "again-different"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("reuse token err = %v, want ErrInvalidInput", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	svc := NewAuthService(db)

	hashed, _ := utils.HashPassword("hunter2hunter2")
	user := models.User{
		Email:         "a@example.com",
		Password:      hashed,
		ResetToken:    "ABC123",
		ResetTokenExp: time.Now().Add(-time.Minute),
	}
	db.Create(&user)

	if err := svc.ResetPassword("a@example.com", "ABC123", "newpassword123"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expired token err = %v, want ErrInvalidInput", err)
	}
}
