package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-123", "maria", "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
	if claims.Username != "maria" {
		t.Errorf("Username = %q, want maria", claims.Username)
	}
	if claims.Email != "maria@example.com" {
		t.Errorf("Email = %q, want maria@example.com", claims.Email)
	}
}

func TestRefreshTokenCarriesUserID(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("user-456")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-456" {
		t.Errorf("UserID = %q, want user-456", claims.UserID)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken("user-123", "maria", "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-123", "maria", "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("ValidateToken error = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Error("CheckPasswordHash rejected correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash accepted wrong password")
	}
}
