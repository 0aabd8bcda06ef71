package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // Min cost keeps the test fast.
	}
	return NewAuthService(cfg, nil)
}

func signTestToken(t *testing.T, s *AuthService, userID int, role model.Role, expiry time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		UserID:     userID,
		Role:       role,
		Department: "Computer Science",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestCheckPassword(t *testing.T) {
	s := testAuthService()

	hash, err := s.HashPassword("pass123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if err := s.CheckPassword(hash, "pass123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}

	if err := s.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	// Case matters.
	if err := s.CheckPassword(hash, "Pass123"); err != ErrInvalidCredentials {
		t.Errorf("case-variant password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken(t *testing.T) {
	s := testAuthService()

	token := signTestToken(t, s, 42, model.RoleStudent, time.Hour)
	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleStudent {
		t.Errorf("role = %q, want %q", claims.Role, model.RoleStudent)
	}
	if claims.Department != "Computer Science" {
		t.Errorf("department = %q, want Computer Science", claims.Department)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := testAuthService()

	token := signTestToken(t, s, 42, model.RoleStudent, -time.Minute)
	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := testAuthService()
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}, nil)

	token := signTestToken(t, other, 42, model.RoleTeacher, time.Hour)
	if _, err := s.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := testAuthService()
	if _, err := s.ValidateToken("not-a-jwt"); err == nil {
		t.Error("malformed token accepted")
	}
}
