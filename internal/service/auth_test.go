package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

type mockAuthDB struct {
	GetAdminAuthDataFunc func(username string) (int, string, error)
}

func (m *mockAuthDB) GetAdminAuthData(username string) (int, string, error) {
	return m.GetAdminAuthDataFunc(username)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	mockDB := &mockAuthDB{
		GetAdminAuthDataFunc: func(username string) (int, string, error) {
			if username == "admin" {
				return 1, "secret", nil
			}
			return 0, "", errors.New("not found")
		},
	}
	authSvc := NewAuthService(mockDB, &mockLogger{}, "jwtSecret")

	tokenStr, err := authSvc.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if tokenStr == "" {
		t.Errorf("expected non-empty token")
	}
	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("jwtSecret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Errorf("failed to parse or invalid token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["username"] != "admin" {
		t.Errorf("username claim = %v, want admin", claims["username"])
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	mockDB := &mockAuthDB{
		GetAdminAuthDataFunc: func(username string) (int, string, error) {
			return 1, "secret", nil
		},
	}
	authSvc := NewAuthService(mockDB, &mockLogger{}, "jwtSecret")

	if _, err := authSvc.Authenticate("admin", "wrong"); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestAuthService_Authenticate_UnknownAdmin(t *testing.T) {
	mockDB := &mockAuthDB{
		GetAdminAuthDataFunc: func(username string) (int, string, error) {
			return 0, "", errors.New("not found")
		},
	}
	authSvc := NewAuthService(mockDB, &mockLogger{}, "jwtSecret")

	if _, err := authSvc.Authenticate("ghost", "secret"); err == nil {
		t.Fatal("expected error for unknown admin")
	}
}

func TestAuthService_Authenticate_EmptySecret(t *testing.T) {
	mockDB := &mockAuthDB{
		GetAdminAuthDataFunc: func(username string) (int, string, error) {
			return 1, "secret", nil
		},
	}
	authSvc := NewAuthService(mockDB, &mockLogger{}, "")

	if _, err := authSvc.Authenticate("admin", "secret"); err == nil {
		t.Fatal("expected error for empty JWT secret")
	}
}
