package jwt

import (
	"testing"
	"time"

	"clinic-backend/config"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()

	token, tokenID, err := s.GenerateAccessToken(7, "johndoe")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token ID")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.EmployeeID != 7 {
		t.Errorf("expected employee ID 7, got %d", claims.EmployeeID)
	}
	if claims.Username != "johndoe" {
		t.Errorf("expected username johndoe, got %s", claims.Username)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token type, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("expected token ID %s, got %s", tokenID, claims.TokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(7, "johndoe")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(7, "johndoe")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := s.GenerateAccessToken(7, "johndoe")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
