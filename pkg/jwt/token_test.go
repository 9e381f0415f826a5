package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", "teamdesk")
	token, err := svc.Issue("emp-1", "mina@example.com", "manager", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Subject != "emp-1" || claims.Email != "mina@example.com" || claims.Role != "manager" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", "teamdesk")
	token, err := svc.Issue("emp-1", "", "", -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseRejectsWrongSecretAndIssuer(t *testing.T) {
	token, err := NewTokenService("other", "teamdesk").Issue("emp-1", "", "", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewTokenService("secret", "teamdesk").Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: expected ErrInvalidToken, got %v", err)
	}

	token, err = NewTokenService("secret", "someone-else").Issue("emp-1", "", "", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewTokenService("secret", "teamdesk").Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong issuer: expected ErrInvalidToken, got %v", err)
	}

	if _, err := NewTokenService("secret", "").Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: expected ErrInvalidToken, got %v", err)
	}
}
