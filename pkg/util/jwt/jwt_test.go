package jwt

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("test-secret", 5)
	token, err := GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "alice" || claims.Issuer != issuer || claims.ID == "" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	Init("secret-a", 5)
	token, err := GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	Init("secret-b", 5)
	if _, err := ParseToken(token); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Init("test-secret", -1)
	token, err := GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	Init("test-secret", 5)
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
