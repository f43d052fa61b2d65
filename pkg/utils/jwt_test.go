package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", "family-budget", time.Hour)

	signed, claims, err := issuer.CreateToken(42, "parent")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if claims.ID == "" || claims.Subject != "42" {
		t.Errorf("claims = %+v", claims)
	}

	got, err := issuer.ValidateToken(signed)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if got.UserID != 42 || got.Role != "parent" || got.ID != claims.ID {
		t.Errorf("validated claims = %+v", got)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", "family-budget", time.Hour)
	valid, _, _ := issuer.CreateToken(1, "user")

	expired := NewTokenIssuer("secret", "family-budget", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.CreateToken(1, "user")

	otherIssuer, _, _ := NewTokenIssuer("secret", "someone-else", time.Hour).CreateToken(1, "user")
	otherKey, _, _ := NewTokenIssuer("other-secret", "family-budget", time.Hour).CreateToken(1, "user")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": 1, "iss": "family-budget"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", old},
		{"wrong issuer", otherIssuer},
		{"wrong key", otherKey},
		{"alg none", none},
		{"garbage", "not.a.token"},
		{"tampered", valid + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.ValidateToken(tt.token); err == nil {
				t.Error("token accepted")
			}
		})
	}
}
