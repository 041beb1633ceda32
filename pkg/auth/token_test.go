package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "darzi-test",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	shopID := uuid.New()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: userID, ShopID: shopID})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user_id = %s, want %s", claims.UserID, userID)
	}
	if claims.ShopID != shopID {
		t.Errorf("shop_id = %s, want %s", claims.ShopID, shopID)
	}
	if claims.ID == "" {
		t.Error("jti should be populated")
	}
}

func TestMintValidation(t *testing.T) {
	cfg := testJWTConfig()
	payload := AccessTokenPayload{UserID: uuid.New(), ShopID: uuid.New()}

	cases := []struct {
		name    string
		mutate  func(*config.JWTConfig, *AccessTokenPayload)
		wantErr string
	}{
		{"missing secret", func(c *config.JWTConfig, _ *AccessTokenPayload) { c.Secret = "" }, "secret"},
		{"missing issuer", func(c *config.JWTConfig, _ *AccessTokenPayload) { c.Issuer = "" }, "issuer"},
		{"bad expiration", func(c *config.JWTConfig, _ *AccessTokenPayload) { c.ExpirationMinutes = 0 }, "expiration"},
		{"missing user", func(_ *config.JWTConfig, p *AccessTokenPayload) { p.UserID = uuid.Nil }, "user id"},
		{"missing shop", func(_ *config.JWTConfig, p *AccessTokenPayload) { p.ShopID = uuid.Nil }, "shop id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, p := cfg, payload
			tc.mutate(&c, &p)
			_, err := MintAccessToken(c, time.Now(), p)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), AccessTokenPayload{UserID: uuid.New(), ShopID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New(), ShopID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Error("expected error for wrong secret")
	}
}
