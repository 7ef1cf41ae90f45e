// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/angelamos/eatgreet/internal/config"
	"github.com/angelamos/eatgreet/internal/core"
)

func newTestManager(t *testing.T, accessExpire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		AccessTokenExpire:  accessExpire,
		RefreshTokenExpire: 168 * time.Hour,
		Issuer:             "eatgreet",
		Audience:           "eatgreet-api",
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	return manager
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	signed, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID:       "user-42",
		Role:         core.RoleAdmin,
		TokenVersion: 3,
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	parsed, err := manager.ParseAccessToken(context.Background(), signed)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}

	if parsed.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", parsed.UserID)
	}
	if parsed.Role != core.RoleAdmin {
		t.Errorf("Role = %q, want admin", parsed.Role)
	}
	if parsed.TokenVersion != 3 {
		t.Errorf("TokenVersion = %d, want 3", parsed.TokenVersion)
	}
	if parsed.JTI == "" {
		t.Error("JTI must be set for blacklist checks")
	}
	if parsed.ExpiresAt.IsZero() {
		t.Error("ExpiresAt must be set")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	signed, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "user-42",
		Role:   core.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	_, err = manager.ParseAccessToken(context.Background(), signed)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	_, err := manager.ParseAccessToken(context.Background(), "not.a.token")
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestParseAccessTokenWrongKey(t *testing.T) {
	issuer := newTestManager(t, 15*time.Minute)
	other := newTestManager(t, 15*time.Minute)

	signed, err := issuer.CreateAccessToken(AccessTokenClaims{
		UserID: "user-42",
		Role:   core.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	_, err = other.ParseAccessToken(context.Background(), signed)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestRefreshTokenFamilyReuse(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	first, err := manager.CreateRefreshToken("user-42", "")
	if err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}
	if first.FamilyID == "" {
		t.Fatal("new token must mint a family id")
	}

	rotated, err := manager.CreateRefreshToken("user-42", first.FamilyID)
	if err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}
	if rotated.FamilyID != first.FamilyID {
		t.Error("rotation must stay in the same family")
	}
	if rotated.Hash == first.Hash {
		t.Error("rotated token must differ")
	}

	if !manager.VerifyRefreshTokenHash(first.Token, first.Hash) {
		t.Error("token must verify against its own hash")
	}
	if manager.VerifyRefreshTokenHash(first.Token, rotated.Hash) {
		t.Error("token must not verify against another hash")
	}
}
