// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelamos/eatgreet/internal/core"
)

type stubVerifier struct {
	principal *Principal
	err       error
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*Principal, error) {
	return s.principal, s.err
}

func okHandler(t *testing.T, gotPrincipal **Principal) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPrincipal != nil {
			*gotPrincipal = GetPrincipal(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingToken(t *testing.T) {
	verifier := &stubVerifier{}
	handler := Authenticator(verifier)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenInvalid}
	handler := Authenticator(verifier)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenExpired}
	handler := Authenticator(verifier)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticatorValidToken(t *testing.T) {
	want := &Principal{
		ID:           "user-1",
		Role:         core.RoleAdmin,
		TokenVersion: 2,
	}
	verifier := &stubVerifier{principal: want}

	var got *Principal
	handler := Authenticator(verifier)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || got.ID != "user-1" || got.Role != core.RoleAdmin {
		t.Errorf("principal = %+v, want %+v", got, want)
	}
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenInvalid}

	var got *Principal
	handler := OptionalAuth(verifier)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got != nil {
		t.Errorf("principal = %+v, want nil", got)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *Principal
		allowed    []core.Role
		wantStatus int
	}{
		{
			name:       "no principal is 401 not 403",
			principal:  nil,
			allowed:    []core.Role{core.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "customer blocked from admin route",
			principal:  &Principal{ID: "u1", Role: core.RoleCustomer},
			allowed:    []core.Role{core.RoleAdmin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin blocked from super-admin route",
			principal:  &Principal{ID: "u1", Role: core.RoleAdmin},
			allowed:    []core.Role{core.RoleSuperAdmin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin passes admin route",
			principal:  &Principal{ID: "u1", Role: core.RoleAdmin},
			allowed:    []core.Role{core.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "super-admin passes its own route",
			principal:  &Principal{ID: "u1", Role: core.RoleSuperAdmin},
			allowed:    []core.Role{core.RoleSuperAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:      "super-admin not implicitly in admin-only set",
			principal: &Principal{ID: "u1", Role: core.RoleSuperAdmin},
			allowed:   []core.Role{core.RoleAdmin},
			// Role sets are explicit: super-admin bypasses ownership,
			// not role gates.
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.allowed...)(okHandler(t, nil))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.principal != nil {
				ctx := context.WithValue(
					req.Context(),
					PrincipalKey,
					tt.principal,
				)
				req = req.WithContext(ctx)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireCatalogManager(t *testing.T) {
	for _, tt := range []struct {
		role       core.Role
		wantStatus int
	}{
		{core.RoleCustomer, http.StatusForbidden},
		{core.RoleAdmin, http.StatusOK},
		{core.RoleSuperAdmin, http.StatusOK},
	} {
		handler := RequireCatalogManager(okHandler(t, nil))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := context.WithValue(
			req.Context(),
			PrincipalKey,
			&Principal{ID: "u1", Role: tt.role},
		)
		req = req.WithContext(ctx)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("role %s: status = %d, want %d", tt.role, rec.Code, tt.wantStatus)
		}
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
		{"Bearer  spaced ", "spaced"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if got := ExtractToken(req); got != tt.want {
			t.Errorf("ExtractToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
