package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "autonovo-test", ExpirationMinutes: 60}
}

func signToken(t *testing.T, cfg config.JWTConfig, subject, role string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func captureHandler(seenUser, seenRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seenUser = UserIDFromContext(r.Context())
		*seenRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	logg := logger.New(logger.Options{ServiceName: "auth-test"})
	userID := uuid.NewString()

	var seenUser, seenRole string
	handler := Auth(cfg, logg)(captureHandler(&seenUser, &seenRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, userID, "seller", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seenUser != userID || seenRole != "seller" {
		t.Fatalf("claims not seeded: user=%q role=%q", seenUser, seenRole)
	}
}

func TestAuth_RejectsMissingAndBadTokens(t *testing.T) {
	cfg := testJWTConfig()
	logg := logger.New(logger.Options{ServiceName: "auth-test"})
	handler := Auth(cfg, logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))

	cases := map[string]string{
		"missing": "",
		"garbage": "Bearer not-a-jwt",
		"expired": "Bearer " + signToken(t, cfg, uuid.NewString(), "seller", -time.Hour),
		"wrong issuer": "Bearer " + func() string {
			other := cfg
			other.Issuer = "someone-else"
			return signToken(t, other, uuid.NewString(), "seller", time.Hour)
		}(),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	cfg := testJWTConfig()
	logg := logger.New(logger.Options{ServiceName: "auth-test"})

	var seenUser, seenRole string
	handler := OptionalAuth(cfg, logg)(captureHandler(&seenUser, &seenRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seenUser != "" {
		t.Fatalf("anonymous request must not carry a user id")
	}
}

func TestOptionalAuth_BadTokenDegradesToAnonymous(t *testing.T) {
	cfg := testJWTConfig()
	logg := logger.New(logger.Options{ServiceName: "auth-test"})

	var seenUser, seenRole string
	handler := OptionalAuth(cfg, logg)(captureHandler(&seenUser, &seenRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer junk")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || seenUser != "" {
		t.Fatalf("bad optional token must degrade, got %d user=%q", rec.Code, seenUser)
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := testJWTConfig()
	logg := logger.New(logger.Options{ServiceName: "auth-test"})

	var seenUser, seenRole string
	handler := Auth(cfg, logg)(RequireAdmin(logg)(captureHandler(&seenUser, &seenRole)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, uuid.NewString(), "seller", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin role must get 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, uuid.NewString(), "admin", time.Hour))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin role must pass, got %d", rec.Code)
	}
	if seenRole != "admin" {
		t.Fatalf("role not seeded, got %q", seenRole)
	}
}
