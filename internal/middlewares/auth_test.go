package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/testhelpers"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func makeToken(t *testing.T, userID uint) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newGuard(t *testing.T) (*Guard, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	return &Guard{Users: &repositories.UserRepository{DB: db}, JWTSecret: testSecret}, db
}

func seedGuardUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	user := &models.User{Username: "u-" + role, Email: role + "@example.com", PasswordHash: "x", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestGuardRequireRoles(t *testing.T) {
	echoIdentity := func(t *testing.T) (http.HandlerFunc, *Identity) {
		captured := &Identity{}
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				t.Fatal("identity missing from context")
			}
			*captured = identity
			w.WriteHeader(http.StatusOK)
		}, captured
	}

	t.Run("no token", func(t *testing.T) {
		guard, _ := newGuard(t)
		next, _ := echoIdentity(t)
		handler := guard.RequireRoles()(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		guard, _ := newGuard(t)
		next, _ := echoIdentity(t)
		handler := guard.RequireRoles()(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		guard, db := newGuard(t)
		user := seedGuardUser(t, db, models.RoleInterviewer)
		token := makeToken(t, user.ID)
		db.Unscoped().Delete(user)

		next, _ := echoIdentity(t)
		handler := guard.RequireRoles()(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		guard, db := newGuard(t)
		user := seedGuardUser(t, db, models.RoleInterviewee)

		next, _ := echoIdentity(t)
		handler := guard.RequireRoles(models.RoleInterviewer, models.RoleAdmin)(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, user.ID))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("role comes from the database, not the token", func(t *testing.T) {
		guard, db := newGuard(t)
		user := seedGuardUser(t, db, models.RoleInterviewee)
		token := makeToken(t, user.ID)

		// Promote the user after the token was issued.
		db.Model(user).Update("role", models.RoleInterviewer)

		next, captured := echoIdentity(t)
		handler := guard.RequireRoles(models.RoleInterviewer)(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.UserID != user.ID || captured.Role != models.RoleInterviewer {
			t.Fatalf("unexpected identity: %+v", captured)
		}
	})

	t.Run("empty role list admits any authenticated user", func(t *testing.T) {
		guard, db := newGuard(t)
		user := seedGuardUser(t, db, models.RoleInterviewee)

		next, captured := echoIdentity(t)
		handler := guard.RequireRoles()(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, user.ID))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured.UserID != user.ID {
			t.Fatalf("unexpected identity: %+v", captured)
		}
	})
}
