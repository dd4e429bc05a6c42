package seeds

import (
	"testing"

	"talenthub/interview/internal/configs"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/testhelpers"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureSuperAdmin(t *testing.T) {
	t.Run("skips when unconfigured", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		repo := &repositories.UserRepository{DB: db}

		if err := EnsureSuperAdmin(repo, &configs.Config{}, zap.NewNop()); err != nil {
			t.Fatalf("EnsureSuperAdmin failed: %v", err)
		}
		users, _ := repo.ListUsers("")
		if len(users) != 0 {
			t.Fatalf("expected no users, got %d", len(users))
		}
	})

	cfg := &configs.Config{
		SuperAdminUsername: "root",
		SuperAdminEmail:    "root@example.com",
		SuperAdminPassword: "changeme",
	}

	t.Run("creates the admin once", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		repo := &repositories.UserRepository{DB: db}

		if err := EnsureSuperAdmin(repo, cfg, zap.NewNop()); err != nil {
			t.Fatalf("EnsureSuperAdmin failed: %v", err)
		}
		admin, err := repo.GetUserByUsername("root")
		if err != nil {
			t.Fatalf("admin not created: %v", err)
		}
		if admin.Role != models.RoleAdmin {
			t.Fatalf("expected admin role, got %q", admin.Role)
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme")) != nil {
			t.Fatal("password hash does not match")
		}

		// A second run is a no-op, not a duplicate.
		if err := EnsureSuperAdmin(repo, cfg, zap.NewNop()); err != nil {
			t.Fatalf("second EnsureSuperAdmin failed: %v", err)
		}
		users, _ := repo.ListUsers(models.RoleAdmin)
		if len(users) != 1 {
			t.Fatalf("expected exactly one admin, got %d", len(users))
		}
	})
}
