package configs

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "dev" {
		t.Fatalf("expected default secret, got %q", cfg.JWTSecret)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected empty redis addr, got %q", cfg.RedisAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=interviews")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SUPER_ADMIN_USERNAME", "root")
	t.Setenv("SUPER_ADMIN_EMAIL", "root@example.com")
	t.Setenv("SUPER_ADMIN_PASSWORD", "changeme")

	cfg := Load()
	if cfg.Port != "9090" || cfg.JWTSecret != "prod-secret" || cfg.RedisAddr != "redis:6379" {
		t.Fatalf("environment not honored: %+v", cfg)
	}
	if cfg.SuperAdminUsername != "root" || cfg.SuperAdminEmail != "root@example.com" || cfg.SuperAdminPassword != "changeme" {
		t.Fatalf("super admin settings not honored: %+v", cfg)
	}
}
