package seeds

import (
	"talenthub/interview/internal/configs"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureSuperAdmin creates the configured admin account if it does not
// exist yet. Registration can never create admins, so this is the only
// way one comes into being.
func EnsureSuperAdmin(repo *repositories.UserRepository, cfg *configs.Config, logger *zap.Logger) error {
	if cfg.SuperAdminUsername == "" || cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		logger.Info("super admin not configured, skipping seed")
		return nil
	}

	if _, err := repo.GetUserByUsername(cfg.SuperAdminUsername); err == nil {
		return nil
	} else if err != repositories.ErrUserNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     cfg.SuperAdminUsername,
		Email:        cfg.SuperAdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := repo.CreateUser(admin); err != nil {
		return err
	}
	logger.Info("seeded super admin", zap.String("username", admin.Username))
	return nil
}
