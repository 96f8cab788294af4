package api

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
)

// SeedInitialAdmin creates a single admin account when the database has no
// users yet. It is a no-op when users already exist, so it is safe to call on
// every startup.
//
// The credentials are taken from cfg.InitialAdminEmail /
// cfg.InitialAdminPassword. If InitialAdminPassword is empty the function logs
// a warning and skips seeding — the operator must set INITIAL_ADMIN_PASSWORD.
func SeedInitialAdmin(ctx context.Context, db *ent.Client, cfg config.Config) {
	count, err := db.User.Query().Count(ctx)
	if err != nil {
		slog.Error("seed: failed to count users", "error", err)
		return
	}
	if count > 0 {
		// Users already exist; nothing to do.
		return
	}

	if cfg.InitialAdminPassword == "" {
		slog.Warn("seed: no users found but INITIAL_ADMIN_PASSWORD is not set — skipping admin seeding. " +
			"Set INITIAL_ADMIN_PASSWORD to auto-create the first admin on startup.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdminPassword), handler.BcryptCost)
	if err != nil {
		slog.Error("seed: failed to hash initial admin password", "error", err)
		return
	}

	_, err = db.User.Create().
		SetEmail(cfg.InitialAdminEmail).
		SetDisplayName("Administrator").
		SetHashedPassword(string(hash)).
		SetIsAdmin(true).
		Save(ctx)
	if err != nil {
		slog.Error("seed: failed to create initial admin user", "error", err)
		return
	}

	slog.Info("seed: created initial admin user", "email", cfg.InitialAdminEmail)
}
