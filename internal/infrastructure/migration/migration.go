// Package migration runs schema migrations. Development environments use
// GORM AutoMigrate; production uses versioned golang-migrate scripts.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"triagedesk/internal/infrastructure/persistence/models"
	"triagedesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model managed by AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CaseModel{},
		&models.AIOutputModel{},
	}
}

// Manager executes the migration strategy chosen for the environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "release", "production":
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(migrateModels),
	)

	if err := m.strategy.Migrate(db, migrateModels...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName(),
	)

	return nil
}
