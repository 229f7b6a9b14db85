package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"triagedesk/internal/shared/logger"
)

// Strategy applies schema changes to the database.
type Strategy interface {
	Migrate(db *gorm.DB, migrateModels ...interface{}) error
	GetName() string
}

// GormAutoMigrateStrategy lets GORM derive the schema from the models.
// Convenient for development; it never drops columns or data.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	for _, model := range migrateModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto migrate %T: %w", model, err)
		}
		s.logger.Debugw("auto migrated model", "model", fmt.Sprintf("%T", model))
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm-automigrate"
}

// GolangMigrateStrategy runs versioned SQL scripts with golang-migrate.
type GolangMigrateStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGolangMigrateStrategy(scriptsPath string) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) newMigrate(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("create mysql migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", s.scriptsPath),
		"mysql",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return m, nil
}

func (s *GolangMigrateStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	m, err := s.newMigrate(db)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty migration state at version %d, resolve manually before retrying", version)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.logger.Infow("schema already up to date", "version", version)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	newVersion, _, _ := m.Version()
	s.logger.Infow("migrations applied", "from_version", version, "to_version", newVersion)

	return nil
}

// MigrateDown rolls back the given number of migrations.
func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, err := s.newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.logger.Infow("nothing to roll back")
			return nil
		}
		return fmt.Errorf("roll back migrations: %w", err)
	}

	version, _, _ := m.Version()
	s.logger.Infow("migrations rolled back", "steps", steps, "version", version)

	return nil
}

// GetVersion reports the current schema version and dirty flag. A version of
// zero means no migration has been applied yet.
func (s *GolangMigrateStrategy) GetVersion(db *gorm.DB) (uint, bool, error) {
	m, err := s.newMigrate(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}

	return version, dirty, nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return "golang-migrate"
}
