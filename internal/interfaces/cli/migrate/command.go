package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"triagedesk/internal/infrastructure/config"
	"triagedesk/internal/infrastructure/database"
	"triagedesk/internal/infrastructure/migration"
	"triagedesk/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply database migrations outside of the server process.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending versioned migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE:  runStatus,
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync the schema from the models with GORM AutoMigrate",
		RunE:  runAuto,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func scriptsStrategy() (*migration.GolangMigrateStrategy, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	return migration.NewGolangMigrateStrategy(scriptsPath), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptsStrategy()
	if err != nil {
		return err
	}

	log.Infow("running migrations", "environment", env)

	manager := migration.NewManagerWithStrategy(strategy)
	if err := manager.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptsStrategy()
	if err != nil {
		return err
	}

	log.Infow("rolling back migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("rollback failed", "error", err)
		return err
	}

	log.Infow("rollback completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptsStrategy()
	if err != nil {
		return err
	}

	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}

	fmt.Printf("Environment:     %s\n", env)
	fmt.Printf("Current version: %d\n", version)
	fmt.Printf("Dirty:           %t\n", dirty)
	return nil
}

func runAuto(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running auto-migration", "environment", env)

	manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		log.Errorw("auto-migration failed", "error", err)
		return err
	}

	log.Infow("auto-migration completed successfully")
	return nil
}
