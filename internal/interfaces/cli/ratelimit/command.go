// Package ratelimit provides support tooling for the submission rate
// limiter, such as clearing a patient's counters after a false positive.
package ratelimit

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"triagedesk/internal/infrastructure/config"
	infraRatelimit "triagedesk/internal/infrastructure/ratelimit"
	"triagedesk/internal/shared/logger"
)

var (
	env       string
	patientID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratelimit",
		Short: "Submission rate limiter tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newResetCommand())

	return cmd
}

func newResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a patient's submission counters",
		RunE:  runReset,
	}

	cmd.Flags().UintVarP(&patientID, "patient", "p", 0, "Patient ID whose counters to clear (required)")
	cmd.MarkFlagRequired("patient")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	limiter := infraRatelimit.NewRedisRateLimiter(client)

	key := fmt.Sprintf("triage:%d", patientID)
	if err := limiter.Reset(key); err != nil {
		log.Errorw("failed to reset rate limit", "patient_id", patientID, "error", err)
		return err
	}

	log.Infow("rate limit reset", "patient_id", patientID)
	return nil
}
