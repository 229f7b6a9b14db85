package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	triageUsecases "triagedesk/internal/application/triage/usecases"
	userUsecases "triagedesk/internal/application/user/usecases"
	"triagedesk/internal/infrastructure/ai"
	"triagedesk/internal/infrastructure/auth"
	"triagedesk/internal/infrastructure/config"
	"triagedesk/internal/infrastructure/notify"
	"triagedesk/internal/infrastructure/ratelimit"
	"triagedesk/internal/infrastructure/repository"
	"triagedesk/internal/infrastructure/services"
	"triagedesk/internal/interfaces/http/handlers"
	"triagedesk/internal/interfaces/http/middleware"
	"triagedesk/internal/shared/db"
	"triagedesk/internal/shared/logger"
)

// Container wires infrastructure, use cases and handlers together and owns
// the gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	authMiddleware *middleware.AuthMiddleware

	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	triageHandler  *handlers.TriageHandler
	caseHandler    *handlers.CaseHandler
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	// Redis backs the submission rate limiter. The limiter degrades to
	// allow-all when the connection is down, so a failed ping is not fatal.
	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	caseRepo := repository.NewCaseRepository(database)
	outputRepo := repository.NewAIOutputRepository(database)
	userRepo := repository.NewUserRepository(database)

	aiClient, err := ai.NewGeminiClient(ctx, &cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	classifier := ai.NewGeminiClassifier(aiClient, &cfg.AI, log.Named("classifier"))
	transcriber := ai.NewGeminiTranscriber(aiClient, &cfg.AI, log.Named("transcriber"))

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	numberGen := services.NewCaseNumberGenerator(database)
	txManager := db.NewTransactionManager(database)
	notifier := notify.NewEmergencyNotifier(&cfg.Notify, log.Named("notify"))

	var limiter ratelimit.RateLimiter
	limits := ratelimit.SubmissionLimits{}
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
		limits = ratelimit.SubmissionLimits{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
		}
	}

	submitUC := triageUsecases.NewSubmitTriageUseCase(
		caseRepo,
		outputRepo,
		classifier,
		numberGen,
		txManager,
		notifier,
		limiter,
		limits,
		log.Named("submit_triage"),
	)
	transcribeUC := triageUsecases.NewTranscribeAudioUseCase(transcriber, log.Named("transcribe"))
	getCaseUC := triageUsecases.NewGetCaseUseCase(caseRepo, outputRepo, log.Named("get_case"))
	listCasesUC := triageUsecases.NewListCasesUseCase(caseRepo, log.Named("list_cases"))
	updateCaseUC := triageUsecases.NewUpdateCaseUseCase(caseRepo, log.Named("update_case"))

	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, log.Named("register"))
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log.Named("login"))
	getProfileUC := userUsecases.NewGetProfileUseCase(userRepo, log.Named("get_profile"))
	updateProfileUC := userUsecases.NewUpdateProfileUseCase(userRepo, log.Named("update_profile"))

	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	c.authHandler = handlers.NewAuthHandler(registerUC, loginUC)
	c.profileHandler = handlers.NewProfileHandler(getProfileUC, updateProfileUC)
	c.triageHandler = handlers.NewTriageHandler(submitUC, transcribeUC)
	c.caseHandler = handlers.NewCaseHandler(getCaseUC, listCasesUC, updateCaseUC)

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown closes connections owned by the container.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
