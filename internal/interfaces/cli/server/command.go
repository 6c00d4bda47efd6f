package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	assetUC "datadesk/internal/application/asset/usecases"
	authUC "datadesk/internal/application/auth/usecases"
	companyUC "datadesk/internal/application/company/usecases"
	datacenterUC "datadesk/internal/application/datacenter/usecases"
	reportUC "datadesk/internal/application/report/usecases"
	settingUC "datadesk/internal/application/setting/usecases"
	systemlogUC "datadesk/internal/application/systemlog/usecases"
	ticketUC "datadesk/internal/application/ticket/usecases"
	userUC "datadesk/internal/application/user/usecases"
	"datadesk/internal/domain/shared/events"
	"datadesk/internal/infrastructure/auth"
	"datadesk/internal/infrastructure/config"
	"datadesk/internal/infrastructure/database"
	"datadesk/internal/infrastructure/email"
	"datadesk/internal/infrastructure/migration"
	"datadesk/internal/infrastructure/notification"
	"datadesk/internal/infrastructure/ratelimit"
	"datadesk/internal/infrastructure/repository"
	httpRouter "datadesk/internal/interfaces/http"
	"datadesk/internal/interfaces/http/handlers"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/db"
	"datadesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the DataDesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production, this is not recommended")
		}
		manager := migration.NewManager(env, cfg.Migration.ScriptsPath)
		if err := manager.Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	dispatcher := events.NewInMemoryEventDispatcher(100, log)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()

	gormDB := database.Get()

	sequenceRepo := repository.NewSequenceRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB, sequenceRepo)
	historyRepo := repository.NewTicketHistoryRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB, sequenceRepo)
	branchRepo := repository.NewBranchRepository(gormDB, sequenceRepo)
	userRepo := repository.NewUserRepository(gormDB)
	assetRepo := repository.NewAssetRepository(gormDB, sequenceRepo)
	dataCenterRepo := repository.NewDataCenterLogRepository(gormDB, sequenceRepo)
	settingRepo := repository.NewSettingRepository(gormDB)
	systemLogRepo := repository.NewSystemLogRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	notifier := notification.NewNotifier(userRepo, branchRepo, settingRepo, emailService, log)
	if err := notifier.Register(dispatcher); err != nil {
		return fmt.Errorf("failed to register notification handlers: %w", err)
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		log.Warnw("redis is not configured, login rate limiting is disabled")
	}

	authHandler := handlers.NewAuthHandler(
		authUC.NewLoginUseCase(userRepo, companyRepo, systemLogRepo, hasher, jwtService, log),
		authUC.NewGetCurrentUserUseCase(userRepo, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, historyRepo, txManager, dispatcher, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, historyRepo, txManager, dispatcher, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, historyRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, log),
		ticketUC.NewTrackTicketsUseCase(ticketRepo, log),
		log,
	)

	companyHandler := handlers.NewCompanyHandler(
		companyUC.NewCreateCompanyUseCase(companyRepo, log),
		companyUC.NewUpdateCompanyUseCase(companyRepo, log),
		companyUC.NewGetCompanyUseCase(companyRepo, branchRepo, log),
		companyUC.NewListCompaniesUseCase(companyRepo, log),
		companyUC.NewDeleteCompanyUseCase(companyRepo, log),
		companyUC.NewCreateBranchUseCase(companyRepo, branchRepo, log),
		companyUC.NewUpdateBranchUseCase(branchRepo, log),
		companyUC.NewListBranchesUseCase(branchRepo, log),
		companyUC.NewDeleteBranchUseCase(branchRepo, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewCreateUserUseCase(userRepo, hasher, log),
		userUC.NewUpdateUserUseCase(userRepo, hasher, log),
		userUC.NewGetUserUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
		log,
	)

	assetHandler := handlers.NewAssetHandler(
		assetUC.NewCreateAssetUseCase(assetRepo, log),
		assetUC.NewUpdateAssetUseCase(assetRepo, log),
		assetUC.NewGetAssetUseCase(assetRepo, log),
		assetUC.NewListAssetsUseCase(assetRepo, log),
		assetUC.NewDeleteAssetUseCase(assetRepo, log),
		assetUC.NewSearchAssetUseCase(assetRepo, log),
		assetUC.NewManageAssetImagesUseCase(assetRepo, log),
		log,
	)

	dataCenterHandler := handlers.NewDataCenterHandler(
		datacenterUC.NewCreateLogUseCase(dataCenterRepo, log),
		datacenterUC.NewUpdateLogUseCase(dataCenterRepo, log),
		datacenterUC.NewRecordExitUseCase(dataCenterRepo, log),
		datacenterUC.NewGetLogUseCase(dataCenterRepo, log),
		datacenterUC.NewListLogsUseCase(dataCenterRepo, log),
		datacenterUC.NewDeleteLogUseCase(dataCenterRepo, log),
		log,
	)

	settingHandler := handlers.NewSettingHandler(settingUC.NewSettingsUseCase(settingRepo, log), log)
	systemLogHandler := handlers.NewSystemLogHandler(systemlogUC.NewListSystemLogsUseCase(systemLogRepo, log), log)
	reportHandler := handlers.NewReportHandler(reportUC.NewDashboardUseCase(reportRepo, log), log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	router := httpRouter.NewRouter(
		httpRouter.RouterConfig{
			Mode:           cfg.Server.Mode,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
		authHandler,
		ticketHandler,
		companyHandler,
		userHandler,
		assetHandler,
		dataCenterHandler,
		settingHandler,
		systemLogHandler,
		reportHandler,
		authMiddleware,
		limiter,
		log,
	)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
