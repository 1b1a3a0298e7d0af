package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/monetrix/monetrix-server/internal/facades"
	"github.com/monetrix/monetrix-server/internal/handlers"
	"github.com/monetrix/monetrix-server/internal/jwt"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/middlewares"
	"github.com/monetrix/monetrix-server/internal/repositories"
	"github.com/monetrix/monetrix-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	_ "github.com/monetrix/monetrix-server/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Monetrix API
// @version 1.0.0
// @description Personal finance service: accounts, transactions, budgets, goals and monthly dashboards
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds application, database, Redis, Kafka, gRPC, logging and JWT
// settings.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CacheTTLSecond    int

	KafkaBrokers    string
	KafkaEventTopic string
	KafkaReconTopic string

	ExchangerHost string
	ExchangerPort string

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns the
// application configuration with defaults applied.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	var cfg config
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "monetrix")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return cfg, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return cfg, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return cfg, err
	}
	if cfg.CacheTTLSecond, err = getEnvInt("CACHE_TTL_SECOND", "300"); err != nil {
		return cfg, err
	}

	// Kafka config
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.KafkaEventTopic = getEnv("KAFKA_EVENT_TOPIC", "transaction-events")
	cfg.KafkaReconTopic = getEnv("KAFKA_RECONCILIATION_TOPIC", "balance-reconciliation")

	// gRPC exchanger config
	cfg.ExchangerHost = getEnv("EXCHANGER_HOST", "localhost")
	cfg.ExchangerPort = getEnv("EXCHANGER_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", "3600"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, gRPC client and HTTP
// server. It wires repositories through services to handlers, applies
// middleware and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers: one topic for committed ledger mutations, one for
	// failed balance adjustments awaiting reconciliation.
	eventWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers),
		Topic:    cfg.KafkaEventTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer eventWriter.Close()
	reconWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers),
		Topic:    cfg.KafkaReconTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer reconWriter.Close()

	// Connect to the exchange-rate gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", cfg.ExchangerHost, cfg.ExchangerPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	cacheTTL := time.Duration(cfg.CacheTTLSecond) * time.Second
	txGetter := middlewares.GetTxFromContext

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, txGetter)
	transactionReadRepo := repositories.NewTransactionReadRepository(db)
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	categoryRepo := repositories.NewCategoryRepository(db, txGetter)
	budgetRepo := repositories.NewBudgetRepository(db, txGetter)
	goalRepo := repositories.NewGoalRepository(db, txGetter)
	reportRepo := repositories.NewReportReadRepository(db)
	auditWriteRepo := repositories.NewAuditWriteRepository(db)
	auditReadRepo := repositories.NewAuditReadRepository(db)
	summaryCacheRepo := repositories.NewSummaryCacheRepository(rdb, cacheTTL)
	rateCacheRepo := repositories.NewExchangeRateCacheRepository(rdb, cacheTTL)

	// Exchange-rate gRPC facade
	rateFacade := facades.NewExchangeRatesGRPCFacade(exchangeClient)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo)
	ledgerService := services.NewLedgerService(
		accountReadRepo,
		accountWriteRepo,
		transactionReadRepo,
		transactionWriteRepo,
		auditWriteRepo,
		summaryCacheRepo,
		eventWriter,
		reconWriter,
	)
	categoryService := services.NewCategoryService(categoryRepo)
	budgetService := services.NewBudgetService(budgetRepo)
	goalService := services.NewGoalService(goalRepo)
	dashboardService := services.NewDashboardService(reportRepo, userReadRepo, summaryCacheRepo, rateFacade, rateCacheRepo)
	reconciliationService := services.NewReconciliationService(reportRepo, accountReadRepo, auditWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes: reads only need the JWT check, mutating
		// routes additionally run inside one database transaction.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/accounts", handlers.NewListAccountsHandler(accountService, tokener))
			r.Get("/accounts/{id}", handlers.NewGetAccountHandler(accountService, tokener))
			r.Get("/transactions", handlers.NewListTransactionsHandler(ledgerService, tokener))
			r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(ledgerService, tokener))
			r.Get("/categories", handlers.NewListCategoriesHandler(categoryService, tokener))
			r.Get("/budgets", handlers.NewListBudgetsHandler(budgetService, tokener))
			r.Get("/goals", handlers.NewListGoalsHandler(goalService, tokener))
			r.Get("/dashboard", handlers.NewDashboardHandler(dashboardService, tokener))
			r.Get("/audit", handlers.NewAuditLogHandler(auditReadRepo, tokener))
			r.Post("/reconciliation", handlers.NewReconciliationHandler(reconciliationService, tokener))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				r.Post("/accounts", handlers.NewCreateAccountHandler(accountService, tokener))
				r.Put("/accounts/{id}", handlers.NewUpdateAccountHandler(accountService, tokener))
				r.Delete("/accounts/{id}", handlers.NewArchiveAccountHandler(accountService, tokener))
				r.Post("/transactions", handlers.NewCreateTransactionHandler(ledgerService, tokener))
				r.Put("/transactions/{id}", handlers.NewUpdateTransactionHandler(ledgerService, tokener))
				r.Delete("/transactions/{id}", handlers.NewDeleteTransactionHandler(ledgerService, tokener))
				r.Post("/categories", handlers.NewCreateCategoryHandler(categoryService, tokener))
				r.Delete("/categories/{id}", handlers.NewDeleteCategoryHandler(categoryService, tokener))
				r.Put("/budgets", handlers.NewSetBudgetHandler(budgetService, tokener))
				r.Delete("/budgets/{id}", handlers.NewDeleteBudgetHandler(budgetService, tokener))
				r.Post("/goals", handlers.NewCreateGoalHandler(goalService, tokener))
				r.Post("/goals/{id}/contribute", handlers.NewContributeHandler(goalService, tokener))
				r.Delete("/goals/{id}", handlers.NewDeleteGoalHandler(goalService, tokener))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
