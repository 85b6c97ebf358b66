package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "dubiqo_quotes/docs"
	"dubiqo_quotes/internal/adapter/http/handlers"
	"dubiqo_quotes/internal/adapter/persistence/repository"
	"dubiqo_quotes/internal/infrastructure/config"
	"dubiqo_quotes/internal/infrastructure/database"
	"dubiqo_quotes/internal/infrastructure/lock"
	"dubiqo_quotes/internal/infrastructure/logger"
	"dubiqo_quotes/internal/infrastructure/notifications"
	"dubiqo_quotes/internal/usecase"
	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the handlers mounted by NewRouter.
type Dependencies struct {
	Quotes  *handlers.QuoteHandler
	Catalog *handlers.CatalogHandler
	Log     logger.Logger
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)

	deps, cleanup, err := buildDependencies(context.Background(), cfg, appLog)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}
	defer cleanup()

	router := NewRouter(deps)
	appLog.Info("[quote][http] listening", map[string]interface{}{"port": cfg.HTTP.Port})
	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.NewNoOpLogger()
	}
	router := gin.New()
	setMiddlewares(router, deps.Log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, deps.Quotes, deps.Catalog)
	return router
}

func buildDependencies(ctx context.Context, cfg *config.Config, appLog logger.Logger) (Dependencies, func(), error) {
	cleanup := func() {}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS, cfg.DynamoDB.Endpoint)
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("aws config: %w", err)
	}

	repo := repository.NewQuoteRequestDynamoRepository(database.NewDynamoDBClient(awsCfg), cfg.DynamoDB.QuoteRequestsTable)
	if cfg.DynamoDB.Endpoint != "" {
		// local DynamoDB starts empty
		tableCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := repo.EnsureTable(tableCtx)
		cancel()
		if err != nil {
			appLog.Warn("[quote][dynamodb] ensure table failed", map[string]interface{}{
				"table": cfg.DynamoDB.QuoteRequestsTable,
				"error": err.Error(),
			})
		}
	}

	var submissionLock interfaces.ISubmissionLock
	if cfg.UseRedis() {
		client, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		cleanup = func() { _ = client.Close() }
		submissionLock = lock.NewRedisSubmissionLock(client)
	} else {
		appLog.Info("[quote][lock] redis not configured, using in-process lock", nil)
		submissionLock = lock.NewMemorySubmissionLock()
	}

	notifier, err := notifications.New(cfg.Notifier, awsCfg, appLog)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}
	appLog.Info("[quote][notifier] configured", map[string]interface{}{"notifier": notifier.Name()})

	uc := usecase.NewQuoteUseCase(repo, notifier, submissionLock, appLog, cfg.Lock.TTL)
	return Dependencies{
		Quotes:  handlers.NewQuoteHandler(uc),
		Catalog: handlers.NewCatalogHandler(),
		Log:     appLog,
	}, cleanup, nil
}

func setMiddlewares(router *gin.Engine, appLog logger.Logger) {
	router.Use(requestLogger(appLog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("[quote][http] recovered from panic", map[string]interface{}{"panic": fmt.Sprint(recovered)})
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(appLog logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		appLog.Debug("[quote][http] request", map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
