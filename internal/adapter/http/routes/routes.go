package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/alexVinter/fire-dynamics1/docs" // This will be auto-generated
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/handlers"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/middleware"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/persistence/repository"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/database"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/events"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/export"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/logger"
	"github.com/alexVinter/fire-dynamics1/internal/infrastructure/metrics"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// Handlers groups what the router serves.
type Handlers struct {
	Quotes  *handlers.QuoteHandler
	Rules   *handlers.RuleHandler
	Metrics http.Handler
}

// Run will start the server
func Run() {
	_, flush := logger.New()
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		zap.L().Fatal("[startup] failed to create dynamodb client", zap.Error(err))
	}

	publisher, closePublisher := events.NewPublisherFromEnv()
	defer func() {
		if err := closePublisher(); err != nil {
			zap.L().Warn("[startup] failed to close event publisher", zap.Error(err))
		}
	}()
	registry := metrics.NewRegistry()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	ruleRepo := repository.NewRuleDynamoRepository(ddb)
	refRepo := repository.NewReferenceDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, ruleRepo, refRepo, publisher, export.NewXLSXExporter(), registry)
	ruleUseCase := usecase.NewRuleUseCase(ruleRepo, refRepo)

	router := NewRouter(Handlers{
		Quotes:  handlers.NewQuoteHandler(quoteUseCase),
		Rules:   handlers.NewRuleHandler(ruleUseCase),
		Metrics: registry.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", defaultPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zap.L().Info("[startup] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("[startup] failed to start the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("[shutdown] server did not stop cleanly", zap.Error(err))
	}
	zap.L().Info("[shutdown] stopped")
}

// NewRouter builds the gin engine. Everything under /v1 except ping requires
// the gateway identity headers.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Actor())
	addQuoteRoutes(authed, h.Quotes)
	addRuleRoutes(authed, h.Rules)
	return router
}
