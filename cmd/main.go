package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mateusmacedo/go-eventing/internal/config"
	"github.com/mateusmacedo/go-eventing/internal/content"
	infrastructure "github.com/mateusmacedo/go-eventing/internal/content/infrastructure"
	pkgApp "github.com/mateusmacedo/go-eventing/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-eventing/pkg/infrastructure"
	redisAdapter "github.com/mateusmacedo/go-eventing/pkg/infrastructure/redis/adapter"
	zapAdapter "github.com/mateusmacedo/go-eventing/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	idGenerator := func() string {
		return uuid.New().String()
	}

	// Declaração explícita dos tipos de evento e de quem supera quem. O Build
	// valida o grafo inteiro antes do serviço aceitar requisições.
	gb := pkgDomain.NewGraphBuilder()
	content.RegisterEventTypes(gb)

	graph, err := gb.Build()
	if err != nil {
		appLogger.Error(context.Background(), "Grafo de supersessão inválido", map[string]interface{}{
			"error": err,
		})
		panic(err)
	}

	registry := pkgInfra.NewInMemoryHandlerRegistry()

	var dispatcher pkgApp.NotificationDispatcher
	if cfg.ConcurrentDispatch {
		dispatcher = pkgInfra.NewConcurrentDispatcher(registry, appLogger)
	} else {
		dispatcher = pkgInfra.NewSequentialDispatcher(registry, appLogger)
	}

	uowFactory := pkgInfra.NewUnitOfWorkFactory(pkgDomain.NewResolver(graph), dispatcher, appLogger)

	// Inicializa o repositório GORM
	documentRepo, err := infrastructure.NewGormDocumentRepository(cfg.DatabaseDSN, appLogger)
	if err != nil {
		appLogger.Error(context.Background(), "Erro ao inicializar o repositório", map[string]interface{}{
			"error": err,
		})
		panic(err)
	}

	redisClient := redisAdapter.NewRedisClient(cfg.RedisAddr)
	entityCache := redisAdapter.NewEntityCache(redisClient, "content", cfg.CacheTTL)
	searchIndex := infrastructure.NewInMemorySearchIndex()

	contentSlice := content.NewContentSlice(
		registry,
		uowFactory,
		idGenerator,
		appLogger,
		documentRepo,
		entityCache,
		searchIndex,
	)

	router := chi.NewRouter()

	contentSlice.RegisterRoutes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "Sinal capturado", map[string]interface{}{"signal": sig})
		cancel()
	}()

	// Servidor de métricas Prometheus em uma goroutine própria.
	go func() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, metricsMux); err != nil {
			appLogger.Error(ctx, "Servidor de métricas encerrado", map[string]interface{}{
				"error": err,
			})
		}
	}()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "Server starting on:"+cfg.HTTPAddr, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "Erro ao iniciar o servidor", map[string]interface{}{
				"error": err,
			})
		}
	}()

	<-ctx.Done()
	appLogger.Info(ctx, "Encerrando servidor...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "Erro ao encerrar servidor", map[string]interface{}{
			"error": err,
		})
	}

	if err := redisClient.Close(); err != nil {
		appLogger.Error(context.Background(), "Erro ao encerrar cliente redis", map[string]interface{}{
			"error": err,
		})
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
}
