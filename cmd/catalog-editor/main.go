package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/api/handlers"
	"github.com/aaravmahajanofficial/catalog-editor/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-editor/internal/cache"
	"github.com/aaravmahajanofficial/catalog-editor/internal/config"
	"github.com/aaravmahajanofficial/catalog-editor/internal/health"
	"github.com/aaravmahajanofficial/catalog-editor/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-editor/internal/ratelimit"
	service "github.com/aaravmahajanofficial/catalog-editor/internal/services"
	"github.com/aaravmahajanofficial/catalog-editor/internal/telemetry"
	"github.com/aaravmahajanofficial/catalog-editor/pkg/catalog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogClient, err := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	if err != nil {
		slog.Error("❌ Error creating catalog client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := redisCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	boardService := service.NewBoardService(catalogClient, redisCache, logger)
	editorService := service.NewEditorService(catalogClient, boardService, logger)
	productHandler := handlers.NewProductHandler(boardService)
	editorHandler := handlers.NewEditorHandler(editorService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	submitLimit := middleware.RateLimit(ratelimit.NewRedisLimiter(redisClient, cfg.RateConfig))

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Catalog: catalogClient})
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("services initialized", slog.String("env", cfg.Env), slog.String("catalog", cfg.Catalog.BaseURL))

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/editor/sessions", authMiddleware.Authenticate(editorHandler.OpenSession()))
	routerMux.HandleFunc("GET /api/v1/editor/sessions/{id}", authMiddleware.Authenticate(editorHandler.GetSession()))
	routerMux.HandleFunc("PUT /api/v1/editor/sessions/{id}", authMiddleware.Authenticate(editorHandler.ReopenSession()))
	routerMux.HandleFunc("DELETE /api/v1/editor/sessions/{id}", authMiddleware.Authenticate(editorHandler.DiscardSession()))
	routerMux.HandleFunc("PATCH /api/v1/editor/sessions/{id}/values", authMiddleware.Authenticate(editorHandler.ChangeValues()))
	routerMux.HandleFunc("POST /api/v1/editor/sessions/{id}/submit", authMiddleware.Authenticate(submitLimit(editorHandler.Submit())))
	routerMux.HandleFunc("POST /api/v1/editor/sessions/{id}/close", authMiddleware.Authenticate(editorHandler.CloseSession()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, cfg.Telemetry.ServiceName)

	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	editorService.Shutdown()

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
