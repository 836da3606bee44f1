package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/config"
	dbRedis "github.com/threadress/stylerank/internal/db/redis"
	"github.com/threadress/stylerank/internal/domain"
	logpkg "github.com/threadress/stylerank/internal/logger"
	"github.com/threadress/stylerank/internal/metrics"
	"github.com/threadress/stylerank/internal/repository/catalog"
	"github.com/threadress/stylerank/internal/repository/embcache"
	chiTransport "github.com/threadress/stylerank/internal/transport/chi"
	"github.com/threadress/stylerank/internal/transport/clip"
	"github.com/threadress/stylerank/internal/transport/hf"
	openaiEmb "github.com/threadress/stylerank/internal/transport/openai"
	"github.com/threadress/stylerank/internal/usecase/embedding"
	healthuc "github.com/threadress/stylerank/internal/usecase/health"
	"github.com/threadress/stylerank/internal/usecase/rerank"
	searchuc "github.com/threadress/stylerank/internal/usecase/search"
	"github.com/threadress/stylerank/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting stylerank API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create catalog store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}
	logger.Info("Connected to catalog store")

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterSearchMetrics()

	// Build the embedding provider chain
	embCfg := &embedding.Config{
		BatchConcurrency: cfg.Embedding.BatchConcurrency,
		ImageBatchDelay:  time.Duration(cfg.Embedding.ImageBatchDelayMS) * time.Millisecond,
		Logger:           logger,
	}

	// Leave chain slots nil when unconfigured. Assigning a typed nil
	// pointer would make the interface non-nil and break the fallback.
	if cfg.FastPathEnabled(env) {
		embCfg.Fast = clip.NewClient(&clip.Config{
			BaseURL:        cfg.Embedding.CLIP.BaseURL,
			HealthTimeout:  time.Duration(cfg.Embedding.CLIP.HealthTimeoutMS) * time.Millisecond,
			RequestTimeout: time.Duration(cfg.Embedding.CLIP.RequestTimeoutSec) * time.Second,
			Logger:         logger,
		})
		logger.Info("CLIP fast path enabled", zap.String("base_url", cfg.Embedding.CLIP.BaseURL))
	}

	if cfg.Embedding.OpenAI.APIKey != "" {
		base := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.OpenAI.APIKey,
			BaseURL:    cfg.Embedding.OpenAI.BaseURL,
			Model:      cfg.Embedding.OpenAI.Model,
			Dimensions: cfg.Embedding.OpenAI.Dimensions,
			Logger:     logger,
		})
		embCfg.HostedText = embcache.New(
			base, store,
			time.Duration(cfg.Embedding.CacheTTLSec)*time.Second,
			metrics.EmbeddingCacheTotal, logger,
		)
	}

	if cfg.Embedding.HF.BaseURL != "" {
		hfClient := hf.NewClient(&hf.Config{
			BaseURL:    cfg.Embedding.HF.BaseURL,
			Token:      cfg.Embedding.HF.Token,
			TextModel:  cfg.Embedding.HF.TextModel,
			ImageModel: cfg.Embedding.HF.ImageModel,
			Logger:     logger,
		})
		embCfg.HostedExtra = hfClient
		embCfg.HostedImage = hfClient
	}

	provider := embedding.NewProvider(embCfg)

	// Shared scoring pool for the reranker
	pool, err := ants.NewPool(cfg.Search.RerankWorkers)
	if err != nil {
		logger.Fatal("Failed to create rerank worker pool", zap.Error(err))
	}
	defer pool.Release()

	reranker := rerank.NewService(pool, rerank.Weights{
		Keyword:    cfg.Search.SignalWeights.Keyword,
		Attribute:  cfg.Search.SignalWeights.Attribute,
		Price:      cfg.Search.SignalWeights.Price,
		Season:     cfg.Search.SignalWeights.Season,
		Brand:      cfg.Search.SignalWeights.Brand,
		Popularity: cfg.Search.SignalWeights.Popularity,
	}, cfg.Search.PreferredBrands, logger)

	catalogRepo := catalog.NewRepository(store, cfg.Catalog.IndexName, cfg.Catalog.KeyPrefix)

	searchSvc := searchuc.NewService(&searchuc.Config{
		Embedder:  provider,
		Retriever: catalogRepo,
		Reranker:  reranker,
		DefaultK:  cfg.Catalog.DefaultK,
		MaxK:      cfg.Catalog.MaxK,
		Weights: domain.Weights{
			Text:  cfg.Search.TextWeight,
			Image: cfg.Search.ImageWeight,
			Vibe:  cfg.Search.VibeWeight,
		},
		Logger: logger,
	})

	healthSvc := healthuc.New(store, provider)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
