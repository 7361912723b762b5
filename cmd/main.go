package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	api "github.com/beingresonated/referral/internal/api"
	config "github.com/beingresonated/referral/internal/config"
	db "github.com/beingresonated/referral/internal/db"
	"github.com/beingresonated/referral/internal/external/brevo"
	"github.com/beingresonated/referral/internal/external/huggingface"
	otel "github.com/beingresonated/referral/observability/otel"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found:", err)
	}

	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// tracing
	ctx := context.Background()
	if cfg.OTLPEndpoint != "" {
		shutdown := otel.InitTracer(ctx, cfg.OTLPEndpoint)
		defer shutdown()
	}

	// database
	store, err := db.NewStore(cfg.MongoURI, cfg.DBName)
	if err != nil {
		panic(err)
	}

	// cache
	cache, err := db.NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd)
	if err != nil {
		panic(err)
	}

	// external
	textgen := huggingface.NewClient(cfg.HuggingFaceKey)
	mailer := brevo.NewClient(cfg.BrevoKey, cfg.EmailSender, cfg.EmailSenderName)

	// api handlers
	r := api.NewHandler(store.Campaigns(), store.Referrals(), store.Users(), cache, textgen, mailer, cfg.AppURL, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "http"),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if err := store.Close(timeout); err != nil {
		logger.Error("mongo disconnect error", zap.Error(err))
	}
}
