package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"MarketWarRoom/internal/cache"
	"MarketWarRoom/internal/collector"
	"MarketWarRoom/internal/config"
	"MarketWarRoom/internal/dashboard"
	"MarketWarRoom/internal/metrics"
	"MarketWarRoom/internal/scheduler"
	"MarketWarRoom/internal/server"
	"MarketWarRoom/internal/translate"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketWarRoom starting...")

	// .env is optional; real env always wins.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("USE_MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{BasePrice: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init translator
	var translator translate.Translator
	if cfg.Translate.Enabled {
		translator = translate.NewGoogleTranslator(cfg.Translate.TargetLang, cfg.Proxy)
	} else {
		translator = translate.NoopTranslator{}
	}

	// Init cache
	var c cache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
			c = cache.NewNoopCache()
		} else {
			c = sc
			defer sc.Close()
		}
	} else {
		c = cache.NewNoopCache()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init assembler
	asm := dashboard.NewAssembler(fetcher, translator, c, cfg)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, asm)
	if err := sched.Register(cfg.Schedule.SectorRefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: warm the sector cache on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, warming sector cache now")
		go sched.RunNow()
	}

	// Metrics endpoint
	var metricsSrv *http.Server
	if cfg.Server.MetricsAddr != "" {
		metricsSrv = metrics.Serve(cfg.Server.MetricsAddr)
		log.Printf("[INFO] metrics listening on %s", cfg.Server.MetricsAddr)
	}

	// HTTP API
	srv := server.NewServer(cfg.Server.Port, asm, cfg.Symbols)
	go func() {
		log.Printf("[INFO] api listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] api server: %v", err)
		}
	}()

	log.Println("[INFO] MarketWarRoom is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] api shutdown: %v", err)
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] metrics shutdown: %v", err)
		}
	}
	log.Println("[INFO] MarketWarRoom stopped")
}
