package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/config"
	"github.com/baditaflorin/formalized/internal/httpapi"
	"github.com/baditaflorin/formalized/internal/ports"
	"github.com/baditaflorin/formalized/internal/strategy"
	"github.com/baditaflorin/formalized/internal/warmup"
	"github.com/valyala/fasthttp"
)

func main() {
	// Parse command-line flags; non-zero values override the config file
	configPath := flag.String("config", "formalized.yaml", "Config file path (YAML or TOML)")
	port := flag.Int("port", 0, "HTTP server port")
	concurrency := flag.Int("concurrency", -1, "Maximum number of concurrent requests (0 = fasthttp default)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *concurrency >= 0 {
		cfg.Server.Concurrency = *concurrency
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	cfg.Server.WarmUp = cfg.Server.WarmUp && *warmUp

	// Set up logger
	log, err := logger.New(logger.Options{
		Backend: cfg.Logging.Backend,
		JSON:    true,
		File:    cfg.Logging.File,
		Debug:   cfg.Logging.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, log); err != nil {
		log.Error("Server error", "error", err)
		log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log ports.Logger) error {
	readTimeout, err := cfg.ServerReadTimeout()
	if err != nil {
		return err
	}
	writeTimeout, err := cfg.ServerWriteTimeout()
	if err != nil {
		return err
	}

	log.Info("Starting formalized HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", readTimeout,
		"write_timeout", writeTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"strategy", cfg.Strategy,
	)

	handler, err := newHandler(cfg, log)
	if err != nil {
		return err
	}
	handler.SetTimeout(writeTimeout)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               handler.Handle,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // handler logs every request
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		return err
	}

	<-idleConnsClosed
	log.Info("Server stopped")
	return nil
}

// newHandler registers the rule engine and, when it can be built, the remote
// strategy. Only the rule engine is warmed up.
func newHandler(cfg *config.Config, log ports.Logger) (*httpapi.Handler, error) {
	ctx := context.Background()

	engine, err := strategy.NewRuleBased(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rule engine: %w", err)
	}
	strategies := []ports.Formalizer{engine}

	factory := strategy.NewFactory(log)
	remoteModel, err := factory.New(ctx, config.StrategyRemote, cfg)
	switch {
	case err == nil:
		strategies = append(strategies, remoteModel)
	case cfg.Strategy == config.StrategyRemote:
		return nil, err
	default:
		log.Warn("Remote strategy disabled", "error", err)
	}

	if cfg.Server.WarmUp {
		manager := warmup.NewManager(log, warmup.DefaultWarmupConfig())
		manager.RegisterFormalizer(engine)
		manager.WarmUp(ctx)
	}

	log.Info("Strategies initialized successfully",
		"strategies", len(strategies),
		"warm_up", cfg.Server.WarmUp,
		"cpus", runtime.NumCPU(),
	)
	return httpapi.NewHandler(log, engine.Rules(), cfg.Strategy, strategies...)
}
