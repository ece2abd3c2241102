package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"loan-engine/config"
	"loan-engine/domain"
	httpLayer "loan-engine/http"
	"loan-engine/observability"
	"loan-engine/repository"
	"loan-engine/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "loan-engine",
	Short: "Loan eligibility and amortization engine",
	Long: `loan-engine computes monthly payments, debt-to-income ratios,
maximum eligible loan amounts and a composite eligibility score from a set
of loan and borrower parameters. It runs either as an HTTP service (serve)
or as a one-shot evaluator (evaluate).`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate loan parameters from a JSON file or stdin",
	RunE:  runEvaluate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to TOML config file")
	evaluateCmd.Flags().StringP("input", "i", "-", "JSON file with loan parameters ('-' for stdin)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evaluateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	var cache repository.CacheRepository
	if cfg.Cache.Enabled {
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.CacheTTL())
		defer redisCache.Close()
		cache = redisCache
		logger.Info("memoization cache enabled", "redis_addr", cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	repo := repository.NewEvaluationRepositoryMemory()
	eligibilityService := service.NewEligibilityService(repo, cache, logger)
	loanService := service.NewLoanService(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewServer(eligibilityService, loanService, rateLimiter, logger).Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		logger.Info("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server exited")
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")

	var raw []byte
	var err error
	if inputPath == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var params domain.LoanParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return fmt.Errorf("parse loan parameters: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{Level: "warn", Format: "text"})
	engine := service.NewEligibilityService(
		repository.NewEvaluationRepositoryMemory(), nil, logger,
	)

	result, err := engine.Evaluate(params)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
