package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/startino/reletino/pkg/cascade"
	"github.com/startino/reletino/pkg/config"
	"github.com/startino/reletino/pkg/domain"
	"github.com/startino/reletino/pkg/examples"
	"github.com/startino/reletino/pkg/feed"
	"github.com/startino/reletino/pkg/llm"
	"github.com/startino/reletino/pkg/profile"
	"github.com/startino/reletino/pkg/store"
	"github.com/startino/reletino/pkg/worker"
	"github.com/startino/reletino/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Examples.APIKey)
	lgr.Printf("[INFO] starting reletino version %s", revision)

	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			lgr.Printf("[WARN] store close error: %v", closeErr)
		}
	}()

	// one evaluation pipeline shared by all workers
	llmClient := llm.NewClient(cfg.LLM)
	junior := llm.NewEvaluator(llmClient, cfg.LLM, domain.TierJunior)
	senior := llm.NewEvaluator(llmClient, cfg.LLM, domain.TierSenior)

	var analyzer cascade.ProfileAnalyzer
	if cfg.Profile.Enabled {
		analyzer = profile.NewAnalyzer(llmClient, cfg.Profile, st, cfg.Stream.BaseURL, cfg.Stream.UserAgent)
	}
	exampleSource := examples.New(cfg.Examples)

	casc := cascade.New(junior, senior, analyzer, exampleSource, cfg.Worker)

	streamClient := feed.NewClient(feed.Config{
		BaseURL:      cfg.Stream.BaseURL,
		UserAgent:    cfg.Stream.UserAgent,
		PollInterval: cfg.Stream.PollInterval,
		PageSize:     cfg.Stream.PageSize,
		Timeout:      cfg.Stream.Timeout,
	})

	registry := worker.NewRegistry(ctx, st, func(project domain.Project) *worker.Worker {
		return worker.New(project, streamClient, casc, st, cfg.Worker)
	})

	// bring back whatever was running before the last shutdown
	if err := registry.Resume(ctx); err != nil {
		lgr.Printf("[WARN] resume failed: %v", err)
	}

	srv := server.New(cfg, st, registry, revision, opts.Debug)
	serverErr := srv.Run(ctx)

	// workers survive the server, shut them down last
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.StopTimeout)
	defer shutdownCancel()
	registry.StopAll(shutdownCtx)

	if serverErr != nil {
		return fmt.Errorf("server failed: %w", serverErr)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
