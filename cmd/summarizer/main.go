package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/divyakumars/video-summarizer/internal/api"
	"github.com/divyakumars/video-summarizer/internal/audio"
	"github.com/divyakumars/video-summarizer/internal/batch"
	"github.com/divyakumars/video-summarizer/internal/config"
	"github.com/divyakumars/video-summarizer/internal/llm"
	"github.com/divyakumars/video-summarizer/internal/logger"
	"github.com/divyakumars/video-summarizer/internal/pipeline"
	"github.com/divyakumars/video-summarizer/internal/report"
	"github.com/divyakumars/video-summarizer/internal/summarizer"
	"github.com/divyakumars/video-summarizer/internal/transcriber"
	"github.com/divyakumars/video-summarizer/internal/watcher"
	"github.com/divyakumars/video-summarizer/pkg/executor"
)

const usage = `Usage: summarizer [flags] <command>

Commands:
  serve          start the upload web page and JSON API (default)
  watch          summarize videos dropped into paths.input
  run <video>    summarize one video and print transcript and summary

Flags:
`

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup, including the
// logger flush, happens before exit.
func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envFile := flag.String("env", ".env", "optional dotenv file with API keys")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "serve"
	}
	if command != "serve" && command != "watch" && command != "run" {
		flag.Usage()
		return 2
	}
	if command == "run" && flag.NArg() < 2 {
		flag.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration; a missing API key stops here
	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return 1
	}

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		return 1
	}

	switch command {
	case "serve":
		err = serve(ctx, cfg, log, app)
	case "watch":
		err = watch(ctx, cfg, log, app)
	case "run":
		err = runOnce(ctx, app, flag.Arg(1))
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "%v", err)
		return 1
	}
	return 0
}

// app holds the long-lived components shared by every command.
type app struct {
	pipeline    pipeline.Pipeline
	transcriber transcriber.Transcriber
	generator   llm.Generator
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	exec := executor.New()

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	gen, err := llm.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}

	sum := summarizer.New(gen, log, summarizer.Options{
		MaxChars:      cfg.LLM.MaxChars,
		ChunkPrompt:   cfg.LLM.ChunkPrompt,
		CombinePrompt: cfg.LLM.CombinePrompt,
	})
	ext := audio.New(exec, log, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.SampleRate, cfg.Paths.Temp)

	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Transcriber: %s, generator: %s, chunk size: %d chars", tr.Name(), gen.Name(), cfg.LLM.MaxChars)

	return &app{
		pipeline:    pipeline.New(ext, tr, sum, log, cfg.Performance.MaxConcurrent),
		transcriber: tr,
		generator:   gen,
	}, nil
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger, a *app) error {
	router := api.NewRouter(a.pipeline, log, api.Options{
		TempDir:        cfg.Paths.Temp,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Transcriber:    a.transcriber.Name(),
		Generator:      a.generator.Name(),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Starting server on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info(shutdownCtx, "Server stopped")
	return nil
}

func watch(ctx context.Context, cfg *config.Config, log logger.Logger, a *app) error {
	writer := report.New(cfg.Paths.Output, log)
	handler := batch.New(a.pipeline, writer, log, cfg.Paths.Archived, cfg.Paths.Failed)

	w, err := watcher.New(cfg.Paths.Input, handler.Handle, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	err = w.Start(ctx)
	log.Info(context.Background(), "Video summarizer stopped")
	return err
}

func runOnce(ctx context.Context, a *app, videoPath string) error {
	res, err := a.pipeline.Process(ctx, videoPath)
	if err != nil {
		if stage, ok := pipeline.StageOf(err); ok {
			return fmt.Errorf("error during %s: %w", stage, err)
		}
		return err
	}

	fmt.Printf("Transcript\n----------\n%s\n\nSummary\n-------\n%s\n", res.Transcript, res.Summary)
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Failed,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
