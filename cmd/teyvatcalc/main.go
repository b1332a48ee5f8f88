package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/teyvatcalc/internal/config"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/db"
	"github.com/udisondev/teyvatcalc/internal/game/calc"
	"github.com/udisondev/teyvatcalc/internal/model"
)

const ConfigPath = "config/teyvatcalc.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// BuildSource resolves build_ref entries of request files.
type BuildSource interface {
	GetBuild(ctx context.Context, uid, name string) (*model.CharacterBuild, error)
}

// fileResult is the output of one request file.
type fileResult struct {
	File   string       `json:"file"`
	Result *calc.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("TEYVAT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCalculator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries the results
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if len(args) == 0 {
		return errors.New("usage: teyvatcalc <request.yaml|request.json>...")
	}

	ref, err := data.LoadReference(cfg.ReferenceDataPath)
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}
	engine, err := calc.New(ref, cfg.EngineOptions())
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	var builds BuildSource
	if cfg.Database.Enabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		builds = database.Builds()
		slog.Info("build store connected", "host", cfg.Database.Host)
	}

	slog.Info("evaluating requests",
		"files", len(args),
		"concurrency", cfg.BatchConcurrency)

	results, err := evaluate(ctx, engine, builds, args, cfg.BatchConcurrency)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}

// evaluate runs every request file with at most limit in flight. A failing
// request is reported in its result; only cancellation aborts the batch.
func evaluate(ctx context.Context, engine *calc.Engine, builds BuildSource, paths []string, limit int) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fileResult{File: path}

			req, err := loadRequest(gctx, path, builds)
			if err != nil {
				slog.Warn("invalid request", "file", path, "err", err)
				results[i].Error = err.Error()
				return nil
			}
			res, err := engine.Calculate(req)
			if err != nil {
				slog.Warn("calculation failed", "file", path, "mode", req.Mode(), "err", err)
				results[i].Error = err.Error()
				return nil
			}
			results[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluating requests: %w", err)
	}
	return results, nil
}

// loadRequest decodes a request file, picking the format by extension and
// resolving build_ref from the build store.
func loadRequest(ctx context.Context, path string, builds BuildSource) (calc.Request, error) {
	var format calc.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = calc.FormatJSON
	case ".yaml", ".yml":
		format = calc.FormatYAML
	default:
		return nil, fmt.Errorf("unsupported request file %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request %s: %w", path, err)
	}
	env, err := calc.DecodeEnvelope(raw, format)
	if err != nil {
		return nil, err
	}

	if ref := env.BuildRef; ref != nil && env.Character == nil {
		if builds == nil {
			return nil, fmt.Errorf("build_ref %s/%s needs the build store (database.enabled)", ref.UID, ref.Name)
		}
		b, err := builds.GetBuild(ctx, ref.UID, ref.Name)
		if err != nil {
			return nil, fmt.Errorf("resolving build_ref: %w", err)
		}
		if b == nil {
			return nil, fmt.Errorf("build %q of %s not found", ref.Name, ref.UID)
		}
		env.Character = b
	}
	return env.Request()
}

// parseLogLevel converts string log level to slog.Level.
// Returns slog.LevelInfo for unknown values.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
