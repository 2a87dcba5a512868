package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"media-router/internal/analysis"
	"media-router/internal/config"
	"media-router/internal/generator"
	generatorfactory "media-router/internal/generator/factory"
	"media-router/internal/health"
	"media-router/internal/router"
	"media-router/internal/server"
)

const serveUsage = `Usage:
  media-router serve [--config <path>] [--port <port>]

Flags:
  --config string   Path to YAML configuration file (optional, built-in defaults apply)
  --port   int      Override server port from configuration`

func serve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, serveUsage)
	}

	var cfgPath string
	var overridePort int
	fs.StringVar(&cfgPath, "config", "", "path to configuration file")
	fs.IntVar(&overridePort, "port", 0, "override server port")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse serve flags: %w", err)
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if overridePort != 0 {
		if overridePort <= 0 || overridePort > 65535 {
			return fmt.Errorf("port override %d must be a valid TCP port", overridePort)
		}
		cfg.Server.Port = overridePort
	}

	engine := analysis.NewEngine(analysis.DefaultTable())

	registry := generator.NewRegistry()
	if err := generatorfactory.RegisterDefaultGenerators(registry); err != nil {
		return err
	}

	recorder := health.NewRecorder()
	rt := router.New(engine, registry, recorder, cfg.Generation.Timeout())

	srv, err := server.New(cfg, rt, recorder)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
