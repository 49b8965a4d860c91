// Command devicekitd serves device classification over HTTP.
//
// Configuration is read from the environment (and a .env file when present):
// LOG_*, HTTP_*, SCREEN_* and PLATFORM_* variables, see the Config types of
// the corresponding packages.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/devicekit/pkg/api"
	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/requestid"
	"github.com/dmitrymomot/devicekit/pkg/screen"
)

type appConfig struct {
	Log      logger.Config
	HTTP     httpserver.Config
	Screen   screen.Config
	Platform platform.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			platform.LoggerExtractor(),
		),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	classifier, err := platform.NewFromConfig(ctx, cfg.Platform)
	if err != nil {
		return fmt.Errorf("build classifier: %w", err)
	}
	log.InfoContext(ctx, "classifier ready",
		slog.Int("rules", len(classifier.Rules())),
		slog.String("rules_file", cfg.Platform.RulesFile),
	)

	handler := api.New(classifier,
		api.WithLogger(log),
		api.WithScreenDefaults(cfg.Screen.Defaults()),
	)

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, handler)
}
