package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/deepnoodle-ai/parley/config"
	"github.com/deepnoodle-ai/parley/log"
	"github.com/deepnoodle-ai/parley/translate"
	"github.com/deepnoodle-ai/parley/webui"
	wontoncli "github.com/deepnoodle-ai/wonton/cli"
)

func registerServeCommand(app *wontoncli.App) {
	app.Main().
		Flags(
			wontoncli.String("addr", "a").
				Env("PARLEY_ADDR").
				Default("localhost:8080").
				Help("Address to serve the web UI on"),
			wontoncli.String("source-lang", "").
				Default(translate.DefaultLanguage).
				Help("Language the input text is written in"),
			wontoncli.Float("temperature", "t").
				Default(-1).
				Help("Sampling temperature for translations (default 0)"),
			wontoncli.String("cache", "").
				Env("PARLEY_CACHE").
				Help("Translation cache backend (none, memory, redis)"),
			wontoncli.Int("cache-ttl", "").
				Help("Cache entry lifetime in seconds (0 means no expiration)"),
			wontoncli.String("redis-url", "").
				Env("REDIS_URL").
				Help("Redis connection URL for the redis cache backend"),
		).
		Run(runServe)
}

func runServe(ctx *wontoncli.Context) error {
	parseGlobalFlags(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return wontoncli.Errorf("%v", err)
	}
	if v := ctx.String("addr"); v != "" {
		cfg.Addr = v
	}
	if v := ctx.String("cache"); v != "" {
		cfg.Cache.Backend = v
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if v := ctx.Int("cache-ttl"); v > 0 {
		cfg.Cache.TTLSeconds = v
	}
	if v := ctx.String("redis-url"); v != "" {
		cfg.Cache.RedisURL = v
	}

	logger := log.New(log.LevelFromString(cfg.LogLevel))

	model, err := config.GetModel(cfg)
	if err != nil {
		return wontoncli.Errorf("%v", err)
	}

	translationCache, err := config.GetCache(cfg.Cache)
	if err != nil {
		return wontoncli.Errorf("%v", err)
	}

	translatorOpts := []translate.Option{
		translate.WithLogger(logger),
		translate.WithSourceLang(ctx.String("source-lang")),
		translate.WithTemperature(cfg.ResolveTemperature(ctx.Float64("temperature"), 0)),
	}
	if translationCache != nil {
		translatorOpts = append(translatorOpts, translate.WithCache(translationCache))
	}

	translator := translate.New(model, translatorOpts...)
	history := translate.NewHistory()
	handler := webui.NewTranslatorHandler(translator, history, logger)
	server := webui.NewServer(cfg.Addr, handler, logger)

	fmt.Println(headerStyle.Sprint("⚡ Instant Language Translator"))
	fmt.Println(mutedStyle.Sprintf("model: %s", model.Name()))
	fmt.Println(mutedStyle.Sprintf("listening on http://%s", cfg.Addr))

	goCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(goCtx); err != nil && !errors.Is(err, context.Canceled) {
		return wontoncli.Errorf("%v", err)
	}
	return nil
}
