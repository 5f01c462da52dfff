package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/deepnoodle-ai/parley/chat"
	"github.com/deepnoodle-ai/parley/config"
	"github.com/deepnoodle-ai/parley/log"
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
			wontoncli.Float("temperature", "t").
				Default(-1).
				Help("Sampling temperature for responses (0.0 to 1.0, default 0.7)"),
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

	logger := log.New(log.LevelFromString(cfg.LogLevel))

	model, err := config.GetModel(cfg)
	if err != nil {
		return wontoncli.Errorf("%v", err)
	}

	session := chat.NewSession(model,
		chat.WithTemperature(cfg.ResolveTemperature(ctx.Float64("temperature"), chat.DefaultTemperature)),
		chat.WithLogger(logger),
	)
	handler := webui.NewChatHandler(session, logger)
	server := webui.NewServer(cfg.Addr, handler, logger)

	fmt.Println(headerStyle.Sprint("🌌 AI Chatbot"))
	fmt.Println(mutedStyle.Sprintf("model: %s", model.Name()))
	fmt.Println(mutedStyle.Sprintf("listening on http://%s", cfg.Addr))

	goCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(goCtx); err != nil && !errors.Is(err, context.Canceled) {
		return wontoncli.Errorf("%v", err)
	}
	return nil
}
