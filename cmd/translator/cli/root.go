package cli

import (
	"os"

	"github.com/deepnoodle-ai/parley/config"
	"github.com/deepnoodle-ai/parley/log"
	wontoncli "github.com/deepnoodle-ai/wonton/cli"
)

var (
	llmProvider string
	llmModel    string
	logLevel    string
	configPath  string
	app         *wontoncli.App
)

func getLogLevel() log.Level {
	return log.LevelFromString(logLevel)
}

func Execute() {
	app = wontoncli.New("translator").
		Description("Instant language translation powered by the Groq API").
		Version("0.1.0").
		GlobalFlags(
			wontoncli.String("provider", "").
				Env("PARLEY_PROVIDER").
				Default("groq").
				Help("LLM provider to use ('groq' or 'google')"),
			wontoncli.String("model", "m").
				Env("PARLEY_MODEL").
				Help("Model to use (e.g. 'llama3-8b-8192')"),
			wontoncli.String("config", "c").
				Help("Path to a YAML or JSON configuration file"),
			wontoncli.String("log-level", "").
				Default("warn").
				Help("Log level to use (debug, info, warn, error)"),
		)

	// Main command serves the web UI
	registerServeCommand(app)

	// Subcommands
	registerTranslateCommand(app)
	registerLanguagesCommand(app)

	if err := app.Execute(); err != nil {
		if wontoncli.IsHelpRequested(err) {
			os.Exit(0)
		}
		os.Exit(wontoncli.GetExitCode(err))
	}
}

// parseGlobalFlags extracts global flag values from context
func parseGlobalFlags(ctx *wontoncli.Context) {
	llmProvider = ctx.String("provider")
	llmModel = ctx.String("model")
	logLevel = ctx.String("log-level")
	configPath = ctx.String("config")
}

// loadConfig merges the optional configuration file with global flag values.
// Flags win over file values.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		parsed, err := config.ParseFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}
	if llmProvider != "" {
		cfg.Provider = llmProvider
	}
	if cfg.Provider == "" {
		cfg.Provider = "groq"
	}
	if llmModel != "" {
		cfg.Model = llmModel
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
