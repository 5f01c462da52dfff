package cli

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/parley/config"
	"github.com/deepnoodle-ai/parley/log"
	"github.com/deepnoodle-ai/parley/translate"
	wontoncli "github.com/deepnoodle-ai/wonton/cli"
)

func registerTranslateCommand(app *wontoncli.App) {
	app.Command("translate").
		Description("Translate a piece of text and print the result").
		Args("text?").
		Flags(
			wontoncli.String("text", "").Help("Text to translate (alternative to positional argument)"),
			wontoncli.String("lang", "l").
				Default("German").
				Help("Language to translate to"),
			wontoncli.String("source-lang", "").
				Default(translate.DefaultLanguage).
				Help("Language the input text is written in"),
			wontoncli.Float("temperature", "t").
				Default(-1).
				Help("Sampling temperature for the translation (default 0)"),
		).
		Run(func(ctx *wontoncli.Context) error {
			parseGlobalFlags(ctx)

			var text string
			if ctx.NArg() > 0 {
				text = ctx.Arg(0)
			} else {
				text = ctx.String("text")
			}
			if text == "" {
				return wontoncli.Errorf("no text provided. Use argument or --text flag")
			}

			targetLang := ctx.String("lang")
			if !translate.IsSupported(targetLang) {
				return wontoncli.Errorf("unsupported language: %q", targetLang)
			}

			cfg, err := loadConfig()
			if err != nil {
				return wontoncli.Errorf("%v", err)
			}

			model, err := config.GetModel(cfg)
			if err != nil {
				return wontoncli.Errorf("%v", err)
			}

			translator := translate.New(model,
				translate.WithLogger(log.New(getLogLevel())),
				translate.WithSourceLang(ctx.String("source-lang")),
				translate.WithTemperature(cfg.ResolveTemperature(ctx.Float64("temperature"), 0)),
			)

			result, err := translator.Translate(context.Background(), text, targetLang)
			if err != nil {
				return wontoncli.Errorf("%v", err)
			}
			fmt.Println(successStyle.Sprint(result.Output))
			return nil
		})
}

func registerLanguagesCommand(app *wontoncli.App) {
	app.Command("languages").
		Description("List the supported target languages").
		Run(func(ctx *wontoncli.Context) error {
			for _, lang := range translate.Languages() {
				fmt.Println(lang)
			}
			return nil
		})
}
