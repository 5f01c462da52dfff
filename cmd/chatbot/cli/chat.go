package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/parley/chat"
	"github.com/deepnoodle-ai/parley/config"
	"github.com/deepnoodle-ai/parley/log"
	wontoncli "github.com/deepnoodle-ai/wonton/cli"
)

func registerChatCommand(app *wontoncli.App) {
	app.Command("chat").
		Description("Start an interactive chat session in the terminal").
		Flags(
			wontoncli.Float("temperature", "t").
				Default(-1).
				Help("Sampling temperature for responses (0.0 to 1.0, default 0.7)"),
		).
		Run(func(ctx *wontoncli.Context) error {
			parseGlobalFlags(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return wontoncli.Errorf("%v", err)
			}

			model, err := config.GetModel(cfg)
			if err != nil {
				return wontoncli.Errorf("%v", err)
			}

			session := chat.NewSession(model,
				chat.WithTemperature(cfg.ResolveTemperature(ctx.Float64("temperature"), chat.DefaultTemperature)),
				chat.WithLogger(log.New(getLogLevel())),
			)
			return runChatSession(session)
		})
}

// runChatSession reads questions from stdin until the user exits. Type
// "exit" or "quit" to leave the session.
func runChatSession(session *chat.Session) error {
	goCtx := context.Background()

	fmt.Println(headerStyle.Sprint(" 🌌 AI Chatbot "))
	fmt.Println()
	fmt.Println(botStyle.Sprint("🤖 Assistant: " + chat.WelcomeMessage))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userStyle.Sprint("You: "))
		if !scanner.Scan() {
			break
		}
		userInput := scanner.Text()

		switch strings.ToLower(strings.TrimSpace(userInput)) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return nil
		case "":
			continue
		}
		fmt.Println()

		reply, err := session.Ask(goCtx, userInput)
		if err != nil {
			fmt.Println(errorStyle.Sprintf("Error generating response: %v", err))
			fmt.Println()
			continue
		}
		fmt.Println(botStyle.Sprint("🤖 Assistant: " + reply))
		fmt.Println()
	}
	return scanner.Err()
}
