package main

import (
	"github.com/deepnoodle-ai/parley/cmd/chatbot/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
