package main

import (
	"github.com/deepnoodle-ai/parley/cmd/translator/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
