package cli

import "github.com/fatih/color"

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	successStyle = color.New(color.FgGreen)
	mutedStyle   = color.New(color.FgWhite, color.Faint)
)
