package cli

import "github.com/fatih/color"

var (
	headerStyle = color.New(color.FgMagenta, color.Bold)
	userStyle   = color.New(color.FgBlue, color.Bold)
	botStyle    = color.New(color.FgGreen)
	mutedStyle  = color.New(color.FgWhite, color.Faint)
	errorStyle  = color.New(color.FgRed, color.Bold)
)
