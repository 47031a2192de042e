package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the config file
)

// Mapping Specific Colors
var (
	PatternColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	TargetColor  = color.New(color.FgWhite).SprintFunc()
	PathColor    = color.New(color.FgGreen).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
