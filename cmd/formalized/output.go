package main

import "github.com/fatih/color"

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	headingColor = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.Faint)
)
