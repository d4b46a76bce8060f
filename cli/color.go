package cli

import "github.com/fatih/color"

// Palette mirrors the teacher's cli/encoder.go color.New(...) assignments
// (github.com/fatih/color), generalized from jq's streaming value encoder to
// our own Document kinds: null = bright black, bool = yellow, number = cyan,
// string = green, object key = bold blue.
var (
	nullColor      = color.New(color.FgHiBlack)
	falseColor     = color.New(color.FgYellow)
	trueColor      = color.New(color.FgYellow)
	numberColor    = color.New(color.FgCyan)
	stringColor    = color.New(color.FgGreen)
	objectKeyColor = color.New(color.FgBlue, color.Bold)
)

// setMonochrome toggles the package-wide color switch fatih/color already
// provides, used for --monochrome-output and for the isatty-based default
// when stdout is not a terminal.
func setMonochrome(mono bool) {
	color.NoColor = mono
}
