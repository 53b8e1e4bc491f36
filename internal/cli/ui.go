package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the CLI output and the progress TUI.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleProgressBar = lipgloss.NewStyle().Foreground(colorCyan)
)

// printSuccess writes a checkmarked status line to stderr.
func printSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleIconSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// printWarning writes a warning status line to stderr.
func printWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleIconWarning.Render("!"), fmt.Sprintf(format, args...))
}

// printInfo writes a plain status line to stderr.
func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s\n", fmt.Sprintf(format, args...))
}

// printDetail writes an indented, dimmed detail line to stderr.
func printDetail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", StyleDim.Render(fmt.Sprintf(format, args...)))
}
