// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Green)
	failureStyle = lipgloss.NewStyle().Foreground(Red)
)

// Success renders a final success line.
func Success(msg string) string {
	return successStyle.Render(Check + " " + msg)
}

// Failure renders a final failure line.
func Failure(msg string) string {
	return failureStyle.Render(Cross + " " + msg)
}
