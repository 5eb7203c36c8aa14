// Package styles holds the shared lipgloss palette for terminal output.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorGreen  = lipgloss.Color("#22c55e")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorBlue   = lipgloss.Color("#3b82f6")
	ColorYellow = lipgloss.Color("#eab308")
	ColorGray   = lipgloss.Color("#6b7280")
	ColorWhite  = lipgloss.Color("#f9fafb")
)

// Base styles
var (
	BoldStyle     = lipgloss.NewStyle().Bold(true)
	DimStyle      = lipgloss.NewStyle().Foreground(ColorGray)
	ResultStyle   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	OperatorStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorBlue).Padding(0, 1)
	ItemStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// RenderResult styles a computed value.
func RenderResult(s string) string { return ResultStyle.Render(s) }

// RenderError styles an error message.
func RenderError(s string) string { return ErrorStyle.Render(s) }

// RenderDim styles secondary text such as timestamps.
func RenderDim(s string) string { return DimStyle.Render(s) }

// RenderOperator styles an operator symbol.
func RenderOperator(s string) string { return OperatorStyle.Render(s) }

// RenderHeader styles a section header.
func RenderHeader(s string) string { return HeaderStyle.Render(s) }

// Box wraps content in a rounded border.
func Box(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1).
		Render(content)
}
