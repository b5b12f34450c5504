package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	successStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	failureStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)
)

// bannerStyler decorates the pass/fail line, or returns nil when color is
// off.
func bannerStyler() func(ok bool, text string) string {
	if !cfg.Output.Color {
		return nil
	}
	return func(ok bool, text string) string {
		if ok {
			return successStyle.Render(text)
		}
		return failureStyle.Render(text)
	}
}

func errorText(s string) string {
	if !cfg.Output.Color {
		return s
	}
	return failureStyle.Render(s)
}

func hintText(s string) string {
	if !cfg.Output.Color {
		return s
	}
	return hintStyle.Render(s)
}
