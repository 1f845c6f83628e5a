package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/fileinput/retained"
)

// TerminalStyles maps widget roles to lipgloss styles.
type TerminalStyles struct {
	Field       lipgloss.Style
	Placeholder lipgloss.Style
	Button      lipgloss.Style
	Success     lipgloss.Style
	Danger      lipgloss.Style
	Primary     lipgloss.Style
	Control     lipgloss.Style
	Focused     lipgloss.Style
	Disabled    lipgloss.Style
}

var (
	colorText     = lipgloss.Color("#cdd6f4")
	colorOverlay  = lipgloss.Color("#6c7086")
	colorSurface  = lipgloss.Color("#45475a")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorRed      = lipgloss.Color("#f38ba8")
	colorBlue     = lipgloss.Color("#89b4fa")
	colorBase     = lipgloss.Color("#1e1e2e")
	colorHighlite = lipgloss.Color("#f9e2af")
)

// DefaultTerminalStyles returns the built-in palette: success buttons
// green, danger buttons red, the focused widget underlined in yellow.
func DefaultTerminalStyles() TerminalStyles {
	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorText).
		Background(colorSurface)
	return TerminalStyles{
		Field: lipgloss.NewStyle().
			Width(32).
			Padding(0, 1).
			Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorOverlay),
		Placeholder: lipgloss.NewStyle().Foreground(colorOverlay).Italic(true),
		Button:      button,
		Success:     button.Foreground(colorBase).Background(colorGreen),
		Danger:      button.Foreground(colorBase).Background(colorRed),
		Primary:     button.Foreground(colorBase).Background(colorBlue),
		Control:     lipgloss.NewStyle().Foreground(colorOverlay),
		Focused:     lipgloss.NewStyle().Underline(true).Foreground(colorHighlite),
		Disabled:    lipgloss.NewStyle().Faint(true),
	}
}

// Terminal draws w as styled text. Hidden widgets are skipped. Input groups
// and button groups lay their children out side by side; other containers
// stack them.
func Terminal(w *retained.Widget, s TerminalStyles) string {
	if w == nil || !w.Visible() {
		return ""
	}

	var out string
	switch w.Kind() {
	case retained.KindContainer, retained.KindForm, retained.KindGroup:
		parts := childViews(w, s)
		if len(parts) == 0 {
			return ""
		}
		if w.Kind() == retained.KindGroup || w.HasClass("input-group") {
			return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	case retained.KindTextField:
		text := w.Value()
		if text == "" {
			text = s.Placeholder.Render(w.Placeholder())
		}
		out = s.Field.Render(text)
	case retained.KindButton:
		out = buttonStyle(w, s).Render(w.Text())
	case retained.KindFileInput:
		name := w.Value()
		if name == "" {
			name = "no file selected"
		}
		out = s.Control.Render("[file] " + name)
	default:
		out = w.Text()
	}

	if w.Disabled() {
		out = s.Disabled.Render(out)
	}
	if w.Focused() {
		out = s.Focused.Render(out)
	}
	return out
}

func childViews(w *retained.Widget, s TerminalStyles) []string {
	var parts []string
	for _, c := range w.Children() {
		if v := Terminal(c, s); v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

func buttonStyle(w *retained.Widget, s TerminalStyles) lipgloss.Style {
	switch {
	case w.HasClass("btn-success"):
		return s.Success
	case w.HasClass("btn-danger"):
		return s.Danger
	case w.HasClass("btn-primary"):
		return s.Primary
	}
	return s.Button
}
