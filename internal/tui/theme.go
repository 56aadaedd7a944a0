package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the accent-color and border-set derived styles of the preview.
type Theme struct {
	border          lipgloss.Border
	borderFocused   lipgloss.Style
	borderUnfocused lipgloss.Style
	titleFocused    lipgloss.Style
	titleUnfocused  lipgloss.Style
	popup           lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color (e.g. "#7D56F4") and a
// border name. Empty or unknown values fall back to the defaults.
func NewTheme(accentColor, border string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		border:          BorderByName(border),
		borderFocused:   lipgloss.NewStyle().Foreground(c),
		borderUnfocused: lipgloss.NewStyle().Foreground(colorGray),
		titleFocused:    lipgloss.NewStyle().Foreground(c).Bold(true),
		titleUnfocused:  labelStyle,
		popup:           lipgloss.NewStyle().Foreground(c),
	}
}

// BorderByName maps a theme.border value to a lipgloss border set.
func BorderByName(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Border returns the configured border set.
func (t Theme) Border() lipgloss.Border {
	return t.border
}

// PanelBorderStyle returns the border style for a gadget box based on whether
// it currently holds focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// TitleStyle returns the style of a gadget box title.
func (t Theme) TitleStyle(focused bool) lipgloss.Style {
	if focused {
		return t.titleFocused
	}
	return t.titleUnfocused
}

// PopupStyle returns the style of the inspector popup frame.
func (t Theme) PopupStyle() lipgloss.Style {
	return t.popup
}
