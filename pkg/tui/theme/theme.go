package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Nav    NavTheme
	Wheel  WheelTheme
	Form   FormTheme
	Footer FooterTheme
}

// NavTheme styles the page list pane.
type NavTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
}

// WheelTheme styles the wheel pane.
type WheelTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Pointer lipgloss.Style
	Winner  lipgloss.Style
	Faint   lipgloss.Style
}

// FormTheme styles the field editor.
type FormTheme struct {
	Label lipgloss.Style
	Value lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Nav: NavTheme{
			Frame:    frame,
			Title:    title,
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},
		Wheel: WheelTheme{
			Frame:   frame,
			Title:   title,
			Pointer: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
			Winner:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Underline(true),
			Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Form: FormTheme{
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
