package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#5C6BC0")
	Accent     = lipgloss.Color("#9FA8DA")
	Highlight  = lipgloss.Color("#E8EAF6")
	Error      = lipgloss.Color("#F07178")
	Muted      = lipgloss.Color("#78909C")
	Skeleton   = lipgloss.Color("#455A64")
	Background = lipgloss.Color("#283593")
	Foreground = lipgloss.Color("#ECEFF1")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	// App header bar
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Background).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Loading placeholders
	SkeletonStyle = lipgloss.NewStyle().
			Foreground(Skeleton)

	// Sidebar holding the novel list
	SidebarStyle = lipgloss.NewStyle().
			Border(RoundedBorder, false, true, false, false).
			BorderForeground(Skeleton).
			PaddingRight(1)

	// Row of the novel being read
	ActiveRowStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303F9F")).
			Foreground(Highlight)

	RowStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Skeleton).
			Padding(0, 2)

	// Chapter navigation
	NavStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	NavDisabledStyle = lipgloss.NewStyle().
				Foreground(Skeleton)

	NavBarStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Skeleton).
			Padding(0, 1)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Skeleton)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// NavStyleFor returns the style of a navigation button.
func NavStyleFor(enabled bool) lipgloss.Style {
	if enabled {
		return NavStyle
	}
	return NavDisabledStyle
}
