package tui

import "github.com/charmbracelet/lipgloss"

// Semantic chrome palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — attention
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusWarn = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// Month grid styles.
var (
	styleDayHeading = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Bold(true)

	styleDayCell = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleDayToday = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleDayCursor = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurface).
			Bold(true)

	styleDayOutside = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDragTarget = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)
)

// Detail panel styles.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)
)

// Overlay styles for the creation/edit/delete flows.
var (
	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	styleOverlayDanger = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorDanger).
				Padding(1, 2)

	styleOverlayTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleFieldLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// Footer style.
var styleFooter = lipgloss.NewStyle().
	Background(colorSurfaceDim).
	Foreground(colorMutedLight).
	Padding(0, 1)

// Message line style (info/warnings under the grid).
var styleMessage = lipgloss.NewStyle().
	Foreground(colorAccent)
