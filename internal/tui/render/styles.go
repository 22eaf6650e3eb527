package render

import "github.com/charmbracelet/lipgloss"

// typeColors maps a type name to its badge background.
var typeColors = map[string]string{
	"fire":     "#EF4444",
	"water":    "#3B82F6",
	"grass":    "#22C55E",
	"electric": "#EAB308",
	"psychic":  "#A855F7",
	"ice":      "#06B6D4",
	"dragon":   "#6366F1",
	"dark":     "#374151",
	"fairy":    "#EC4899",
	"fighting": "#C2410C",
	"flying":   "#38BDF8",
	"poison":   "#8B5CF6",
	"ground":   "#CA8A04",
	"rock":     "#4B5563",
	"bug":      "#65A30D",
	"ghost":    "#7E22CE",
	"steel":    "#64748B",
	"normal":   "#6B7280",
}

const defaultTypeColor = "#6B7280"

// TypeColor returns the badge color for typeName.
func TypeColor(typeName string) lipgloss.Color {
	if c, ok := typeColors[typeName]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(defaultTypeColor)
}

var (
	accent = lipgloss.Color("12")
	muted  = lipgloss.Color("241")
	gold   = lipgloss.Color("220")
	red    = lipgloss.Color("9")
	green  = lipgloss.Color("10")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	starStyle     = lipgloss.NewStyle().Foreground(gold)
	selectedStyle = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0"))
	errorStyle    = lipgloss.NewStyle().Foreground(red).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(green)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	badgeStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15"))
)
