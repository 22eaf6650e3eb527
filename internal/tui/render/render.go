// Package render draws the dexview TUI pieces with lipgloss. It holds no state.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/format"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

const (
	idWidth      = 5
	nameWidth    = 16
	statBarWidth = 20
	statLabelW   = 16
	star         = "★"
	noStar       = " "
	cursorMark   = ">"
)

// HeaderState defines the inputs needed to render the header.
type HeaderState struct {
	Favorites int
	Loaded    int
}

// Header renders the title line with the favorites count.
func Header(state HeaderState) string {
	title := titleStyle.Render("dexview")
	info := mutedStyle.Render(fmt.Sprintf("%d creatures  ·  %s %d favorites", state.Loaded, star, state.Favorites))
	return title + "  " + info
}

// FilterState defines the inputs needed to render the filter bar.
type FilterState struct {
	SearchInput   string // rendered textinput
	SelectedType  string
	FavoritesOnly bool
}

// Filters renders the search input, the type selector and the favorites toggle.
func Filters(state FilterState) string {
	typeName := state.SelectedType
	if typeName == "" {
		typeName = domain.AllTypes
	}
	typeLabel := "‹ " + typeName + " ›"
	if typeName != domain.AllTypes {
		typeLabel = badgeStyle.Background(TypeColor(typeName)).Render(typeLabel)
	}
	fav := "[ ] favorites only"
	if state.FavoritesOnly {
		fav = starStyle.Render("[" + star + "] favorites only")
	}
	return strings.Join([]string{state.SearchInput, "type: " + typeLabel, fav}, "   ")
}

// RowState defines the inputs needed to render a catalog row.
type RowState struct {
	Item     domain.Item
	Favorite bool
	Selected bool
	Width    int
}

// Row renders one catalog item.
func Row(state RowState) string {
	cursor := " "
	if state.Selected {
		cursor = cursorMark
	}
	mark := noStar
	if state.Favorite {
		mark = star
	}
	name := truncate(format.DisplayName(state.Item.Name), nameWidth)
	line := fmt.Sprintf("%s %s %-*s %-*s ", cursor, mark, idWidth, format.ItemNumber(state.Item.ID), nameWidth, name)

	if state.Selected {
		line = selectedStyle.Render(line)
	} else if state.Favorite {
		line = starStyle.Render(line)
	}
	return line + TypeBadges(state.Item.Types)
}

// TypeBadges renders one colored badge per type. No types render nothing.
func TypeBadges(types []string) string {
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, badgeStyle.Background(TypeColor(t)).Render(t))
	}
	return strings.Join(badges, " ")
}

// Empty renders the empty-state message for view.
func Empty(state domain.EmptyState, spinner string) string {
	if state == domain.EmptyLoading {
		return spinner + " " + format.EmptyMessage(state)
	}
	return mutedStyle.Render(format.EmptyMessage(state))
}

// Pager renders the range summary and the previous/next controls, dimming
// whichever is disabled.
func Pager(view domain.View) string {
	prev := buttonStyle.Render("← prev")
	if !view.HasPrev {
		prev = mutedStyle.Render(prev)
	}
	next := buttonStyle.Render("next →")
	if !view.HasNext {
		next = mutedStyle.Render(next)
	}
	summary := fmt.Sprintf("page %d/%d", view.CurrentPage, view.MaxPage)
	if view.TotalItems > 0 {
		summary = format.RangeSummary(view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", mutedStyle.Render(summary), " ", next)
}

// Status renders a status bar message.
func Status(msg errors.Message) string {
	switch msg.Type {
	case errors.MessageTypeError:
		return errorStyle.Render("✗ " + msg.Text)
	case errors.MessageTypeWarning:
		return starStyle.Render("! " + msg.Text)
	case errors.MessageTypeSuccess:
		return successStyle.Render("✓ " + msg.Text)
	default:
		return mutedStyle.Render(msg.Text)
	}
}

// LoadError renders the global load failure screen.
func LoadError(err error) string {
	return errorStyle.Render("Failed to load catalog") + "\n\n" +
		truncate(err.Error(), 200) + "\n\n" +
		mutedStyle.Render("r: retry  ·  q: quit")
}

// DetailState defines the inputs needed to render the detail overlay.
type DetailState struct {
	Item     domain.Item
	Detail   *pokeapi.Detail
	Loading  bool
	Err      error
	Favorite bool
	Spinner  string
	Width    int
}

// Detail renders the detail overlay panel.
func Detail(state DetailState) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %s", format.ItemNumber(state.Item.ID), format.DisplayName(state.Item.Name))
	if state.Favorite {
		title += " " + star
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case state.Loading:
		b.WriteString(state.Spinner + " loading details...")
	case state.Err != nil:
		b.WriteString(errorStyle.Render("Could not load details: " + truncate(state.Err.Error(), 120)))
	case state.Detail != nil:
		writeDetailBody(&b, *state.Detail)
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("space: favorite  ·  esc: close"))

	style := panelStyle
	if state.Width > 4 {
		style = style.Width(min(state.Width-4, 72))
	}
	return style.Render(b.String())
}

func writeDetailBody(b *strings.Builder, d pokeapi.Detail) {
	if len(d.Types) > 0 {
		b.WriteString(TypeBadges(d.Types))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("image: " + format.ImageOrPlaceholder(d.Image)))
	b.WriteString("\n")
	fmt.Fprintf(b, "height %.1f m  ·  weight %.1f kg\n", float64(d.Height)/10, float64(d.Weight)/10)

	if len(d.Stats) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Stats"))
		b.WriteString("\n")
		for _, s := range d.Stats {
			b.WriteString(StatLine(s.Name, s.BaseStat, statBarWidth))
			b.WriteString("\n")
		}
	}
	if len(d.Abilities) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Abilities"))
		for _, a := range d.Abilities {
			b.WriteString("\n  ")
			b.WriteString(format.AbilityName(a.Name))
			if a.IsHidden {
				b.WriteString(mutedStyle.Render(" (hidden)"))
			}
		}
	}
}

// StatLine renders "name value bar" with the bar filled base/150, capped.
func StatLine(name string, base, width int) string {
	filled := int(format.StatRatio(base)*float64(width) + 0.5)
	bar := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%-*s %3d %s", statLabelW, format.AbilityName(name), base, bar)
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width < 4 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-1]) + "…"
}
