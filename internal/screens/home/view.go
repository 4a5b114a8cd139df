package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/screens/welcome"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	var sections []string
	if compact {
		sections = append(sections, theme.Centered("T R I V I A Z", cw, theme.Gold))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, welcome.RenderBanner(cw)))
	}

	sections = append(sections, h.renderStats(cw))

	if h.editing {
		sections = append(sections, h.renderNameEditor(cw))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			strings.TrimRight(h.menu.View(buttonWidth), "\n")))
	}

	if h.cfg.SourceLabel != "" && !compact {
		sections = append(sections, theme.Centered("questions from "+h.cfg.SourceLabel, cw, theme.TextDim))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.StageFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) renderStats(cw int) string {
	p := h.cfg.Printer
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case h.errMsg != "":
		stats = lipgloss.NewStyle().Foreground(theme.Error).Render("stats unavailable: " + h.errMsg)
	case !h.loaded || h.stats.Games == 0:
		stats = dim.Render("No games yet. Press PLAY!")
	default:
		gold := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
		cyan := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		parts := []string{
			cyan.Render(fmt.Sprintf("%d GAMES", h.stats.Games)),
		}
		if h.stats.Best != nil {
			parts = append(parts, gold.Render("★ BEST "+p.Number(h.stats.Best.Score)))
		}
		if h.stats.Last != nil {
			parts = append(parts, dim.Render("LAST "+p.Number(h.stats.Last.Score)))
		}
		stats = strings.Join(parts, "   ")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func (h *HomeScreen) renderNameEditor(cw int) string {
	return components.Card("Player name\n\n"+h.input.View(), cw)
}
