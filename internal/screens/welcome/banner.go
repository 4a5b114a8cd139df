package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

const bannerArt = `
 ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗ ███████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗╚══███╔╝
    ██║   ██████╔╝██║██║   ██║██║███████║  ███╔╝
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║ ███╔╝
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║███████╗
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "T R I V I A Z"

// BannerWidth is the narrowest width that fits the block-letter banner.
const BannerWidth = 52

// RenderBanner returns the TRIVIAZ banner in spotlight gold, falling back
// to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
