package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/porschequiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗ ██████╗ ███████╗ ██████╗██╗  ██╗███████╗
 ██╔══██╗██╔═══██╗██╔══██╗██╔════╝██╔════╝██║  ██║██╔════╝
 ██████╔╝██║   ██║██████╔╝███████╗██║     ███████║█████╗
 ██╔═══╝ ██║   ██║██╔══██╗╚════██║██║     ██╔══██║██╔══╝
 ██║     ╚██████╔╝██║  ██║███████║╚██████╗██║  ██║███████╗
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "P O R S C H E"

// RenderBanner returns the PORSCHE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
