package selectui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG     = c("#0b0f14")
	modalBG     = c("#121a22")
	colorAccent = c("#5fd7ff")
	colorDim    = c("#4a5a6a")
	colorError  = c("#ff5f5f")

	kindColors = map[string]struct{ border, text color.Color }{
		"service": {border: c("#5fafff"), text: c("#afd7ff")},
		"db":      {border: c("#d7af5f"), text: c("#ffd787")},
		"queue":   {border: c("#af87d7"), text: c("#d7afff")},
		"client":  {border: c("#5fd787"), text: c("#87ffaf")},
	}

	selBorder     = c("#ffffff")
	selText       = c("#ffffff")
	selBG         = c("#1c3048")
	previewBorder = c("#ffd700")
	previewText   = c("#ffff87")
	previewBG     = c("#2a2a12")

	marqueeColor = c("#ffd700")
	toolbarColor = c("#5fd7ff")
	footerColor  = c("#6c6c6c")
)

func borderForKind(kind string) lipgloss.Border {
	switch kind {
	case "db":
		return lipgloss.DoubleBorder()
	case "client":
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
