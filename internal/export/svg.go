// Package export renders swept series as standalone SVG documents.
package export

import (
	"fmt"
	"os"
	"strings"
)

// SeriesToSVG plots ys against xs as a single polyline with 10% padding
// around the data bounds and axis labels along the edges.
func SeriesToSVG(xs, ys []float64, width, height int, strokeColor, xLabel, yLabel string) string {
	if len(xs) < 2 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888888" font-size="12" text-anchor="middle">%s</text>
`, width/2, height-6, xLabel))
	sb.WriteString(fmt.Sprintf(`<text x="14" y="%d" fill="#888888" font-size="12" text-anchor="middle" transform="rotate(-90 14 %d)">%s</text>
`, height/2, height/2, yLabel))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteSeriesSVG renders the series and writes it to path.
func WriteSeriesSVG(path string, xs, ys []float64, xLabel, yLabel string) error {
	svg := SeriesToSVG(xs, ys, 800, 400, "#00ff00", xLabel, yLabel)
	if svg == "" {
		return fmt.Errorf("export: not enough points to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
