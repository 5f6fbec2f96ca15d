package export

import (
	"fmt"
	"strings"
)

// CurveToSVG renders the curve as an SVG polyline on a dark canvas,
// temperature along X. Curves with fewer than two points render as "".
func CurveToSVG(c *Curve, width, height int, strokeColor string) string {
	if c == nil || len(c.Temps) < 2 || len(c.Temps) != len(c.Values) {
		return ""
	}

	minT, maxT := c.Temps[0], c.Temps[0]
	minV, maxV := c.Values[0], c.Values[0]
	for i := range c.Temps {
		if c.Temps[i] < minT {
			minT = c.Temps[i]
		}
		if c.Temps[i] > maxT {
			maxT = c.Temps[i]
		}
		if c.Values[i] < minV {
			minV = c.Values[i]
		}
		if c.Values[i] > maxV {
			maxV = c.Values[i]
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minT -= rangeT * 0.1
	maxT += rangeT * 0.1
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeT = maxT - minT
	rangeV = maxV - minV

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range c.Temps {
		x := (c.Temps[i] - minT) / rangeT * float64(width)
		y := float64(height) - (c.Values[i]-minV)/rangeV*float64(height)

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
