// Package viz renders curve sets as terminal plots.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/radsim/internal/request"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Render draws every series of the set as its own ascii plot, with a
// styled title and axis summary on top.
func Render(c request.Curves) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(c.Title))
	sb.WriteString("\n")
	if len(c.X) > 0 {
		sb.WriteString(subtleStyle.Render(fmt.Sprintf("%s: %.4g .. %.4g   %s",
			c.XLabel, c.X[0], c.X[len(c.X)-1], c.YLabel)))
		sb.WriteString("\n\n")
	}

	for _, s := range c.Series {
		graph := asciigraph.Plot(s.Values,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(s.Label),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Summary is a one-line stats row for a single series.
func Summary(label string, values []float64) string {
	if len(values) == 0 {
		return labelStyle.Render(label) + valueStyle.Render(" (empty)")
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return fmt.Sprintf("%s %s",
		labelStyle.Render(label),
		valueStyle.Render(fmt.Sprintf("min=%.4g max=%.4g n=%d", min, max, len(values))))
}
