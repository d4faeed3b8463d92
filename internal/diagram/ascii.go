package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/section"
)

// Profile is a sampled curve, Y over X.
type Profile struct {
	X []float64
	Y []float64
}

// StressProfile samples the root bending stress σx over the section height,
// from the lower (z = 0) to the upper extreme fiber, at n+1 points.
func StressProfile(c *cantilever.Cantilever, f float64, n int) Profile {
	if n < 1 {
		n = 1
	}
	p := Profile{X: make([]float64, n+1), Y: make([]float64, n+1)}
	for i := 0; i <= n; i++ {
		z := c.Section.H * float64(i) / float64(n)
		p.X[i] = z
		p.Y[i] = c.Stress(f, 0, z)
	}
	return p
}

// MomentProfile samples the bending moment My from the clamped end to the
// tip at n+1 points.
func MomentProfile(c *cantilever.Cantilever, f float64, n int) Profile {
	if n < 1 {
		n = 1
	}
	p := Profile{X: make([]float64, n+1), Y: make([]float64, n+1)}
	for i := 0; i <= n; i++ {
		x := c.L * float64(i) / float64(n)
		p.X[i] = x
		p.Y[i] = c.My(f, x)
	}
	return p
}

// DrawSection creates an ASCII sketch of the I-section, scaled to the
// envelope, with the centroid marked.
func DrawSection(g section.Geometry, props section.Properties) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 16

	width := g.Width()
	if !(width > 0) || !(g.H > 0) {
		return "  (no section to draw)\n"
	}

	cols := func(b float64) int {
		n := int(math.Round(b / width * float64(widthChars)))
		return min(max(n, 1), widthChars)
	}

	dz := g.H / float64(heightChars)
	cgLine := int((g.H - props.Cg) / dz)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  I-SECTION  h = %.1f mm, b = %.1f mm\n", g.H, width))
	sb.WriteString("  ──────────\n")

	for i := 0; i < heightChars; i++ {
		z := g.H - (float64(i)+0.5)*dz

		var n int
		var label string
		switch {
		case g.Tuf > 0 && (i == 0 || z >= g.H-g.Tuf):
			n = cols(g.Buf)
			if i == 0 {
				label = fmt.Sprintf("upper flange %.1f × %.1f", g.Buf, g.Tuf)
			}
		case g.Tlf > 0 && (i == heightChars-1 || z <= g.Tlf):
			n = cols(g.Blf)
			if i == heightChars-1 {
				label = fmt.Sprintf("lower flange %.1f × %.1f", g.Blf, g.Tlf)
			}
		default:
			n = cols(g.Tw)
		}

		pad := (widthChars - n) / 2
		row := strings.Repeat(" ", pad) + strings.Repeat("█", n) + strings.Repeat(" ", widthChars-pad-n)
		if i == cgLine {
			row = strings.ReplaceAll(row, " ", "·")
			label = fmt.Sprintf("◄─ cg = %.1f mm", props.Cg)
		}
		sb.WriteString("  " + row)
		if label != "" {
			sb.WriteString("  " + label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n  web %.1f mm, clear height %.1f mm\n", g.Tw, props.WebHeight))
	return sb.String()
}

// DrawProfile plots a profile as an ASCII line chart. Non-finite samples
// are dropped.
func DrawProfile(p Profile, caption string) string {
	data := make([]float64, 0, len(p.Y))
	for _, v := range p.Y {
		if finite(v) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return "  (no data)\n"
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func padRight(s string, n int) string {
	if k := n - len([]rune(s)); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
