package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type BarOptions struct {
	Height     int // rows of bar area
	MaxValue   int // value drawn at full height
	BarWidth   int
	Gap        int
	ShowValues bool // value row under the bars
}

// ToneAt resolves the colour role of position i. Index highlights win over
// ranges.
func ToneAt(step trace.Step, i int) (trace.Tone, bool) {
	if h, ok := step.Highlight(i); ok {
		return h.Tone, true
	}
	if r, ok := step.Range(i); ok {
		return r.Tone, true
	}
	return "", false
}

// FitBarWidth picks the widest bar, up to 3 cells, for n bars in width
// columns. Zero means the bars do not fit and the compact renderer is needed.
func FitBarWidth(n, width, gap int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(3, (width+gap)/n-gap))
}

// RenderBars draws one column of block glyphs per element, bottom aligned,
// with eighth-cell resolution on the top glyph.
func RenderBars(step trace.Step, opts BarOptions, theme Theme) string {
	n := len(step.State)
	if n == 0 || opts.Height <= 0 {
		return ""
	}
	maxValue := max(opts.MaxValue, 1)
	width := max(opts.BarWidth, 1)
	gap := strings.Repeat(" ", max(opts.Gap, 0))

	levels := make([]int, n)
	styles := make([]lipgloss.Style, n)
	for i, e := range step.State {
		levels[i] = max(1, min(e.Value*opts.Height*8/maxValue, opts.Height*8))
		color := theme.Bar
		if tone, ok := ToneAt(step, i); ok {
			color = theme.Tone(tone)
		}
		styles[i] = lipgloss.NewStyle().Foreground(color)
	}

	lines := make([]string, 0, opts.Height+1)
	for row := opts.Height - 1; row >= 0; row-- {
		cells := make([]string, n)
		for i, level := range levels {
			fill := max(0, min(level-row*8, 8))
			cells[i] = styles[i].Render(strings.Repeat(string(eighths[fill]), width))
		}
		lines = append(lines, strings.Join(cells, gap))
	}

	if opts.ShowValues {
		cells := make([]string, n)
		for i, e := range step.State {
			v := fmt.Sprint(e.Value)
			if len(v) > width {
				v = strings.Repeat("·", width)
			}
			cells[i] = Subtle.Render(fmt.Sprintf("%*s", width, v))
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

// RenderCompact draws two elements per terminal column on a Braille canvas.
// A cell takes the tone of its first highlighted element.
func RenderCompact(step trace.Step, height, maxValue int, theme Theme) string {
	n := len(step.State)
	if n == 0 || height <= 0 {
		return ""
	}
	maxValue = max(maxValue, 1)
	dots := height * 4

	c := NewCanvas((n+1)/2, height)
	for i, e := range step.State {
		c.VerticalBar(i, max(1, min(e.Value*dots/maxValue, dots)))
	}

	colStyles := make([]lipgloss.Style, c.Width)
	for col := range colStyles {
		color := theme.Bar
		for _, i := range []int{2 * col, 2*col + 1} {
			if i >= n {
				break
			}
			if tone, ok := ToneAt(step, i); ok {
				color = theme.Tone(tone)
				break
			}
		}
		colStyles[col] = lipgloss.NewStyle().Foreground(color)
	}

	lines := make([]string, c.Height)
	for r, row := range c.Grid {
		var b strings.Builder
		for col, cell := range row {
			b.WriteString(colStyles[col].Render(string(cell)))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Legend lists each distinct labelled highlight of the step once, in the
// order the step declares them.
func Legend(step trace.Step, theme Theme) string {
	type entry struct {
		label string
		tone  trace.Tone
	}
	var entries []entry
	seen := map[entry]bool{}
	add := func(label string, tone trace.Tone) {
		e := entry{label, tone}
		if label == "" || seen[e] {
			return
		}
		seen[e] = true
		entries = append(entries, e)
	}
	for _, h := range step.Indices {
		add(h.Label, h.Tone)
	}
	for _, r := range step.Ranges {
		add(r.Label, r.Tone)
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(theme.Tone(e.tone)).Render("■")
		parts[i] = swatch + " " + e.label
	}
	return strings.Join(parts, "  ")
}
