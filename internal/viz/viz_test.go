package viz

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func step(values ...int) trace.Step {
	a := make(trace.Array, len(values))
	for i, v := range values {
		a[i] = trace.Element{ID: string(rune('a' + i)), Value: v}
	}
	return trace.Step{State: a, Action: trace.ActionCompare}
}

func column(lines []string, col int) string {
	var b strings.Builder
	for _, l := range lines {
		r := []rune(l)
		if col < len(r) {
			b.WriteRune(r[col])
		}
	}
	return b.String()
}

func TestRenderBars_Heights(t *testing.T) {
	out := RenderBars(step(4, 2, 1), BarOptions{Height: 4, MaxValue: 4, BarWidth: 1, Gap: 1}, ThemeClassic)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "████", column(lines, 0))
	assert.Equal(t, "  ██", column(lines, 2))
	assert.Equal(t, "   █", column(lines, 4))
}

func TestRenderBars_PartialAndMinimum(t *testing.T) {
	out := RenderBars(step(1, 3), BarOptions{Height: 1, MaxValue: 100, BarWidth: 2}, ThemeClassic)
	assert.Equal(t, "▁▁▁▁", out)
}

func TestRenderBars_Values(t *testing.T) {
	out := RenderBars(step(7, 42, 100), BarOptions{Height: 2, MaxValue: 100, BarWidth: 2, Gap: 1, ShowValues: true}, ThemeClassic)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " 7 42 ··", lines[2])
}

func TestRenderCompact(t *testing.T) {
	out := RenderCompact(step(8, 4, 1), 2, 8, ThemeClassic)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Len(t, []rune(lines[0]), 2)
	assert.NotEqual(t, string(rune(brailleBlank)), string([]rune(lines[0])[0]), "tall bar reaches the top row")
	assert.Equal(t, string(rune(brailleBlank)), string([]rune(lines[0])[1]), "short bar stays in the bottom row")
}

func TestToneAt(t *testing.T) {
	s := step(1, 2, 3)
	s.Indices = []trace.IndexHighlight{trace.Mark(trace.ToneRed, "", 2)}
	s.Ranges = trace.SortedRange(1, 2)

	_, ok := ToneAt(s, 0)
	assert.False(t, ok)
	tone, _ := ToneAt(s, 1)
	assert.Equal(t, trace.ToneGreen, tone)
	tone, _ = ToneAt(s, 2)
	assert.Equal(t, trace.ToneRed, tone, "index highlight wins over range")
}

func TestLegend(t *testing.T) {
	s := step(1, 2, 3)
	s.Indices = []trace.IndexHighlight{
		trace.Mark(trace.ToneGreen, trace.LabelMin, 0),
		trace.Mark(trace.ToneRed, "", 1),
		trace.Mark(trace.ToneGreen, trace.LabelMin, 2),
	}
	s.Ranges = trace.SortedRange(0, 0)
	assert.Equal(t, "■ Min  ■ Sorted", Legend(s, ThemeClassic))
	assert.Empty(t, Legend(step(1), ThemeClassic))
}

func TestFitBarWidth(t *testing.T) {
	assert.Equal(t, 3, FitBarWidth(15, 80, 1))
	assert.Equal(t, 1, FitBarWidth(40, 80, 1))
	assert.Equal(t, 0, FitBarWidth(100, 80, 1))
	assert.Equal(t, 0, FitBarWidth(0, 80, 1))
}

func TestCumulativeSeries(t *testing.T) {
	steps := []trace.Step{
		{Action: trace.ActionStart},
		{Action: trace.ActionCompare},
		{Action: trace.ActionSwap},
		{Action: trace.ActionCompare},
		{Action: trace.ActionDone},
	}
	c, s := CumulativeSeries(steps, 3)
	assert.Equal(t, []float64{0, 1, 1, 2}, c)
	assert.Equal(t, []float64{0, 0, 1, 1}, s)

	c, s = CumulativeSeries(steps, 0)
	assert.Len(t, c, 2)
	assert.Len(t, s, 2)

	assert.NotEmpty(t, ProgressChart(steps, 4, 20, 3, "x"))
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "ocean", GetTheme("ocean").Name)
	assert.Equal(t, "classic", GetTheme("missing").Name)
	assert.Equal(t, Themes[1].Name, NextTheme(Themes[0].Name).Name)
	assert.Equal(t, Themes[0].Name, NextTheme(Themes[len(Themes)-1].Name).Name)
	assert.Len(t, ThemeNames(), len(Themes))
	assert.Equal(t, ThemeClassic.Red, ThemeClassic.Tone(trace.ToneRed))
	assert.Equal(t, ThemeClassic.Bar, ThemeClassic.Tone(""))
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(1, 1)
	c.VerticalBar(0, 4)
	assert.Equal(t, string(rune(brailleBlank|0x1|0x2|0x4|0x40)), c.String())
	c.Set(-1, 0)
	c.Set(5, 5)
	c.Clear()
	assert.Equal(t, string(rune(brailleBlank)), c.String())
}

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	ctrl, err := playback.New(cfg)
	require.NoError(t, err)
	t.Cleanup(ctrl.Stop)
	return NewModel(ctrl, experiment.NewRegistry(), ThemeClassic)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_Navigation(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.snap.Cursor)
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.snap.Cursor)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.snap.AtEnd())
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.snap.Cursor)
}

func TestModel_PlayPause(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, playback.Playing, m.snap.State)
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, playback.Paused, m.snap.State)
}

func TestModel_SwitchesAlgorithmAndSpeed(t *testing.T) {
	m := newModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "selection", m.snap.Algorithm)

	m = press(m, runes("+"))
	assert.Greater(t, m.snap.Speed, 1.0)
	m = press(m, runes("o"))
	assert.Equal(t, "sortedAscending", string(m.ctrl.Config().SortOrder))
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View(t *testing.T) {
	m := newModel(t)
	m = press(m, runes("c"))
	m = press(m, runes("i"))
	view := m.View()
	assert.Contains(t, view, "Bubble Sort")
	assert.Contains(t, view, "1/")
	assert.Contains(t, view, "comparisons (red)")
	assert.Contains(t, view, "O(n²)")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.NotEmpty(t, next.View())
}

func TestModel_ReceivesTimerUpdates(t *testing.T) {
	m := newModel(t)
	cmd := m.Init()
	m.ctrl.StepForward()
	msg := cmd()
	next, _ := m.Update(msg)
	assert.Equal(t, 1, next.(Model).snap.Cursor)
}
