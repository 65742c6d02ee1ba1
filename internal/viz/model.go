package viz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	barGap        = 1
	chartHeight   = 6
	speedStep     = 1.25
)

type snapshotMsg struct{}

// Model is the interactive player. The controller ticks on its own timer;
// every change is forwarded to the Bubble Tea loop as a snapshotMsg.
type Model struct {
	ctrl     *playback.Controller
	registry *experiment.Registry
	updates  chan struct{}
	keys     keyMap
	help     help.Model
	theme    Theme
	snap     playback.Snapshot

	width, height int
	showChart     bool
	showInfo      bool
}

func NewModel(ctrl *playback.Controller, registry *experiment.Registry, theme Theme) Model {
	updates := make(chan struct{}, 1)
	ctrl.Subscribe(func(playback.Snapshot) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	return Model{
		ctrl:     ctrl,
		registry: registry,
		updates:  updates,
		keys:     keys,
		help:     help.New(),
		theme:    theme,
		snap:     ctrl.Current(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func waitForSnapshot(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return snapshotMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case snapshotMsg:
		m.snap = m.ctrl.Current()
		return m, waitForSnapshot(m.updates)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.ctrl.Stop()
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.snap = m.ctrl.Current()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Play):
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Forward):
		m.ctrl.StepForward()
	case key.Matches(msg, m.keys.Backward):
		m.ctrl.StepBackward()
	case key.Matches(msg, m.keys.Start):
		m.ctrl.JumpToStart()
	case key.Matches(msg, m.keys.End):
		m.ctrl.JumpToEnd()
	case key.Matches(msg, m.keys.Faster):
		m.ctrl.SetSpeed(m.ctrl.Speed() * speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.ctrl.SetSpeed(m.ctrl.Speed() / speedStep)
	case key.Matches(msg, m.keys.Algorithm):
		_ = m.ctrl.SetAlgorithm(next(algorithms.Names(), m.snap.Algorithm))
	case key.Matches(msg, m.keys.Order):
		_ = m.ctrl.GenerateWith(next(datagen.Orders(), m.ctrl.Config().SortOrder))
	case key.Matches(msg, m.keys.Generate):
		m.ctrl.Generate()
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
	case key.Matches(msg, m.keys.Chart):
		m.showChart = !m.showChart
	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func next[T comparable](items []T, current T) T {
	i := slices.Index(items, current)
	return items[(i+1)%len(items)]
}

func (m Model) View() string {
	cfg := m.ctrl.Config()
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	text := lipgloss.NewStyle().Foreground(m.theme.Text)

	name := m.snap.Algorithm
	alg, err := m.registry.Algorithm(name)
	if err == nil {
		name = alg.Title
	}

	var b strings.Builder
	b.WriteString(title.Render(name))
	b.WriteString(Subtle.Render(fmt.Sprintf("  %s · %d bars · values %d-%d", cfg.SortOrder, cfg.NumBars, cfg.MinValue, cfg.MaxValue)))
	b.WriteString("\n")
	b.WriteString(m.statusLine(text))
	b.WriteString("\n\n")
	b.WriteString(m.renderBars(cfg.MaxValue))
	b.WriteString("\n")
	if legend := Legend(m.snap.Step, m.theme); legend != "" {
		b.WriteString(text.Render(legend))
	}
	b.WriteString("\n")
	b.WriteString(ProgressBar(m.snap.Progress(), max(m.width-2, 10)))
	b.WriteString("\n")

	if m.showChart {
		chart := ProgressChart(m.ctrl.Steps(), m.snap.Cursor, max(m.width-12, 20), chartHeight,
			"comparisons (red) / swaps (green)")
		b.WriteString(Panel.BorderForeground(m.theme.Border).Render(chart))
		b.WriteString("\n")
	}
	if m.showInfo && err == nil {
		b.WriteString(m.infoPanel(alg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine(text lipgloss.Style) string {
	var state string
	switch m.snap.State {
	case playback.Playing:
		state = StatusRunning.Render("▶ playing")
	case playback.Paused:
		state = StatusPaused.Render("⏸ paused")
	default:
		state = StatusIdle.Render("■ idle")
	}
	return strings.Join([]string{
		state,
		MetricLabel.Render("step ") + MetricValue.Render(fmt.Sprintf("%d/%d", m.snap.Cursor+1, m.snap.Len)),
		MetricLabel.Render("speed ") + MetricValue.Render(fmt.Sprintf("x%.2g", m.snap.Speed)),
		MetricLabel.Render("action ") + text.Render(string(m.snap.Step.Action)),
	}, "   ")
}

func (m Model) barHeight() int {
	reserved := 8
	if m.showChart {
		reserved += chartHeight + 4
	}
	if m.showInfo {
		reserved += 6
	}
	if m.help.ShowAll {
		reserved += 4
	}
	return max(4, min(m.height-reserved, 24))
}

func (m Model) renderBars(maxValue int) string {
	step := m.snap.Step
	height := m.barHeight()
	width := FitBarWidth(len(step.State), m.width, barGap)
	if width == 0 {
		return RenderCompact(step, height, maxValue, m.theme)
	}
	return RenderBars(step, BarOptions{
		Height:     height - 1,
		MaxValue:   maxValue,
		BarWidth:   width,
		Gap:        barGap,
		ShowValues: width >= 2,
	}, m.theme)
}

func (m Model) infoPanel(alg experiment.Algorithm) string {
	stable := "no"
	if alg.Stable {
		stable = "yes"
	}
	body := lipgloss.NewStyle().Width(max(m.width-6, 20)).Render(alg.Description) + "\n" +
		MetricLabel.Render("time ") + fmt.Sprintf("best %s, average %s, worst %s",
		alg.Complexity.Best, alg.Complexity.Average, alg.Complexity.Worst) +
		MetricLabel.Render("   space ") + alg.Complexity.Space +
		MetricLabel.Render("   stable ") + stable
	return Panel.BorderForeground(m.theme.Border).Render(body)
}

// Run starts the full-screen player and blocks until the user quits.
func Run(ctrl *playback.Controller, registry *experiment.Registry, theme Theme) error {
	p := tea.NewProgram(NewModel(ctrl, registry, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
