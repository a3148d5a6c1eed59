package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/sorting"
)

var (
	watchLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(28)
	watchPastStyle  = lipgloss.NewStyle().Foreground(colorDim).Width(28)
	watchHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// WatchModel - step through the passes of a sort
// =============================================================================

// watchFrame is one row shown by the watch view.
type watchFrame struct {
	label string
	row   disks.State
	swaps int
}

// WatchModel is the bubbletea model for the watch command. It starts playing
// and advances one pass per interval; the arrow keys step manually.
type WatchModel struct {
	Result   sorting.Result
	Frames   []watchFrame
	Cursor   int
	Playing  bool
	Interval time.Duration

	// gen invalidates ticks scheduled before the last pause or resume.
	gen int
}

type watchTickMsg struct{ gen int }

// NewWatchModel builds a model from a traced run.
func NewWatchModel(run sorting.Run, interval time.Duration) WatchModel {
	frames := []watchFrame{{label: "start", row: run.Before}}
	for _, st := range run.Steps {
		frames = append(frames, watchFrame{
			label: fmt.Sprintf("pass %d %s", st.Pass, st.Direction),
			row:   st.Row,
			swaps: st.Swaps,
		})
	}
	return WatchModel{
		Result:   run.Result,
		Frames:   frames,
		Playing:  len(frames) > 1,
		Interval: interval,
	}
}

func (m WatchModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Interval, func(time.Time) tea.Msg { return watchTickMsg{gen: gen} })
}

func (m WatchModel) last() int { return len(m.Frames) - 1 }

func (m WatchModel) Init() tea.Cmd {
	if m.Playing {
		return m.tick()
	}
	return nil
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.gen++
			m.Playing = !m.Playing
			if m.Playing {
				if m.Cursor == m.last() {
					m.Cursor = 0
				}
				return m, m.tick()
			}
		case "left", "h":
			m.pause()
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l":
			m.pause()
			if m.Cursor < m.last() {
				m.Cursor++
			}
		case "home", "g":
			m.pause()
			m.Cursor = 0
		case "end", "G":
			m.pause()
			m.Cursor = m.last()
		}
	case watchTickMsg:
		if !m.Playing || msg.gen != m.gen {
			return m, nil
		}
		if m.Cursor < m.last() {
			m.Cursor++
		}
		if m.Cursor == m.last() {
			m.Playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *WatchModel) pause() {
	if m.Playing {
		m.Playing = false
		m.gen++
	}
}

func (m WatchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(string(m.Result.Algorithm())))
	b.WriteString("\n")
	b.WriteString(watchHelpStyle.Render("space play/pause  ←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	// Earlier frames stay visible, dimmed, so the disks can be seen moving.
	for i := 0; i <= m.Cursor; i++ {
		f := m.Frames[i]
		label := f.label
		if i > 0 {
			label += fmt.Sprintf(" (%d)", f.swaps)
		}
		style := watchLabelStyle
		if i < m.Cursor {
			style = watchPastStyle
		}
		b.WriteString(style.Render(label) + renderRow(f.row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(watchHelpStyle.Render(fmt.Sprintf("[%d/%d]", m.Cursor, m.last())))
	if m.Cursor == m.last() {
		b.WriteString("  ")
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("%d swaps, %d passes, %d comparisons",
			m.Result.SwapCount(), m.Result.Passes(), m.Result.Comparisons())))
	}
	b.WriteString("\n")

	return b.String()
}
