// Package ui renders check progress in the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bridgec/internal/buildpipeline"
)

// доля работы, выполненной к началу стадии
var stageWeight = map[buildpipeline.Stage]float64{
	buildpipeline.StageLex:    0.2,
	buildpipeline.StageParse:  0.5,
	buildpipeline.StageVerify: 0.8,
}

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleActive  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleIdle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleElapsed = lipgloss.NewStyle().Faint(true)
)

const labelWidth = 10

// fileState is the last known state of one interface file.
type fileState struct {
	path    string
	stage   buildpipeline.Stage
	status  buildpipeline.Status
	elapsed time.Duration
}

func (f fileState) finished() bool {
	switch f.status {
	case buildpipeline.StatusDone, buildpipeline.StatusCached, buildpipeline.StatusError:
		return true
	default:
		return false
	}
}

// label is what the status column shows.
func (f fileState) label() string {
	if f.status != buildpipeline.StatusWorking {
		return string(f.status)
	}
	switch f.stage {
	case buildpipeline.StageLex:
		return "lexing"
	case buildpipeline.StageParse:
		return "parsing"
	case buildpipeline.StageVerify:
		return "verifying"
	default:
		return "loading"
	}
}

func (f fileState) style() lipgloss.Style {
	switch f.status {
	case buildpipeline.StatusDone, buildpipeline.StatusCached:
		return styleOK
	case buildpipeline.StatusError:
		return styleFailed
	case buildpipeline.StatusWorking:
		return styleActive
	default:
		return styleIdle
	}
}

// tally counts finished files by outcome.
type tally struct {
	ok, failed, cached int
}

func (t tally) finished() int { return t.ok + t.failed + t.cached }

type checkModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileState
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg buildpipeline.Event
type closedMsg struct{}

// NewProgressModel builds the Bubble Tea model for checking files. It quits
// once events is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleActive

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &checkModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		files:   make([]fileState, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, path := range files {
		m.files[i] = fileState{path: path, stage: buildpipeline.StageLoad, status: buildpipeline.StatusQueued}
		m.byPath[path] = i
	}
	return m
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(buildpipeline.Event(msg)), m.next())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-4, 10)
		}
		return m, nil
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// next waits for the following pipeline event.
func (m *checkModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

// apply records ev. Events for files outside the list are ignored.
func (m *checkModel) apply(ev buildpipeline.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	f := &m.files[i]
	f.stage, f.status = ev.Stage, ev.Status
	if f.finished() {
		f.elapsed = ev.Elapsed
	}
	return m.bar.SetPercent(m.percent())
}

func (m *checkModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	total := 0.0
	for _, f := range m.files {
		if f.finished() {
			total++
			continue
		}
		total += stageWeight[f.stage]
	}
	return total / float64(len(m.files))
}

func (m *checkModel) tally() tally {
	var t tally
	for _, f := range m.files {
		switch f.status {
		case buildpipeline.StatusDone:
			t.ok++
		case buildpipeline.StatusCached:
			t.cached++
		case buildpipeline.StatusError:
			t.failed++
		}
	}
	return t
}

func (m *checkModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	t := m.tally()
	prefix := m.spinner.View()
	if m.closed {
		prefix = "done:"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %s %d/%d", prefix, m.title, t.finished(), len(m.files))))
	b.WriteString("\n\n")

	nameWidth := max(m.width-labelWidth-16, 20)
	for _, f := range m.files {
		fmt.Fprintf(&b, "  %s %s", f.style().Render(fmt.Sprintf("%*s", labelWidth, f.label())), truncate(f.path, nameWidth))
		if f.finished() && f.elapsed > 0 {
			b.WriteString(" " + styleElapsed.Render(fmt.Sprintf("%.1fms", float64(f.elapsed.Microseconds())/1000)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	if t.failed > 0 || t.cached > 0 {
		fmt.Fprintf(&b, "%s, %s, %d cached\n",
			styleOK.Render(fmt.Sprintf("%d ok", t.ok)), styleFailed.Render(fmt.Sprintf("%d failed", t.failed)), t.cached)
	}
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

// RunProgress shows the progress of checking files on w until events is closed.
func RunProgress(title string, files []string, events <-chan buildpipeline.Event, w io.Writer) error {
	_, err := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(w), tea.WithInput(nil)).Run()
	return err
}
