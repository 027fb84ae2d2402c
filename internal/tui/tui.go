// Package tui provides a Bubble Tea terminal user interface for mbzcue.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"mbzcue/internal/config"
	"mbzcue/internal/generate"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BA68C8")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	releaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateFetching
	StateGenerating
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// eventBuffer collects progress events from the manager's callback
// goroutines; the UI drains it on each tick.
type eventBuffer struct {
	mu     sync.Mutex
	events []generate.ProgressEvent
}

func (b *eventBuffer) add(event generate.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *eventBuffer) drain() []generate.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	urlInput  textinput.Model
	wavInput  textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	releases  []string
	err       error
	events    *eventBuffer

	ctx    context.Context
	cancel context.CancelFunc

	manager *generate.Manager

	writtenFiles int32
	totalFiles   int32

	// Options
	coverArt bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://musicbrainz.org/release/<mbid>"
	urlInput.Focus()
	urlInput.CharLimit = 500
	urlInput.Width = 60

	wavInput := textinput.New()
	wavInput.Placeholder = "album.wav"
	wavInput.CharLimit = 200
	wavInput.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BA68C8"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		urlInput: urlInput,
		wavInput: wavInput,
		spinner:  sp,
		progress: prog,
		settings: config.DefaultSettings(),
		logs:     make([]LogEntry, 0),
		events:   &eventBuffer{},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when fetching and parsing completes.
	InitDoneMsg struct {
		Releases []string
		Manager  *generate.Manager
		Err      error
	}

	// GenerateDoneMsg is sent when all cue sheets are written.
	GenerateDoneMsg struct {
		Written int32
		Total   int32
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateFetching || m.state == StateGenerating {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab":
			if m.state == StateInput {
				if m.urlInput.Focused() {
					m.urlInput.Blur()
					m.wavInput.Focus()
				} else {
					m.wavInput.Blur()
					m.urlInput.Focus()
				}
			}

		case "enter":
			if m.state == StateInput && m.urlInput.Value() != "" {
				m.state = StateFetching
				return m, tea.Batch(m.fetchReleases(), m.spinner.Tick, m.tickProgress())
			}

		case "ctrl+a":
			if m.state == StateInput {
				m.coverArt = !m.coverArt
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another release
				m.state = StateInput
				m.logs = nil
				m.releases = nil
				m.err = nil
				m.writtenFiles = 0
				m.totalFiles = 0
				m.manager = nil
				m.events = &eventBuffer{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.urlInput.SetValue("")
				m.urlInput.Focus()
				m.wavInput.Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.releases = msg.Releases
			m.manager = msg.Manager
			m.state = StateGenerating
			cmds = append(cmds, m.startGeneration(), m.tickProgress())
		}

	case GenerateDoneMsg:
		m.writtenFiles = msg.Written
		m.totalFiles = msg.Total
		m.drainEvents()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		m.drainEvents()
		if m.manager != nil && m.state == StateGenerating {
			written, total := m.manager.GetProgress()
			m.writtenFiles = written
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(written) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent))
		}
		if m.state == StateFetching || m.state == StateGenerating {
			cmds = append(cmds, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		if m.urlInput.Focused() {
			m.urlInput, cmd = m.urlInput.Update(msg)
		} else {
			m.wavInput, cmd = m.wavInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainEvents moves buffered manager events into the visible log.
func (m *Model) drainEvents() {
	for _, event := range m.events.drain() {
		if event.Level == generate.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("mbzcue"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Turn a MusicBrainz release into a cue sheet"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Release URL:"))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Audio file to reference:"))
	b.WriteString("\n")
	b.WriteString(m.wavInput.View())
	b.WriteString("\n\n")

	coverCheck := "[ ]"
	if m.coverArt {
		coverCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Save cover art (ctrl+a)\n", coverCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDirectory)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching release info..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	if len(m.releases) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Found %d release(s):", len(m.releases))))
		b.WriteString("\n")
		for _, release := range m.releases {
			b.WriteString(releaseStyle.Render(fmt.Sprintf("  %s", release)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.writtenFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.writtenFiles, m.totalFiles)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Done!\n\n"+
			"Releases: %d\n"+
			"Files written: %d",
		len(m.releases),
		m.writtenFiles,
	))
	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: switch field • ctrl+a: cover art • ctrl+v: verbose • esc: quit"
	case StateFetching, StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: another release • q: quit"
	}
	return ""
}

// fetchReleases fetches release info and creates the manager.
func (m *Model) fetchReleases() tea.Cmd {
	url := m.urlInput.Value()
	wav := m.wavInput.Value()
	events := m.events
	ctx := m.ctx

	settings := config.DefaultSettings()
	settings.SaveCoverArt = m.coverArt
	if wav != "" {
		settings.WaveFileName = wav
	}

	return func() tea.Msg {
		manager := generate.NewManager(settings, events.add)

		if err := manager.Initialize(ctx, url); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Releases: manager.GetReleaseNames(),
			Manager:  manager,
		}
	}
}

// startGeneration writes the cue sheets in the background.
func (m *Model) startGeneration() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return GenerateDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := manager.Generate(ctx)
		written, total := manager.GetProgress()

		return GenerateDoneMsg{
			Written: written,
			Total:   total,
			Err:     err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
