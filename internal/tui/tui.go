// Package tui provides a Bubble Tea terminal user interface for tunesync:
// an edit form over the library whose inputs commit through bindings, plus
// a log pane showing what the outbound channel would send.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tunesync/internal/config"
	"tunesync/internal/convert"
	"tunesync/internal/library"
	"tunesync/internal/model"
	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	outboundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current UI state.
type State int

const (
	// StateBrowse navigates between fields.
	StateBrowse State = iota

	// StateEdit edits the selected field through its binding.
	StateEdit
)

// fieldRow is one editable line of the form: a label plus the binding
// that bridges the underlying model field to text.
type fieldRow struct {
	label   string
	binding observe.Binding[string]
}

// logBuffer collects log lines behind a pointer, so the synchronous
// outbound sink and field subscribers can append during a Bubble Tea
// update even though the model itself is passed by value.
type logBuffer struct {
	lines []string
}

func (b *logBuffer) add(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > 8 {
		b.lines = b.lines[len(b.lines)-8:]
	}
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	lib      *library.Library
	rows     []fieldRow
	selected int
	input    textinput.Model
	logs     *logBuffer

	// simulated inbound updates cycle through canned messages
	simulated   []netsync.Message
	nextSim     int
	simulate    bool
	simInterval time.Duration

	width  int
	height int
}

// simTickMsg fires one simulated peer update.
type simTickMsg struct{}

// newModel builds the TUI model over a library. The library's entities
// must already use a sink that feeds the log pane; NewSession wires both
// sides together.
func newModel(lib *library.Library, logs *logBuffer) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{
		state: StateBrowse,
		lib:   lib,
		input: ti,
		logs:  logs,
	}
	m.buildRows()
	m.buildSimulated()
	m.watchFields()
	return m
}

// NewSession builds the model from settings: the library is seeded from
// the configured music path (or the built-in sample when unset) with its
// outbound sink wired to the log pane, and the simulated-network knobs
// control the periodic peer updates.
func NewSession(settings *config.Settings) (Model, error) {
	logs := &logBuffer{}
	sink := netsync.NewLogSender(func(l netsync.Line) {
		logs.add(outboundStyle.Render("→ " + l.Message))
	})

	var lib *library.Library
	if settings.MusicPath != "" {
		loader := library.NewLoader(settings.MaxConcurrentTagReads, sink)
		var err error
		lib, err = loader.Load(context.Background(), settings.MusicPath)
		if err != nil {
			return Model{}, fmt.Errorf("seeding library from %s: %w", settings.MusicPath, err)
		}
	} else {
		lib = library.Sample(sink)
	}

	m := newModel(lib, logs)
	m.simulate = settings.SimulateNetwork && len(m.simulated) > 0
	m.simInterval = time.Duration(settings.SimulateIntervalSeconds * float64(time.Second))
	if m.simInterval <= 0 {
		m.simInterval = 5 * time.Second
	}
	return m, nil
}

// buildRows flattens the first artist tree into editable rows. String
// fields bind directly; numeric and duration fields bind through the
// text converters.
func (m *Model) buildRows() {
	if len(m.lib.Artists) == 0 {
		return
	}
	artist := m.lib.Artists[0]

	m.rows = append(m.rows,
		fieldRow{"Artist name", observe.Bind(artist, &artist.Name)},
		fieldRow{"Year founded", observe.BindWith(artist, &artist.YearFounded, convert.FormatInt, convert.ParseInt)},
	)

	for _, album := range artist.Albums {
		m.rows = append(m.rows,
			fieldRow{"Album title", observe.Bind(album, &album.Title)},
			fieldRow{"Release year", observe.BindWith(album, &album.ReleaseYear, convert.FormatInt, convert.ParseInt)},
		)
		for _, track := range album.Tracks {
			m.rows = append(m.rows,
				fieldRow{"  Track title", observe.Bind(track, &track.Title)},
				fieldRow{"  Duration", observe.BindWith(track, &track.Duration, convert.FormatDuration, convert.ParseDuration)},
			)
		}
	}
}

// buildSimulated prepares the canned peer updates cycled by the "n" key.
func (m *Model) buildSimulated() {
	if len(m.lib.Artists) == 0 {
		return
	}
	artist := m.lib.Artists[0]
	m.simulated = append(m.simulated,
		netsync.Message{Entity: artist.ID(), Field: "yearFounded", Value: 1990},
		netsync.Message{Entity: artist.ID(), Field: "name", Value: artist.Name.Get() + " (peer)"},
	)
	if len(artist.Albums) > 0 {
		album := artist.Albums[0]
		m.simulated = append(m.simulated,
			netsync.Message{Entity: album.ID(), Field: "releaseYear", Value: album.ReleaseYear.Get() + 1},
		)
	}
}

// watchFields subscribes to every bound field so the log pane shows that
// observers refresh on every write, whatever its origin.
func (m *Model) watchFields() {
	logs := m.logs
	forArtist := func(ar *model.Artist) {
		ar.Name.Subscribe(func(v string) { logs.add(infoStyle.Render(fmt.Sprintf("observed %s = %q", ar.Name.Ref(), v))) })
		ar.YearFounded.Subscribe(func(v int) { logs.add(infoStyle.Render(fmt.Sprintf("observed %s = %d", ar.YearFounded.Ref(), v))) })
	}
	for _, artist := range m.lib.Artists {
		forArtist(artist)
		for _, album := range artist.Albums {
			album := album
			album.Title.Subscribe(func(v string) { logs.add(infoStyle.Render(fmt.Sprintf("observed %s = %q", album.Title.Ref(), v))) })
			album.ReleaseYear.Subscribe(func(v int) { logs.add(infoStyle.Render(fmt.Sprintf("observed %s = %d", album.ReleaseYear.Ref(), v))) })
			for _, track := range album.Tracks {
				track := track
				track.Title.Subscribe(func(v string) { logs.add(infoStyle.Render(fmt.Sprintf("observed %s = %q", track.Title.Ref(), v))) })
			}
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.simulate {
		return tea.Batch(textinput.Blink, m.simTick())
	}
	return textinput.Blink
}

// simTick schedules the next simulated peer update.
func (m Model) simTick() tea.Cmd {
	return tea.Tick(m.simInterval, func(_ time.Time) tea.Msg {
		return simTickMsg{}
	})
}

// applySimulated applies the next canned network-origin update: observers
// refresh, nothing is forwarded outbound.
func (m *Model) applySimulated() {
	if len(m.simulated) == 0 {
		return
	}
	sim := m.simulated[m.nextSim%len(m.simulated)]
	m.nextSim++
	if err := m.lib.Apply(sim); err != nil {
		m.logs.add(warningStyle.Render("inbound: " + err.Error()))
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case simTickMsg:
		if !m.simulate {
			return m, nil
		}
		m.applySimulated()
		return m, m.simTick()

	case tea.KeyMsg:
		if m.state == StateEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == StateEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case "enter":
		if len(m.rows) == 0 {
			return m, nil
		}
		m.state = StateEdit
		m.input.SetValue(m.rows[m.selected].binding.Get())
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "n":
		m.applySimulated()
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = StateBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		// Committing through the binding tags the edit with UI origin;
		// unchanged values are suppressed by the binding itself.
		m.rows[m.selected].binding.Set(m.input.Value())
		m.state = StateBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tunesync"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("edit locally and watch what leaves for the peer"))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		cursor := "  "
		label := fmt.Sprintf("%-14s", row.label)
		value := row.binding.Get()

		if i == m.selected {
			cursor = selectedStyle.Render("> ")
			if m.state == StateEdit {
				b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, selectedStyle.Render(label), m.input.View()))
				continue
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, selectedStyle.Render(label), value))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, subtitleStyle.Render(label), value))
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("log"))
	b.WriteString("\n")
	if len(m.logs.lines) == 0 {
		b.WriteString(dimStyle.Render("  (nothing yet)"))
		b.WriteString("\n")
	}
	for _, line := range m.logs.lines {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) helpText() string {
	if m.state == StateEdit {
		return "enter: commit • esc: cancel"
	}
	return "↑/↓: select • enter: edit • n: simulate network update • q: quit"
}

// Run starts the TUI application with the given settings.
func Run(settings *config.Settings) error {
	m, err := NewSession(settings)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
