package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"localize/internal/app"
	"localize/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseCollect Phase = iota
	PhaseRunning
	PhaseDone
	PhaseError
)

const (
	focusSource = iota
	focusDestination
	focusFolder
	focusCount
)

// Messages for the TUI
type (
	eventMsg struct {
		Event app.Event
	}
	eventsClosedMsg struct{}
	folderSizeMsg   struct {
		Index int
		Size  int64
		Err   error
	}
	settingsSavedMsg struct{ Err error }
	ErrorMsg         struct{ Err error }
)

// StartJobFunc validates the collected configuration and launches the copy
// worker, returning its event channel.
type StartJobFunc func(job domain.Job) (<-chan app.Event, error)

// Config wires the shell to the core. The model never touches the worker or
// the settings store directly.
type Config struct {
	SourceRoot      string
	DestinationRoot string
	Folders         []string
	StartJob        StartJobFunc
	SaveSettings    func(sourceRoot, destinationRoot string) error
	FolderSize      func(path string) (int64, error)
}

type folderEntry struct {
	path  string
	size  int64
	sized bool
}

// Model is the main TUI model
type Model struct {
	config Config
	Phase  Phase

	sourceInput textinput.Model
	destInput   textinput.Model
	folderInput textinput.Model
	focus       int

	folders []folderEntry

	spinner  spinner.Model
	progress progress.Model

	events      <-chan app.Event
	copied      int
	total       int
	percent     float64
	remaining   string
	currentFile string

	Result   domain.Result
	Err      error
	Quitting bool
	width    int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	sourceInput := textinput.New()
	sourceInput.Placeholder = "source root"
	sourceInput.SetValue(cfg.SourceRoot)
	sourceInput.Focus()

	destInput := textinput.New()
	destInput.Placeholder = "destination root"
	destInput.SetValue(cfg.DestinationRoot)

	folderInput := textinput.New()
	folderInput.Placeholder = "folder to localize (enter to add)"

	m := Model{
		config:      cfg,
		Phase:       PhaseCollect,
		sourceInput: sourceInput,
		destInput:   destInput,
		folderInput: folderInput,
		spinner:     s,
		progress:    p,
		width:       80,
	}
	for _, folder := range cfg.Folders {
		m.folders = append(m.folders, folderEntry{path: folder})
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	for i, entry := range m.folders {
		cmds = append(cmds, m.scanSizeCmd(i, entry.path))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case "q":
			// Inputs need the literal key while collecting.
			if m.Phase != PhaseCollect {
				m.Quitting = true
				return m, tea.Quit
			}
		case "tab", "shift+tab":
			if m.Phase == PhaseCollect {
				if msg.String() == "tab" {
					m.focus = (m.focus + 1) % focusCount
				} else {
					m.focus = (m.focus + focusCount - 1) % focusCount
				}
				return m.applyFocus()
			}
		case "enter":
			switch m.Phase {
			case PhaseCollect:
				if m.focus == focusFolder {
					return m.addFolder()
				}
			case PhaseDone, PhaseError:
				return m, tea.Quit
			}
		case "ctrl+s":
			if m.Phase == PhaseCollect {
				return m.startJob()
			}
		}
		if m.Phase == PhaseCollect {
			return m.updateInputs(msg)
		}

	case folderSizeMsg:
		if msg.Err == nil && msg.Index < len(m.folders) {
			m.folders[msg.Index].size = msg.Size
			m.folders[msg.Index].sized = true
		}
		return m, nil

	case settingsSavedMsg:
		// Settings are best-effort; a failed save never interrupts the user.
		return m, nil

	case eventMsg:
		return m.applyEvent(msg.Event)

	case eventsClosedMsg:
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	// Cursor blink and other component messages while collecting.
	if m.Phase == PhaseCollect {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.sourceInput, cmd = m.sourceInput.Update(msg)
		cmds = append(cmds, cmd)
		m.destInput, cmd = m.destInput.Update(msg)
		cmds = append(cmds, cmd)
		m.folderInput, cmd = m.folderInput.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) applyFocus() (tea.Model, tea.Cmd) {
	m.sourceInput.Blur()
	m.destInput.Blur()
	m.folderInput.Blur()
	switch m.focus {
	case focusSource:
		return m, m.sourceInput.Focus()
	case focusDestination:
		return m, m.destInput.Focus()
	default:
		return m, m.folderInput.Focus()
	}
}

func (m Model) updateInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSource:
		before := m.sourceInput.Value()
		m.sourceInput, cmd = m.sourceInput.Update(msg)
		if m.sourceInput.Value() != before {
			return m, tea.Batch(cmd, m.saveSettingsCmd())
		}
	case focusDestination:
		before := m.destInput.Value()
		m.destInput, cmd = m.destInput.Update(msg)
		if m.destInput.Value() != before {
			return m, tea.Batch(cmd, m.saveSettingsCmd())
		}
	default:
		m.folderInput, cmd = m.folderInput.Update(msg)
	}
	return m, cmd
}

func (m Model) addFolder() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.folderInput.Value())
	if path == "" {
		return m, nil
	}
	// Duplicates are kept; the list mirrors exactly what the user entered.
	m.folders = append(m.folders, folderEntry{path: path})
	m.folderInput.SetValue("")
	return m, m.scanSizeCmd(len(m.folders)-1, path)
}

func (m Model) startJob() (tea.Model, tea.Cmd) {
	if m.config.StartJob == nil || len(m.folders) == 0 {
		return m, nil
	}
	job := domain.Job{
		SourceRoot:      m.sourceInput.Value(),
		DestinationRoot: m.destInput.Value(),
	}
	for _, entry := range m.folders {
		job.Folders = append(job.Folders, entry.path)
	}

	events, err := m.config.StartJob(job)
	if err != nil {
		m.Phase = PhaseError
		m.Err = err
		return m, nil
	}
	m.events = events
	m.Phase = PhaseRunning
	return m, tea.Batch(m.spinner.Tick, waitEvent(events))
}

func (m Model) applyEvent(ev app.Event) (tea.Model, tea.Cmd) {
	m.copied = ev.Copied
	m.total = ev.Total
	m.percent = ev.Percent

	cmds := []tea.Cmd{waitEvent(m.events)}

	switch ev.Kind {
	case app.EventFileCopied:
		m.currentFile = filepath.Base(ev.File)
		m.remaining = domain.FormatSeconds(int(ev.Remaining.Seconds()))
		cmds = append(cmds, m.progress.SetPercent(ev.Percent/100))
	case app.EventJobDone:
		if ev.Result != nil {
			m.Result = *ev.Result
		}
		if m.Result.Aborted != nil {
			m.Phase = PhaseError
			m.Err = m.Result.Aborted
		} else {
			m.Phase = PhaseDone
		}
		cmds = append(cmds, m.progress.SetPercent(1))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) saveSettingsCmd() tea.Cmd {
	if m.config.SaveSettings == nil {
		return nil
	}
	source := m.sourceInput.Value()
	dest := m.destInput.Value()
	return func() tea.Msg {
		return settingsSavedMsg{Err: m.config.SaveSettings(source, dest)}
	}
}

func (m Model) scanSizeCmd(index int, path string) tea.Cmd {
	if m.config.FolderSize == nil {
		return nil
	}
	return func() tea.Msg {
		size, err := m.config.FolderSize(path)
		return folderSizeMsg{Index: index, Size: size, Err: err}
	}
}

func waitEvent(events <-chan app.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{Event: ev}
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseCollect:
		b.WriteString(m.renderCollect())
	case PhaseRunning:
		b.WriteString(m.renderFolders())
		b.WriteString("\n")
		b.WriteString(m.renderRunning())
	case PhaseDone:
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("localize")
	subtitle := subtitleStyle.Render("Copy render folders to local storage")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source root: %s", iconFolder, shortenPath(m.sourceInput.Value()))),
		dimStyle.Render(fmt.Sprintf("%s Destination root: %s", iconFolder, shortenPath(m.destInput.Value()))),
	)
}

func (m Model) renderCollect() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Configuration"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Source root:"), m.sourceInput.View()))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Destination root:"), m.destInput.View()))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Add folder:"), m.folderInput.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFolders())

	return b.String()
}

func (m Model) renderFolders() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Folders (%d)", len(m.folders))))
	b.WriteString("\n\n")

	if len(m.folders) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No folders yet"))
		b.WriteString("\n")
		return b.String()
	}

	var total int64
	for _, entry := range m.folders {
		size := ""
		if entry.sized {
			size = sizeStyle.Render(domain.FormatSize(entry.size))
			total += entry.size
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", iconFolder, folderStyle.Render(entry.path), size))
	}
	b.WriteString(fmt.Sprintf("\n  %s %s\n", labelStyle.Render("Total size:"), valueStyle.Render(domain.FormatSize(total))))

	return b.String()
}

func (m Model) renderRunning() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copying Files"))
	b.WriteString("\n\n")

	percent := m.percent / 100
	b.WriteString(fmt.Sprintf("  %s Copying...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.copied, m.total)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", m.percent)),
	))
	if m.remaining != "" {
		b.WriteString(percentStyle.Render(fmt.Sprintf("  ETA %s", m.remaining)))
	}
	b.WriteString("\n")

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", iconArrow, valueStyle.Render(m.currentFile)))
	}

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Done"))
	b.WriteString("\n\n")

	for _, fr := range m.Result.Folders {
		if fr.Renamed {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				successStyle.Render(iconSuccess),
				folderStyle.Render(fr.Folder),
				iconArrow,
				folderStyle.Render(fr.RenamedTo),
			))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				warningStyle.Render(iconSkipped),
				folderStyle.Render(fr.Folder),
				warningStyle.Render(fmt.Sprintf("(%d failed, not renamed)", fr.Failed)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("Files copied:"),
		valueStyle.Render(fmt.Sprintf("%d/%d", m.Result.Copied, m.Result.Total)),
	))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("Elapsed:"),
		valueStyle.Render(domain.FormatSeconds(int(m.Result.Elapsed.Seconds()))),
	))

	status := m.Result.Status()
	style := successStyle
	if len(m.Result.Errors) > 0 {
		style = warningStyle
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Status:"), style.Render(status)))

	if len(m.Result.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("  Failed files:"))
		b.WriteString("\n")
		for i, copyErr := range m.Result.Errors {
			if i >= 4 {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Result.Errors)-4))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", errorStyle.Render(iconError), copyErr.Error()))
		}
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return errorBoxStyle.Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseCollect:
		help = "Tab to switch fields • Enter to add folder • Ctrl+S to start • Ctrl+C to quit"
	case PhaseRunning:
		help = "Copying files... Ctrl+C to abort"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
