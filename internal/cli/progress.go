package cli

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvisser/bowlink/internal/models"
)

// Theme holds the color scheme for the progress display.
type Theme struct {
	Status  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

// scanProgressMsg carries pairwise scan progress.
type scanProgressMsg struct {
	done  int
	total int
}

// scanDoneMsg carries the finished link set or error.
type scanDoneMsg struct {
	links models.LinkSet
	err   error
}

// scanModel is the bubbletea model for the pairwise scan.
type scanModel struct {
	progress progress.Model
	theme    Theme
	done     int
	total    int
	links    models.LinkSet
	finished bool
	quitting bool
	err      error
}

func newScanModel() scanModel {
	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)
	return scanModel{
		progress: prog,
		theme:    defaultTheme,
	}
}

// Init returns the initial command.
func (m scanModel) Init() tea.Cmd {
	return m.progress.Init()
}

// Update handles messages and returns the updated model.
func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case scanProgressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil

	case scanDoneMsg:
		m.finished = true
		m.links = msg.links
		m.err = msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m scanModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m scanModel) renderContent() string {
	if m.finished {
		if m.err != nil {
			return m.theme.errorStyle().Render(fmt.Sprintf("\n✗ Scan failed: %s\n", m.err))
		}
		return m.theme.completedStyle().Render(fmt.Sprintf("✓ Scan complete, %d links\n", len(m.links)))
	}

	var pct float64
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	status := m.theme.statusStyle().Render("[scanning]")
	counts := fmt.Sprintf("%d/%d items", m.done, m.total)
	return fmt.Sprintf("%s %s %s\n", status, m.progress.ViewAs(pct), counts)
}

// RunScanProgress runs the scan with a live progress bar. The run
// function receives a progress callback and executes on a background
// goroutine; its result is returned once the UI exits.
func RunScanProgress(run func(report func(done, total int)) (models.LinkSet, error)) (models.LinkSet, error) {
	p := tea.NewProgram(newScanModel())

	go func() {
		links, err := run(func(done, total int) {
			p.Send(scanProgressMsg{done: done, total: total})
		})
		p.Send(scanDoneMsg{links: links, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("progress UI error: %w", err)
	}

	m, ok := finalModel.(scanModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if m.quitting {
		return nil, fmt.Errorf("scan cancelled")
	}
	return m.links, m.err
}
