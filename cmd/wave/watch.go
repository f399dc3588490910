package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"wave/internal/cache"
	"wave/internal/diag"
	"wave/internal/parser"
	"wave/internal/printer"
	"wave/internal/vfs"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.wv>",
	Short: "Re-lex and re-parse a file on every edit and show it live",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

const pollInterval = 300 * time.Millisecond

var (
	watchHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	watchErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	watchWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	watchOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	m := newWatchModel(path)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type watchTickMsg struct{}

type watchModel struct {
	path     string
	lastHash cache.Digest
	errCount int
	warnCnt  int
	nodes    int
	decls    int
	body     string
	vp       viewport.Model
	ready    bool
}

func newWatchModel(path string) *watchModel {
	return &watchModel{path: path}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(watchTick(), m.reload())
}

func watchTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return watchTickMsg{} })
}

type watchReloadMsg struct {
	hash     cache.Digest
	errCount int
	warnCnt  int
	nodes    int
	decls    int
	body     string
	err      error
}

func (m *watchModel) reload() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return watchReloadMsg{err: err}
		}
		hash := cache.Hash(content)
		file := vfs.AddFile(path, content)
		tree, bag := parser.Parse(file, content)

		errCount, warnCount := 0, 0
		for _, d := range bag.Items() {
			if d.Severity >= diag.SevError {
				errCount++
			} else {
				warnCount++
			}
		}

		return watchReloadMsg{
			hash:     hash,
			errCount: errCount,
			warnCnt:  warnCount,
			nodes:    tree.NumNodes(),
			decls:    len(tree.Decls),
			body:     printer.String(&tree),
		}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.vp.SetContent(m.body)
	case watchTickMsg:
		return m, tea.Batch(watchTick(), m.reload())
	case watchReloadMsg:
		if msg.err == nil && msg.hash != m.lastHash {
			m.lastHash = msg.hash
			m.errCount = msg.errCount
			m.warnCnt = msg.warnCnt
			m.nodes = msg.nodes
			m.decls = msg.decls
			m.body = msg.body
			m.vp.SetContent(m.body)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *watchModel) View() string {
	status := watchOKStyle.Render("ok")
	if m.errCount > 0 {
		status = watchErrorStyle.Render(fmt.Sprintf("%d error(s)", m.errCount))
	} else if m.warnCnt > 0 {
		status = watchWarnStyle.Render(fmt.Sprintf("%d warning(s)", m.warnCnt))
	}
	header := watchHeaderStyle.Render(m.path) + fmt.Sprintf("  %s  %d nodes, %d decls  (q to quit)", status, m.nodes, m.decls)
	if !m.ready {
		return header + "\n"
	}
	return header + "\n" + m.vp.View()
}
