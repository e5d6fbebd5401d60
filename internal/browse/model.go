// Package browse provides the Bubble Tea candidate browser.
package browse

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/vigcrack/internal/crack"
	"github.com/verte-zerg/vigcrack/internal/model"
	"github.com/verte-zerg/vigcrack/internal/report"
)

const (
	tabCandidates = iota
	tabPlaintext
	tabKeyLengths
)

const previewWidth = 40

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	keyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea candidate browser.
type Model struct {
	candidates []model.Candidate
	keyLengths []crack.KeyLengthScore
	title      string

	tabs      []string
	activeTab int
	table     table.Model
	viewports []viewport.Model
	selected  int
	useColor  bool

	width  int
	height int
}

// NewModel constructs a browser over ranked candidates and key-length scores.
func NewModel(title string, candidates []model.Candidate, keyLengths []crack.KeyLengthScore) *Model {
	m := &Model{
		candidates: candidates,
		keyLengths: keyLengths,
		title:      title,
		tabs:       []string{"Candidates", "Plaintext", "Key Lengths"},
		useColor:   os.Getenv("NO_COLOR") == "",
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.table = buildTable(candidates, 80, 10)
	m.table.Focus()
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "enter":
			if m.activeTab == tabCandidates {
				m.selectCurrent()
				m.activeTab = tabPlaintext
				m.table.Blur()
				return m, tea.ClearScreen
			}
			return m, nil
		case "g", "home":
			if m.activeTab == tabCandidates {
				m.table.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabCandidates {
				m.table.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabCandidates {
				var cmd tea.Cmd
				m.table, cmd = m.table.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	if m.activeTab == tabCandidates {
		m.selectCurrent()
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabCandidates {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) selectCurrent() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.candidates) {
		return
	}
	if cursor != m.selected {
		m.selected = cursor
		m.renderTabContents()
	}
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	summary := truncateLine(fmt.Sprintf("%s  candidates=%d", m.title, len(m.candidates)), m.width)
	return tabs + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q"
	if m.activeTab == tabCandidates {
		help = "Nav: left/right  Select: up/down  Open: enter  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabCandidates {
		if len(m.candidates) == 0 {
			return "No candidates found."
		}
		return tableMutedStyle.Render(m.table.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabPlaintext].SetContent(renderPlaintext(m.candidates, m.selected, width, m.useColor))
	m.viewports[tabKeyLengths].SetContent(renderKeyLengths(m.keyLengths, width))
}

func renderPlaintext(candidates []model.Candidate, selected, width int, useColor bool) string {
	if selected < 0 || selected >= len(candidates) {
		return "No candidate selected."
	}
	c := candidates[selected]
	header := fmt.Sprintf("Rank %d  Key %s  Score %.2f", c.Rank, keyStyle.Render(c.Key), c.Score)
	body := wrapStyledRunes(buildStyledRunes(c.Plaintext, c.KeyLength, useColor), width)
	return header + "\n\n" + body
}

func renderKeyLengths(scores []crack.KeyLengthScore, width int) string {
	if len(scores) == 0 {
		return "No key lengths scored."
	}
	var buf bytes.Buffer
	if err := report.PlotKeyLengths(&buf, scores, width); err != nil {
		return fmt.Sprintf("Failed to render key lengths: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildTable(candidates []model.Candidate, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Len", Width: 4},
		{Title: "Key", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Preview", Width: previewWidth},
	}
	rows := make([]table.Row, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", c.Rank),
			fmt.Sprintf("%d", c.KeyLength),
			report.Preview(c.Key, 16),
			fmt.Sprintf("%.2f", c.Score),
			report.Preview(c.Plaintext, previewWidth),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#5A4A2A")).
		Bold(false)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func fitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	w := lipgloss.Width(line)
	if width <= 0 || w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return report.Preview(s, width)
}
