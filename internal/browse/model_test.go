package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/vigcrack/internal/crack"
	"github.com/verte-zerg/vigcrack/internal/model"
)

func testCandidates() []model.Candidate {
	return []model.Candidate{
		{Rank: 1, Score: 12.5, Key: "key", KeyLength: 3, Plaintext: "thelighthousekeeper"},
		{Rank: 2, Score: 12.5, Key: "keykey", KeyLength: 6, Plaintext: "thelighthousekeeper"},
		{Rank: 3, Score: 80.1, Key: "k", KeyLength: 1, Plaintext: "jxbqamxkxkwsqgsbi"},
	}
}

func TestWrapStyledRunesHardWraps(t *testing.T) {
	runes := buildStyledRunes("attackatdawn", 3, false)
	got := wrapStyledRunes(runes, 5)
	want := "attac\nkatda\nwn"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := wrapStyledRunes(runes, 0); got != "attackatdawn" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}

func TestWrapStyledRunesWideRunes(t *testing.T) {
	runes := buildStyledRunes("åäöab", 1, false)
	got := wrapStyledRunes(runes, 2)
	if lines := strings.Split(got, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", got)
	}
}

func TestRenderPlaintext(t *testing.T) {
	got := renderPlaintext(testCandidates(), 0, 10, false)
	if !strings.Contains(got, "Rank 1") || !strings.Contains(got, "key") {
		t.Fatalf("expected header with rank and key, got %q", got)
	}
	if !strings.Contains(got, "thelightho\nusekeeper") {
		t.Fatalf("expected wrapped plaintext, got %q", got)
	}
	if got := renderPlaintext(nil, 0, 10, false); got != "No candidate selected." {
		t.Fatalf("unexpected empty render %q", got)
	}
}

func TestBuildTableRows(t *testing.T) {
	tbl := buildTable(testCandidates(), 80, 10)
	rows := tbl.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][2] != "keykey" || rows[1][1] != "6" {
		t.Fatalf("unexpected second row %v", rows[1])
	}
}

func TestModelTabNavigation(t *testing.T) {
	scores := []crack.KeyLengthScore{{Length: 3, AvgIC: 0.066}, {Length: 1, AvgIC: 0.041}}
	m := NewModel("sweep", testCandidates(), scores)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.activeTab != tabPlaintext {
		t.Fatalf("expected plaintext tab after enter, got %d", m.activeTab)
	}
	if m.selected != 1 {
		t.Fatalf("expected second candidate selected, got %d", m.selected)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabKeyLengths {
		t.Fatalf("expected key lengths tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabCandidates {
		t.Fatalf("expected wrap to candidates tab, got %d", m.activeTab)
	}
	if view := m.View(); !strings.Contains(view, "candidates=3") {
		t.Fatalf("expected summary in view")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestNewModelHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if m := NewModel("sweep", testCandidates(), nil); m.useColor {
		t.Fatalf("expected colour disabled with NO_COLOR")
	}
	t.Setenv("NO_COLOR", "")
	if m := NewModel("sweep", testCandidates(), nil); !m.useColor {
		t.Fatalf("expected colour enabled without NO_COLOR")
	}
}
