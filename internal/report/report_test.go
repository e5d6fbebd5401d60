package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/vigcrack/internal/crack"
	"github.com/verte-zerg/vigcrack/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Key", "Score", "Preview"}
	rows := [][]string{
		{"åäö", "1.50", "hej"},
		{"key", "12.25", "attack"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Key  Score  Preview" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "åäö   1.50  hej" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "key  12.25  attack" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("attackatdawn", 0); got != "attackatdawn" {
		t.Fatalf("expected no truncation for width 0, got %q", got)
	}
	if got := Preview("attackatdawn", 20); got != "attackatdawn" {
		t.Fatalf("expected no truncation for short text, got %q", got)
	}
	if got := Preview("attackatdawn", 9); got != "attackatd" {
		t.Fatalf("unexpected preview %q", got)
	}
	if got := Preview("attackatdawn", 2); got != "at" {
		t.Fatalf("expected exactly 2 cells, got %q", got)
	}
	if got := Preview("åäöab", 3); got != "åäö" {
		t.Fatalf("unexpected preview %q", got)
	}
}

func TestRenderCandidatesTop(t *testing.T) {
	candidates := Ranked([]crack.Candidate{
		{Score: 11.95, Key: "key", KeyLength: 3, Plaintext: "thelighthousestood"},
		{Score: 11.95, Key: "keykey", KeyLength: 6, Plaintext: "thelighthousestood"},
		{Score: 684.34, Key: "gdzekkkd", KeyLength: 8, Plaintext: "xqzvbnmlkj"},
	})
	if candidates[2].Rank != 3 {
		t.Fatalf("expected rank 3, got %d", candidates[2].Rank)
	}
	var buf bytes.Buffer
	if err := RenderCandidates(&buf, candidates, 2, 10); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Candidates (top 2 of 3)") {
		t.Fatalf("missing title: %s", out)
	}
	if !strings.Contains(out, "keykey") || strings.Contains(out, "gdzekkkd") {
		t.Fatalf("unexpected candidate rows: %s", out)
	}
	if !strings.Contains(out, "thelightho\n") || strings.Contains(out, "thelighthou") {
		t.Fatalf("expected truncated preview: %s", out)
	}
}

func TestRenderCandidatesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCandidates(&buf, nil, 5, 10); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No candidates found." {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderKeyLengths(t *testing.T) {
	scores := []crack.KeyLengthScore{
		{Length: 3, AvgIC: 0.0686},
		{Length: 1, AvgIC: 0.0412},
		{Length: 2, AvgIC: 0.0401},
	}
	var buf bytes.Buffer
	if err := RenderKeyLengths(&buf, scores, 2); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0.0686") || strings.Contains(out, "0.0401") {
		t.Fatalf("unexpected output: %s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[4], "By length: ") {
		t.Fatalf("expected sparkline line, got %q", lines[4])
	}
}

func TestPlotKeyLengths(t *testing.T) {
	scores := []crack.KeyLengthScore{
		{Length: 2, AvgIC: 0.02},
		{Length: 1, AvgIC: 0.04},
	}
	var buf bytes.Buffer
	if err := PlotKeyLengths(&buf, scores, 40); err != nil {
		t.Fatalf("plot: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "1 │") || !strings.Contains(lines[1], "2 │") {
		t.Fatalf("expected bars in length order: %q", lines)
	}
	if strings.Count(lines[0], "█") != 2*strings.Count(lines[1], "█") {
		t.Fatalf("expected bar lengths proportional to IC: %q", lines)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
}

func TestRenderHistory(t *testing.T) {
	runs := []model.RunSummary{
		{
			Run:        model.Run{ID: 7, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local), Mode: model.ModeSweep, Alphabet: "en", KeyLen: 16, TextLength: 900},
			Best:       model.Candidate{Rank: 1, Score: 11.95, Key: "key", KeyLength: 3},
			HasBest:    true,
			Candidates: 16,
		},
		{
			Run: model.Run{ID: 8, CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local), Mode: model.ModeFixed, Alphabet: "sv", KeyLen: 6, TextLength: 40},
		},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, runs); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2026-03-01 12:00", "sweep", "key", "11.95", "fixed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %s", want, out)
		}
	}
}
