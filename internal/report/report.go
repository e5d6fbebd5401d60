// Package report renders cryptanalysis results as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/vigcrack/internal/crack"
	"github.com/verte-zerg/vigcrack/internal/model"
)

// Ranked numbers candidates from 1 in their current order.
func Ranked(candidates []crack.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = model.Candidate{
			Rank:      i + 1,
			Score:     c.Score,
			Key:       c.Key,
			KeyLength: c.KeyLength,
			Plaintext: c.Plaintext,
		}
	}
	return out
}

// RenderCandidates prints the top candidates, lowest score first.
func RenderCandidates(w io.Writer, candidates []model.Candidate, top, preview int) error {
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(w, "No candidates found.")
		return err
	}
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	if _, err := fmt.Fprintf(w, "Candidates (top %d of %d)\n", top, len(candidates)); err != nil {
		return err
	}
	headers := []string{"Rank", "Len", "Key", "Score", "Preview"}
	rows := make([][]string, 0, top)
	for _, c := range candidates[:top] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Rank),
			fmt.Sprintf("%d", c.KeyLength),
			c.Key,
			fmt.Sprintf("%.2f", c.Score),
			Preview(c.Plaintext, preview),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 1: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderFixed prints the key and full plaintext of a fixed-length run.
func RenderFixed(w io.Writer, key, plaintext string, score float64) error {
	if _, err := fmt.Fprintf(w, "Key: %s\n", key); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %.2f\n", score); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Plaintext:"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, plaintext)
	return err
}

// RenderHistory prints stored runs with their best candidate.
func RenderHistory(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	headers := []string{"ID", "Created", "Mode", "Alphabet", "Len", "Chars", "Best Key", "Score"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		bestKey, score := "-", "-"
		if r.HasBest {
			bestKey = r.Best.Key
			score = fmt.Sprintf("%.2f", r.Best.Score)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Run.ID),
			r.Run.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Run.Mode,
			r.Run.Alphabet,
			fmt.Sprintf("%d", r.Run.KeyLen),
			fmt.Sprintf("%d", r.Run.TextLength),
			bestKey,
			score,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 4: true, 5: true, 7: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRun prints a run header followed by its candidates.
func RenderRun(w io.Writer, run model.Run, candidates []model.Candidate, preview int) error {
	reference := run.Reference
	if strings.TrimSpace(reference) == "" {
		reference = "-"
	}
	if _, err := fmt.Fprintf(w, "Run %d  %s  mode=%s  alphabet=%s  key-len=%d  chars=%d  reference=%s\n",
		run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.Mode, run.Alphabet, run.KeyLen, run.TextLength, reference); err != nil {
		return err
	}
	return RenderCandidates(w, candidates, 0, preview)
}
