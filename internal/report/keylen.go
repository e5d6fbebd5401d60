package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/vigcrack/internal/crack"
)

const (
	sparkChars          = " .:-=+*#%@"
	barFull             = '█'
	barLabelWidth       = 4
	barValueWidth       = 8
	minBarWidth         = 10
	terminalWidthBackup = 80
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

// RenderKeyLengths prints the key-length ranking, highest average IC first.
func RenderKeyLengths(w io.Writer, scores []crack.KeyLengthScore, top int) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintln(w, "No key lengths scored.")
		return err
	}
	if top <= 0 || top > len(scores) {
		top = len(scores)
	}
	if _, err := fmt.Fprintln(w, "Key lengths by average index of coincidence"); err != nil {
		return err
	}
	headers := []string{"Rank", "Length", "Avg IC"}
	rows := make([][]string, 0, top)
	for i, s := range scores[:top] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Length),
			fmt.Sprintf("%.4f", s.AvgIC),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "By length: %s\n", Sparkline(byLength(scores)))
	return err
}

// PlotKeyLengths draws one horizontal bar per key length, in length order.
// A width of 0 fits the terminal.
func PlotKeyLengths(w io.Writer, scores []crack.KeyLengthScore, width int) error {
	if len(scores) == 0 {
		return nil
	}
	if width <= 0 {
		width = terminalWidth()
	}
	barWidth := width - barLabelWidth - barValueWidth - 4
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	ordered := sortedByLength(scores)
	maxVal := 0.0
	for _, s := range ordered {
		if s.AvgIC > maxVal {
			maxVal = s.AvgIC
		}
	}
	useColor := shouldUseColor(w)
	for _, s := range ordered {
		cells := 0
		if maxVal > 0 {
			cells = int(math.Round(s.AvgIC / maxVal * float64(barWidth)))
		}
		bar := strings.Repeat(string(barFull), cells)
		if useColor {
			bar = barStyle.Render(bar)
		}
		if _, err := fmt.Fprintf(w, "%*d │ %s %.4f\n", barLabelWidth, s.Length, bar, s.AvgIC); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func sortedByLength(scores []crack.KeyLengthScore) []crack.KeyLengthScore {
	ordered := make([]crack.KeyLengthScore, len(scores))
	copy(ordered, scores)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Length < ordered[j].Length
	})
	return ordered
}

func byLength(scores []crack.KeyLengthScore) []float64 {
	ordered := sortedByLength(scores)
	values := make([]float64, len(ordered))
	for i, s := range ordered {
		values[i] = s.AvgIC
	}
	return values
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
