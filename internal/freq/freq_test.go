package freq

import (
	"errors"
	"math"
	"testing"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
)

func mustAlphabet(t *testing.T, name string) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return a
}

func TestFrequenciesSumToOne(t *testing.T) {
	a := mustAlphabet(t, "sv")
	d, err := Frequencies(a, "Det var en gång en kung som hette Åke, och han älskade öl.")
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	if math.Abs(d.Sum()-1) > 1e-9 {
		t.Fatalf("expected sum 1, got %v", d.Sum())
	}
	if d.Prob('x') != 0 {
		t.Fatalf("expected zero probability for absent letter")
	}
	if d.Prob('å') <= 0 || d.Prob('ö') <= 0 {
		t.Fatalf("expected non-zero probability for å and ö")
	}
}

func TestFrequenciesCounts(t *testing.T) {
	a := mustAlphabet(t, "en")
	d, err := Frequencies(a, "AaB!")
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	if math.Abs(d.Prob('a')-2.0/3.0) > 1e-12 || math.Abs(d.Prob('b')-1.0/3.0) > 1e-12 {
		t.Fatalf("unexpected probabilities a=%v b=%v", d.Prob('a'), d.Prob('b'))
	}
}

func TestFrequenciesEmptyCorpus(t *testing.T) {
	a := mustAlphabet(t, "en")
	if _, err := Frequencies(a, "1234 !!"); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestIndexOfCoincidence(t *testing.T) {
	if IndexOfCoincidence(nil) != 0 || IndexOfCoincidence(alphabet.Text{3}) != 0 {
		t.Fatalf("expected 0 for texts shorter than 2")
	}
	if got := IndexOfCoincidence(alphabet.Text{1, 1, 1}); got != 1 {
		t.Fatalf("expected 1 for a constant text, got %v", got)
	}
	if got := IndexOfCoincidence(alphabet.Text{0, 1, 2, 3}); got != 0 {
		t.Fatalf("expected 0 for distinct characters, got %v", got)
	}
	// a a b b: 2*1 + 2*1 over 4*3.
	if got := IndexOfCoincidence(alphabet.Text{0, 0, 1, 1}); math.Abs(got-4.0/12.0) > 1e-12 {
		t.Fatalf("unexpected IC %v", got)
	}
}

func TestChiSquaredZeroForExactFit(t *testing.T) {
	a := mustAlphabet(t, "en")
	text := "aabbbbcccc"
	d, err := Frequencies(a, text)
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	enc, err := a.EncodeText(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := ChiSquared(enc, d); math.Abs(got) > 1e-9 {
		t.Fatalf("expected chi-squared 0, got %v", got)
	}
	// Unexpected letters are skipped rather than dividing by zero.
	enc = append(enc, 25)
	if got := ChiSquared(enc, d); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected finite statistic, got %v", got)
	}
}

func TestFromWeights(t *testing.T) {
	a := mustAlphabet(t, "custom:abc")
	d, err := FromWeights(a, []float64{1, 1, 2})
	if err != nil {
		t.Fatalf("from weights: %v", err)
	}
	if d.At(2) != 0.5 || d.At(5) != 0 {
		t.Fatalf("unexpected probabilities %v %v", d.At(2), d.At(5))
	}
	if _, err := FromWeights(a, []float64{1, 2}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if _, err := FromWeights(a, []float64{1, -1, 0}); err == nil {
		t.Fatalf("expected negative weight error")
	}
	if _, err := FromWeights(a, []float64{0, 0, 0}); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestEnglish(t *testing.T) {
	d, err := English()
	if err != nil {
		t.Fatalf("english: %v", err)
	}
	if d.Len() != 26 || math.Abs(d.Sum()-1) > 1e-9 {
		t.Fatalf("unexpected english distribution: len=%d sum=%v", d.Len(), d.Sum())
	}
	if d.Prob('e') < d.Prob('z') {
		t.Fatalf("expected e to be more frequent than z")
	}
}
