package crack

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
	"github.com/verte-zerg/vigcrack/internal/freq"
)

var (
	// ErrKeyLengthOutOfRange reports a key length outside [1, len(ciphertext)].
	ErrKeyLengthOutOfRange = errors.New("key length out of range")
	// ErrInvalidKey reports an empty key or one with characters outside the alphabet.
	ErrInvalidKey = errors.New("invalid key")
)

// Candidate is one decryption attempt. Lower scores fit the reference better.
type Candidate struct {
	Score     float64
	Key       string
	KeyLength int
	Plaintext string
}

// BreakFixedLength recovers a key of exactly keyLen characters by breaking
// each interleaved segment as an independent Caesar cipher.
func BreakFixedLength(t alphabet.Text, expected freq.Distribution, keyLen int) (string, string, error) {
	if err := checkDistribution(expected); err != nil {
		return "", "", err
	}
	if keyLen < 1 || keyLen > len(t) {
		return "", "", fmt.Errorf("%w: %d (ciphertext has %d characters)", ErrKeyLengthOutOfRange, keyLen, len(t))
	}
	a := expected.Alphabet()
	shifts := make(alphabet.Text, keyLen)
	for i := 0; i < keyLen; i++ {
		shifts[i] = BreakCaesar(Segment(t, i, keyLen), expected)
	}
	plain := decryptShifts(t, shifts, a.Size())
	return a.DecodeText(shifts), a.DecodeText(plain), nil
}

// BreakSweep runs BreakFixedLength for every length in [1, maxKeyLen] and
// ranks the results by chi-squared score, best first. maxKeyLen is clamped
// to the ciphertext length.
func BreakSweep(t alphabet.Text, expected freq.Distribution, maxKeyLen int) ([]Candidate, error) {
	if err := checkDistribution(expected); err != nil {
		return nil, err
	}
	if maxKeyLen < 1 {
		return nil, fmt.Errorf("%w: max key length %d", ErrKeyLengthOutOfRange, maxKeyLen)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: ciphertext is empty", ErrKeyLengthOutOfRange)
	}
	if maxKeyLen > len(t) {
		maxKeyLen = len(t)
	}
	a := expected.Alphabet()
	results := make([]Candidate, 0, maxKeyLen)
	for keyLen := 1; keyLen <= maxKeyLen; keyLen++ {
		key, plain, err := BreakFixedLength(t, expected, keyLen)
		if err != nil {
			return nil, err
		}
		encoded, err := a.EncodeText(plain)
		if err != nil {
			return nil, err
		}
		results = append(results, Candidate{
			Score:     freq.ChiSquared(encoded, expected),
			Key:       key,
			KeyLength: keyLen,
			Plaintext: plain,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return candidateLess(results[i], results[j])
	})
	return results, nil
}

// Encrypt applies the classic Vigenère table: c = p + k mod N.
func Encrypt(a *alphabet.Alphabet, t alphabet.Text, key string) (alphabet.Text, error) {
	shifts, err := encodeKey(a, key)
	if err != nil {
		return nil, err
	}
	n := a.Size()
	out := make(alphabet.Text, len(t))
	for i, c := range t {
		out[i] = mod(c+shifts[i%len(shifts)], n)
	}
	return out, nil
}

// Decrypt reverses Encrypt with the same key.
func Decrypt(a *alphabet.Alphabet, t alphabet.Text, key string) (alphabet.Text, error) {
	shifts, err := encodeKey(a, key)
	if err != nil {
		return nil, err
	}
	return decryptShifts(t, shifts, a.Size()), nil
}

func decryptShifts(t, shifts alphabet.Text, n int) alphabet.Text {
	out := make(alphabet.Text, len(t))
	for i, c := range t {
		out[i] = mod(c-shifts[i%len(shifts)], n)
	}
	return out
}

func checkDistribution(d freq.Distribution) error {
	if d.Alphabet() == nil || d.Len() == 0 {
		return fmt.Errorf("%w: reference distribution has no alphabet", ErrEmptyAlphabet)
	}
	return nil
}

func encodeKey(a *alphabet.Alphabet, key string) (alphabet.Text, error) {
	if a == nil {
		return nil, ErrEmptyAlphabet
	}
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	shifts, err := a.EncodeText(strings.ToLower(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return shifts, nil
}

func candidateLess(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.KeyLength < b.KeyLength
}
