// Package alphabet maps characters of a fixed alphabet to dense indices.
package alphabet

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrInvalidCharacter reports a character or index outside the alphabet.
var ErrInvalidCharacter = errors.New("invalid character")

const customPrefix = "custom:"

var presets = map[string]string{
	"en": "abcdefghijklmnopqrstuvwxyz",
	"sv": "abcdefghijklmnopqrstuvwxyzåäö",
}

// Text is encoded text: every element is an index in [0, Size()).
type Text []int

// Alphabet is an ordered set of distinct lower-case characters.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// New builds an alphabet from chars. Characters are lower-cased.
func New(chars string) (*Alphabet, error) {
	runes := []rune(strings.ToLower(chars))
	if len(runes) < 2 {
		return nil, fmt.Errorf("alphabet needs at least 2 characters, got %d", len(runes))
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("duplicate character %q in alphabet", r)
		}
		index[r] = i
	}
	return &Alphabet{runes: runes, index: index}, nil
}

// Lookup resolves a preset name or a "custom:<chars>" alphabet.
func Lookup(name string) (*Alphabet, error) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, customPrefix) {
		return New(strings.TrimPrefix(name, customPrefix))
	}
	chars, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %q (available: %s, or custom:<chars>)", name, strings.Join(Presets(), ", "))
	}
	return New(chars)
}

// Presets returns the sorted preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of characters, the modulus for all shift arithmetic.
func (a *Alphabet) Size() int {
	return len(a.runes)
}

// Runes returns a copy of the alphabet characters in order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// String returns the alphabet characters in order.
func (a *Alphabet) String() string {
	return string(a.runes)
}

// Contains reports whether r is in the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Clean lower-cases text and drops every character not in the alphabet.
func (a *Alphabet) Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if _, ok := a.index[r]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encode returns the index of r.
func (a *Alphabet) Encode(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
	}
	return i, nil
}

// Decode returns the character at index i.
func (a *Alphabet) Decode(i int) (rune, error) {
	if i < 0 || i >= len(a.runes) {
		return 0, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidCharacter, i, len(a.runes))
	}
	return a.runes[i], nil
}

// EncodeText encodes already cleaned text. Callers should run Clean first.
func (a *Alphabet) EncodeText(text string) (Text, error) {
	out := make(Text, 0, len(text))
	for _, r := range text {
		i, err := a.Encode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// DecodeText maps indices back to characters. Indices are reduced modulo Size.
func (a *Alphabet) DecodeText(t Text) string {
	n := len(a.runes)
	var b strings.Builder
	b.Grow(len(t))
	for _, i := range t {
		b.WriteRune(a.runes[((i%n)+n)%n])
	}
	return b.String()
}
