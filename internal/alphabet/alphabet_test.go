package alphabet

import (
	"errors"
	"testing"
)

func TestCleanKeepsOnlyAlphabet(t *testing.T) {
	a, err := Lookup("sv")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	got := a.Clean("Hej, Åsa! Möt mig 12:00.")
	if got != "hejåsamötmig" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
	if a.Clean("123 !?") != "" {
		t.Fatalf("expected empty result for text without alphabet characters")
	}
}

func TestEncodeDecodeBijection(t *testing.T) {
	a, err := Lookup("sv")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if a.Size() != 29 {
		t.Fatalf("expected 29 characters, got %d", a.Size())
	}
	for i, r := range a.Runes() {
		idx, err := a.Encode(r)
		if err != nil {
			t.Fatalf("encode %q: %v", r, err)
		}
		if idx != i {
			t.Fatalf("expected %q at %d, got %d", r, i, idx)
		}
		back, err := a.Decode(idx)
		if err != nil || back != r {
			t.Fatalf("decode %d: got %q, %v", idx, back, err)
		}
	}
}

func TestEncodeRejectsForeignCharacter(t *testing.T) {
	a, err := Lookup("en")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := a.Encode('å'); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if _, err := a.Decode(26); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter for index 26, got %v", err)
	}
	if _, err := a.EncodeText("Abc"); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected uncleaned text to be rejected, got %v", err)
	}
}

func TestEncodeTextRoundTrip(t *testing.T) {
	a, err := Lookup("en")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	text := a.Clean("Attack at dawn")
	enc, err := a.EncodeText(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if enc[0] != 0 || enc[1] != 19 {
		t.Fatalf("unexpected encoding: %v", enc)
	}
	if got := a.DecodeText(enc); got != text {
		t.Fatalf("expected %q, got %q", text, got)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("a"); err == nil {
		t.Fatalf("expected error for single-character alphabet")
	}
	if _, err := New("abca"); err == nil {
		t.Fatalf("expected error for duplicate characters")
	}
	a, err := Lookup("custom:ABC")
	if err != nil {
		t.Fatalf("custom alphabet: %v", err)
	}
	if a.String() != "abc" {
		t.Fatalf("expected lower-cased alphabet, got %q", a.String())
	}
	if _, err := Lookup("klingon"); err == nil {
		t.Fatalf("expected unknown preset error")
	}
}
