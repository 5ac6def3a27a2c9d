package textprep

import "testing"

func TestPrepare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"collapses punctuation", "Hello, world! How?", "hello world how"},
		{"strips digits", "room 42 is open", "room is open"},
		{"trims edges", "  ...Hello...  ", "hello"},
		{"dotted capital i", "İstanbul", "istanbul"},
		{"keeps dotless i", "ışık", "ışık"},
		{"cyrillic", "Привет, мир!", "привет мир"},
		{"nfc composes", "café", "café"},
		{"no letters", "12345 !!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := string(Prepare(tt.in))
			if got != tt.want {
				t.Errorf("Prepare(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrepareNilOnNoLetters(t *testing.T) {
	t.Parallel()
	if Prepare("!!!") != nil {
		t.Error("Prepare of letterless input must return nil")
	}
}

func TestLowerSimpleMapping(t *testing.T) {
	t.Parallel()
	// One rune in, one rune out: no full case expansion.
	tests := []struct{ in, want rune }{
		{'A', 'a'},
		{'İ', 'i'},
		{'Σ', 'σ'},
		{'Ж', 'ж'},
		{'ß', 'ß'},
	}
	for _, tt := range tests {
		if got := Lower(tt.in); got != tt.want {
			t.Errorf("Lower(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
