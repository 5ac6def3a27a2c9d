package script

import "testing"

func TestForRune(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		r    rune
		want Script
	}{
		{"ascii letter", 'a', Latin},
		{"latin diacritic", 'é', Latin},
		{"turkic dotless i", 'ı', Latin},
		{"cyrillic", 'ж', Cyrillic},
		{"greek", 'λ', Greek},
		{"greek final sigma", 'ς', Greek},
		{"arabic", 'ب', Arabic},
		{"hebrew", 'ש', Hebrew},
		{"han", '语', Han},
		{"hiragana", 'に', Hiragana},
		{"katakana", 'カ', Katakana},
		{"hangul", '한', Hangul},
		{"digit", '7', Unknown},
		{"punctuation", '!', Unknown},
		{"space", ' ', Unknown},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ForRune(tt.r); got != tt.want {
				t.Errorf("ForRune(%q): got %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestCensus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want Set
	}{
		{"pure latin", "hello world", SetOf(Latin)},
		{"pure greek", "γειά σου", SetOf(Greek)},
		{"mixed latin cyrillic", "hello привет", SetOf(Latin, Cyrillic)},
		{"japanese mix", "日本語のテキスト", SetOf(Han, Hiragana, Katakana)},
		{"no letters", "123 !!! ...", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Census(tt.in); got != tt.want {
				t.Errorf("Census(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetOps(t *testing.T) {
	t.Parallel()
	latin := SetOf(Latin)
	cyrl := SetOf(Cyrillic)
	both := SetOf(Latin, Cyrillic)

	if !latin.Has(Latin) || latin.Has(Cyrillic) {
		t.Error("Has: wrong membership")
	}
	if !both.Intersects(latin) || !both.Intersects(cyrl) {
		t.Error("Intersects: expected overlap")
	}
	if latin.Intersects(cyrl) {
		t.Error("Intersects: disjoint sets reported as overlapping")
	}
	if !Set(0).Empty() || latin.Empty() {
		t.Error("Empty: wrong result")
	}
	if latin.Add(Unknown) != latin {
		t.Error("Add(Unknown) must be a no-op")
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if got := Greek.String(); got != "Grek" {
		t.Errorf("Greek.String(): got %q, want %q", got, "Grek")
	}
	if got := Unknown.String(); got != "" {
		t.Errorf("Unknown.String(): got %q, want %q", got, "")
	}
}
