package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "abc", 10, "abc"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long string gets ellipsis", "abcdefghij", 8, "abcde..."},
		{"tiny max hard cuts", "abcdef", 2, "ab"},
		{"zero max", "abc", 0, ""},
		{"multibyte runes stay intact", "ÅÖÄÅÖÄ", 4, "Å..."},
		{"multibyte tiny max", "ÅÖÄÅÖÄ", 2, "ÅÖ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://example.com/icon/emilys/128", 20)
	if len(got) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20", len(got))
	}
	if got[:5] != "https" {
		t.Fatalf("truncateMiddle start = %q, want to keep the prefix", got[:5])
	}
	if got[len(got)-3:] != "128" {
		t.Fatalf("truncateMiddle end = %q, want to keep the suffix", got[len(got)-3:])
	}

	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q, want unchanged", got)
	}
}

func TestTruncateMiddleMultibyte(t *testing.T) {
	got := truncateMiddle("ÅÖÄÅÖÄÅÖÄÅ", 8)
	if !utf8.ValidString(got) {
		t.Fatalf("truncateMiddle produced invalid UTF-8: %q", got)
	}
	if got != "ÅÖ...ÖÄÅ" {
		t.Fatalf("truncateMiddle = %q, want %q", got, "ÅÖ...ÖÄÅ")
	}

	got = truncateMiddle("ÅÖÄÅÖÄ", 4)
	if !utf8.ValidString(got) || got != "ÅÖÄÅ" {
		t.Fatalf("truncateMiddle tiny max = %q, want %q", got, "ÅÖÄÅ")
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad = %q, want %q", got, "ab   ")
	}
	if got := pad("abcdefgh", 5); len(got) != 5 {
		t.Fatalf("pad over-wide length = %d, want 5", len(got))
	}
}

func TestNextSortBy(t *testing.T) {
	if got := nextSortBy("firstName"); got != "lastName" {
		t.Fatalf("nextSortBy(firstName) = %q, want lastName", got)
	}
	if got := nextSortBy("lastName"); got != "age" {
		t.Fatalf("nextSortBy(lastName) = %q, want age", got)
	}
	if got := nextSortBy("age"); got != "firstName" {
		t.Fatalf("nextSortBy(age) = %q, want firstName", got)
	}
}
