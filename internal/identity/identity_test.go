package identity

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Great Expectations", "great-expectations"},
		{"Café Littéraire", "cafe-litteraire"},
		{"  Don't Panic!  ", "don-t-panic"},
		{"UPPER lower", "upper-lower"},
		{"--- already --- hyphenated ---", "already-hyphenated"},
		{"", ""},
		{"1984", "1984"},
	}

	for _, tt := range tests {
		if got := Slug(tt.input); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBookKey_InsensitiveToCaseAndAccents(t *testing.T) {
	a := BookKey("Great Expectations", "Charles Dickens")
	b := BookKey("GREAT EXPECTATIONS", "charles dickens")
	c := BookKey("Great  Expectations!", "Charles Díckens")

	if a != b {
		t.Errorf("case difference changed key: %q != %q", a, b)
	}
	if a != c {
		t.Errorf("punctuation/accent difference changed key: %q != %q", a, c)
	}
	if a != "great-expectations|charles-dickens" {
		t.Errorf("unexpected key: %q", a)
	}
}

func TestBookIDBase(t *testing.T) {
	if got := BookIDBase("Great Expectations"); got != "bk_great-expectations" {
		t.Errorf("unexpected id base: %q", got)
	}
}

func TestQuoteID(t *testing.T) {
	id := QuoteID("bk_great-expectations", "It was the best of times")
	if id != "q_91c3b2b8ca74" {
		t.Errorf("unexpected quote id: %q", id)
	}

	// Deterministic across calls
	if again := QuoteID("bk_great-expectations", "It was the best of times"); again != id {
		t.Errorf("quote id not stable: %q != %q", id, again)
	}

	// Same text under a different book is a different quote
	other := QuoteID("bk_other", "It was the best of times")
	if other == id {
		t.Error("quote ids should differ across books")
	}
	if len(other) != len("q_")+12 {
		t.Errorf("unexpected id length: %q", other)
	}
}
