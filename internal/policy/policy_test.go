package policy

import "testing"

func TestGet_KnownTags(t *testing.T) {
	for _, tag := range []string{"all", "strict", ""} {
		p, err := Get(tag)
		if err != nil {
			t.Fatalf("Get(%q): %v", tag, err)
		}
		if p.Accept == nil {
			t.Errorf("Get(%q): nil Accept", tag)
		}
	}
}

func TestGet_UnknownTag(t *testing.T) {
	_, err := Get("lenient")
	if err == nil {
		t.Fatal("expected error for unknown policy, got nil")
	}
}

func TestAll_AcceptsEverythingButBlank(t *testing.T) {
	p, _ := Get("all")
	for _, w := range []string{"A", "BE", "CO-OP", "DON'T", "X1"} {
		if !p.Accept(w) {
			t.Errorf("all rejected %q", w)
		}
	}
	if p.Accept("") {
		t.Error("all accepted the empty word")
	}
}

func TestStrict_Table(t *testing.T) {
	p, _ := Get("strict")
	cases := []struct {
		word string
		want bool
	}{
		{"HONEY", true},
		{"GRAPE", true},
		{"ABCDE", true},
		{"BE", false},    // too short
		{"HI", false},    // too short
		{"FOUR", false},  // length 4 is not > 4
		{"CO-OP", false}, // hyphen despite length 5
		{"DON'T", false}, // apostrophe
		{"AB CD", false}, // space
		{"ABC12", false}, // digits
		{"apple", false}, // not normalized
		{"", false},
	}
	for _, tc := range cases {
		if got := p.Accept(tc.word); got != tc.want {
			t.Errorf("strict.Accept(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}
