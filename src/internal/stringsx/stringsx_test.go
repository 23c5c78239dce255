package stringsx

import (
	"reflect"
	"testing"
)

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", " ", " x ", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty: want 'x', got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty empty: want '', got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	cases := map[string][]string{
		"article":           {"article"},
		" article, book,, ": {"article", "book"},
		"":                  nil,
		",":                 nil,
	}
	for in, want := range cases {
		if got := SplitList(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitList(%q) = %#v, want %#v", in, got, want)
		}
	}
}
