package names

import "testing"

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Jane Q":    "J. Q.",
		"":          "",
		"jean-paul": "J.-P.",
		"Émile":     "É.",
	}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplit(t *testing.T) {
	fam, giv := Split("Doe, Jane Q")
	if fam != "Doe" || giv != "Jane Q" {
		t.Fatalf("Split comma: got (%q,%q)", fam, giv)
	}
	fam, giv = Split("Jane Quimby Doe")
	if fam != "Doe" || giv != "Jane Quimby" {
		t.Fatalf("Split space: got (%q,%q)", fam, giv)
	}
	fam, giv = Split("Plato")
	if fam != "Plato" || giv != "" {
		t.Fatalf("Split mononym: got (%q,%q)", fam, giv)
	}
}

func TestAbbreviate(t *testing.T) {
	cases := map[string]string{
		"Jane Quinn Doe":  "J. Q. Doe",
		"Doe, Jane Quinn": "J. Q. Doe",
		"Plato":           "Plato",
		`<span class="pub-author-me">Jonathan Washington</span>`: `<span class="pub-author-me">Jonathan Washington</span>`,
	}
	for in, want := range cases {
		if got := Abbreviate(in); got != want {
			t.Fatalf("Abbreviate(%q) = %q, want %q", in, got, want)
		}
	}
}
