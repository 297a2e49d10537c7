package rule

import "testing"

func TestParseConway(t *testing.T) {
	r, err := Parse("B3/S23")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for n := 0; n <= 8; n++ {
		if got, want := r.IsBirth(n), n == 3; got != want {
			t.Fatalf("IsBirth(%d) = %v, want %v", n, got, want)
		}
		if got, want := r.IsSurvive(n), n == 2 || n == 3; got != want {
			t.Fatalf("IsSurvive(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestParseHighLife(t *testing.T) {
	r, err := Parse("B36/S23")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !r.IsBirth(3) || !r.IsBirth(6) {
		t.Fatalf("expected births at 3 and 6, got %v", r)
	}
	if r.IsBirth(2) || r.IsSurvive(6) {
		t.Fatalf("unexpected memberships in %v", r)
	}
}

func TestParseEmptyRule(t *testing.T) {
	r, err := Parse("B/S")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for n := 0; n <= 8; n++ {
		if r.IsBirth(n) || r.IsSurvive(n) {
			t.Fatalf("empty rule fired for n=%d", n)
		}
	}
}

func TestParseUnorderedDuplicateDigits(t *testing.T) {
	a, err := Parse("B63/S332")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, err := Parse("B36/S23")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a != b {
		t.Fatalf("digit order/duplication should not matter: %v vs %v", a, b)
	}
}

func TestParseMalformed(t *testing.T) {
	bad := []string{
		"",
		"3/S23",
		"B3S23",
		"B9/S23",
		"B3/S29",
		"S23/B3",
		"b3/s23",
		"B3/S23/B3",
		"B3 /S23",
		"B3/S2a",
	}
	for _, s := range bad {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) unexpectedly succeeded", s)
		}
	}
}

func TestDefaultEqualsConway(t *testing.T) {
	want, err := Parse("B3/S23")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if Default() != want {
		t.Fatalf("Default() = %v, want %v", Default(), want)
	}
}

func TestStringCanonical(t *testing.T) {
	cases := map[string]string{
		"B3/S23":        "B3/S23",
		"B63/S32":       "B36/S23",
		"B/S":           "B/S",
		"B012345678/S8": "B012345678/S8",
	}
	for in, want := range cases {
		r, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if got := r.String(); got != want {
			t.Fatalf("Parse(%q).String() = %q, want %q", in, got, want)
		}
	}
}
