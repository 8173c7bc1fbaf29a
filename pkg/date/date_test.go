package date_test

import (
	"testing"
	"time"

	"github.com/artpar/asyncdoc/pkg/date"
)

func TestParse(t *testing.T) {
	d, err := date.Parse("2024-01-15")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if d.Year != 2024 || d.Month != time.January || d.Day != 15 {
		t.Errorf("expected 2024-01-15, got %v", d)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "2024-13-01", "15/01/2024", "2024-01-15T10:00:00Z"}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			if _, err := date.Parse(input); err == nil {
				t.Errorf("expected error for %q, got nil", input)
			}
		})
	}
}

func TestString(t *testing.T) {
	d := date.Of(2024, time.March, 7)

	if got := d.String(); got != "2024-03-07" {
		t.Errorf("expected 2024-03-07, got %q", got)
	}
}

func TestRoundtrip(t *testing.T) {
	d := date.Of(1999, time.December, 31)

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText returned error: %v", err)
	}

	var parsed date.Date
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}

	if parsed != d {
		t.Errorf("expected %v after roundtrip, got %v", d, parsed)
	}
}

func TestIsZero(t *testing.T) {
	var zero date.Date
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}

	if date.Of(2024, time.May, 1).IsZero() {
		t.Error("non-zero date should not report IsZero")
	}
}

func TestBeforeAfter(t *testing.T) {
	a := date.Of(2024, time.January, 1)
	b := date.Of(2024, time.January, 2)

	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if !b.After(a) {
		t.Error("expected b after a")
	}
	if a.Before(a) {
		t.Error("a date is not before itself")
	}
}

func TestFromTime(t *testing.T) {
	instant := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)

	if got := date.FromTime(instant); got != date.Of(2024, time.June, 10) {
		t.Errorf("expected 2024-06-10, got %v", got)
	}
}
