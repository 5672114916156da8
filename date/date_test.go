package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "standard format", input: "2024-01-15", want: New(2024, time.January, 15)},
		{name: "permissive format", input: "2024-1-5", want: New(2024, time.January, 5)},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestWeekOfYear(t *testing.T) {
	testCases := []struct {
		date string
		want int
	}{
		// 2024-01-01 is a Monday (weekday 1): week 1 covers Jan 1-6.
		{"2024-01-01", 1},
		{"2024-01-06", 1},
		{"2024-01-07", 2},
		// Same week as its own start date.
		{"2024-03-15", MustParse("2024-03-15").WeekOfYear()},
	}
	for _, tc := range testCases {
		if got := MustParse(tc.date).WeekOfYear(); got != tc.want {
			t.Errorf("WeekOfYear(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2024-03-15")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-03-15"` {
		t.Errorf("Marshal = %s, want %q", b, `"2024-03-15"`)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDate_SubAndAdd(t *testing.T) {
	a := MustParse("2024-02-28")
	b := a.Add(2)
	if want := MustParse("2024-03-01"); b != want { // 2024 is a leap year
		t.Errorf("Add(2) = %v, want %v", b, want)
	}
	if got := b.Sub(a); got != 2 {
		t.Errorf("Sub = %d, want 2", got)
	}
}

func TestParseFrequency(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly"} {
		f, err := ParseFrequency(s)
		if err != nil {
			t.Fatalf("ParseFrequency(%q): %v", s, err)
		}
		if f.String() != s {
			t.Errorf("round trip %q = %q", s, f.String())
		}
	}
	if _, err := ParseFrequency("fortnightly"); err == nil {
		t.Error("ParseFrequency should reject unknown frequencies")
	}
}
