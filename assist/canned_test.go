package assist

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCannedRespondMatchesTopics(t *testing.T) {
	tests := []struct {
		question string
		contains string
	}{
		{"How do I handle revenue recognition under ASC 606?", "performance obligation"},
		{"Draft a reversing entry for the payroll accrual", "accrued liability"},
		{"What about depreciation and useful life?", "straight-line"},
		{"My trial balance is out of balance", "balance indicator"},
		{"Generate the income statement please", "financial statement generator"},
		{"What belongs on the chart of accounts?", "normal balance"},
	}
	c := NewCanned()
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, err := c.Respond(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("Respond() error: %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Respond(%q) = %q, want it to mention %q", tt.question, got, tt.contains)
			}
		})
	}
}

func TestCannedRespondRotatesFallbacks(t *testing.T) {
	c := NewCanned()
	seen := make(map[string]bool)
	for i := 0; i < len(fallbacks); i++ {
		got, err := c.Respond(context.Background(), "xyzzy")
		if err != nil {
			t.Fatalf("Respond() error: %v", err)
		}
		if seen[got] {
			t.Errorf("fallback %q repeated before the rotation completed", got)
		}
		seen[got] = true
	}

	// The rotation wraps around.
	got, _ := c.Respond(context.Background(), "xyzzy")
	if !seen[got] {
		t.Errorf("fallback %q not part of the rotation", got)
	}
}

func TestAssistantSession(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("what is a trial balance\nbye\n")

	a := New(&out, in, NewCanned())
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "accounting assistant") {
		t.Errorf("output missing primer message: %q", output)
	}
	if !strings.Contains(output, "balance indicator") {
		t.Errorf("output missing the trial balance answer: %q", output)
	}
}

func TestAssistantInitialPrompts(t *testing.T) {
	var out bytes.Buffer
	// EOF after the prompts are flushed ends the session cleanly.
	in := bufio.NewReader(strings.NewReader(""))

	a := New(&out, in, NewCanned())
	if err := a.Run(context.Background(), "how do I split operating from financing activity"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "operations") {
		t.Errorf("output missing the cash flow answer: %q", out.String())
	}
}
