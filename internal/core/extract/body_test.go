package extract

import (
	"context"
	"testing"
)

func TestFromEmailBodySignature(t *testing.T) {
	e := newTestExtractor()
	body := "Hi team,\n\nPlease find my resume attached for the open position.\n\nBest regards,\nJohn Smith\n"
	if got := e.FromEmailBody(context.Background(), body); got != "John Smith" {
		t.Fatalf("FromEmailBody() = %q, want %q", got, "John Smith")
	}
}

func TestFromEmailBodyIntroduction(t *testing.T) {
	e := newTestExtractor()
	body := "Hello,\n\nMy name is Priya Sharma and I am applying for the verification role.\n"
	if got := e.FromEmailBody(context.Background(), body); got != "Priya Sharma" {
		t.Fatalf("FromEmailBody() = %q, want %q", got, "Priya Sharma")
	}
}

func TestFromEmailBodyEmpty(t *testing.T) {
	e := newTestExtractor()
	if got := e.FromEmailBody(context.Background(), ""); got != "" {
		t.Fatalf("FromEmailBody(\"\") = %q, want empty", got)
	}
}
