package heuristic

import (
	"context"
	"testing"
)

func TestPersonSpans(t *testing.T) {
	r := New()
	spans, err := r.PersonSpans(context.Background(),
		"John A. Smith is applying. Please reach out to Priya Sharma for details.")
	if err != nil {
		t.Fatalf("PersonSpans() error = %v", err)
	}

	want := map[string]bool{"John A. Smith": false, "Priya Sharma": false}
	for _, s := range spans {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("span %q not found in %v", name, spans)
		}
	}
}

func TestPersonSpansIgnoresLowercaseText(t *testing.T) {
	r := New()
	spans, err := r.PersonSpans(context.Background(), "please find the resume attached below")
	if err != nil {
		t.Fatalf("PersonSpans() error = %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("spans = %v, want none", spans)
	}
}
