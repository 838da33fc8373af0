package extract

import (
	"context"
	"testing"
	"time"
)

const sampleResume = `John Smith - Software Engineer
Email: john.smith1985@gmail.com | Phone: +91 98765 43210

PROFESSIONAL SUMMARY
Design verification engineer working with SystemVerilog and UVM.

WORK EXPERIENCE
Verification Engineer, Acme Silicon
Jan 2020 - Dec 2021

EDUCATION
B.Tech in Electronics, 2019
`

func TestFromResumeText(t *testing.T) {
	e := New(DefaultVocabulary(), &nerFake{spans: []string{"John Smith"}},
		fixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)))

	fields := e.FromResumeText(context.Background(), sampleResume)

	if fields.Name != "John Smith" {
		t.Errorf("Name = %q, want %q", fields.Name, "John Smith")
	}
	if fields.Email != "john.smith1985@gmail.com" {
		t.Errorf("Email = %q, want %q", fields.Email, "john.smith1985@gmail.com")
	}
	if fields.Phone != "9876543210" {
		t.Errorf("Phone = %q, want %q", fields.Phone, "9876543210")
	}
	if fields.Experience != "2 years" {
		t.Errorf("Experience = %q, want %q", fields.Experience, "2 years")
	}
	wantSkills := []string{"SystemVerilog", "UVM"}
	if len(fields.Skills) != len(wantSkills) {
		t.Fatalf("Skills = %v, want %v", fields.Skills, wantSkills)
	}
	for i, s := range wantSkills {
		if fields.Skills[i] != s {
			t.Fatalf("Skills = %v, want %v", fields.Skills, wantSkills)
		}
	}
}

func TestNameFromResumeTextStripsTitleNoise(t *testing.T) {
	e := New(DefaultVocabulary(), &nerFake{})
	text := "Priya Sharma - Data Scientist\nbangalore, india\n"
	if got := e.nameFromResumeText(context.Background(), text); got != "Priya Sharma" {
		t.Fatalf("nameFromResumeText() = %q, want %q", got, "Priya Sharma")
	}
}

func TestFromResumeTextFailsSoft(t *testing.T) {
	e := New(DefaultVocabulary(), &nerFake{})
	fields := e.FromResumeText(context.Background(), "completely unrelated text\n")
	if fields.Name != "" || fields.Email != "" || fields.Phone != "" ||
		fields.Experience != "" || len(fields.Skills) != 0 {
		t.Fatalf("expected zero fields, got %+v", fields)
	}
}
