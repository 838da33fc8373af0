package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"+91 98765 43210", "9876543210"},
		{"(555) 123-4567", "5551234567"},
		{"919876543210", "9876543210"},
		{"9198765432", "9198765432"}, // 10 digits, "91" is part of the number
		{"unknown", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.raw); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  John.Smith@Gmail.COM "); got != "john.smith@gmail.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
	if got := NormalizeEmail("Unknown"); got != "" {
		t.Errorf("NormalizeEmail(Unknown) = %q, want empty", got)
	}
}

func TestContactKeysOmitEmptySignals(t *testing.T) {
	rec := CandidateRecord{PhoneNumber: "unknown", EmailID: "a@b.example"}
	keys := rec.ContactKeys()
	if len(keys) != 1 || keys[0] != "a@b.example" {
		t.Fatalf("ContactKeys() = %v, want only the email", keys)
	}

	rec = CandidateRecord{PhoneNumber: "unknown", EmailID: "unknown"}
	if keys := rec.ContactKeys(); len(keys) != 0 {
		t.Fatalf("ContactKeys() = %v, want none", keys)
	}
}

func TestFileSkillKeyIsOrderInsensitive(t *testing.T) {
	a := CandidateRecord{FileName: "John_Smith.pdf", Skills: []string{"UVM", "Verilog"}}
	b := CandidateRecord{FileName: "john_smith.PDF", Skills: []string{"Verilog", "UVM"}}

	keyA, okA := a.FileSkillKey()
	keyB, okB := b.FileSkillKey()
	if !okA || !okB {
		t.Fatalf("FileSkillKey() ok = %v/%v, want true", okA, okB)
	}
	if keyA != keyB {
		t.Fatalf("keys differ: %q vs %q", keyA, keyB)
	}
}

func TestFileSkillKeyRequiresBothHalves(t *testing.T) {
	if _, ok := (CandidateRecord{FileName: "x.pdf"}).FileSkillKey(); ok {
		t.Fatal("expected no key without skills")
	}
	if _, ok := (CandidateRecord{Skills: []string{"UVM"}}).FileSkillKey(); ok {
		t.Fatal("expected no key without file name")
	}
}

func TestSkillListRoundTrip(t *testing.T) {
	rec := CandidateRecord{Skills: []string{"UVM", "Verilog"}}
	if got := rec.SkillList(); got != "UVM, Verilog" {
		t.Fatalf("SkillList() = %q", got)
	}
	if got := (CandidateRecord{}).SkillList(); got != Unknown {
		t.Fatalf("SkillList() = %q, want sentinel", got)
	}
	if got := ParseSkillList("unknown"); got != nil {
		t.Fatalf("ParseSkillList(unknown) = %v, want nil", got)
	}
	parsed := ParseSkillList("UVM, Verilog")
	if len(parsed) != 2 || parsed[0] != "UVM" || parsed[1] != "Verilog" {
		t.Fatalf("ParseSkillList() = %v", parsed)
	}
}
