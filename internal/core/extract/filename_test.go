package extract

import "testing"

func TestFromFileName(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		file string
		want string
	}{
		{"John_Smith_Resume_final (2).pdf", "John Smith"},
		{"resume-priya-sharma.docx", "Priya Sharma"},
		{"CV_AMIT_KUMAR_updated.pdf", "Amit Kumar"},
		{"resume.pdf", ""},
		{"12345.pdf", ""},
	}
	for _, tc := range cases {
		if got := e.FromFileName(tc.file); got != tc.want {
			t.Errorf("FromFileName(%q) = %q, want %q", tc.file, got, tc.want)
		}
	}
}

func TestFromEmailAddress(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		addr string
		want string
	}{
		{"john.smith1985@gmail.com", "John Smith"},
		{"priya.sharma@example.org", "Priya Sharma"},
		// Hyphens are stray punctuation in a local part, stripped before the
		// split, so the two halves fuse into one token.
		{"priya-sharma@example.org", "Priyasharma"},
		{"x@example.com", ""},
		{"not-an-address", ""},
	}
	for _, tc := range cases {
		if got := e.FromEmailAddress(tc.addr); got != tc.want {
			t.Errorf("FromEmailAddress(%q) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}
