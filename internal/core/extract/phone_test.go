package extract

import "testing"

func TestPhoneFromText(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Call me at +91 98765 43210", "9876543210"},
		{"Phone: (555) 123-4567", "5551234567"},
		{"Mobile 9876543210", "9876543210"},
		{"no digits here", ""},
		{"room 1234", ""},
	}
	for _, tc := range cases {
		if got := phoneFromText(tc.text); got != tc.want {
			t.Errorf("phoneFromText(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
