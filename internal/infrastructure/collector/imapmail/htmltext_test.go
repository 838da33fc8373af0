package imapmail

import (
	"strings"
	"testing"
)

func TestHTMLToTextKeepsLineStructure(t *testing.T) {
	src := `<html><head><style>p{color:red}</style></head><body>
<p>Hi team,</p>
<p>Please find my resume attached.</p>
<div>Regards,<br>John Smith</div>
</body></html>`

	text := htmlToText(src)
	if strings.Contains(text, "color:red") {
		t.Fatalf("style content leaked into text: %q", text)
	}

	lines := strings.Split(text, "\n")
	var found bool
	for _, line := range lines {
		if strings.TrimSpace(line) == "John Smith" {
			found = true
		}
	}
	if !found {
		t.Fatalf("signature not on its own line: %q", text)
	}
}

func TestHTMLToTextPlainInput(t *testing.T) {
	if got := htmlToText("just a sentence"); got != "just a sentence" {
		t.Fatalf("htmlToText() = %q", got)
	}
}
