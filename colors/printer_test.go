package colors

import (
	"bytes"
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{string(RED) + "red" + string(RESET), "red"},
		{string(BOLD_RED) + "Erro" + string(RESET) + ": x", "Erro: x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.in); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFprintf_Disabled(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	var buf bytes.Buffer
	RED.Fprintf(&buf, "x=%d", 1)
	if buf.String() != "x=1" {
		t.Errorf("Expected uncolored output, got %q", buf.String())
	}
}

func TestFprintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	GREEN.Fprintf(&buf, "ok")
	if buf.String() != string(GREEN)+"ok"+string(RESET) {
		t.Errorf("Expected colored output, got %q", buf.String())
	}
}

func TestConvertANSIToHTML(t *testing.T) {
	out := ConvertANSIToHTML(string(BOLD_RED) + "a<b" + string(RESET) + "\n")

	if !strings.Contains(out, "font-weight: bold") {
		t.Errorf("Expected bold span, got %q", out)
	}
	if !strings.Contains(out, "a&lt;b") {
		t.Errorf("Expected escaped text, got %q", out)
	}
	if !strings.HasSuffix(out, "</span><br>") {
		t.Errorf("Expected closing span and <br>, got %q", out)
	}
	if strings.Contains(out, "\033") {
		t.Errorf("Expected no raw escape codes, got %q", out)
	}
}
