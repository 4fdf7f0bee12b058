package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{"info", func(u *UI) { u.Info("hello") }, "[INFO] hello\n"},
		{"success", func(u *UI) { u.Success("done") }, "[✓] done\n"},
		{"warning", func(u *UI) { u.Warning("careful") }, "[WARNING] careful\n"},
		{"error", func(u *UI) { u.Error("bad") }, "[ERROR] bad\n"},
		{"infof", func(u *UI) { u.Infof("n=%d", 3) }, "[INFO] n=3\n"},
		{"plain", func(u *UI) { u.Print("plain") }, "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := NewWithWriter(&buf)

			tt.print(u)

			// Color escape codes may wrap the text depending on the
			// environment; compare the stripped content.
			got := stripANSI(buf.String())
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNonInteractivePrompts(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)

	yes, err := u.PromptYesNo("proceed?", true)
	if err != nil || !yes {
		t.Errorf("PromptYesNo non-interactive = (%v, %v), want (true, nil)", yes, err)
	}

	got, err := u.PromptInput("name?", "fallback")
	if err != nil || got != "fallback" {
		t.Errorf("PromptInput non-interactive = (%q, %v), want (\"fallback\", nil)", got, err)
	}
}

// stripANSI removes ANSI color escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
