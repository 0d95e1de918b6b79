package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/spacehub/space-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "Score:", core.ColorBrightWhite)
	s.DrawTextColor(7, 0, "42", core.ColorYellow)
	s.SetColor(3, 1, 'A', core.ColorBrightGreen)

	for _, theme := range []Theme{DarkTheme(), LightTheme()} {
		out := ansi.Strip(RenderScreen(s, theme))
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("%s: got %d lines, expected 2", theme.Name, len(lines))
		}
		if lines[0] != "Score: 42   " {
			t.Errorf("%s: line 0 = %q", theme.Name, lines[0])
		}
		if lines[1] != "   A        " {
			t.Errorf("%s: line 1 = %q", theme.Name, lines[1])
		}
	}
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"", "dark", true},
		{"dark", "dark", true},
		{"light", "light", true},
		{"neon", "dark", false},
	}
	for _, tc := range tests {
		got, ok := ThemeByName(tc.name)
		if got.Name != tc.want || ok != tc.wantOK {
			t.Errorf("ThemeByName(%q) = (%s, %v), expected (%s, %v)", tc.name, got.Name, ok, tc.want, tc.wantOK)
		}
	}

	if DarkTheme().Toggled().Name != "light" || LightTheme().Toggled().Name != "dark" {
		t.Error("Toggled() should switch between dark and light")
	}
}
