package brace

import "testing"

func Test_Printer_CanonicalForms(t *testing.T) {
	cases := map[string]string{
		`{ add : 1 : 2 ;}`:      `{add:1:2;}`,
		`{x}`:                   `{x}`,
		`{a[0].b}`:              `{a[0].b}`,
		`{set: x :5;}`:          `{set:x:5;}`,
		`{del:m.k;}`:            `{del:m.k;}`,
		`{f;}`:                  `{f;}`,
		`plain text`:            `plain text`,
		`a\nb`:                  `a\nb`,
		`{#>oneline}x`:          `{#>oneline}x`,
		`{! gone !}kept`:        `kept`,
		`{for:i:3:{i};}`:        `{for:i:3:{i};}`,
	}
	for src, want := range cases {
		prog := mustParse(t, src)
		if got := FormatProgram(prog); got != want {
			t.Fatalf("format(%q) = %q, want %q", src, got, want)
		}
	}
}
