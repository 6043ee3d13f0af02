package brace

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func runFile(t *testing.T, path string, args ...string) string {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	ip := NewInterpreter()
	ip.SetArgs(args)
	var buf bytes.Buffer
	if err := ip.RunSource(string(src), &buf); err != nil {
		t.Fatalf("%s: %v", path, WrapErrorWithName(err, path, string(src)))
	}
	return buf.String()
}

func Test_Example_Mandelbrot(t *testing.T) {
	out := runFile(t, "examples/mandelbrot.txt")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("mandelbrot: %d lines, want 50", len(lines))
	}
	distinct := map[rune]bool{}
	for i, ln := range lines {
		if len(ln) != 200 {
			t.Fatalf("line %d has width %d, want 200", i, len(ln))
		}
		for _, r := range ln {
			if r != ' ' && (r < 'A' || r > 'Z') {
				t.Fatalf("line %d contains unexpected rune %q", i, r)
			}
			distinct[r] = true
		}
	}
	if len(distinct) <= 5 {
		t.Fatalf("only %d distinct characters; the image should be non-trivial", len(distinct))
	}
}

func Test_Example_Enigma_Symmetry(t *testing.T) {
	plain := "TESTSTRING"
	cipher := runFile(t, "examples/enigma.txt", plain)
	if len(cipher) != len(plain) {
		t.Fatalf("cipher %q has wrong length", cipher)
	}
	if cipher == plain {
		t.Fatalf("cipher equals plaintext")
	}
	back := runFile(t, "examples/enigma.txt", cipher)
	if back != plain {
		t.Fatalf("round trip gave %q, want %q (cipher %q)", back, plain, cipher)
	}
}

func Test_Example_Enigma_NoFixedPoints(t *testing.T) {
	// An Enigma never encrypts a letter to itself.
	plain := "AAAAAAAAAA"
	cipher := runFile(t, "examples/enigma.txt", plain)
	for i := range cipher {
		if cipher[i] == 'A' {
			t.Fatalf("fixed point at %d in %q", i, cipher)
		}
	}
}
