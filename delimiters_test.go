package regexparse

import "testing"

func TestLexRegexPairedDelimiters(t *testing.T) {
	contents, delim, contentsStart, endPos, err := LexRegex("x(a(b)c)y", 1)
	if err != nil {
		t.Fatalf("LexRegex() error = %v", err)
	}
	if delim != '(' {
		t.Fatalf("delim = %q, want '('", delim)
	}
	if contents != "a(b)c" {
		t.Fatalf("contents = %q, want %q", contents, "a(b)c")
	}
	if contentsStart != 2 {
		t.Fatalf("contentsStart = %d, want 2", contentsStart)
	}
	if "x(a(b)c)y"[endPos:] != "y" {
		t.Fatalf("remaining after endPos = %q, want %q", "x(a(b)c)y"[endPos:], "y")
	}
}

func TestLexRegexSameCharDelimiterRespectsEscapes(t *testing.T) {
	source := `/a\/b/c`
	contents, delim, _, endPos, err := LexRegex(source, 0)
	if err != nil {
		t.Fatalf("LexRegex() error = %v", err)
	}
	if delim != '/' {
		t.Fatalf("delim = %q, want '/'", delim)
	}
	if contents != `a\/b` {
		t.Fatalf("contents = %q, want %q", contents, `a\/b`)
	}
	if source[endPos:] != "c" {
		t.Fatalf("remaining = %q, want %q", source[endPos:], "c")
	}
}

func TestLexRegexUnterminatedIsError(t *testing.T) {
	_, _, _, _, err := LexRegex("(abc", 0)
	if err == nil {
		t.Fatal("LexRegex(\"(abc\") succeeded, want error")
	}
}

func TestParseWithDelimiters(t *testing.T) {
	dr, err := ParseWithDelimiters("x/a(b)/y", 1, Traditional)
	if err != nil {
		t.Fatalf("ParseWithDelimiters() error = %v", err)
	}
	if dr.Delimiter != '/' {
		t.Fatalf("Delimiter = %q, want '/'", dr.Delimiter)
	}
	if dr.Contents != "a(b)" {
		t.Fatalf("Contents = %q, want %q", dr.Contents, "a(b)")
	}
	if _, ok := dr.Root.(*Concatenation); !ok {
		t.Fatalf("Root = %T, want *Concatenation", dr.Root)
	}
	if "x/a(b)/y"[dr.EndPos:] != "y" {
		t.Fatalf("remaining after EndPos = %q, want %q", "x/a(b)/y"[dr.EndPos:], "y")
	}
}
