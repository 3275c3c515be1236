package regexparse

import "testing"

func TestLexEscapeScalarForms(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`\u{41}`, 'A'},
		{`\x41`, 'A'},
		{`\x{41}`, 'A'},
		{`\x`, 0}, // 0-digit \x is U+0000
		{`\U00000041`, 'A'},
		{`\o{101}`, 'A'},
		{`\101`, 'A'}, // decimal run 101 exceeds priorGroupCount(0) and isn't 1-9/8/9 -> falls back to octal
	}
	for _, tt := range tests {
		lx := newLexer(tt.input[1:], Traditional) // strip leading backslash; LexEscape starts after it
		n, err := lx.LexEscape(0, 0, false)
		if err != nil {
			t.Fatalf("LexEscape(%q) error = %v", tt.input, err)
		}
		atom, ok := n.(*Atom)
		if !ok {
			t.Fatalf("LexEscape(%q) = %T, want *Atom", tt.input, n)
		}
		if atom.AKind != AtomUnicodeScalar {
			t.Fatalf("LexEscape(%q) AKind = %v, want AtomUnicodeScalar", tt.input, atom.AKind)
		}
		if atom.Char != tt.want {
			t.Fatalf("LexEscape(%q) Char = %q, want %q", tt.input, atom.Char, tt.want)
		}
	}
}

func TestLexOctalOrBackrefDisambiguation(t *testing.T) {
	tests := []struct {
		name            string
		digits          string
		priorGroupCount int
		wantKind        AtomKind
		wantChar        rune
		wantRef         int
	}{
		{"leadingZeroAlwaysOctal", "0707", 0, AtomUnicodeScalar, 0x38, 0},
		{"singleDigit1To9IsBackref", "1", 0, AtomBackreference, 0, 1},
		{"d0is8IsBackref", "80", 0, AtomBackreference, 0, 80},
		{"d0is9IsBackref", "95", 0, AtomBackreference, 0, 95},
		{"withinPriorGroupCountIsBackref", "10", 10, AtomBackreference, 0, 10},
		{"beyondPriorGroupCountFallsBackToOctal", "101", 0, AtomUnicodeScalar, 'A', 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := newLexer(tt.digits[1:], Traditional)
			d0 := rune(tt.digits[0])
			n, err := lx.lexOctalOrBackref(0, d0, tt.priorGroupCount, false)
			if err != nil {
				t.Fatalf("lexOctalOrBackref() error = %v", err)
			}
			atom := n.(*Atom)
			if atom.AKind != tt.wantKind {
				t.Fatalf("AKind = %v, want %v", atom.AKind, tt.wantKind)
			}
			switch tt.wantKind {
			case AtomUnicodeScalar:
				if atom.Char != tt.wantChar {
					t.Fatalf("Char = %q, want %q", atom.Char, tt.wantChar)
				}
			case AtomBackreference:
				if atom.Ref.Kind != RefAbsolute || atom.Ref.Abs != tt.wantRef {
					t.Fatalf("Ref = %v, want absolute %d", atom.Ref, tt.wantRef)
				}
			}
		})
	}
}

func TestLexOctalOrBackrefNeverBackrefInClass(t *testing.T) {
	lx := newLexer("", Traditional)
	n, err := lx.lexOctalOrBackref(0, '1', 5, true)
	if err != nil {
		t.Fatalf("lexOctalOrBackref() error = %v", err)
	}
	atom := n.(*Atom)
	if atom.AKind != AtomUnicodeScalar {
		t.Fatalf("inside a class, digit must never become a backreference; got AKind = %v", atom.AKind)
	}
}

func TestLexEscapeKeyboardControl(t *testing.T) {
	lx := newLexer("cx", Traditional)
	n, err := lx.LexEscape(0, 0, false)
	if err != nil {
		t.Fatalf("LexEscape(\\cx) error = %v", err)
	}
	atom := n.(*Atom)
	if atom.AKind != AtomKeyboardControl || atom.Char != 'x' {
		t.Fatalf("got %v, want keyboardControl('x')", dumpAtom(atom))
	}
}

func TestLexEscapePropertyEscape(t *testing.T) {
	lx := newLexer("p{L}", Traditional)
	n, err := lx.LexEscape(0, 0, false)
	if err != nil {
		t.Fatalf("LexEscape(\\p{L}) error = %v", err)
	}
	atom := n.(*Atom)
	if atom.AKind != AtomCharacterProperty || atom.Inverted {
		t.Fatalf("got %v, want non-inverted character property", dumpAtom(atom))
	}
}

func TestLexEscapeNegatedPropertyEscape(t *testing.T) {
	lx := newLexer("P{L}", Traditional)
	n, err := lx.LexEscape(0, 0, false)
	if err != nil {
		t.Fatalf("LexEscape(\\P{L}) error = %v", err)
	}
	atom := n.(*Atom)
	if atom.AKind != AtomCharacterProperty || !atom.Inverted {
		t.Fatalf("got %v, want inverted character property", dumpAtom(atom))
	}
}

func TestLexQuantifierAmountBasic(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
	}{
		{"*", Amount{Tag: AmountZeroOrMore}},
		{"+", Amount{Tag: AmountOneOrMore}},
		{"?", Amount{Tag: AmountZeroOrOne}},
		{"{3}", Amount{Tag: AmountExactly, N: 3}},
		{"{3,}", Amount{Tag: AmountNOrMore, N: 3}},
		{"{,5}", Amount{Tag: AmountUpToN, M: 5}},
		{"{1,2}", Amount{Tag: AmountRange, N: 1, M: 2}},
	}
	for _, tt := range tests {
		lx := newLexer(tt.input, Traditional)
		amt, ok, err := lx.LexQuantifierAmount()
		if err != nil || !ok {
			t.Fatalf("LexQuantifierAmount(%q) = %v, %v, %v", tt.input, amt, ok, err)
		}
		if amt != tt.want {
			t.Fatalf("LexQuantifierAmount(%q) = %v, want %v", tt.input, amt, tt.want)
		}
	}
}

func TestLexQuantifierAmountWhitespaceBreaksRangeIntoLiteral(t *testing.T) {
	lx := newLexer("{3, 5}", Traditional)
	_, ok, err := lx.LexQuantifierAmount()
	if err != nil {
		t.Fatalf("LexQuantifierAmount(%q) error = %v", "{3, 5}", err)
	}
	if ok {
		t.Fatalf("LexQuantifierAmount(%q) matched, want fallback to literal '{'", "{3, 5}")
	}
	if lx.cur.Pos() != 0 {
		t.Fatalf("cursor not restored after failed range lex: Pos() = %d, want 0", lx.cur.Pos())
	}
}

func TestLexQuantifierKind(t *testing.T) {
	tests := []struct {
		input string
		want  QuantifierKind
	}{
		{"?", QuantReluctant},
		{"+", QuantPossessive},
		{"", QuantEager},
		{"x", QuantEager},
	}
	for _, tt := range tests {
		lx := newLexer(tt.input, Traditional)
		if got := lx.LexQuantifierKind(); got != tt.want {
			t.Fatalf("LexQuantifierKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLexQuoteOrTriviaBackslashQuote(t *testing.T) {
	lx := newLexer(`\Qa.b\Ec`, Traditional)
	lx.cur.TryEatSeq(`\Q`)
	n, ok, err := lx.finishBackslashQuote()
	if err != nil || !ok {
		t.Fatalf("finishBackslashQuote() = %v, %v, %v", n, ok, err)
	}
	q := n.(*Quote)
	if q.Text != "a.b" {
		t.Fatalf("Text = %q, want %q", q.Text, "a.b")
	}
	if lx.cur.Remaining() != "c" {
		t.Fatalf("remaining = %q, want %q", lx.cur.Remaining(), "c")
	}
}

func TestLexQuoteOrTriviaParenComment(t *testing.T) {
	lx := newLexer("(?#hello)rest", Traditional)
	n, ok, err := lx.LexQuoteOrTrivia(0)
	if err != nil || !ok {
		t.Fatalf("LexQuoteOrTrivia() = %v, %v, %v", n, ok, err)
	}
	trivia := n.(*Trivia)
	if trivia.TKind != TriviaComment || trivia.Text != "hello" {
		t.Fatalf("got %+v, want comment(hello)", trivia)
	}
}
