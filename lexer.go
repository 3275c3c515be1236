package regexparse

import (
	"strconv"
	"strings"
)

// Lexer は、ダイアレクト依存の字句解析ルーチンをまとめたものです。パーサーは
// 非終端記号ごとにここのメソッドを呼び出し、数少ない判別用の述語を除いて
// 生の文字を直接覗きません。Cursor の所有権は Lexer が持ち、Parser は
// Lexer を介してのみ入力を消費します。
type Lexer struct {
	cur  *Cursor
	opts SyntaxOptions
}

func newLexer(input string, opts SyntaxOptions) *Lexer {
	return &Lexer{cur: NewCursor(input), opts: opts}
}

func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isASCII(r rune) bool { return r < 0x80 }

// --- numbers -------------------------------------------------------------

// lexDecimalNumber は、10進数の連続する数字を読み、無ければ ok=false を返します。
func (lx *Lexer) lexDecimalNumber() (int, bool, error) {
	start := lx.cur.Pos()
	text := lx.cur.EatWhile(isDigit)
	if text == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, errNumberOverflow(text, NewLocation(start, lx.cur.Pos()))
	}
	return n, true, nil
}

// lexRadixDigits は、min〜max桁の radix 進数の数字を読みます。digits が
// min 未満であればエラーを返します。
func (lx *Lexer) lexRadixDigits(min, max, radix int) (string, error) {
	start := lx.cur.Pos()
	pred := isHexDigit
	if radix == 8 {
		pred = isOctalDigit
	}
	text := lx.cur.EatUpTo(max, pred)
	if len(text) < min {
		return "", errExpectedNumDigits(text, min, NewLocation(start, lx.cur.Pos()))
	}
	return text, nil
}

func parseScalarValue(text string, radix int, loc Location) (rune, error) {
	v, err := strconv.ParseUint(text, radix, 32)
	if err != nil {
		return 0, errNumberOverflow(text, loc)
	}
	if !validScalarValue(uint32(v)) {
		return 0, errInvalidScalar(rune(v), loc)
	}
	return rune(v), nil
}

func validScalarValue(v uint32) bool {
	if v > 0x10FFFF {
		return false
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}
	return true
}

// --- escapes and Unicode scalar forms (§4.3) ------------------------------

// LexEscape は、直前にバックスラッシュを消費した状態で呼び出され、残りの
// エスケープシーケンス全体を解釈して1つのAtomノード（または稀に他の
// ノード）を返します。escStart はバックスラッシュ自体の位置です。
// inClass は、カスタム文字クラス内から呼ばれているかどうかを示し、
// バックリファレンスとアンカーの出現を禁止します（§4.8）。
func (lx *Lexer) LexEscape(escStart int, priorGroupCount int, inClass bool) (Node, error) {
	if lx.cur.IsEmpty() {
		return nil, errUnexpectedEndOfInput(NewLocation(escStart, lx.cur.Pos()))
	}
	r := lx.cur.Eat()

	switch r {
	case 'u':
		scalar, err := lx.lexUForm()
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	case 'x':
		scalar, err := lx.lexXForm()
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	case 'U':
		text, err := lx.lexRadixDigits(8, 8, 16)
		if err != nil {
			return nil, err
		}
		scalar, err := parseScalarValue(text, 16, NewLocation(escStart, lx.cur.Pos()))
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	case 'o':
		scalar, err := lx.lexBracedRadix(8)
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	case 'N':
		return lx.lexNamedOrScalarEscape(escStart)
	case 'p', 'P':
		return lx.lexPropertyEscape(escStart, r == 'P')
	case 'c':
		ch, err := lx.lexASCII()
		if err != nil {
			return nil, err
		}
		return keyboardAtom(AtomKeyboardControl, ch, NewLocation(escStart, lx.cur.Pos())), nil
	case 'C':
		if !lx.cur.TryEat('-') {
			return nil, errExpected("-", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
		}
		ch, err := lx.lexASCII()
		if err != nil {
			return nil, err
		}
		return keyboardAtom(AtomKeyboardControl, ch, NewLocation(escStart, lx.cur.Pos())), nil
	case 'M':
		if !lx.cur.TryEat('-') {
			return nil, errExpected("-", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
		}
		if lx.cur.TryEatSeq(`\C-`) {
			ch, err := lx.lexASCII()
			if err != nil {
				return nil, err
			}
			return keyboardAtom(AtomKeyboardMetaControl, ch, NewLocation(escStart, lx.cur.Pos())), nil
		}
		ch, err := lx.lexASCII()
		if err != nil {
			return nil, err
		}
		return keyboardAtom(AtomKeyboardMeta, ch, NewLocation(escStart, lx.cur.Pos())), nil
	case 'g':
		if inClass {
			return literalCharAtom('g', NewLocation(escStart, lx.cur.Pos())), nil
		}
		return lx.lexSubpatternCall(escStart)
	case 'k':
		if inClass {
			return literalCharAtom('k', NewLocation(escStart, lx.cur.Pos())), nil
		}
		return lx.lexNamedBackreference(escStart)
	case '.', '*', '+', '?', '|', '(', ')', '[', ']', '{', '}', '\\', '^', '$', '-', '/', '#', '"', '\'':
		return literalCharAtom(r, NewLocation(escStart, lx.cur.Pos())), nil
	case 'n':
		return literalCharAtom('\n', NewLocation(escStart, lx.cur.Pos())), nil
	case 'r':
		return literalCharAtom('\r', NewLocation(escStart, lx.cur.Pos())), nil
	case 't':
		return literalCharAtom('\t', NewLocation(escStart, lx.cur.Pos())), nil
	case 'f':
		return literalCharAtom('\f', NewLocation(escStart, lx.cur.Pos())), nil
	case 'v':
		return literalCharAtom('\v', NewLocation(escStart, lx.cur.Pos())), nil
	case 'a':
		return literalCharAtom('\a', NewLocation(escStart, lx.cur.Pos())), nil
	case 'e':
		return literalCharAtom(0x1B, NewLocation(escStart, lx.cur.Pos())), nil
	case 'd', 'D', 'w', 'W', 's', 'S':
		return escapedBuiltinAtom(r, NewLocation(escStart, lx.cur.Pos())), nil
	case 'b', 'B', 'A', 'Z', 'z', 'G':
		if inClass {
			// アンカー・境界はクラス内では許されないため、文字そのものとして扱う
			return literalCharAtom(r, NewLocation(escStart, lx.cur.Pos())), nil
		}
		return escapedBuiltinAtom(r, NewLocation(escStart, lx.cur.Pos())), nil
	case '0':
		return lx.lexOctalOrBackref(escStart, r, priorGroupCount, inClass)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return lx.lexOctalOrBackref(escStart, r, priorGroupCount, inClass)
	default:
		return literalCharAtom(r, NewLocation(escStart, lx.cur.Pos())), nil
	}
}

// lexUForm は、`\u{H+}`（1〜8桁）または `\uHHHH`（正確に4桁）を解釈します。
func (lx *Lexer) lexUForm() (rune, error) {
	if lx.cur.TryEat('{') {
		start := lx.cur.Pos()
		text := lx.cur.EatUpTo(8, isHexDigit)
		if !lx.cur.TryEat('}') {
			return 0, errExpected("}", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
		}
		if text == "" {
			return 0, errExpectedNumDigits(text, 1, NewLocation(start, lx.cur.Pos()))
		}
		return parseScalarValue(text, 16, NewLocation(start, lx.cur.Pos()))
	}
	text, err := lx.lexRadixDigits(4, 4, 16)
	if err != nil {
		return 0, err
	}
	return parseScalarValue(text, 16, NewLocation(lx.cur.Pos()-4, lx.cur.Pos()))
}

// lexXForm は、`\x{H+}`（1〜8桁）または `\xHH`（0〜2桁。0桁はU+0000）を解釈します。
func (lx *Lexer) lexXForm() (rune, error) {
	if lx.cur.TryEat('{') {
		start := lx.cur.Pos()
		text := lx.cur.EatUpTo(8, isHexDigit)
		if !lx.cur.TryEat('}') {
			return 0, errExpected("}", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
		}
		if text == "" {
			return 0, errExpectedNumDigits(text, 1, NewLocation(start, lx.cur.Pos()))
		}
		return parseScalarValue(text, 16, NewLocation(start, lx.cur.Pos()))
	}
	start := lx.cur.Pos()
	text := lx.cur.EatUpTo(2, isHexDigit)
	if text == "" {
		return 0, nil // 0桁 → U+0000
	}
	return parseScalarValue(text, 16, NewLocation(start, lx.cur.Pos()))
}

// lexBracedRadix は、`\o{O+}` のように波括弧に囲まれた任意桁数の数字を解釈します。
func (lx *Lexer) lexBracedRadix(radix int) (rune, error) {
	if !lx.cur.TryEat('{') {
		return 0, errExpected("{", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	start := lx.cur.Pos()
	pred := isOctalDigit
	if radix == 16 {
		pred = isHexDigit
	}
	text := lx.cur.EatWhile(pred)
	if !lx.cur.TryEat('}') {
		return 0, errExpected("}", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	if text == "" {
		return 0, errExpectedNumDigits(text, 1, NewLocation(start, lx.cur.Pos()))
	}
	return parseScalarValue(text, radix, NewLocation(start, lx.cur.Pos()))
}

// lexNamedOrScalarEscape は、`\N{NAME}` を解釈します。本体が `U+` で始まる
// 場合はスカラー値、そうでなければ名前付き文字アトムになります（§4.3）。
func (lx *Lexer) lexNamedOrScalarEscape(escStart int) (Node, error) {
	if !lx.cur.TryEat('{') {
		return nil, errExpected("{", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	start := lx.cur.Pos()
	body := lx.cur.EatWhile(func(r rune) bool { return r != '}' })
	if !lx.cur.TryEat('}') {
		return nil, errExpected("}", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	if body == "" {
		return nil, errExpectedNonEmptyContents(NewLocation(start, lx.cur.Pos()))
	}
	if strings.HasPrefix(body, "U+") {
		hex := body[2:]
		if len(hex) < 1 || len(hex) > 8 {
			return nil, errExpectedNumDigits(hex, 1, NewLocation(start, lx.cur.Pos()))
		}
		scalar, err := parseScalarValue(hex, 16, NewLocation(start, lx.cur.Pos()))
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	}
	return namedCharacterAtom(body, NewLocation(escStart, lx.cur.Pos())), nil
}

// lexPropertyEscape は、`\p{...}` / `\P{...}` を解釈します。
func (lx *Lexer) lexPropertyEscape(escStart int, negated bool) (Node, error) {
	if !lx.cur.TryEat('{') {
		return nil, errExpected("{", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	start := lx.cur.Pos()
	body := lx.cur.EatWhile(func(r rune) bool { return r != '}' })
	if !lx.cur.TryEat('}') {
		return nil, errExpected("}", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	if body == "" {
		return nil, errExpectedNonEmptyContents(NewLocation(start, lx.cur.Pos()))
	}
	prop := ClassifyProperty(body)
	return characterPropertyAtom(prop, negated, false, NewLocation(escStart, lx.cur.Pos())), nil
}

// lexASCII は、1文字を消費し、それがASCIIであることを検証します（キーボード
// エスケープ用、§4.3）。
func (lx *Lexer) lexASCII() (rune, error) {
	if lx.cur.IsEmpty() {
		return 0, errUnexpectedEndOfInput(NewLocation(lx.cur.Pos(), lx.cur.Pos()))
	}
	start := lx.cur.Pos()
	r := lx.cur.Eat()
	if !isASCII(r) {
		return 0, errExpectedASCII(r, NewLocation(start, lx.cur.Pos()))
	}
	return r, nil
}

// lexOctalOrBackref は、§4.4 の8進数・バックリファレンス曖昧性解消を実装します。
func (lx *Lexer) lexOctalOrBackref(escStart int, d0 rune, priorGroupCount int, inClass bool) (Node, error) {
	if d0 == '0' {
		rest := lx.cur.EatUpTo(2, isOctalDigit)
		digits := string(d0) + rest
		scalar, err := parseScalarValue(digits, 8, NewLocation(escStart, lx.cur.Pos()))
		if err != nil {
			return nil, err
		}
		return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
	}

	cp := lx.cur.Save()
	rest := lx.cur.EatWhile(isDigit)
	text := string(d0) + rest
	n, convErr := strconv.Atoi(text)
	if convErr != nil {
		return nil, errNumberOverflow(text, NewLocation(escStart, lx.cur.Pos()))
	}

	isBackref := !inClass && ((n >= 1 && n <= 9) || d0 == '8' || d0 == '9' || n <= priorGroupCount)
	if isBackref {
		return backreferenceAtom(AbsoluteReference(n), NewLocation(escStart, lx.cur.Pos())), nil
	}

	lx.cur.Restore(cp)
	extra := lx.cur.EatUpTo(2, isOctalDigit)
	digits := string(d0) + extra
	scalar, err := parseScalarValue(digits, 8, NewLocation(escStart, lx.cur.Pos()))
	if err != nil {
		return nil, err
	}
	return unicodeScalarAtom(scalar, NewLocation(escStart, lx.cur.Pos())), nil
}

// lexSubpatternCall は、`\gN`, `\g{...}`, `\g<...>`, `\g'...'` を解釈します。
func (lx *Lexer) lexSubpatternCall(escStart int) (Node, error) {
	ref, err := lx.lexGroupRefBody('g')
	if err != nil {
		return nil, err
	}
	return subpatternAtom(ref, NewLocation(escStart, lx.cur.Pos())), nil
}

// lexNamedBackreference は、`\k<...>`, `\k'...'`, `\k{...}` を解釈します。
func (lx *Lexer) lexNamedBackreference(escStart int) (Node, error) {
	ref, err := lx.lexGroupRefBody('k')
	if err != nil {
		return nil, err
	}
	return backreferenceAtom(ref, NewLocation(escStart, lx.cur.Pos())), nil
}

// lexGroupRefBody は、\g / \k の後に続く区切り付き、あるいは区切りなし
// (\gN のみ) の参照本体を解釈します。
func (lx *Lexer) lexGroupRefBody(introducer rune) (Reference, error) {
	var closer rune
	switch {
	case lx.cur.TryEat('<'):
		closer = '>'
	case lx.cur.TryEat('\''):
		closer = '\''
	case lx.cur.TryEat('{'):
		closer = '}'
	default:
		if introducer == 'g' {
			// \gN（区切りなし、符号付き可）
			start := lx.cur.Pos()
			sign := 1
			if lx.cur.TryEat('-') {
				sign = -1
			} else {
				lx.cur.TryEat('+')
			}
			n, ok, err := lx.lexDecimalNumber()
			if err != nil {
				return Reference{}, err
			}
			if !ok {
				return Reference{}, errExpectedGroupSpecifier(NewLocation(start, lx.cur.Pos()))
			}
			if sign < 0 {
				return RelativeReference(-n), nil
			}
			return RelativeReference(n), nil
		}
		return Reference{}, errExpectedGroupSpecifier(NewLocation(lx.cur.Pos(), lx.cur.Pos()))
	}

	start := lx.cur.Pos()
	body := lx.cur.EatWhile(func(r rune) bool { return r != closer })
	if !lx.cur.TryEat(closer) {
		return Reference{}, errExpected(string(closer), NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	if body == "" {
		return Reference{}, errExpectedNonEmptyContents(NewLocation(start, lx.cur.Pos()))
	}
	if n, err := strconv.Atoi(body); err == nil {
		if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
			return RelativeReference(n), nil
		}
		return AbsoluteReference(n), nil
	}
	return NamedReference(body), nil
}

// --- quotes, comments, whitespace (§4.6) -------------------------------

// LexQuoteOrTrivia は、\Q...\E、実験的な "...", (?#...) コメント、実験的な
// /* ... */ コメント、および ignore-whitespace モードでの空白の連続を
// 試みます。これらはクォータブルではないため、アトムより先に試されます。
func (lx *Lexer) LexQuoteOrTrivia(priorGroupCount int) (Node, bool, error) {
	if lx.cur.TryEatSeq(`\Q`) {
		return lx.finishBackslashQuote()
	}
	if lx.opts.Has(ExperimentalQuotes) {
		if n, ok, err := lx.tryLexStringQuote(); ok || err != nil {
			return n, ok, err
		}
	}
	if lx.cur.HasPrefix("(?#") {
		return lx.lexParenComment()
	}
	if lx.opts.Has(ExperimentalComments) && lx.cur.HasPrefix("/*") {
		return lx.lexBlockComment()
	}
	if lx.opts.Has(NonSemanticWhitespace) {
		start := lx.cur.Pos()
		ws := lx.cur.EatWhile(func(r rune) bool { return r == ' ' || r == '\t' })
		if ws != "" {
			return NewTrivia(TriviaWhitespace, ws, NewLocation(start, lx.cur.Pos())), true, nil
		}
	}
	return nil, false, nil
}

func (lx *Lexer) finishBackslashQuote() (Node, bool, error) {
	start := lx.cur.Pos() - 2 // includes the leading \Q
	var b strings.Builder
	for {
		if lx.cur.IsEmpty() {
			break
		}
		if lx.cur.TryEatSeq(`\E`) {
			break
		}
		b.WriteRune(lx.cur.Eat())
	}
	return NewQuote(b.String(), NewLocation(start, lx.cur.Pos())), true, nil
}

func (lx *Lexer) tryLexStringQuote() (Node, bool, error) {
	cp := lx.cur.Save()
	if !lx.cur.TryEat('"') {
		return nil, false, nil
	}
	start := lx.cur.Pos() - 1
	var b strings.Builder
	for {
		if lx.cur.IsEmpty() {
			lx.cur.Restore(cp)
			return nil, false, nil
		}
		if lx.cur.TryEatSeq(`\"`) {
			b.WriteByte('"')
			continue
		}
		if lx.cur.TryEat('"') {
			return NewQuote(b.String(), NewLocation(start, lx.cur.Pos())), true, nil
		}
		b.WriteRune(lx.cur.Eat())
	}
}

func (lx *Lexer) lexParenComment() (Node, bool, error) {
	start := lx.cur.Pos()
	lx.cur.TryEatSeq("(?#")
	text := lx.cur.EatWhile(func(r rune) bool { return r != ')' })
	if !lx.cur.TryEat(')') {
		return nil, false, errExpected(")", NewLocation(lx.cur.Pos(), lx.cur.Pos()+1))
	}
	return NewTrivia(TriviaComment, text, NewLocation(start, lx.cur.Pos())), true, nil
}

func (lx *Lexer) lexBlockComment() (Node, bool, error) {
	start := lx.cur.Pos()
	lx.cur.TryEatSeq("/*")
	var b strings.Builder
	for {
		if lx.cur.IsEmpty() {
			return nil, false, errExpected("*/", NewLocation(lx.cur.Pos(), lx.cur.Pos()))
		}
		if lx.cur.TryEatSeq("*/") {
			break
		}
		b.WriteRune(lx.cur.Eat())
	}
	return NewTrivia(TriviaComment, b.String(), NewLocation(start, lx.cur.Pos())), true, nil
}

// --- quantifiers (§4.5) --------------------------------------------------

// LexQuantifierAmount は、`*`, `+`, `?`, `{range}` のいずれかの量指定子の量を
// 読み取ろうとします。`{` の後が妥当な範囲でなければカーソルを巻き戻し、
// ok=false を返します（`{` はリテラルとして後で消費されます）。
func (lx *Lexer) LexQuantifierAmount() (Amount, bool, error) {
	r, ok := lx.cur.Peek()
	if !ok {
		return Amount{}, false, nil
	}
	switch r {
	case '*':
		lx.cur.Eat()
		return Amount{Tag: AmountZeroOrMore}, true, nil
	case '+':
		lx.cur.Eat()
		return Amount{Tag: AmountOneOrMore}, true, nil
	case '?':
		lx.cur.Eat()
		return Amount{Tag: AmountZeroOrOne}, true, nil
	case '{':
		cp := lx.cur.Save()
		lx.cur.Eat()
		amt, matched := lx.lexRangeBody()
		if !matched {
			lx.cur.Restore(cp)
			return Amount{}, false, nil
		}
		return amt, true, nil
	default:
		return Amount{}, false, nil
	}
}

// lexRangeBody は、`{` をすでに消費した状態で範囲本体を解釈します。
func (lx *Lexer) lexRangeBody() (Amount, bool) {
	n, nOk, err := lx.lexDecimalNumber()
	if err != nil {
		return Amount{}, false
	}

	if lx.opts.Has(ExperimentalRanges) {
		halfOpen := false
		matched := false
		if lx.cur.TryEatSeq("...") {
			matched = true
		} else if lx.cur.TryEatSeq("..<") {
			matched = true
			halfOpen = true
		}
		if matched {
			m, mOk, err := lx.lexDecimalNumber()
			if err != nil || !mOk {
				return Amount{}, false
			}
			if halfOpen {
				m--
			}
			if !lx.cur.TryEat('}') {
				return Amount{}, false
			}
			if nOk {
				return Amount{Tag: AmountRange, N: n, M: m}, true
			}
			return Amount{Tag: AmountUpToN, M: m}, true
		}
	}

	if lx.cur.TryEat(',') {
		if !nOk {
			m, mOk, err := lx.lexDecimalNumber()
			if err != nil || !mOk {
				return Amount{}, false
			}
			if !lx.cur.TryEat('}') {
				return Amount{}, false
			}
			return Amount{Tag: AmountUpToN, M: m}, true
		}
		if lx.cur.TryEat('}') {
			return Amount{Tag: AmountNOrMore, N: n}, true
		}
		m, mOk, err := lx.lexDecimalNumber()
		if err != nil || !mOk {
			return Amount{}, false
		}
		if !lx.cur.TryEat('}') {
			return Amount{}, false
		}
		return Amount{Tag: AmountRange, N: n, M: m}, true
	}

	if !nOk {
		return Amount{}, false
	}
	if !lx.cur.TryEat('}') {
		return Amount{}, false
	}
	return Amount{Tag: AmountExactly, N: n}, true
}

// LexQuantifierKind は、量の後に続く ? （非貪欲）または + （所有的）を読み取り
// ます。どちらもなければ eager です。
func (lx *Lexer) LexQuantifierKind() QuantifierKind {
	switch {
	case lx.cur.TryEat('?'):
		return QuantReluctant
	case lx.cur.TryEat('+'):
		return QuantPossessive
	default:
		return QuantEager
	}
}

// --- matching options (§4.7) ---------------------------------------------

// lexMatchingOptionSequence は、`(?` の直後（種別指示子を調べ終えた後）の
// マッチングオプション指定子本体 `[^] adding* (- removing*)?` を解釈します。
func (lx *Lexer) lexMatchingOptionSequence() (MatchingOptionSequence, error) {
	var seq MatchingOptionSequence
	start := lx.cur.Pos()

	if lx.cur.TryEat('^') {
		seq.Caret = true
	}

	for {
		kind, ok, err := lx.tryLexMatchingOptionKind()
		if err != nil {
			return seq, err
		}
		if !ok {
			break
		}
		seq.Adding = append(seq.Adding, kind)
	}

	if lx.cur.TryEat('-') {
		if seq.Caret {
			return seq, errCannotRemoveMatchingOptionsAfterCaret(NewLocation(start, lx.cur.Pos()))
		}
		for {
			kind, ok, err := lx.tryLexMatchingOptionKind()
			if err != nil {
				return seq, err
			}
			if !ok {
				break
			}
			if kind.IsTextSegmentMode() {
				return seq, errCannotRemoveTextSegmentOptions(NewLocation(start, lx.cur.Pos()))
			}
			seq.Removing = append(seq.Removing, kind)
		}
	}

	return seq, nil
}

// tryLexMatchingOptionKind は、1つのマッチングオプションフラグ文字（または
// `y{g}` / `y{w}`）を読み取ります。`:` や `)` の区切り文字には反応せず、
// ok=false を返します。認識できない英字が現れた場合はエラーです。
func (lx *Lexer) tryLexMatchingOptionKind() (MatchingOptionKind, bool, error) {
	r, ok := lx.cur.Peek()
	if !ok {
		return 0, false, nil
	}
	switch r {
	case 'i':
		lx.cur.Eat()
		return OptCaseInsensitive, true, nil
	case 'J':
		lx.cur.Eat()
		return OptAllowDuplicateGroupNames, true, nil
	case 'm':
		lx.cur.Eat()
		return OptMultiline, true, nil
	case 'n':
		lx.cur.Eat()
		return OptNamedCapturesOnly, true, nil
	case 's':
		lx.cur.Eat()
		return OptSingleLine, true, nil
	case 'U':
		lx.cur.Eat()
		return OptUnicodeScalarSemantics, true, nil
	case 'x':
		lx.cur.Eat()
		if lx.cur.TryEat('x') {
			return OptExtraExtended, true, nil
		}
		return OptExtended, true, nil
	case 'w':
		lx.cur.Eat()
		return OptUnicodeWordBoundaries, true, nil
	case 'D':
		lx.cur.Eat()
		return OptASCIIOnlyDigit, true, nil
	case 'P':
		lx.cur.Eat()
		return OptASCIIOnlyPOSIXProperties, true, nil
	case 'S':
		lx.cur.Eat()
		return OptASCIIOnlySpace, true, nil
	case 'W':
		lx.cur.Eat()
		return OptASCIIOnlyWord, true, nil
	case 'y':
		cp := lx.cur.Save()
		lx.cur.Eat()
		if lx.cur.TryEatSeq("{g}") {
			return OptTextSegmentGraphemeMode, true, nil
		}
		if lx.cur.TryEatSeq("{w}") {
			return OptTextSegmentWordMode, true, nil
		}
		start := lx.cur.Pos()
		lx.cur.Restore(cp)
		return 0, false, errInvalidMatchingOption('y', NewLocation(start, start+1))
	case ':', ')', '-':
		return 0, false, nil
	default:
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			start := lx.cur.Pos()
			lx.cur.Eat()
			return 0, false, errInvalidMatchingOption(r, NewLocation(start, lx.cur.Pos()))
		}
		return 0, false, nil
	}
}
