package regexparse

// Parser は、正規表現ソースの再帰下降パーサーです。字句解析の詳細は Lexer に
// 委譲し、Parser自身は文法（選択・連接・量指定・グループ構造）と、
// 直前のグループ数（8進数・バックリファレンスの曖昧性解消に必要、§4.4）を
// 保持します。
type Parser struct {
	lx              *Lexer
	opts            SyntaxOptions
	priorGroupCount int
}

// NewParser は、input に対する新しい Parser を作成します。
func NewParser(input string, opts SyntaxOptions) *Parser {
	return &Parser{lx: newLexer(input, opts), opts: opts}
}

// Parse は、入力全体をパースし、ルートASTノードを返します。入力の末尾まで
// 消費しきれなかった場合はエラーです（例えば不一致の `)` が残った場合）。
func (p *Parser) Parse() (Node, error) {
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.lx.cur.IsEmpty() {
		return nil, errExpected("end of input", NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+1))
	}
	return root, nil
}

// --- alternation / concatenation ---------------------------------------

func (p *Parser) parseAlternation() (Node, error) {
	start := p.lx.cur.Pos()
	first, err := p.parseConcatenationOrEmpty()
	if err != nil {
		return nil, err
	}
	branches := []Node{first}
	var pipeLocs []Location
	for {
		pp := p.lx.cur.Pos()
		if !p.lx.cur.TryEat('|') {
			break
		}
		pipeLocs = append(pipeLocs, NewLocation(pp, pp+1))
		branch, err := p.parseConcatenationOrEmpty()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return NewAlternation(branches, pipeLocs, NewLocation(start, p.lx.cur.Pos())), nil
}

// parseConcatenationOrEmpty は、次の `|` または `)` または入力終端までの
// 要素列をパースします。要素が0個であれば明示的な Empty ノードを、1個なら
// それ自身を、2個以上なら Concatenation を返します。
func (p *Parser) parseConcatenationOrEmpty() (Node, error) {
	start := p.lx.cur.Pos()
	var elems []Node
	for {
		if p.lx.cur.IsEmpty() {
			break
		}
		if r, ok := p.lx.cur.Peek(); ok && (r == '|' || r == ')') {
			break
		}
		n, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}
	switch len(elems) {
	case 0:
		return NewEmpty(NewLocation(start, p.lx.cur.Pos())), nil
	case 1:
		return elems[0], nil
	default:
		return NewConcatenation(elems, NewLocation(start, p.lx.cur.Pos())), nil
	}
}

// --- quantified atoms -----------------------------------------------------

func (p *Parser) parseQuantified() (Node, error) {
	trivia, matched, err := p.lx.LexQuoteOrTrivia(p.priorGroupCount)
	if err != nil {
		return nil, err
	}
	if matched {
		if _, wouldMatch, err := p.peekQuantifierAmount(); err != nil {
			return nil, err
		} else if wouldMatch {
			return nil, errQuantifierCannotFollow(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()))
		}
		return trivia, nil
	}

	if r, ok := p.lx.cur.Peek(); ok && (r == '*' || r == '+' || r == '?') {
		return nil, errQuantifierWithoutOperand(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+1))
	}
	if _, wouldMatch, err := p.peekQuantifierAmount(); err != nil {
		return nil, err
	} else if wouldMatch {
		return nil, errQuantifierWithoutOperand(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+1))
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	amt, ok, err := p.lx.LexQuantifierAmount()
	if err != nil {
		return nil, err
	}
	if !ok {
		return atom, nil
	}
	qkind := p.lx.LexQuantifierKind()
	return NewQuantification(amt, qkind, atom, NewLocation(atom.Loc().Start, p.lx.cur.Pos())), nil
}

// peekQuantifierAmount は、LexQuantifierAmount を先読みのためだけに試し、
// 成否にかかわらずカーソルを呼び出し前の位置に戻します。
func (p *Parser) peekQuantifierAmount() (Amount, bool, error) {
	cp := p.lx.cur.Save()
	amt, ok, err := p.lx.LexQuantifierAmount()
	p.lx.cur.Restore(cp)
	return amt, ok, err
}

// --- atoms -----------------------------------------------------------------

func (p *Parser) parseAtom() (Node, error) {
	if p.lx.cur.IsEmpty() {
		return nil, errUnexpectedEndOfInput(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()))
	}
	start := p.lx.cur.Pos()
	r, _ := p.lx.cur.Peek()
	switch r {
	case '.':
		p.lx.cur.Eat()
		return anyCharacterAtom(NewLocation(start, p.lx.cur.Pos())), nil
	case '^':
		p.lx.cur.Eat()
		return boundaryAtom(AtomStartOfLine, NewLocation(start, p.lx.cur.Pos())), nil
	case '$':
		p.lx.cur.Eat()
		return boundaryAtom(AtomEndOfLine, NewLocation(start, p.lx.cur.Pos())), nil
	case '\\':
		p.lx.cur.Eat()
		return p.lx.LexEscape(start, p.priorGroupCount, false)
	case '[':
		p.lx.cur.Eat()
		return p.parseCustomCharacterClass(start)
	case '(':
		p.lx.cur.Eat()
		return p.parseGroup(start)
	default:
		p.lx.cur.Eat()
		return literalCharAtom(r, NewLocation(start, p.lx.cur.Pos())), nil
	}
}

// --- groups (§4.5) -----------------------------------------------------

func (p *Parser) parseGroup(openStart int) (Node, error) {
	cur := p.lx.cur

	if p.opts.Has(ExperimentalCaptures) && cur.TryEatSeq("_:") {
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNonCapture})
	}

	if cur.TryEat('*') {
		return p.parsePCRE2Sentinel(openStart)
	}

	if !cur.TryEat('?') {
		p.priorGroupCount++
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupCapture})
	}

	// Reference-like forms must be checked before matching-option parsing:
	// they share prefixes ("(?P...", "(?-...") with named captures and
	// option-removal sequences.
	if ref, ok, err := p.tryParseGroupLikeReference(openStart); err != nil {
		return nil, err
	} else if ok {
		return ref, nil
	}

	switch {
	case cur.TryEat(':'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNonCapture})
	case cur.TryEat('|'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNonCaptureReset})
	case cur.TryEat('>'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupAtomicNonCapturing})
	case cur.TryEatSeq("<="):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupLookbehind})
	case cur.TryEatSeq("<!"):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNegativeLookbehind})
	case cur.TryEatSeq("<*"):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNonAtomicLookbehind})
	case cur.TryEat('='):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupLookahead})
	case cur.TryEat('!'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNegativeLookahead})
	case cur.TryEat('*'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNonAtomicLookahead})
	case cur.HasPrefix("P<"):
		cur.TryEatSeq("P")
		name, err := p.lexDelimitedName('<', '>')
		if err != nil {
			return nil, err
		}
		p.priorGroupCount++
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNamedCapture, Name: name})
	case cur.TryEat('<'):
		name, err := p.lexDelimitedName(0, '>')
		if err != nil {
			return nil, err
		}
		p.priorGroupCount++
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNamedCapture, Name: name})
	case cur.TryEat('\''):
		name, err := p.lexDelimitedName(0, '\'')
		if err != nil {
			return nil, err
		}
		p.priorGroupCount++
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupNamedCapture, Name: name})
	}

	seq, err := p.lx.lexMatchingOptionSequence()
	if err != nil {
		return nil, err
	}
	switch {
	case cur.TryEat(':'):
		return p.finishGroupBody(openStart, GroupKind{Tag: GroupChangeMatchingOptions, Options: seq, Isolated: false})
	case cur.TryEat(')'):
		kind := GroupKind{Tag: GroupChangeMatchingOptions, Options: seq, Isolated: true}
		return p.finishIsolatedMatchingOptions(openStart, kind)
	default:
		text := cur.PeekString(1)
		return nil, errUnknownGroupKind(text, NewLocation(cur.Pos(), cur.Pos()+1))
	}
}

// finishGroupBody は、通常の「`(` 種別指示子 本体 `)`」形のグループの本体を
// パースし、閉じ括弧を消費します。
func (p *Parser) finishGroupBody(openStart int, kind GroupKind) (Node, error) {
	child, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.lx.cur.IsEmpty() {
		return nil, errUnexpectedEndOfInput(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()))
	}
	if !p.lx.cur.TryEat(')') {
		return nil, errExpected(")", NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+1))
	}
	return NewGroup(kind, child, NewLocation(openStart, p.lx.cur.Pos())), nil
}

// finishIsolatedMatchingOptions は、`(?i)` のように `:` を伴わないマッチング
// オプション指定子を処理します。すでに `)` まで消費済みのため、代わりに
// 囲んでいる選択肢分岐の残り全体を子として取り込みます。これにより、
// 呼び出し元の連接ループはこの呼び出しが戻った時点で自然に分岐の終端
// （`|` か `)` か入力終端）に達しています。
func (p *Parser) finishIsolatedMatchingOptions(openStart int, kind GroupKind) (Node, error) {
	child, err := p.parseConcatenationOrEmpty()
	if err != nil {
		return nil, err
	}
	return NewGroup(kind, child, NewLocation(openStart, p.lx.cur.Pos())), nil
}

// lexDelimitedName は、名前付きキャプチャの区切り文字に囲まれた名前を読みます。
// openDelim が 0 でなければ、まずそれを消費します。
func (p *Parser) lexDelimitedName(openDelim, closeDelim rune) (string, error) {
	cur := p.lx.cur
	if openDelim != 0 && !cur.TryEat(openDelim) {
		return "", errExpected(string(openDelim), NewLocation(cur.Pos(), cur.Pos()+1))
	}
	start := cur.Pos()
	name := cur.EatWhile(func(r rune) bool { return r != closeDelim })
	if !cur.TryEat(closeDelim) {
		return "", errExpected(string(closeDelim), NewLocation(cur.Pos(), cur.Pos()+1))
	}
	if name == "" {
		return "", errExpectedNonEmptyContents(NewLocation(start, cur.Pos()))
	}
	return name, nil
}

// tryParseGroupLikeReference は、`(?P=name)`, `(?P>name)`, `(?&name)`,
// `(?R)`, `(?+N)`, `(?-N)` を認識します。これらは見た目がグループ開始に
// 似ていますが、実際にはバックリファレンス／サブパターン呼び出しのアトムです。
func (p *Parser) tryParseGroupLikeReference(openStart int) (Node, bool, error) {
	cur := p.lx.cur

	if cur.TryEatSeq("P=") {
		name := cur.EatWhile(func(r rune) bool { return r != ')' })
		if !cur.TryEat(')') {
			return nil, false, errExpected(")", NewLocation(cur.Pos(), cur.Pos()+1))
		}
		if name == "" {
			return nil, false, errExpectedNonEmptyContents(NewLocation(openStart, cur.Pos()))
		}
		return backreferenceAtom(NamedReference(name), NewLocation(openStart, cur.Pos())), true, nil
	}
	if cur.TryEatSeq("P>") {
		name := cur.EatWhile(func(r rune) bool { return r != ')' })
		if !cur.TryEat(')') {
			return nil, false, errExpected(")", NewLocation(cur.Pos(), cur.Pos()+1))
		}
		if name == "" {
			return nil, false, errExpectedNonEmptyContents(NewLocation(openStart, cur.Pos()))
		}
		return subpatternAtom(NamedReference(name), NewLocation(openStart, cur.Pos())), true, nil
	}
	if cur.TryEat('&') {
		name := cur.EatWhile(func(r rune) bool { return r != ')' })
		if !cur.TryEat(')') {
			return nil, false, errExpected(")", NewLocation(cur.Pos(), cur.Pos()+1))
		}
		if name == "" {
			return nil, false, errExpectedNonEmptyContents(NewLocation(openStart, cur.Pos()))
		}
		return subpatternAtom(NamedReference(name), NewLocation(openStart, cur.Pos())), true, nil
	}
	if cur.HasPrefix("R)") {
		cur.TryEatSeq("R)")
		return subpatternAtom(RecurseWholePatternReference(), NewLocation(openStart, cur.Pos())), true, nil
	}
	if r, ok := cur.Peek(); ok && (r == '+' || r == '-') {
		if r2, ok2 := cur.PeekAt(1); ok2 && isDigit(r2) {
			cur.Eat()
			n, nOk, err := p.lx.lexDecimalNumber()
			if err != nil {
				return nil, false, err
			}
			if !nOk {
				return nil, false, errExpectedGroupSpecifier(NewLocation(openStart, cur.Pos()))
			}
			if !cur.TryEat(')') {
				return nil, false, errExpected(")", NewLocation(cur.Pos(), cur.Pos()+1))
			}
			if r == '-' {
				n = -n
			}
			return subpatternAtom(RelativeReference(n), NewLocation(openStart, cur.Pos())), true, nil
		}
	}
	return nil, false, nil
}

// pcre2Sentinels は、`(*KEYWORD:` の形のPCRE2長形式センチネルの一覧です。
var pcre2Sentinels = []struct {
	keyword string
	tag     GroupKindTag
}{
	{"atomic:", GroupAtomicNonCapturing},
	{"positive_lookahead:", GroupLookahead},
	{"pla:", GroupLookahead},
	{"negative_lookahead:", GroupNegativeLookahead},
	{"nla:", GroupNegativeLookahead},
	{"positive_lookbehind:", GroupLookbehind},
	{"plb:", GroupLookbehind},
	{"negative_lookbehind:", GroupNegativeLookbehind},
	{"nlb:", GroupNegativeLookbehind},
	{"non_atomic_positive_lookahead:", GroupNonAtomicLookahead},
	{"napla:", GroupNonAtomicLookahead},
	{"non_atomic_positive_lookbehind:", GroupNonAtomicLookbehind},
	{"naplb:", GroupNonAtomicLookbehind},
	{"script_run:", GroupScriptRun},
	{"sr:", GroupScriptRun},
	{"atomic_script_run:", GroupAtomicScriptRun},
	{"asr:", GroupAtomicScriptRun},
}

// parsePCRE2Sentinel は、`(*` をすでに消費した状態で、PCRE2長形式センチネルを
// 解釈します。
func (p *Parser) parsePCRE2Sentinel(openStart int) (Node, error) {
	cur := p.lx.cur
	for _, s := range pcre2Sentinels {
		if cur.TryEatSeq(s.keyword) {
			return p.finishGroupBody(openStart, GroupKind{Tag: s.tag})
		}
	}
	return nil, errUnknownGroupKind(cur.PeekString(20), NewLocation(cur.Pos(), cur.Pos()+1))
}
