package regexparse

// parseCustomCharacterClass は、`[` をすでに消費した状態で、カスタム文字
// クラス全体を解釈します（§4.8）。集合演算子 `&&` `--` `~~` は同じ優先順位で
// 左結合に畳み込まれ、2個以上のクローズが現れた場合は単一の
// MemberSetOperation に折り込まれます。
func (p *Parser) parseCustomCharacterClass(openStart int) (Node, error) {
	inverted := p.lx.cur.TryEat('^')

	members, err := p.parseClassClause()
	if err != nil {
		return nil, err
	}

	for {
		var op SetOp
		matched := true
		switch {
		case p.lx.cur.TryEatSeq("&&"):
			op = SetOpIntersection
		case p.lx.cur.TryEatSeq("~~"):
			op = SetOpSymmetricDifference
		case p.lx.cur.TryEatSeq("--"):
			op = SetOpSubtraction
		default:
			matched = false
		}
		if !matched {
			break
		}
		rhs, err := p.parseClassClause()
		if err != nil {
			return nil, err
		}
		members = []ClassMember{{
			Kind: MemberSetOperation,
			Loc:  NewLocation(openStart, p.lx.cur.Pos()),
			LHS:  members,
			Op:   op,
			RHS:  rhs,
		}}
	}

	if !p.lx.cur.TryEat(']') {
		return nil, errExpected("]", NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+1))
	}
	return NewCustomCharacterClass(inverted, members, NewLocation(openStart, p.lx.cur.Pos())), nil
}

// parseClassClause は、次の集合演算子または閉じ `]` までの members を
// 1個以上読みます。
func (p *Parser) parseClassClause() ([]ClassMember, error) {
	var out []ClassMember
	for {
		if p.lx.cur.IsEmpty() {
			return nil, errUnexpectedEndOfInput(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()))
		}
		if p.lx.cur.HasPrefix("]") || p.lx.cur.HasPrefix("&&") || p.lx.cur.HasPrefix("~~") || p.lx.cur.HasPrefix("--") {
			break
		}
		m, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, errExpectedNonEmptyContents(NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()))
	}
	return out, nil
}

// parseClassMember は、POSIXクラス、入れ子の文字クラス、単一文字、または
// 範囲のいずれか1つを読みます。
func (p *Parser) parseClassMember() (ClassMember, error) {
	start := p.lx.cur.Pos()

	if p.lx.cur.HasPrefix("[:") {
		return p.parsePOSIXClass(start)
	}

	if r, ok := p.lx.cur.Peek(); ok && r == '[' {
		p.lx.cur.Eat()
		nested, err := p.parseCustomCharacterClass(start)
		if err != nil {
			return ClassMember{}, err
		}
		ncc := nested.(*CustomCharacterClass)
		return ClassMember{Kind: MemberNestedClass, Loc: ncc.Loc(), Nested: ncc}, nil
	}

	lo, err := p.lexClassAtomChar()
	if err != nil {
		return ClassMember{}, err
	}

	if r, ok := p.lx.cur.Peek(); ok && r == '-' && !p.lx.cur.HasPrefix("--") && !p.lx.cur.HasPrefix("-]") {
		p.lx.cur.Eat()
		hi, err := p.lexClassAtomChar()
		if err != nil {
			return ClassMember{}, err
		}
		return ClassMember{Kind: MemberRange, Loc: NewLocation(start, p.lx.cur.Pos()), RangeLo: lo, RangeHi: hi}, nil
	}

	return ClassMember{Kind: MemberAtom, Loc: NewLocation(start, p.lx.cur.Pos()), AtomVal: lo}, nil
}

// parsePOSIXClass は、`[:name:]` / `[:^name:]` を解釈します。
func (p *Parser) parsePOSIXClass(start int) (ClassMember, error) {
	p.lx.cur.TryEatSeq("[:")
	negated := p.lx.cur.TryEat('^')
	name := p.lx.cur.EatWhile(func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
	if !p.lx.cur.TryEatSeq(":]") {
		return ClassMember{}, errExpected(":]", NewLocation(p.lx.cur.Pos(), p.lx.cur.Pos()+2))
	}
	if name == "" {
		return ClassMember{}, errExpectedNonEmptyContents(NewLocation(start, p.lx.cur.Pos()))
	}
	return ClassMember{Kind: MemberPOSIXClass, Loc: NewLocation(start, p.lx.cur.Pos()), POSIXName: name, POSIXNegated: negated}, nil
}

// lexClassAtomChar は、クラス内の1文字（リテラルまたはエスケープ）を読みます。
// バックリファレンス・アンカーはクラス内では現れないため、LexEscape には
// inClass=true を渡します。
func (p *Parser) lexClassAtomChar() (*Atom, error) {
	start := p.lx.cur.Pos()
	if p.lx.cur.TryEat('\\') {
		n, err := p.lx.LexEscape(start, p.priorGroupCount, true)
		if err != nil {
			return nil, err
		}
		atom, ok := n.(*Atom)
		if !ok {
			return nil, errMisc("escape did not produce an atom inside character class", NewLocation(start, p.lx.cur.Pos()))
		}
		return atom, nil
	}
	if p.lx.cur.IsEmpty() {
		return nil, errUnexpectedEndOfInput(NewLocation(start, start))
	}
	r := p.lx.cur.Eat()
	return literalCharAtom(r, NewLocation(start, p.lx.cur.Pos())), nil
}
