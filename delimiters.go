package regexparse

import "strings"

// closingDelimiter は、対になる区切り文字（`(` に対する `)` など）を返します。
// 対になるものがなければ open 自身を返します（`/.../` のような同一文字区切り）。
func closingDelimiter(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

// LexRegex は、source の pos にある区切り文字付きの正規表現リテラルの本体を
// 取り出します。開区切りと閉区切りが異なる文字の場合（括弧のペア）は入れ子を
// 数え、同一文字の場合はバックスラッシュエスケープを尊重してスキャンします。
// 戻り値は、本体文字列、区切り文字、本体の開始位置（source内）、リテラル
// 全体の直後の位置です。
func LexRegex(source string, pos int) (contents string, delim rune, contentsStart int, endPos int, err error) {
	cur := NewCursor(source[pos:])
	if cur.IsEmpty() {
		return "", 0, 0, pos, errUnexpectedEndOfInput(NewLocation(pos, pos))
	}
	open := cur.Eat()
	close := closingDelimiter(open)
	nested := close != open
	contentsStart = pos + len(string(open))

	depth := 1
	var b strings.Builder
	for {
		if cur.IsEmpty() {
			return "", 0, 0, pos, errUnexpectedEndOfInput(NewLocation(pos+cur.Pos(), pos+cur.Pos()))
		}
		r := cur.Eat()
		if r == '\\' {
			b.WriteRune(r)
			if !cur.IsEmpty() {
				b.WriteRune(cur.Eat())
			}
			continue
		}
		if nested && r == open {
			depth++
			b.WriteRune(r)
			continue
		}
		if r == close {
			depth--
			if depth == 0 {
				break
			}
			b.WriteRune(r)
			continue
		}
		b.WriteRune(r)
	}
	endPos = pos + cur.Pos()
	return b.String(), open, contentsStart, endPos, nil
}

// DelimitedRegex は、区切り文字付き正規表現リテラルをパースした結果です。
// Root のロケーションは Contents 部分文字列を基準としており、元のソース内
// での位置に換算するには ContentsLoc.Start を加算します。
type DelimitedRegex struct {
	Root        Node
	Contents    string
	Delimiter   rune
	ContentsLoc Location
	EndPos      int
}

// ParseWithDelimiters は、pos にある区切り文字付きの正規表現リテラルを
// 切り出し、その本体をパースします（§6）。
func ParseWithDelimiters(source string, pos int, opts SyntaxOptions) (DelimitedRegex, error) {
	contents, delim, contentsStart, endPos, err := LexRegex(source, pos)
	if err != nil {
		return DelimitedRegex{}, err
	}
	root, err := Parse(contents, opts)
	if err != nil {
		return DelimitedRegex{}, err
	}
	return DelimitedRegex{
		Root:        root,
		Contents:    contents,
		Delimiter:   delim,
		ContentsLoc: NewLocation(contentsStart, contentsStart+len(contents)),
		EndPos:      endPos,
	}, nil
}
