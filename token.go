package regexparse

// TokenKind は、方言非依存の簡略化された文法におけるトークン種別です。
// この字句解析器は、フルの Lexer/Parser とは独立した、単純化された
// 代替のエントリポイント（例えば構文強調表示のような、完全なASTを
// 必要としない用途）向けです。エスケープの中身までは解釈しません。
type TokenKind int

const (
	TokChar TokenKind = iota
	TokDot
	TokCaret
	TokDollar
	TokStar
	TokPlus
	TokQuestion
	TokPipe
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokLBrace
	TokRBrace
	TokComma
	TokEscape
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokChar:
		return "char"
	case TokDot:
		return "dot"
	case TokCaret:
		return "caret"
	case TokDollar:
		return "dollar"
	case TokStar:
		return "star"
	case TokPlus:
		return "plus"
	case TokQuestion:
		return "question"
	case TokPipe:
		return "pipe"
	case TokLParen:
		return "lparen"
	case TokRParen:
		return "rparen"
	case TokLBracket:
		return "lbracket"
	case TokRBracket:
		return "rbracket"
	case TokLBrace:
		return "lbrace"
	case TokRBrace:
		return "rbrace"
	case TokComma:
		return "comma"
	case TokEscape:
		return "escape"
	case TokEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token は、方言非依存トークン列における1つのトークンです。
type Token struct {
	Kind TokenKind
	Text string
	Loc  Location
}

// LexTokens は、input を方言非依存の単純化された文法でトークン化します。
// ダイアレクト固有の曖昧性解消（8進数対バックリファレンス、グループ種別の
// 判別など）は一切行わず、構文的なカテゴリだけを割り当てます。
func LexTokens(input string) []Token {
	cur := NewCursor(input)
	var toks []Token
	for !cur.IsEmpty() {
		start := cur.Pos()
		r := cur.Eat()
		kind := TokChar
		switch r {
		case '.':
			kind = TokDot
		case '^':
			kind = TokCaret
		case '$':
			kind = TokDollar
		case '*':
			kind = TokStar
		case '+':
			kind = TokPlus
		case '?':
			kind = TokQuestion
		case '|':
			kind = TokPipe
		case '(':
			kind = TokLParen
		case ')':
			kind = TokRParen
		case '[':
			kind = TokLBracket
		case ']':
			kind = TokRBracket
		case '{':
			kind = TokLBrace
		case '}':
			kind = TokRBrace
		case ',':
			kind = TokComma
		case '\\':
			kind = TokEscape
			if !cur.IsEmpty() {
				cur.Eat()
			}
		}
		toks = append(toks, Token{Kind: kind, Text: input[start:cur.Pos()], Loc: NewLocation(start, cur.Pos())})
	}
	toks = append(toks, Token{Kind: TokEOF, Loc: NewLocation(cur.Pos(), cur.Pos())})
	return toks
}
