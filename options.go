package regexparse

// SyntaxOptions は、互いに直交する拡張構文の有効・無効を表すビットフラグです。
// ダイアレクト分岐は常にこの値を介してスレッディングされ、グローバル変数には
// 依存しません。
type SyntaxOptions uint32

// Traditional は、すべての拡張構文を無効にしたデフォルト設定です。
const Traditional SyntaxOptions = 0

const (
	// ExperimentalQuotes は、`"..."` によるリテラル文字列引用を有効にします。
	ExperimentalQuotes SyntaxOptions = 1 << iota

	// ExperimentalComments は、`/* ... */` コメントを有効にします。
	ExperimentalComments

	// ExperimentalRanges は、`n...m` / `n..<m` 形式の量指定子範囲を有効にします。
	ExperimentalRanges

	// ExperimentalCaptures は、`(_:...)` 形式の非キャプチャ短縮記法を有効にします。
	ExperimentalCaptures

	// NonSemanticWhitespace は、連続する空白をトリビアとして無視します。
	// IgnoreWhitespace のエイリアスです。
	NonSemanticWhitespace
)

// IgnoreWhitespace は、NonSemanticWhitespace のエイリアスです。
const IgnoreWhitespace = NonSemanticWhitespace

// Has は、opts が flag を含むかどうかを返します。
func (opts SyntaxOptions) Has(flag SyntaxOptions) bool {
	return opts&flag != 0
}

// With は、flag を加えた新しい SyntaxOptions を返します。
func (opts SyntaxOptions) With(flag SyntaxOptions) SyntaxOptions {
	return opts | flag
}

// MatchingOptionKind は、`(?i-s:...)` のようなマッチングオプション指定子で
// 使われる個々のフラグ文字を表します。このパーサーはこれらのフラグの実行時の
// 意味を解釈しません（マッチング自体はスコープ外です）。AST内に保持し、
// 妥当性検査（§4.7の文法）のみを行います。
type MatchingOptionKind int

const (
	OptCaseInsensitive          MatchingOptionKind = iota // i
	OptAllowDuplicateGroupNames                            // J
	OptMultiline                                           // m
	OptNamedCapturesOnly                                   // n
	OptSingleLine                                          // s
	OptUnicodeScalarSemantics                              // U
	OptExtended                                            // x
	OptExtraExtended                                       // xx
	OptUnicodeWordBoundaries                                // w
	OptASCIIOnlyDigit                                      // D
	OptASCIIOnlyPOSIXProperties                            // P
	OptASCIIOnlySpace                                      // S
	OptASCIIOnlyWord                                       // W
	OptTextSegmentGraphemeMode                             // y{g}
	OptTextSegmentWordMode                                 // y{w}
)

// IsTextSegmentMode は、kind がテキスト分節モード（y{g} / y{w}）かどうかを返します。
// これらは removing リストに現れることが許されません（§4.7）。
func (k MatchingOptionKind) IsTextSegmentMode() bool {
	return k == OptTextSegmentGraphemeMode || k == OptTextSegmentWordMode
}

func (k MatchingOptionKind) String() string {
	switch k {
	case OptCaseInsensitive:
		return "i"
	case OptAllowDuplicateGroupNames:
		return "J"
	case OptMultiline:
		return "m"
	case OptNamedCapturesOnly:
		return "n"
	case OptSingleLine:
		return "s"
	case OptUnicodeScalarSemantics:
		return "U"
	case OptExtended:
		return "x"
	case OptExtraExtended:
		return "xx"
	case OptUnicodeWordBoundaries:
		return "w"
	case OptASCIIOnlyDigit:
		return "D"
	case OptASCIIOnlyPOSIXProperties:
		return "P"
	case OptASCIIOnlySpace:
		return "S"
	case OptASCIIOnlyWord:
		return "W"
	case OptTextSegmentGraphemeMode:
		return "y{g}"
	case OptTextSegmentWordMode:
		return "y{w}"
	default:
		return "?"
	}
}

// MatchingOptionSequence は、`(?i-s)` のようなマッチングオプション指定子の
// 解析結果です。文法は `[^] adding* (- removing*)?` の形です。
type MatchingOptionSequence struct {
	Caret    bool // 先頭の ^ : まず全フラグをクリアしてから adding を適用する
	Adding   []MatchingOptionKind
	Removing []MatchingOptionKind
}

// IsEmpty は、何も追加・削除しない（かつ ^ も無い）シーケンスかどうかを返します。
func (s MatchingOptionSequence) IsEmpty() bool {
	return !s.Caret && len(s.Adding) == 0 && len(s.Removing) == 0
}
