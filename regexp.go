package regexparse

// このファイルは、パース結果を1つの値にまとめて保持する Regexp 型を提供します。
// マッチング・実行エンジンはスコープ外であり、Regexp はASTとそこから導出される
// メタデータ（キャプチャ構造、サブマッチ名）のみを保持します。

// Regexp は、パース済みの正規表現を表します。構文木とキャプチャ構造を保持し、
// スレッドセーフです（構築後は不変）。
type Regexp struct {
	expr        string
	opts        SyntaxOptions
	root        Node
	capture     CaptureShape
	subexpNames []string
}

// Compile は、正規表現パターンを Traditional 構文でパースし、Regexp を返します。
// パターンが無効な場合はエラーを返します。
func Compile(expr string) (*Regexp, error) {
	return CompileWithOptions(expr, Traditional)
}

// CompileWithOptions は、Compile と同様ですが、方言固有の拡張構文を opts で
// 指定できます。
func CompileWithOptions(expr string, opts SyntaxOptions) (*Regexp, error) {
	root, err := Parse(expr, opts)
	if err != nil {
		return nil, err
	}
	return &Regexp{
		expr:        expr,
		opts:        opts,
		root:        root,
		capture:     BuildCaptureStructure(root),
		subexpNames: collectSubexpNames(root),
	}, nil
}

// MustCompile は Compile と同様ですが、コンパイルに失敗した場合はパニックします。
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic("regexparse: Compile(" + expr + "): " + err.Error())
	}
	return re
}

// Root は、パースされた構文木の根を返します。
func (re *Regexp) Root() Node {
	return re.root
}

// CaptureStructure は、この正規表現から導出されるキャプチャ構造を返します（§4.9）。
func (re *Regexp) CaptureStructure() CaptureShape {
	return re.capture
}

// NumSubexp は、この正規表現内のキャプチャグループの数を返します。
func (re *Regexp) NumSubexp() int {
	return len(re.subexpNames) - 1
}

// SubexpNames は、この正規表現内のキャプチャグループの名前を返します。
// 最初の要素はマッチ全体を表し、常に空文字列です。名前のないキャプチャ
// グループの要素も空文字列です。
func (re *Regexp) SubexpNames() []string {
	return re.subexpNames
}

// String は、この正規表現のソースパターンを返します。
func (re *Regexp) String() string {
	return re.expr
}

// collectSubexpNames は、root を出現順に走査し、キャプチャグループの名前の
// 一覧を構築します。先頭の空文字列はマッチ全体（サブマッチ0）に対応します。
func collectSubexpNames(root Node) []string {
	names := []string{""}
	Walk(root, func(n Node) bool {
		if g, ok := n.(*Group); ok && g.Kind_.IsCapturing() {
			names = append(names, g.Kind_.Name)
		}
		return true
	})
	return names
}
