package regexparse

// Parse は、input を opts で指定された構文拡張のもとでパースし、ルートASTを
// 返します（§6）。これはパッケージの主要な外部インターフェースです。
func Parse(input string, opts SyntaxOptions) (Node, error) {
	return NewParser(input, opts).Parse()
}
