package regexparse

// ReferenceKind は、バックリファレンス・サブパターン参照の参照方法を表します。
type ReferenceKind int

const (
	RefAbsolute             ReferenceKind = iota // 絶対番号参照
	RefRelative                                  // 相対番号参照（正負）
	RefNamed                                     // 名前参照
	RefRecurseWholePattern                       // (?R) : パターン全体の再帰
)

// Reference は、バックリファレンスやサブパターン呼び出しが指すグループを表します。
type Reference struct {
	Kind ReferenceKind
	Abs  int    // RefAbsolute
	Rel  int    // RefRelative（符号付き。+N は前方参照、-N は後方参照）
	Name string // RefNamed
}

// AbsoluteReference は、絶対番号 n を参照する Reference を作成します。
func AbsoluteReference(n int) Reference {
	return Reference{Kind: RefAbsolute, Abs: n}
}

// RelativeReference は、現在位置から ±n のグループを参照する Reference を作成します。
func RelativeReference(n int) Reference {
	return Reference{Kind: RefRelative, Rel: n}
}

// NamedReference は、名前 name のグループを参照する Reference を作成します。
func NamedReference(name string) Reference {
	return Reference{Kind: RefNamed, Name: name}
}

// RecurseWholePatternReference は、(?R) のようなパターン全体の再帰を表す Reference です。
func RecurseWholePatternReference() Reference {
	return Reference{Kind: RefRecurseWholePattern}
}
