// Package regexparse は、複数の正規表現方言（PCRE、ICU、Oniguruma、Perl/.NET、Python）を
// 受理するソース位置付きの字句解析器と再帰下降パーサーを実装したパッケージです。
// 本パッケージはASTの構築のみを責務とし、マッチング・実行エンジンは含みません。
package regexparse

import "fmt"

// Location は、入力中の半開区間 [Start, End) を表します。
// すべてのASTノードはLocationを持ち、複合ノードの範囲は先頭の子の開始位置から
// 末尾の子の終了位置までをカバーします。
type Location struct {
	Start int
	End   int
}

// NewLocation は、start から end までの半開区間を作成します。
func NewLocation(start, end int) Location {
	return Location{Start: start, End: end}
}

// IsEmpty は、区間の長さが0かどうかを返します。
func (l Location) IsEmpty() bool {
	return l.Start == l.End
}

// Len は、区間の長さ（インデックス数）を返します。
func (l Location) Len() int {
	return l.End - l.Start
}

// Contains は、l が o を包含するかどうかを返します。
func (l Location) Contains(o Location) bool {
	return l.Start <= o.Start && o.End <= l.End
}

// Union は、l と o を両方カバーする最小の区間を返します。
func (l Location) Union(o Location) Location {
	start := l.Start
	if o.Start < start {
		start = o.Start
	}
	end := l.End
	if o.End > end {
		end = o.End
	}
	return Location{Start: start, End: end}
}

func (l Location) String() string {
	return fmt.Sprintf("%d..<%d", l.Start, l.End)
}

// Located は、値とそのソース位置の組です。字句解析の各ヘルパーはこの型を返します。
type Located[T any] struct {
	Value T
	Loc   Location
}

// NewLocated は、Located[T] を構築します。
func NewLocated[T any](value T, loc Location) Located[T] {
	return Located[T]{Value: value, Loc: loc}
}
