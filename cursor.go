package regexparse

import "unicode/utf8"

// Cursor は、位置付きの文字ストリームです。入出力は行わず、純粋なデータと
// 決定的な操作のみで構成されます。巻き戻し用のチェックポイントを保存でき、
// 先読み・一括消費述語をサポートします。
type Cursor struct {
	input string
	pos   int
}

// NewCursor は、input の先頭を指す新しいカーソルを作成します。
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Input は、カーソルが保持する全入力を返します。
func (c *Cursor) Input() string {
	return c.input
}

// Pos は、現在のバイト位置を返します。
func (c *Cursor) Pos() int {
	return c.pos
}

// IsEmpty は、消費できる入力が残っていないかどうかを返します。
func (c *Cursor) IsEmpty() bool {
	return c.pos >= len(c.input)
}

// Checkpoint は、カーソルの現在位置を表す巻き戻し地点です。
type Checkpoint struct {
	pos int
}

// Save は、現在位置のチェックポイントを返します。
func (c *Cursor) Save() Checkpoint {
	return Checkpoint{pos: c.pos}
}

// Restore は、cp が保存した位置までカーソルを巻き戻します。
func (c *Cursor) Restore(cp Checkpoint) {
	c.pos = cp.pos
}

// Peek は、消費せずに次の1文字を返します。入力が尽きていれば ok は false です。
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// PeekAt は、現在位置から n 文字先（0始まり）を消費せずに返します。
func (c *Cursor) PeekAt(n int) (r rune, ok bool) {
	pos := c.pos
	for i := 0; i <= n; i++ {
		if pos >= len(c.input) {
			return 0, false
		}
		var w int
		r, w = utf8.DecodeRuneInString(c.input[pos:])
		if i == n {
			return r, true
		}
		pos += w
	}
	return 0, false
}

// PeekString は、現在位置から長さ n のプレフィックス文字列を返します（長さが
// 足りない場合は入力の残り全体）。
func (c *Cursor) PeekString(n int) string {
	end := c.pos + n
	if end > len(c.input) {
		end = len(c.input)
	}
	return c.input[c.pos:end]
}

// HasPrefix は、カーソル位置から s が続くかどうかを返します。
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.input)-c.pos >= len(s) && c.input[c.pos:c.pos+len(s)] == s
}

// Remaining は、未消費の入力全体を返します。
func (c *Cursor) Remaining() string {
	return c.input[c.pos:]
}

// Eat は、次の1文字を消費して返します。入力が空の場合は panic します。
// 呼び出し側は事前に IsEmpty で非空を確認しなければなりません。
func (c *Cursor) Eat() rune {
	if c.pos >= len(c.input) {
		panic("regexparse: Eat called on empty cursor")
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += w
	return r
}

// TryEat は、次の1文字が r であれば消費して true を返します。
func (c *Cursor) TryEat(r rune) bool {
	cur, ok := c.Peek()
	if !ok || cur != r {
		return false
	}
	c.Eat()
	return true
}

// TryEatSeq は、現在位置に s が続く場合に限り s をすべて消費して true を返します。
func (c *Cursor) TryEatSeq(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	c.pos += len(s)
	return true
}

// EatWhile は、pred を満たす限り文字を消費し、消費した部分文字列を返します。
func (c *Cursor) EatWhile(pred func(rune) bool) string {
	start := c.pos
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Eat()
	}
	return c.input[start:c.pos]
}

// EatUpTo は、最大 n 文字まで pred を満たす間だけ消費し、消費した部分文字列を返します。
func (c *Cursor) EatUpTo(n int, pred func(rune) bool) string {
	start := c.pos
	for i := 0; i < n; i++ {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Eat()
	}
	return c.input[start:c.pos]
}

// TryEating は、トランザクション的な先読みを実装します。fn を実行し、
// ok が false であればカーソルを呼び出し前の位置に巻き戻してからゼロ値を返します。
// fn がエラーを返した場合はカーソルを巻き戻さずにそのまま伝播します
// （失敗位置が診断情報として保持されるようにするためです）。
func TryEating[T any](c *Cursor, fn func() (T, bool, error)) (T, bool, error) {
	cp := c.Save()
	v, ok, err := fn()
	if err != nil {
		var zero T
		return zero, false, err
	}
	if !ok {
		c.Restore(cp)
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

// RecordLoc は、開始位置を記録したうえで fn を実行し、その戻り値を
// [開始位置, 現在位置) のLocationでラップします。fn がエラーを返した場合は
// そのエラーをそのまま伝播します。
func RecordLoc[T any](c *Cursor, fn func() (T, error)) (Located[T], error) {
	start := c.pos
	v, err := fn()
	if err != nil {
		return Located[T]{}, err
	}
	return Located[T]{Value: v, Loc: Location{Start: start, End: c.pos}}, nil
}
