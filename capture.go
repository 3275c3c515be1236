package regexparse

import (
	"encoding/binary"
	"errors"
)

// CaptureShapeKind は、キャプチャ構造のバリアントを表します（§4.9）。
type CaptureShapeKind int

const (
	CapAtom     CaptureShapeKind = iota // 単一のキャプチャスロット
	CapOptional                         // オプション量指定子下のキャプチャ
	CapArray                            // 繰り返し量指定子下のキャプチャ
	CapTuple                            // トップレベルに複数のキャプチャがある場合
)

// CaptureShape は、パース結果から導出されるキャプチャ構造です。通常の
// キャプチャグループ1つにつき1スロットが対応し、量指定子に応じて
// Optional/Array にラップされます。複数のトップレベルキャプチャは出現順の
// Tuple になります。
type CaptureShape struct {
	Kind     CaptureShapeKind
	Inner    *CaptureShape  // CapOptional, CapArray
	Elements []CaptureShape // CapTuple
}

// AtomShape は、単一キャプチャスロットを表す CaptureShape です。
func AtomShape() CaptureShape {
	return CaptureShape{Kind: CapAtom}
}

// BuildCaptureStructure は、root をパースした結果から、出現したキャプチャ
// グループのキャプチャ構造を決定的に導出します。キャプチャは出現順
// （左から右、深さ優先）に走査され、直接それを囲む量指定子のみが
// Optional/Array 変換に関与します（§4.9）。
func BuildCaptureStructure(root Node) CaptureShape {
	slots := collectCaptureSlots(root, nil)
	switch len(slots) {
	case 0:
		return CaptureShape{Kind: CapTuple, Elements: nil}
	case 1:
		return slots[0]
	default:
		return CaptureShape{Kind: CapTuple, Elements: slots}
	}
}

// collectCaptureSlots は、root の部分木にあるキャプチャグループを出現順に
// 集めます。enclosing は直接の親が量指定子である場合にそのAmountを渡します。
func collectCaptureSlots(n Node, enclosingAmount *Amount) []CaptureShape {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *Quantification:
		amt := v.Amount
		return collectCaptureSlots(v.Child, &amt)
	case *Group:
		var out []CaptureShape
		if v.Kind_.IsCapturing() {
			shape := AtomShape()
			if enclosingAmount != nil {
				if enclosingAmount.IsOptional() {
					shape = CaptureShape{Kind: CapOptional, Inner: ptrShape(shape)}
				} else if enclosingAmount.IsRepeating() {
					shape = CaptureShape{Kind: CapArray, Inner: ptrShape(shape)}
				}
			}
			out = append(out, shape)
		}
		out = append(out, collectCaptureSlots(v.Child, nil)...)
		return out
	default:
		var out []CaptureShape
		for _, c := range n.Children() {
			out = append(out, collectCaptureSlots(c, nil)...)
		}
		return out
	}
}

func ptrShape(c CaptureShape) *CaptureShape {
	return &c
}

// --- binary serialization interface ----------------------------------

// バイナリ表現のタグ。
const (
	capTagAtom    byte = 0
	capTagOptional byte = 1
	capTagArray    byte = 2
	capTagTuple    byte = 3
)

// EncodedSize は、c をエンコードするのに必要なバッファサイズを返します。
func EncodedSize(c CaptureShape) int {
	switch c.Kind {
	case CapAtom:
		return 1
	case CapOptional, CapArray:
		return 1 + EncodedSize(*c.Inner)
	case CapTuple:
		size := 1 + binary.MaxVarintLen32
		for _, e := range c.Elements {
			size += EncodedSize(e)
		}
		return size
	default:
		return 1
	}
}

// Encode は、c を buf にエンコードし、書き込んだバイト数を返します。
// buf は少なくとも EncodedSize(c) バイトの長さを持たなければなりません。
func Encode(c CaptureShape, buf []byte) (int, error) {
	switch c.Kind {
	case CapAtom:
		if len(buf) < 1 {
			return 0, errors.New("regexparse: buffer too small")
		}
		buf[0] = capTagAtom
		return 1, nil
	case CapOptional, CapArray:
		if len(buf) < 1 {
			return 0, errors.New("regexparse: buffer too small")
		}
		tag := capTagOptional
		if c.Kind == CapArray {
			tag = capTagArray
		}
		buf[0] = tag
		n, err := Encode(*c.Inner, buf[1:])
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	case CapTuple:
		if len(buf) < 1 {
			return 0, errors.New("regexparse: buffer too small")
		}
		buf[0] = capTagTuple
		off := 1
		lenN := binary.PutUvarint(buf[off:], uint64(len(c.Elements)))
		off += lenN
		for _, e := range c.Elements {
			n, err := Encode(e, buf[off:])
			if err != nil {
				return 0, err
			}
			off += n
		}
		return off, nil
	default:
		return 0, errors.New("regexparse: unknown capture shape kind")
	}
}

// Decode は、buf の先頭から CaptureShape を復元し、消費したバイト数とともに
// 返します。
func Decode(buf []byte) (CaptureShape, int, error) {
	if len(buf) < 1 {
		return CaptureShape{}, 0, errors.New("regexparse: truncated capture structure")
	}
	switch buf[0] {
	case capTagAtom:
		return CaptureShape{Kind: CapAtom}, 1, nil
	case capTagOptional, capTagArray:
		inner, n, err := Decode(buf[1:])
		if err != nil {
			return CaptureShape{}, 0, err
		}
		kind := CapOptional
		if buf[0] == capTagArray {
			kind = CapArray
		}
		return CaptureShape{Kind: kind, Inner: ptrShape(inner)}, 1 + n, nil
	case capTagTuple:
		count, lenN := binary.Uvarint(buf[1:])
		if lenN <= 0 {
			return CaptureShape{}, 0, errors.New("regexparse: malformed tuple length")
		}
		off := 1 + lenN
		elems := make([]CaptureShape, 0, count)
		for i := uint64(0); i < count; i++ {
			e, n, err := Decode(buf[off:])
			if err != nil {
				return CaptureShape{}, 0, err
			}
			elems = append(elems, e)
			off += n
		}
		return CaptureShape{Kind: CapTuple, Elements: elems}, off, nil
	default:
		return CaptureShape{}, 0, errors.New("regexparse: unknown capture shape tag")
	}
}
