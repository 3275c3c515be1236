package regexparse

import "testing"

func TestBuildCaptureStructureNoCaptures(t *testing.T) {
	root := mustParse(t, "abc", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapTuple || len(shape.Elements) != 0 {
		t.Fatalf("shape = %+v, want empty tuple", shape)
	}
}

func TestBuildCaptureStructureSingleAtom(t *testing.T) {
	root := mustParse(t, "a(b)c", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapAtom {
		t.Fatalf("shape.Kind = %v, want CapAtom", shape.Kind)
	}
}

func TestBuildCaptureStructureOptional(t *testing.T) {
	root := mustParse(t, "(a)?", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapOptional || shape.Inner.Kind != CapAtom {
		t.Fatalf("shape = %+v, want optional(atom)", shape)
	}
}

func TestBuildCaptureStructureArray(t *testing.T) {
	root := mustParse(t, "(a)+", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapArray || shape.Inner.Kind != CapAtom {
		t.Fatalf("shape = %+v, want array(atom)", shape)
	}
}

func TestBuildCaptureStructureExactlyOneIsPlainAtom(t *testing.T) {
	root := mustParse(t, "(a){1}", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapAtom {
		t.Fatalf("shape.Kind = %v, want CapAtom ({1} is not repeating/optional)", shape.Kind)
	}
}

func TestBuildCaptureStructureMultipleTopLevelIsTuple(t *testing.T) {
	root := mustParse(t, "(a)(b)", Traditional)
	shape := BuildCaptureStructure(root)
	if shape.Kind != CapTuple || len(shape.Elements) != 2 {
		t.Fatalf("shape = %+v, want tuple of 2 atoms", shape)
	}
	for _, e := range shape.Elements {
		if e.Kind != CapAtom {
			t.Fatalf("tuple element = %+v, want CapAtom", e)
		}
	}
}

func TestBuildCaptureStructureNestedGroupIsIndependentSlot(t *testing.T) {
	root := mustParse(t, "((a)b)+", Traditional)
	shape := BuildCaptureStructure(root)
	// outer group is under +, inner group is not directly under any quantifier.
	if shape.Kind != CapTuple || len(shape.Elements) != 2 {
		t.Fatalf("shape = %+v, want tuple of 2", shape)
	}
	if shape.Elements[0].Kind != CapArray {
		t.Fatalf("Elements[0] = %+v, want array (outer group under +)", shape.Elements[0])
	}
	if shape.Elements[1].Kind != CapAtom {
		t.Fatalf("Elements[1] = %+v, want atom (inner group has no direct quantifier)", shape.Elements[1])
	}
}

func TestCaptureShapeEncodeDecodeRoundTrip(t *testing.T) {
	shapes := []CaptureShape{
		AtomShape(),
		{Kind: CapOptional, Inner: ptrShape(AtomShape())},
		{Kind: CapArray, Inner: ptrShape(AtomShape())},
		{Kind: CapTuple, Elements: []CaptureShape{AtomShape(), {Kind: CapOptional, Inner: ptrShape(AtomShape())}}},
		{Kind: CapTuple, Elements: nil},
	}
	for _, s := range shapes {
		buf := make([]byte, EncodedSize(s))
		n, err := Encode(s, buf)
		if err != nil {
			t.Fatalf("Encode(%+v) error = %v", s, err)
		}
		got, m, err := Decode(buf[:n])
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if m != n {
			t.Fatalf("Decode() consumed %d bytes, Encode() wrote %d", m, n)
		}
		if !captureShapeEqual(s, got) {
			t.Fatalf("round trip mismatch: %+v != %+v", s, got)
		}
	}
}

func captureShapeEqual(a, b CaptureShape) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case CapAtom:
		return true
	case CapOptional, CapArray:
		return captureShapeEqual(*a.Inner, *b.Inner)
	case CapTuple:
		if len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !captureShapeEqual(a.Elements[i], b.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func TestDecodeTruncatedBufferIsError(t *testing.T) {
	_, _, err := Decode(nil)
	if err == nil {
		t.Fatal("Decode(nil) succeeded, want error")
	}
}
