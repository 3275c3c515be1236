package regexparse

import "testing"

func TestCursorBasics(t *testing.T) {
	c := NewCursor("abc")
	if c.IsEmpty() {
		t.Fatal("cursor over non-empty input reported empty")
	}
	r, ok := c.Peek()
	if !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v, want 'a', true", r, ok)
	}
	if got := c.Eat(); got != 'a' {
		t.Fatalf("Eat() = %q, want 'a'", got)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() = %d, want 1", c.Pos())
	}
}

func TestCursorCheckpointRestore(t *testing.T) {
	c := NewCursor("hello")
	cp := c.Save()
	c.Eat()
	c.Eat()
	c.Restore(cp)
	if c.Pos() != 0 {
		t.Fatalf("Pos() after restore = %d, want 0", c.Pos())
	}
}

func TestCursorTryEatSeq(t *testing.T) {
	c := NewCursor("abcdef")
	if c.TryEatSeq("xyz") {
		t.Fatal("TryEatSeq matched a non-prefix")
	}
	if !c.TryEatSeq("abc") {
		t.Fatal("TryEatSeq failed to match a real prefix")
	}
	if c.Pos() != 3 {
		t.Fatalf("Pos() = %d, want 3", c.Pos())
	}
}

func TestCursorEatWhileAndUpTo(t *testing.T) {
	c := NewCursor("1234abc")
	digits := c.EatWhile(isDigit)
	if digits != "1234" {
		t.Fatalf("EatWhile(isDigit) = %q, want %q", digits, "1234")
	}
	c2 := NewCursor("123456")
	three := c2.EatUpTo(3, isDigit)
	if three != "123" {
		t.Fatalf("EatUpTo(3, isDigit) = %q, want %q", three, "123")
	}
}

func TestTryEatingRestoresOnNoMatch(t *testing.T) {
	c := NewCursor("abc")
	_, ok, err := TryEating(c, func() (string, bool, error) {
		c.Eat()
		c.Eat()
		return "", false, nil
	})
	if ok || err != nil {
		t.Fatalf("TryEating() = _, %v, %v, want false, nil", ok, err)
	}
	if c.Pos() != 0 {
		t.Fatalf("Pos() after failed TryEating = %d, want 0", c.Pos())
	}
}

func TestTryEatingCommitsOnMatch(t *testing.T) {
	c := NewCursor("abc")
	v, ok, err := TryEating(c, func() (rune, bool, error) {
		r := c.Eat()
		return r, true, nil
	})
	if !ok || err != nil || v != 'a' {
		t.Fatalf("TryEating() = %q, %v, %v, want 'a', true, nil", v, ok, err)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() after committed TryEating = %d, want 1", c.Pos())
	}
}

func TestTryEatingPropagatesErrorWithoutRestoring(t *testing.T) {
	c := NewCursor("abc")
	wantErr := errMisc("boom", NewLocation(0, 1))
	_, ok, err := TryEating(c, func() (string, bool, error) {
		c.Eat()
		return "", false, wantErr
	})
	if ok || err != wantErr {
		t.Fatalf("TryEating() = _, %v, %v, want false, %v", ok, err, wantErr)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() after errored TryEating = %d, want 1 (no restore on error)", c.Pos())
	}
}

func TestRecordLoc(t *testing.T) {
	c := NewCursor("abc")
	located, err := RecordLoc(c, func() (string, error) {
		c.Eat()
		c.Eat()
		return "ab", nil
	})
	if err != nil {
		t.Fatalf("RecordLoc() error = %v", err)
	}
	if located.Value != "ab" {
		t.Fatalf("Value = %q, want %q", located.Value, "ab")
	}
	if located.Loc != NewLocation(0, 2) {
		t.Fatalf("Loc = %v, want %v", located.Loc, NewLocation(0, 2))
	}
}
