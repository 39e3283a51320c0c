package cfgrec

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.Len() != 4 {
		t.Errorf("expected span length 4, is %d", s.Len())
	}
	if s.IsNull() {
		t.Errorf("span %v should not be null", s)
	}
	e := s.Extend(Span{1, 5})
	if e.From() != 1 || e.To() != 7 {
		t.Errorf("expected extended span to be (1…7), is %v", e)
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected span string %q", s.String())
	}
}
