package symbolic

import "testing"

func TestPOSetPushAndGet(t *testing.T) {
	p := NewPOSet(3)
	p.Push(0, 1, Interval{1, 5}) // sym1 - sym0 in [1,5]
	got := p.Get(0, 1)
	if got.Lo != 1 || got.Hi != 5 {
		t.Errorf("Get(0,1) = %v, want [1,5]", got)
	}
	if got := p.Get(1, 0); got.Lo != -5 || got.Hi != -1 {
		t.Errorf("Get(1,0) = %v, want [-5,-1]", got)
	}
}

func TestPOSetTransitiveClosure(t *testing.T) {
	p := NewPOSet(3)
	p.Push(0, 1, Interval{2, 2})  // sym1 = sym0 + 2
	p.Push(1, 2, Interval{3, 3})  // sym2 = sym1 + 3
	got := p.Get(0, 2)
	if got.Lo > 5 || got.Hi < 5 {
		t.Errorf("transitive Get(0,2) = %v, want interval containing 5", got)
	}
}

func TestPOSetKnownGreaterEqual(t *testing.T) {
	p := NewPOSet(2)
	p.Push(0, 1, LowerBound(1)) // sym1 >= sym0 + 1
	if !p.KnownGreaterEqual(0, 1, 1) {
		t.Errorf("expected sym1-sym0 >= 1 to be known")
	}
}
