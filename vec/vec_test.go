package vec

import "testing"

func TestComponentwise(t *testing.T) {
	a := New(3, 8)
	b := New(5, 2)

	if got := a.Min(b); got != New(3, 2) {
		t.Errorf("Min = %v, want (3,2)", got)
	}
	if got := Max(a, b); got != New(5, 8) {
		t.Errorf("Max = %v, want (5,8)", got)
	}
	if got := a.Add(b); got != New(8, 10) {
		t.Errorf("Add = %v, want (8,10)", got)
	}
	if got := b.Sub(a); got != New(2, -6) {
		t.Errorf("Sub = %v, want (2,-6)", got)
	}
	if got := New(7, 6).Div(2); got != New(3, 3) {
		t.Errorf("Div = %v, want (3,3)", got)
	}
	if got := New(0, -4).FloorAt(New(1, 1)); got != New(1, 1) {
		t.Errorf("FloorAt = %v, want (1,1)", got)
	}
	if a.KeepX() != New(3, 0) || a.KeepY() != New(0, 8) {
		t.Errorf("KeepX/KeepY = %v/%v", a.KeepX(), a.KeepY())
	}
}
