package gg

import "testing"

func TestClampUnitBounds(t *testing.T) {
	if got := clampUnit(-5, 10); got != 0 {
		t.Errorf("clampUnit(-5,10) = %d, want 0", got)
	}
	if got := clampUnit(15, 10); got != 9 {
		t.Errorf("clampUnit(15,10) = %d, want 9", got)
	}
	if got := clampUnit(3.7, 10); got != 3 {
		t.Errorf("clampUnit(3.7,10) = %d, want 3", got)
	}
}

func TestRepeatUnitWraps(t *testing.T) {
	if got := repeatUnit(12, 10); got != 2 {
		t.Errorf("repeatUnit(12,10) = %d, want 2", got)
	}
	if got := repeatUnit(-2, 10); got != 8 {
		t.Errorf("repeatUnit(-2,10) = %d, want 8", got)
	}
}

func TestMirrorUnitAsymmetricAboutNegativeX(t *testing.T) {
	// pinned = x/bound; at bound=1, pinned=-0.5 and pinned=0.5 both land in
	// the "even" branch per the documented quirk (§9).
	negHalf := mirrorUnit(-0.5, 1)
	posHalf := mirrorUnit(0.5, 1)
	if negHalf != posHalf {
		t.Errorf("mirror asymmetry: mirrorUnit(-0.5,1)=%d, mirrorUnit(0.5,1)=%d, want equal", negHalf, posHalf)
	}
}

func TestPinToUnit(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, c := range cases {
		if got := pinToUnit(c.x); got != c.want {
			t.Errorf("pinToUnit(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}
