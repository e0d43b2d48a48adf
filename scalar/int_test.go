package scalar

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{12, 18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 18, 6},
		{17, 13, 1},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestExtGCD(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{240, 46}, {17, 13}, {0, 5}, {-12, 18}, {1, 1},
	}
	for _, c := range cases {
		g, x, y := ExtGCD(c.a, c.b)
		if want := GCD(c.a, c.b); g != want {
			t.Fatalf("ExtGCD(%d,%d) gcd = %d, want %d", c.a, c.b, g, want)
		}
		if c.a*x+c.b*y != g {
			t.Errorf("ExtGCD(%d,%d): %d*%d + %d*%d != %d", c.a, c.b, c.a, x, c.b, y, g)
		}
	}
}

func TestLCM(t *testing.T) {
	got, ok := LCM(4, 6)
	if !ok || got != 12 {
		t.Errorf("LCM(4,6) = %d,%v want 12,true", got, ok)
	}
	if v, ok := LCM(0, 5); !ok || v != 0 {
		t.Errorf("LCM(0,5) = %d,%v want 0,true", v, ok)
	}
}

func TestGCDLCMLaw(t *testing.T) {
	// gcd(a,b) * lcm(a,b) = |a*b| for non-overflowing inputs.
	for _, ab := range [][2]int64{{12, 18}, {7, 5}, {100, 75}} {
		a, b := ab[0], ab[1]
		g := GCD(a, b)
		l, ok := LCM(a, b)
		if !ok {
			t.Fatalf("LCM(%d,%d) overflowed unexpectedly", a, b)
		}
		if g*l != a*b {
			t.Errorf("gcd(%d,%d)*lcm = %d, want %d", a, b, g*l, a*b)
		}
	}
}
