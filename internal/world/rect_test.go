package world

import "testing"

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 20, 6, 4)
	c := r.Center()
	if c.X != 13 || c.Y != 22 {
		t.Errorf("Center() = (%d,%d), want (13,22)", c.X, c.Y)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	cases := []struct {
		name   string
		other  Rect
		border int
		want   bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), 0, true},
		{"touching edges", NewRect(10, 0, 5, 5), 0, true},
		{"disjoint", NewRect(20, 20, 5, 5), 0, false},
		{"disjoint within border", NewRect(12, 0, 5, 5), 1, true},
		{"contained", NewRect(2, 2, 3, 3), 0, true},
	}

	for _, tc := range cases {
		if got := a.Intersects(tc.other, tc.border); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}
