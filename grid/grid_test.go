package grid

import (
	"reflect"
	"testing"
)

func TestNew_DimensionMismatch(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.width, tc.height, 0); err != ErrDimensionMismatch {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.width, tc.height, err, ErrDimensionMismatch)
			}
		})
	}
}

func TestGetSet_InBounds(t *testing.T) {
	g, err := New(3, 2, 0)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}

	if err := g.Set(1, 1, 42); err != nil {
		t.Fatalf("Set(1,1) error = %v; want nil", err)
	}
	v, err := g.Get(1, 1)
	if err != nil {
		t.Fatalf("Get(1,1) error = %v; want nil", err)
	}
	if v != 42 {
		t.Errorf("Get(1,1) = %d; want 42", v)
	}

	if _, err := g.Get(3, 0); err != ErrOutOfBounds {
		t.Errorf("Get(3,0) error = %v; want %v", err, ErrOutOfBounds)
	}
	if err := g.Set(-1, 0, 1); err != ErrOutOfBounds {
		t.Errorf("Set(-1,0) error = %v; want %v", err, ErrOutOfBounds)
	}
}

func TestIter_RowMajor(t *testing.T) {
	g, err := New(2, 2, 0)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}
	_ = g.Set(0, 0, 1)
	_ = g.Set(1, 0, 2)
	_ = g.Set(0, 1, 3)
	_ = g.Set(1, 1, 4)

	var seen []int
	g.Iter(func(x, y int, v int) {
		seen = append(seen, v)
	})
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Iter order = %v; want %v", seen, want)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g, err := New(2, 2, 0)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}
	_ = g.Set(0, 0, 7)

	clone := g.Clone()
	if err := clone.Set(0, 0, 99); err != nil {
		t.Fatalf("clone.Set() error = %v; want nil", err)
	}

	v, _ := g.Get(0, 0)
	if v != 7 {
		t.Errorf("original (0,0) = %d; want 7 (clone mutation leaked)", v)
	}
	cv, _ := clone.Get(0, 0)
	if cv != 99 {
		t.Errorf("clone (0,0) = %d; want 99", cv)
	}
}

func TestMap(t *testing.T) {
	g, err := New(2, 1, 2)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}

	doubled := Map(g, func(v int) int { return v * 2 })
	w, h := doubled.Size()
	if w != 2 || h != 1 {
		t.Errorf("Size() = (%d,%d); want (2,1)", w, h)
	}
	v, _ := doubled.Get(0, 0)
	if v != 4 {
		t.Errorf("Get(0,0) = %d; want 4", v)
	}
}

// buildLabeled returns a hand-checked 2x3 grid of distinct labels:
//
//	0 1
//	2 3
//	4 5
func buildLabeled(t *testing.T) *Grid[int] {
	t.Helper()
	g, err := New(2, 3, -1)
	if err != nil {
		t.Fatalf("New() error = %v; want nil", err)
	}
	labels := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	for i, c := range labels {
		if err := g.Set(c[0], c[1], i); err != nil {
			t.Fatalf("Set(%d,%d) error = %v; want nil", c[0], c[1], err)
		}
	}

	return g
}

func row(t *testing.T, g *Grid[int], y int) []int {
	t.Helper()
	w, _ := g.Size()
	out := make([]int, w)
	for x := 0; x < w; x++ {
		v, err := g.Get(x, y)
		if err != nil {
			t.Fatalf("Get(%d,%d) error = %v; want nil", x, y, err)
		}
		out[x] = v
	}

	return out
}

func assertRow(t *testing.T, g *Grid[int], y int, want []int) {
	t.Helper()
	if got := row(t, g, y); !reflect.DeepEqual(got, want) {
		t.Errorf("row %d = %v; want %v", y, got, want)
	}
}

func TestFlipX(t *testing.T) {
	g := buildLabeled(t)
	g.FlipX()
	assertRow(t, g, 0, []int{1, 0})
	assertRow(t, g, 1, []int{3, 2})
	assertRow(t, g, 2, []int{5, 4})
}

func TestFlipY(t *testing.T) {
	g := buildLabeled(t)
	g.FlipY()
	assertRow(t, g, 0, []int{4, 5})
	assertRow(t, g, 1, []int{2, 3})
	assertRow(t, g, 2, []int{0, 1})
}

func TestTranspose(t *testing.T) {
	g := buildLabeled(t)
	g.Transpose()
	w, h := g.Size()
	if w != 3 || h != 2 {
		t.Fatalf("Size() = (%d,%d); want (3,2)", w, h)
	}
	assertRow(t, g, 0, []int{0, 2, 4})
	assertRow(t, g, 1, []int{1, 3, 5})
}

func TestRotateLeftRightAreInverses(t *testing.T) {
	g := buildLabeled(t)
	original := g.Clone()

	g.RotateLeft()
	g.RotateRight()

	w1, h1 := g.Size()
	w2, h2 := original.Size()
	if w1 != w2 || h1 != h2 {
		t.Fatalf("Size() = (%d,%d); want (%d,%d)", w1, h1, w2, h2)
	}
	for y := 0; y < h1; y++ {
		assertRow(t, g, y, row(t, original, y))
	}
}

func TestRotate180TwiceIsIdentity(t *testing.T) {
	g := buildLabeled(t)
	original := g.Clone()

	g.Rotate180()
	g.Rotate180()

	for y := 0; y < 3; y++ {
		assertRow(t, g, y, row(t, original, y))
	}
}
