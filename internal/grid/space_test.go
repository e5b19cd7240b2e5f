package grid

import (
	"errors"
	"image"
	"testing"
)

func TestIndexRowMajor(t *testing.T) {
	s := Vertices(4, 3) // 5x4 vertices

	cases := []struct {
		p    image.Point
		want int
	}{
		{image.Pt(0, 0), 0},
		{image.Pt(4, 0), 4},
		{image.Pt(0, 1), 5},
		{image.Pt(2, 2), 12},
		{image.Pt(4, 3), 19},
	}

	for _, c := range cases {
		got, err := s.Index(c.p)
		if err != nil {
			t.Fatalf("Index(%v) unexpected error: %v", c.p, err)
		}
		if got != c.want {
			t.Errorf("Index(%v) = %d, want %d", c.p, got, c.want)
		}

		back, err := s.Coord(got)
		if err != nil {
			t.Fatalf("Coord(%d) unexpected error: %v", got, err)
		}
		if back != c.p {
			t.Errorf("Coord(%d) = %v, want %v", got, back, c.p)
		}
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	s := Cells(4, 3)

	for _, p := range []image.Point{
		image.Pt(-1, 0), image.Pt(0, -1), image.Pt(4, 0), image.Pt(0, 3), image.Pt(4, 3),
	} {
		_, err := s.Index(p)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Index(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}

	if _, err := s.Coord(s.Len()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Coord(%d) error = %v, want ErrOutOfBounds", s.Len(), err)
	}
	if _, err := s.Coord(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Coord(-1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestExtents(t *testing.T) {
	v := Vertices(4, 4)
	c := Cells(4, 4)

	if v.Len() != 25 {
		t.Errorf("vertex count = %d, want 25", v.Len())
	}
	if c.Len() != 16 {
		t.Errorf("cell count = %d, want 16", c.Len())
	}

	// the last vertex is a valid vertex but not a valid cell
	if !v.Contains(image.Pt(4, 4)) {
		t.Error("vertex (4,4) should be in vertex space")
	}
	if c.Contains(image.Pt(4, 4)) {
		t.Error("cell (4,4) should not be in cell space")
	}
}

func TestOnEdge(t *testing.T) {
	v := Vertices(4, 4)

	edge := []image.Point{image.Pt(0, 2), image.Pt(4, 2), image.Pt(2, 0), image.Pt(2, 4), image.Pt(0, 0)}
	for _, p := range edge {
		if !v.OnEdge(p) {
			t.Errorf("OnEdge(%v) = false, want true", p)
		}
	}
	inner := []image.Point{image.Pt(1, 1), image.Pt(2, 2), image.Pt(3, 3)}
	for _, p := range inner {
		if v.OnEdge(p) {
			t.Errorf("OnEdge(%v) = true, want false", p)
		}
	}
}
