package line

import (
	"image"
	"testing"
)

func TestWalkHit(t *testing.T) {
	bnds := image.Rect(0, 0, 5, 5)
	target := image.Pt(2, 4)

	n, hit := Walk(image.Pt(2, 1), image.Pt(0, 1), bnds, func(p image.Point) bool {
		return p == target
	})
	if !hit {
		t.Fatal("expected walk to hit target")
	}
	if n != 3 {
		t.Errorf("steps = %d, want 3", n)
	}
}

func TestWalkRunsOut(t *testing.T) {
	bnds := image.Rect(0, 0, 5, 5)

	visited := 0
	n, hit := Walk(image.Pt(1, 2), image.Pt(-1, 0), bnds, func(p image.Point) bool {
		visited++
		return false
	})
	if hit {
		t.Fatal("walk should not report a hit")
	}
	// visits (0,2) then (-1,2) is out
	if visited != 1 {
		t.Errorf("visited = %d, want 1", visited)
	}
	if n != 2 {
		t.Errorf("steps = %d, want 2", n)
	}
}

func TestWalkFromEdge(t *testing.T) {
	bnds := image.Rect(0, 0, 5, 5)

	n, hit := Walk(image.Pt(0, 2), image.Pt(-1, 0), bnds, func(p image.Point) bool {
		t.Errorf("unexpected visit %v", p)
		return false
	})
	if hit || n != 1 {
		t.Errorf("Walk from edge = (%d, %v), want (1, false)", n, hit)
	}
}
