package heat

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(42)), 100, 80, 5, -0.3, 1.3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(rand.New(rand.NewSource(42)), 100, 80, 5, -0.3, 1.3)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 80; y++ {
		for x := 0; x < 100; x++ {
			if a.Heat(x, y) != b.Heat(x, y) {
				t.Fatalf("heat differs at (%d,%d): %f vs %f", x, y, a.Heat(x, y), b.Heat(x, y))
			}
		}
	}
}

func TestGenerateRange(t *testing.T) {
	m, err := Generate(rand.New(rand.NewSource(7)), 64, 64, 6, -0.3, 1.3)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			h := m.Heat(x, y)
			if h < 0 || h > 1 {
				t.Errorf("Heat(%d, %d) = %f, out of range [0, 1]", x, y, h)
			}
		}
	}
}

func TestGenerateHotCentre(t *testing.T) {
	m, err := Generate(rand.New(rand.NewSource(3)), 65, 65, 6, -0.3, 1.3)
	if err != nil {
		t.Fatal(err)
	}

	// the seed point is max heat (clamped) and the border is min heat (clamped)
	if h := m.Heat(32, 32); h != 1 {
		t.Errorf("centre heat = %f, want 1", h)
	}
	if h := m.Heat(0, 0); h != 0 {
		t.Errorf("corner heat = %f, want 0", h)
	}
}

func TestHeatOutsideWorld(t *testing.T) {
	m, err := FromValues(2, 2, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if h := m.Heat(p[0], p[1]); h != 0 {
			t.Errorf("Heat(%d, %d) = %f, want 0", p[0], p[1], h)
		}
	}
}

func TestFromValuesClamps(t *testing.T) {
	m, err := FromValues(2, 1, []float64{-0.5, 1.5})
	if err != nil {
		t.Fatal(err)
	}
	if m.Heat(0, 0) != 0 || m.Heat(1, 0) != 1 {
		t.Errorf("values not clamped: %f %f", m.Heat(0, 0), m.Heat(1, 0))
	}

	if _, err := FromValues(2, 2, []float64{1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("FromValues with short slice error = %v, want ErrInvalidSize", err)
	}
}

func TestGenerateInvalid(t *testing.T) {
	if _, err := Generate(rand.New(rand.NewSource(1)), 0, 10, 4, 0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}
