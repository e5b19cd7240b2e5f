package citygrid

import (
	"encoding/json"
	"errors"
	"image"
	"math/rand"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		sides blockSides
		want  StreetsPattern
		ok    bool
	}{
		{"none", blockSides{}, 0, false},
		{"up only", blockSides{up: true}, 0, false},
		{"left only", blockSides{left: true}, 0, false},
		{"up & bottom", blockSides{up: true, bottom: true}, Vertical, true},
		{"right & left", blockSides{right: true, left: true}, Horizontal, true},
		{"up & right", blockSides{up: true, right: true}, LTopRight, true},
		{"right & bottom", blockSides{right: true, bottom: true}, LRightBottom, true},
		{"bottom & left", blockSides{bottom: true, left: true}, LBottomLeft, true},
		{"left & up", blockSides{left: true, up: true}, LLeftTop, true},
		{"vertical beats l-top-right", blockSides{up: true, right: true, bottom: true}, Vertical, true},
		{"all four", blockSides{true, true, true, true}, Vertical, true},
		{"horizontal beats l-right-bottom", blockSides{right: true, bottom: true, left: true}, Horizontal, true},
		{"up, bottom & left", blockSides{up: true, bottom: true, left: true}, Vertical, true},
	}

	for _, c := range cases {
		got, ok := classify(c.sides)
		if ok != c.ok {
			t.Errorf("%s: ok = %v, want %v", c.name, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("%s: classify = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestStreetsSingleHotSpot(t *testing.T) {
	a := generated(t, 4, 4, hotSpot(image.Pt(2, 2)), 99)
	s := NewStreets(a)
	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]StreetsPattern{
		image.Pt(1, 1): LRightBottom,
		image.Pt(2, 1): LBottomLeft,
		image.Pt(1, 2): LTopRight,
		image.Pt(2, 2): LLeftTop,
	}
	if len(s.Patterns) != len(want) {
		t.Errorf("got %d patterns, want %d: %v", len(s.Patterns), len(want), s.Patterns)
	}
	for cell, pattern := range want {
		got, ok, err := s.Pattern(cell)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || got != pattern {
			t.Errorf("cell %v = %s (%v), want %s", cell, got, ok, pattern)
		}
	}
}

func TestStreetsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	a := generated(t, 18, 12, randomHeat(t, rng, 18, 12, 0.3), 21)
	s := NewStreets(a)

	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}
	first := map[int]StreetsPattern{}
	for k, v := range s.Patterns {
		first[k] = v
	}

	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}
	if len(first) != len(s.Patterns) {
		t.Fatalf("pattern count changed: %d vs %d", len(first), len(s.Patterns))
	}
	for k, v := range first {
		if s.Patterns[k] != v {
			t.Errorf("cell %d changed from %s to %s", k, v, s.Patterns[k])
		}
	}

	cells := s.cells.Len()
	for k := range s.Patterns {
		if k < 0 || k >= cells {
			t.Errorf("pattern key %d outside cell space of %d", k, cells)
		}
	}
}

func TestStreetsOutOfBounds(t *testing.T) {
	a := generated(t, 4, 4, hotSpot(image.Pt(2, 2)), 1)
	s := NewStreets(a)

	// (4,4) is a vertex but not a cell
	if _, _, err := s.Pattern(image.Pt(4, 4)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Pattern((4,4)) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := s.CellIndex(image.Pt(-1, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellIndex((-1,0)) error = %v, want ErrOutOfBounds", err)
	}
}

func TestStreetsPatternText(t *testing.T) {
	data, err := json.Marshal(map[string]StreetsPattern{"a": LBottomLeft})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":"l-bottom-left"}` {
		t.Errorf("json = %s", data)
	}

	var back map[string]StreetsPattern
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back["a"] != LBottomLeft {
		t.Errorf("decoded %s, want %s", back["a"], LBottomLeft)
	}

	var p StreetsPattern
	if err := p.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("expected error for unknown pattern name")
	}
	if StreetsPattern(42).String() != "unknown" {
		t.Errorf("String() of invalid pattern = %q", StreetsPattern(42))
	}
}
