package citygrid

import (
	"fmt"
	"image"

	"github.com/voidshard/citygrid/internal/direction"
)

// Intersection is a grid vertex that at least one avenue touches.
// Each junction flag means an avenue runs from this vertex to the
// neighbouring vertex in that direction.
type Intersection struct {
	Up    bool `json:",omitempty"`
	Right bool `json:",omitempty"`
	Down  bool `json:",omitempty"`
	Left  bool `json:",omitempty"`
}

// connect sets the junction flag toward d. Flags are never cleared.
func (i *Intersection) connect(d direction.Direction) {
	switch d {
	case direction.Up:
		i.Up = true
	case direction.Right:
		i.Right = true
	case direction.Down:
		i.Down = true
	case direction.Left:
		i.Left = true
	}
}

// Junction returns if an avenue leaves this intersection toward d
func (i *Intersection) Junction(d direction.Direction) bool {
	switch d {
	case direction.Up:
		return i.Up
	case direction.Right:
		return i.Right
	case direction.Down:
		return i.Down
	case direction.Left:
		return i.Left
	}
	return false
}

// Degree is the number of junctions
func (i *Intersection) Degree() int {
	n := 0
	for _, d := range direction.All() {
		if i.Junction(d) {
			n++
		}
	}
	return n
}

// StreetsPattern is the layout of streets inside a block (grid cell),
// decided by which sides of the block have avenues.
type StreetsPattern int

const (
	// Vertical streets run between avenues above & below
	Vertical StreetsPattern = iota
	// Horizontal streets run between avenues left & right
	Horizontal
	// LTopRight blocks have avenues along the top & right sides
	LTopRight
	// LRightBottom blocks have avenues along the right & bottom sides
	LRightBottom
	// LBottomLeft blocks have avenues along the bottom & left sides
	LBottomLeft
	// LLeftTop blocks have avenues along the left & top sides
	LLeftTop
)

var (
	allPatterns = []StreetsPattern{Vertical, Horizontal, LTopRight, LRightBottom, LBottomLeft, LLeftTop}

	patternNames = map[StreetsPattern]string{
		Vertical:     "vertical",
		Horizontal:   "horizontal",
		LTopRight:    "l-top-right",
		LRightBottom: "l-right-bottom",
		LBottomLeft:  "l-bottom-left",
		LLeftTop:     "l-left-top",
	}

	invPatternNames = map[string]StreetsPattern{}
)

func init() {
	for k, v := range patternNames {
		invPatternNames[v] = k
	}
}

// AllStreetsPatterns returns all known StreetsPattern enums
func AllStreetsPatterns() []StreetsPattern {
	return allPatterns
}

// String returns the pattern name
func (s StreetsPattern) String() string {
	name, ok := patternNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// MarshalText writes the pattern name
func (s StreetsPattern) MarshalText() ([]byte, error) {
	name, ok := patternNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown streets pattern %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText reads a pattern name
func (s *StreetsPattern) UnmarshalText(data []byte) error {
	v, ok := invPatternNames[string(data)]
	if !ok {
		return fmt.Errorf("unknown streets pattern %q", string(data))
	}
	*s = v
	return nil
}

// buildOrder is pending avenue growth: an avenue reaches `at`, having
// travelled in direction `dir` to get there.
type buildOrder struct {
	at  image.Point
	dir direction.Direction
}

// Stats holds generic stats about the generated grid
type Stats struct {
	Intersections int
	BranchPoints  int // secondary avenues started by main avenues
	BuildOrders   int // build orders processed over both phases

	StreetsByPattern map[StreetsPattern]int
}

// newStats returns blank Stats
func newStats() *Stats {
	return &Stats{StreetsByPattern: map[StreetsPattern]int{}}
}
