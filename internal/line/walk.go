package line

import (
	"image"
)

// Walk steps from start along step, calling visit for each point until visit
// returns true or the walk leaves bounds. Start itself is not visited.
//
// Returns the 1-based step count of the point visit accepted, or (if
// nothing was accepted) the step count of the first point outside bounds.
func Walk(start, step image.Point, bounds image.Rectangle, visit func(p image.Point) bool) (int, bool) {
	if step == image.ZP {
		return 0, false // we'd never leave bounds
	}

	n := 1
	for p := start.Add(step); p.In(bounds); p = p.Add(step) {
		if visit(p) {
			return n, true
		}
		n++
	}
	return n, false
}
