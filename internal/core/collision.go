package core

import "math"

// Resolve separates a moving rect from a static one and reflects its velocity.
//
// When a and b overlap, a is pushed out of b along the axis of least
// penetration and the matching velocity component is re-signed to point away
// from b's center, keeping its magnitude. A wider-than-tall overlap is a
// vertical hit; otherwise (including the square case) it is horizontal.
//
// Returns false and leaves a and vel untouched when the rects do not overlap.
// Resolution is not swept: a rect that moved through b in a single step is
// either missed or pushed out on the far side.
func Resolve(a *Rect, vel *Vec2, b Rect) bool {
	inter, ok := a.Intersect(b)
	if !ok {
		return false
	}

	to := b.Center().Sub(a.Center()).Signum()

	if inter.W > inter.H {
		a.Y -= to.Y * inter.H
		vel.Y = -to.Y * math.Abs(vel.Y)
	} else {
		a.X -= to.X * inter.W
		vel.X = -to.X * math.Abs(vel.X)
	}
	return true
}
