// Package gamemath holds the pure geometry used by the gameplay systems.
package gamemath

// ClampCamera returns the camera center for a target position so the
// viewport never shows outside the world. The low bound is checked first,
// so when the world is smaller than the view the camera pins to view/2.
func ClampCamera(target, view, world float64) float64 {
	half := view / 2
	if target < half {
		return half
	}
	if target > world-half {
		return world - half
	}
	return target
}

// ClampBox returns the top-left corner that keeps a box of size (w, h)
// inside the rectangle [0, maxW] x [0, maxH].
func ClampBox(x, y, w, h, maxW, maxH float64) (float64, float64) {
	return clampAxis(x, w, maxW), clampAxis(y, h, maxH)
}

func clampAxis(pos, size, limit float64) float64 {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// ShrinkRect scales a rectangle around its center by scale.
func ShrinkRect(x, y, w, h, scale float64) (float64, float64, float64, float64) {
	nw, nh := w*scale, h*scale
	return x + (w-nw)/2, y + (h-nh)/2, nw, nh
}

// Overlaps reports whether two rectangles share any area. Touching edges
// do not count.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
