// Package blade tracks the pointer trail and decides which targets it cuts
package blade

import (
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Trail is the bounded, oldest-first sequence of recent pointer samples
type Trail struct {
	points []vmath.Vec2
	limit  int
}

// NewTrail creates a trail holding at most parameter.TrailMaxPoints samples
func NewTrail() *Trail {
	return NewTrailWithLimit(parameter.TrailMaxPoints)
}

// NewTrailWithLimit creates a trail with a custom bound, minimum 2
func NewTrailWithLimit(limit int) *Trail {
	if limit < 2 {
		limit = 2
	}
	return &Trail{points: make([]vmath.Vec2, 0, limit), limit: limit}
}

// Push appends a sample, dropping the oldest once the bound is exceeded
func (t *Trail) Push(p vmath.Vec2) {
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Clear empties the trail (pointer left the surface)
func (t *Trail) Clear() {
	t.points = t.points[:0]
}

// Len returns the number of samples
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the samples, oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(t.points))
	copy(out, t.points)
	return out
}

// Cuts reports whether the trail slices a circle
// Only segment start points are tested against the radius, not the full segment
// A trail with fewer than two samples never cuts
func Cuts(points []vmath.Vec2, center vmath.Vec2, radius float64) bool {
	if len(points) < 2 {
		return false
	}
	r2 := radius * radius
	for i := 0; i < len(points)-1; i++ {
		if center.Sub(points[i]).LenSq() < r2 {
			return true
		}
	}
	return false
}

// Cuts is the method form over the trail's own samples
func (t *Trail) Cuts(center vmath.Vec2, radius float64) bool {
	return Cuts(t.points, center, radius)
}
