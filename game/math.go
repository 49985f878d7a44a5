package game

import "math"

// SegmentBounds controls how many straight segments approximate a curve.
type SegmentBounds struct {
	// Min and Max bound the final segment count.
	Min, Max int
	// TargetLength is the preferred arc length covered by a single segment.
	TargetLength float64
	// ScaleFactor scales the square root of the radius when deriving a radius-based count.
	ScaleFactor float64
}

// Clamp limits v to the range [lo, hi].
func Clamp[T int | int64 | float64](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// GridStep returns the distance between two grid lines across an extent divided into division
// parts. The result is at least 1 and, if maxSpacing is positive, at most maxSpacing.
func GridStep(extent float64, division, maxSpacing int) int {
	if division < 1 {
		division = 1
	}
	step := max(1, int(extent/float64(division)))
	if maxSpacing > 0 {
		step = min(step, maxSpacing)
	}
	return step
}

// CircleSegments returns the number of segments used to draw an ellipse with the two radii passed,
// approximating its circumference as that of a circle with the average radius.
func CircleSegments(r1, r2 float64, b SegmentBounds) int {
	avg := (r1 + r2) / 2
	return segments(2*math.Pi*avg, avg, b)
}

// EllipseSegments returns the number of segments used to draw an ellipse with the two radii passed,
// using Ramanujan's approximation of the circumference.
func EllipseSegments(r1, r2 float64, b SegmentBounds) int {
	return segments(EllipseCircumference(r1, r2), (r1+r2)/2, b)
}

// EllipseCircumference approximates the circumference of an ellipse with the semi-axes passed.
func EllipseCircumference(r1, r2 float64) float64 {
	a, b := math.Max(r1, r2), math.Min(r1, r2)
	if a+b <= 0 {
		return 0
	}
	h := math.Pow((a-b)/(a+b), 2)
	return math.Pi * (a + b) * (1 + (3*h)/(10+math.Sqrt(4-3*h)))
}

func segments(circumference, avgRadius float64, b SegmentBounds) int {
	byLength := b.Min
	if b.TargetLength > 0 {
		byLength = int(math.Ceil(circumference / b.TargetLength))
	}
	byRadius := int(float64(b.Min) + b.ScaleFactor*math.Sqrt(math.Max(avgRadius, 0)))
	return Clamp(max(byLength, byRadius), b.Min, max(b.Min, b.Max))
}
