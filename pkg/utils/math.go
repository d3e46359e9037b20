// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the truncated Euclidean distance between two points.
func Distance(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return int(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Heading returns the direction in whole degrees from (dx, dy), as produced by atan2.
// The result is in (-180, 180] and is not normalized.
func Heading(dx, dy float64) int {
	return int(math.Atan2(dy, dx) * 180 / math.Pi)
}

// Round rounds half up (towards positive infinity), so -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Step returns the rounded displacement for one move along direction (degrees) at speed.
func Step(direction int, speed float64) (int, int) {
	rad := float64(direction) * math.Pi / 180
	return Round(math.Cos(rad) * speed), Round(math.Sin(rad) * speed)
}
