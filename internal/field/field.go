// Package field generates the per-frame point cloud of the ripple sheet and
// projects it onto the canvas.
package field

import (
	"iter"
	"math"

	"github.com/iburimskiy/ripple-sketch/internal/config"
	"github.com/iburimskiy/ripple-sketch/internal/sketch"
)

// Point is a normalized scene point. X and Y lie roughly in [-1, 1]; Z is the
// radial distance in [0, 1] and doubles as the depth/size proxy.
type Point struct {
	X, Y, Z float64
}

// Bucket selects one of the three drawing colours by depth.
type Bucket uint8

const (
	BucketNear Bucket = iota // color1
	BucketMid                // color2
	BucketFar                // color3
)

// BucketOf maps z to its depth bucket. Colour slot 4 is never selected.
func BucketOf(z float64) Bucket {
	switch {
	case z < config.BucketLow:
		return BucketNear
	case z < config.BucketHigh:
		return BucketMid
	default:
		return BucketFar
	}
}

// Circle is a projected render instruction in pixel space.
type Circle struct {
	X, Y     float64
	Diameter float64
	Bucket   Bucket
}

// Radius returns half the diameter.
func (c Circle) Radius() float64 { return c.Diameter / 2 }

// Project maps pt to screen space. Y is inverted so that +1 is the top edge.
func Project(pt Point, p sketch.Parameters) Circle {
	w := float64(p.Width)
	h := float64(p.Height)
	return Circle{
		X:        w / 2 * (1 + pt.X),
		Y:        (1 - pt.Y) * (h / 2),
		Diameter: pt.Z * p.DepthScalar * p.BaseSize,
		Bucket:   BucketOf(pt.Z),
	}
}

// Count returns the number of points Generate yields for dimension d.
func Count(d int) int {
	if d < 1 {
		return 0
	}
	return 4 * d * d
}

// Generate yields the points of one frame for half-extent d and playhead p.
// Indices run i outer, j inner, both ascending over [-d, d); the order sets
// draw layering.
func Generate(d int, playhead float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if d < 1 {
			return
		}
		fd := float64(d)
		for i := -d; i < d; i++ {
			x := float64(i) / fd
			for j := -d; j < d; j++ {
				yb := float64(j) / fd
				r := math.Sqrt(x*x+yb*yb) / math.Sqrt2
				t := math.Sin(2 * math.Pi * (r + playhead))
				if !yield(Point{X: x, Y: yb * ((t + r) / 2), Z: r}) {
					return
				}
			}
		}
	}
}
