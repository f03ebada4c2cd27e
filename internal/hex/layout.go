package hex

import (
	"math"
	"strings"

	"github.com/paulmach/orb"

	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Orientation holds the axial-to-world matrix and its inverse, both row major.
// StartAngle is the angle of corner 0 in multiples of 60 degrees.
type Orientation struct {
	Name       string
	Forward    [4]float64
	Inverse    [4]float64
	StartAngle float64
}

var sqrt3 = math.Sqrt(3.0)

// Pointy orients cells with a vertex at the top.
var Pointy = Orientation{
	Name:       "pointy",
	Forward:    [4]float64{sqrt3, sqrt3 / 2.0, 0.0, 3.0 / 2.0},
	Inverse:    [4]float64{sqrt3 / 3.0, -1.0 / 3.0, 0.0, 2.0 / 3.0},
	StartAngle: 0.5,
}

// Flat orients cells with an edge at the top.
var Flat = Orientation{
	Name:       "flat",
	Forward:    [4]float64{3.0 / 2.0, 0.0, sqrt3 / 2.0, sqrt3},
	Inverse:    [4]float64{2.0 / 3.0, 0.0, -1.0 / 3.0, sqrt3 / 3.0},
	StartAngle: 0.0,
}

// ParseOrientation resolves "pointy" or "flat", case-insensitively.
func ParseOrientation(name string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pointy", "pointy-top":
		return Pointy, true
	case "flat", "flat-top":
		return Flat, true
	default:
		return Orientation{}, false
	}
}

// Layout converts between cells and world points. Treat it as immutable and
// share it by pointer.
type Layout struct {
	Orientation Orientation
	Size        orb.Point
	Origin      orb.Point
}

// NewLayout builds a layout. Both size components must be positive.
func NewLayout(o Orientation, size, origin orb.Point) (*Layout, error) {
	if size.X() <= 0 || size.Y() <= 0 {
		return nil, apperrors.InvalidGeometryf("cell size %v must be positive", size)
	}
	return &Layout{Orientation: o, Size: size, Origin: origin}, nil
}

// HexToWorld returns the world position of the cell center.
func (l *Layout) HexToWorld(c Coord) orb.Point {
	m := l.Orientation.Forward
	q, r := float64(c.Q()), float64(c.R())
	x := (m[0]*q + m[1]*r) * l.Size.X()
	y := (m[2]*q + m[3]*r) * l.Size.Y()
	return orb.Point{x + l.Origin.X(), y + l.Origin.Y()}
}

// WorldToHex returns the cell containing the world point.
func (l *Layout) WorldToHex(p orb.Point) Coord {
	px := (p.X() - l.Origin.X()) / l.Size.X()
	py := (p.Y() - l.Origin.Y()) / l.Size.Y()
	m := l.Orientation.Inverse
	q := m[0]*px + m[1]*py
	r := m[2]*px + m[3]*py
	return roundCube(q, -q-r, r)
}

// roundCube rounds fractional cube components, then rebuilds the component
// with the largest rounding error from the other two.
func roundCube(fx, fy, fz float64) Coord {
	rx, ry, rz := math.Round(fx), math.Round(fy), math.Round(fz)

	dx := math.Abs(rx - fx)
	dy := math.Abs(ry - fy)
	dz := math.Abs(rz - fz)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return Coord{x: int(rx), y: int(ry), z: int(rz)}
}

// CornerOffset returns the offset of corner i (0..5) from the cell center.
func (l *Layout) CornerOffset(corner int) orb.Point {
	angle := 2.0 * math.Pi * (l.Orientation.StartAngle + float64(corner)) / 6.0
	return orb.Point{l.Size.X() * math.Cos(angle), l.Size.Y() * math.Sin(angle)}
}

// Polygon returns the closed outline of the cell in world space.
func (l *Layout) Polygon(c Coord) orb.Ring {
	center := l.HexToWorld(c)
	ring := make(orb.Ring, 0, 7)
	for i := 0; i < 6; i++ {
		off := l.CornerOffset(i)
		ring = append(ring, orb.Point{center.X() + off.X(), center.Y() + off.Y()})
	}
	return append(ring, ring[0])
}

// RiverPolygon returns a closed quad lying along the side shared by two
// adjacent cells.
func (l *Layout) RiverPolygon(a, b Coord) (orb.Ring, error) {
	if a.DistanceTo(b) != 1 {
		return nil, apperrors.InvalidGeometryf("river sides %v and %v are not adjacent", a, b)
	}

	pa, pb := l.HexToWorld(a), l.HexToWorld(b)
	cx, cy := (pa.X()+pb.X())/2, (pa.Y()+pb.Y())/2
	hx, hy := (pa.X()-pb.X())/2, (pa.Y()-pb.Y())/2

	// Half-connector rotated a quarter turn, stretched back into layout proportions.
	ox := -hy * l.Size.X() / l.Size.Y()
	oy := hx * l.Size.Y() / l.Size.X()

	corner := func(orth, along float64) orb.Point {
		return orb.Point{
			cx + orth*ox/2 + along*hx,
			cy + orth*oy/2 + along*hy,
		}
	}
	ring := orb.Ring{
		corner(1.05, 0.1),
		corner(1.05, -0.1),
		corner(-1.05, -0.1),
		corner(-1.05, 0.1),
	}
	return append(ring, ring[0]), nil
}
