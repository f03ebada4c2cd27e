// Package hex provides cube-coordinate arithmetic for the battlefield grid and
// the geometry converting cells to and from world points.
// Follows the conventions of https://www.redblobgames.com/grids/hexagons/.
package hex

import (
	"fmt"

	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Coord is a cell address in cube coordinates. X+Y+Z is always zero.
// The axial form (q, r) maps to X = q, Z = r.
type Coord struct {
	x, y, z int
}

// NewCube builds a coordinate from its three cube components.
func NewCube(x, y, z int) (Coord, error) {
	if x+y+z != 0 {
		return Coord{}, apperrors.InvalidGeometryf("cube coordinate (%d, %d, %d) does not sum to zero", x, y, z)
	}
	return Coord{x: x, y: y, z: z}, nil
}

// Axial builds a coordinate from axial (q, r); the cube constraint holds by construction.
func Axial(q, r int) Coord {
	return Coord{x: q, y: -q - r, z: r}
}

// Origin returns the (0, 0, 0) cell.
func Origin() Coord {
	return Coord{}
}

func (c Coord) X() int { return c.x }
func (c Coord) Y() int { return c.y }
func (c Coord) Z() int { return c.z }

// Q returns the axial column.
func (c Coord) Q() int { return c.x }

// R returns the axial row.
func (c Coord) R() int { return c.z }

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{x: c.x + o.x, y: c.y + o.y, z: c.z + o.z}
}

// Sub returns the component-wise difference.
func (c Coord) Sub(o Coord) Coord {
	return Coord{x: c.x - o.x, y: c.y - o.y, z: c.z - o.z}
}

// Neg mirrors the coordinate through the origin.
func (c Coord) Neg() Coord {
	return Coord{x: -c.x, y: -c.y, z: -c.z}
}

// Directions holds the six unit vectors, numbered 0 through 5.
var Directions = [6]Coord{
	{x: 1, y: -1, z: 0},
	{x: 1, y: 0, z: -1},
	{x: 0, y: 1, z: -1},
	{x: -1, y: 1, z: 0},
	{x: -1, y: 0, z: 1},
	{x: 0, y: -1, z: 1},
}

// Neighbor returns the adjacent cell in the given direction.
// Directions outside 0..5 are rejected rather than wrapped.
func (c Coord) Neighbor(direction int) (Coord, error) {
	if direction < 0 || direction >= len(Directions) {
		return Coord{}, apperrors.InvalidGeometryf("direction %d out of range 0..5", direction)
	}
	return c.Add(Directions[direction]), nil
}

// Neighbors returns the six adjacent coordinates in direction order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// DistanceTo returns the number of steps between two cells.
func (c Coord) DistanceTo(o Coord) int {
	return (abs(c.x-o.x) + abs(c.y-o.y) + abs(c.z-o.z)) / 2
}

// String formats the coordinate in axial form.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Q(), c.R())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
