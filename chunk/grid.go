// Package chunk buckets brushes into a uniform spatial grid and evaluates
// each bucket independently, adapted from the teacher's SpatialGrid
// broad-phase collision structure (spatialgrid.go) to bucket brush AABBs
// instead of rigid-body AABBs.
package chunk

import (
	"math"

	"github.com/brushforge/csgkernel/brush"
)

// CellKey is a cell's integer grid coordinate, exactly the teacher's
// CellKey.
type CellKey struct {
	X, Y, Z int
}

type cell struct {
	brushIndices []int
}

// Grid is a uniform spatial grid with a power-of-two cell count and a
// hashed CellKey to index mapping, mirroring feather.SpatialGrid's
// cellSize/cells/cellMask structure.
type Grid struct {
	cellSize float64
	cells    []cell
	cellMask int
}

// NewGrid builds a Grid with the given cell size, rounding numCells up to
// the next power of two.
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)
	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].brushIndices = make([]int, 0, 8)
	}
	return &Grid{cellSize: cellSize, cells: cells, cellMask: numCells - 1}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (g *Grid) worldToCell(pos [3]float64) CellKey {
	return CellKey{
		X: int(math.Floor(pos[0] / g.cellSize)),
		Y: int(math.Floor(pos[1] / g.cellSize)),
		Z: int(math.Floor(pos[2] / g.cellSize)),
	}
}

func (g *Grid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}

// Chunks groups brush indices by every cell their AABB overlaps: a brush
// straddling a chunk boundary is returned in every chunk it touches.
// epsInside and epsDeterminant are forwarded to brush.ComputeAABB.
func (g *Grid) Chunks(brushes []brush.Brush, epsInside, epsDeterminant float64) map[CellKey][]int {
	result := make(map[CellKey][]int)
	for idx := range g.cells {
		g.cells[idx].brushIndices = g.cells[idx].brushIndices[:0]
	}

	for i, b := range brushes {
		aabb := brush.ComputeAABB(b.WorldPlanes, epsInside, epsDeterminant)
		minCell := g.worldToCell([3]float64{aabb.Min.X(), aabb.Min.Y(), aabb.Min.Z()})
		maxCell := g.worldToCell([3]float64{aabb.Max.X(), aabb.Max.Y(), aabb.Max.Z()})

		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					key := CellKey{x, y, z}
					result[key] = append(result[key], i)
				}
			}
		}
	}
	return result
}
