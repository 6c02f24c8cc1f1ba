package chunk

import (
	"sync"

	"github.com/brushforge/csgkernel"
	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/internal/config"
	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Config collects a Grid's spatial parameters alongside the evaluator
// tolerances EvaluateChunked hands to csgkernel.ProcessWithConfig for
// every chunk.
type Config struct {
	CellSize float64
	NumCells int
	Eval     config.Config
}

// EvaluateChunked buckets brushes into a Grid, runs
// csgkernel.ProcessWithConfig with cfg.Eval once per non-empty chunk (each chunk's brush subset keeps the brushes'
// original Order so chain semantics are preserved within the chunk), and
// clips every resulting fragment to that chunk's axis-aligned box. A
// brush assigned to multiple chunks is intentionally re-evaluated in
// each.
func EvaluateChunked(brushes []brush.Brush, cfg Config) []*polygon.Polygon {
	grid := NewGrid(cfg.CellSize, cfg.NumCells)
	byCell := grid.Chunks(brushes, cfg.Eval.EpsInside, cfg.Eval.EpsDeterminant)
	if len(byCell) == 0 {
		return nil
	}

	keys := make([]CellKey, 0, len(byCell))
	for k := range byCell {
		keys = append(keys, k)
	}

	chunkResults := make([][]*polygon.Polygon, len(keys))
	workers := cfg.Eval.Workers
	if workers < 1 {
		workers = 1
	}
	runSharded(workers, len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			key := keys[i]
			indices := byCell[key]

			sub := make([]brush.Brush, 0, len(indices))
			for _, idx := range indices {
				sub = append(sub, brushes[idx])
			}

			evaluated := csgkernel.ProcessWithConfig(sub, cfg.Eval)
			chunkResults[i] = clipToBox(evaluated, cellBoxPlanes(key, cfg.CellSize), cfg.Eval)
		}
	})

	var out []*polygon.Polygon
	for _, r := range chunkResults {
		out = append(out, r...)
	}
	return out
}

// runSharded is the same fixed-size worker pool pattern as the root
// package's shardOwners helper (chain.go, itself adapted from the
// teacher's rigid-body integration pipeline), duplicated here because
// EvaluateChunked shards chunk indices rather than owner-brush indices and
// the root helper is unexported.
func runSharded(workers, n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	chunkSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

func cellBoxPlanes(key CellKey, cellSize float64) []plane.Plane {
	minX, maxX := float64(key.X)*cellSize, float64(key.X+1)*cellSize
	minY, maxY := float64(key.Y)*cellSize, float64(key.Y+1)*cellSize
	minZ, maxZ := float64(key.Z)*cellSize, float64(key.Z+1)*cellSize
	return []plane.Plane{
		plane.FromPointNormal(mgl64.Vec3{maxX, 0, 0}, mgl64.Vec3{1, 0, 0}),
		plane.FromPointNormal(mgl64.Vec3{minX, 0, 0}, mgl64.Vec3{-1, 0, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, maxY, 0}, mgl64.Vec3{0, 1, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, minY, 0}, mgl64.Vec3{0, -1, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, 0, maxZ}, mgl64.Vec3{0, 0, 1}),
		plane.FromPointNormal(mgl64.Vec3{0, 0, minZ}, mgl64.Vec3{0, 0, -1}),
	}
}

// clipToBox splits every polygon against each outward-facing box plane,
// in turn, keeping only the interior (back) and coplanar fragments and
// discarding anything falling entirely outside.
func clipToBox(polys []*polygon.Polygon, boxPlanes []plane.Plane, cfg config.Config) []*polygon.Polygon {
	fragments := append([]*polygon.Polygon(nil), polys...)
	for _, bp := range boxPlanes {
		next := make([]*polygon.Polygon, 0, len(fragments))
		for _, f := range fragments {
			result := polygon.Split(f, bp, cfg.EpsPlane)
			for _, out := range []*polygon.Polygon{result.Back, result.CoplanarFront, result.CoplanarBack} {
				if out != nil && !out.IsDegenerate(cfg.EpsArea) {
					next = append(next, out)
				}
			}
		}
		fragments = next
		if len(fragments) == 0 {
			break
		}
	}
	return fragments
}
