// Package csgkernel evaluates an ordered chain of convex brushes into the
// triangulatable polygonal surface of their boolean expression, per
// spec.md §4.5. It is the entry point collaborator packages plane,
// polygon, brush and relation exist to feed.
package csgkernel

import (
	"sync"

	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/internal/config"
	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/brushforge/csgkernel/relation"
)

// Process evaluates brushes (already ordered by chain order, brushes[i]
// preceding brushes[j] in the chain whenever i < j) with the default
// tolerance set. See ProcessWithConfig.
func Process(brushes []brush.Brush) []*polygon.Polygon {
	return ProcessWithConfig(brushes, config.Default())
}

// ProcessWithConfig implements spec.md §4.5 steps 1-4. An empty chain
// produces no surface. A single brush is emitted whole (Additive) or
// discarded entirely (Subtractive/Intersect against nothing existing
// cannot make anything solid); both are short-circuits of the general
// case below, not special rules.
func ProcessWithConfig(brushes []brush.Brush, cfg config.Config) []*polygon.Polygon {
	n := len(brushes)
	if n == 0 {
		return nil
	}
	if n == 1 {
		if brushes[0].Operation == brush.Additive {
			return clonePolygons(brushes[0].FacePolygons)
		}
		return nil
	}

	overlap := buildOverlapMatrix(brushes, cfg)

	owned := make([][]*polygon.Polygon, n)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	shardOwners(workers, n, func(start, end int) {
		for o := start; o < end; o++ {
			owned[o] = evaluateOwner(o, brushes, overlap, cfg)
		}
	})

	var result []*polygon.Polygon
	for _, fragments := range owned {
		result = append(result, fragments...)
	}
	return result
}

// shardOwners splits [0, n) into workers contiguous ranges and runs fn over
// each range on its own goroutine, blocking until all finish. Adapted from
// the engine's rigid-body integration pipeline, which sharded the body
// array the same way; here it shards the owner-brush index range so each
// owner's fragment splitting and categorisation (an independent, read-only
// pass over the brush list) runs in parallel. Trailing ranges left empty by
// workers > n are skipped rather than spawned.
func shardOwners(workers, n int, fn func(start, end int)) {
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

func clonePolygons(faces []*polygon.Polygon) []*polygon.Polygon {
	out := make([]*polygon.Polygon, len(faces))
	for i, f := range faces {
		out[i] = f.Clone()
	}
	return out
}

// buildOverlapMatrix computes the symmetric pairwise overlap test of
// spec.md §4.5 step 2 once per brush pair, since relation.Overlaps is
// O(plane count x vertex count) and every owner's splitting-plane list
// draws from the same N-1 candidate brushes.
func buildOverlapMatrix(brushes []brush.Brush, cfg config.Config) [][]bool {
	n := len(brushes)
	matrix := make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			overlaps := relation.Overlaps(brushes[i].WorldPlanes, brushes[j].WorldPlanes, cfg.EpsPlane, cfg.EpsInside, cfg.EpsDeterminant)
			matrix[i][j] = overlaps
			matrix[j][i] = overlaps
		}
	}
	return matrix
}

// evaluateOwner runs spec.md §4.5 step 3 for a single owner brush: split
// every owned face against every overlapping brush's planes, classify each
// surviving fragment against every other brush, resolve the coplanar
// tiebreaker, evaluate the two-sided boolean chain, and keep, flip or
// discard the fragment accordingly.
func evaluateOwner(o int, brushes []brush.Brush, overlap [][]bool, cfg config.Config) []*polygon.Polygon {
	owner := brushes[o]
	if len(owner.FacePolygons) == 0 {
		return nil
	}

	var splittingPlanes []plane.Plane
	for j := range brushes {
		if j == o || !overlap[o][j] {
			continue
		}
		splittingPlanes = append(splittingPlanes, brushes[j].WorldPlanes...)
	}

	var kept []*polygon.Polygon
	for _, face := range owner.FacePolygons {
		fragments := polygon.SplitAll(face, splittingPlanes, cfg.EpsPlane, cfg.EpsArea)
		for _, fragment := range fragments {
			if g := evaluateFragment(o, fragment, brushes, overlap[o], cfg); g != nil {
				kept = append(kept, g)
			}
		}
	}
	return kept
}

// evaluateFragment classifies fragment against every other brush, resolves
// the coplanar tiebreaker, and returns the polygon to emit (possibly
// flipped) or nil to discard it.
func evaluateFragment(o int, fragment *polygon.Polygon, brushes []brush.Brush, ownerOverlap []bool, cfg config.Config) *polygon.Polygon {
	categories := make([]relation.Category, len(brushes))
	for j := range brushes {
		if j == o {
			continue
		}
		if !ownerOverlap[j] {
			categories[j] = relation.Outside
			continue
		}
		cat := relation.CategorizePolygon(fragment, brushes[j].WorldPlanes, cfg.EpsPlane)
		categories[j] = cat
		// A later brush in the chain coplanar with this fragment wins the
		// tie: this fragment belongs to that brush's face instead and must
		// not be emitted from the owner's pass.
		if j > o && (cat == relation.Aligned || cat == relation.ReverseAligned) {
			return nil
		}
	}

	frontSolid, backSolid := evaluateTwoSidedChain(o, categories, brushes)
	switch {
	case !frontSolid && backSolid:
		return fragment
	case frontSolid && !backSolid:
		return fragment.Flip()
	default:
		return nil
	}
}

// evaluateTwoSidedChain folds the boolean operation of every brush in
// chain order into a running (frontSolid, backSolid) pair, per spec.md
// §4.5 steps f-g. The owner itself always contributes (false, true): its
// own face fragment is never inside the owner, by construction, and always
// lies on it.
func evaluateTwoSidedChain(o int, categories []relation.Category, brushes []brush.Brush) (frontSolid, backSolid bool) {
	for k := range brushes {
		var frontInside, backInside bool
		if k == o {
			frontInside, backInside = false, true
		} else {
			frontInside, backInside = categoryBits(categories[k])
		}

		switch brushes[k].Operation {
		case brush.Additive:
			frontSolid = frontSolid || frontInside
			backSolid = backSolid || backInside
		case brush.Subtractive:
			frontSolid = frontSolid && !frontInside
			backSolid = backSolid && !backInside
		case brush.Intersect:
			frontSolid = frontSolid && frontInside
			backSolid = backSolid && backInside
		}
	}
	return frontSolid, backSolid
}
