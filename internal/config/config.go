// Package config holds the evaluator's tunable tolerances and concurrency
// knob in one place, mirroring the engine's convention of a single settings
// struct threaded into the world/physics entry points rather than scattered
// package-level constants.
package config

import "github.com/brushforge/csgkernel/plane"

// Config collects the epsilons and worker count spec.md §9 calls out as
// implementation-defined. Every field has a conservative default via
// Default; callers that need tighter or looser tolerances build their own.
type Config struct {
	// EpsPlane is the plane-distance tolerance used for clipping and
	// categorisation (spec.md's eps).
	EpsPlane float64
	// EpsInside is the tolerance used when accepting a candidate vertex
	// during brush construction (spec.md's eps_inside).
	EpsInside float64
	// EpsArea is the minimum polygon area below which a fragment is
	// discarded as degenerate (spec.md's eps_area).
	EpsArea float64
	// EpsDeterminant is the minimum determinant magnitude accepted when
	// intersecting three planes during brush construction.
	EpsDeterminant float64
	// Workers is the number of goroutines the chain evaluator shards the
	// owner-brush loop across. Values less than 1 are treated as 1.
	Workers int
}

// Default returns the tolerance set documented in spec.md §1: plane
// boundary 1e-5, inside acceptance 1e-4, minimum area 1e-6, triple-plane
// determinant 1e-10, evaluated single-threaded.
func Default() Config {
	return Config{
		EpsPlane:       plane.Epsilon,
		EpsInside:      1e-4,
		EpsArea:        1e-6,
		EpsDeterminant: plane.DeterminantEpsilon,
		Workers:        1,
	}
}
