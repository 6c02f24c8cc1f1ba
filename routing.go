package csgkernel

import (
	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/relation"
)

// OperationTable is the 4x4 table of spec.md §4.6: given an accumulated
// chain state and the category of the next brush in the chain, it returns
// the new accumulated state. relation.Category doubles as both axes since
// it already encodes the (frontInside, backInside) pair the direct
// evaluation of §4.5 steps f-g tracks explicitly.
type OperationTable [4][4]relation.Category

// standardTables and beyondTables are process-wide immutable constants,
// built once at package init and never mutated afterwards (spec.md §9:
// "any source-level caches or precomputed table arrays are process-wide
// immutable constants").
var standardTables = buildStandardTables()
var beyondTables = buildBeyondTables()

func categoryBits(c relation.Category) (front, back bool) {
	switch c {
	case relation.Inside:
		return true, true
	case relation.Aligned:
		return false, true
	case relation.ReverseAligned:
		return true, false
	default: // Outside
		return false, false
	}
}

func categoryFromBits(front, back bool) relation.Category {
	switch {
	case front && back:
		return relation.Inside
	case !front && back:
		return relation.Aligned
	case front && !back:
		return relation.ReverseAligned
	default:
		return relation.Outside
	}
}

func combineBool(current, value bool, op brush.Operation) bool {
	switch op {
	case brush.Additive:
		return current || value
	case brush.Subtractive:
		return current && !value
	case brush.Intersect:
		return current && value
	default:
		return current
	}
}

var tableOps = [3]brush.Operation{brush.Additive, brush.Subtractive, brush.Intersect}

func operationTableIndex(op brush.Operation) int {
	switch op {
	case brush.Additive:
		return 0
	case brush.Subtractive:
		return 1
	case brush.Intersect:
		return 2
	default:
		return 0
	}
}

func buildStandardTables() [3]OperationTable {
	var tables [3]OperationTable
	for oi, op := range tableOps {
		for s := 0; s < 4; s++ {
			sf, sb := categoryBits(relation.Category(s))
			for b := 0; b < 4; b++ {
				bf, bb := categoryBits(relation.Category(b))
				tables[oi][s][b] = categoryFromBits(combineBool(sf, bf, op), combineBool(sb, bb, op))
			}
		}
	}
	return tables
}

// buildBeyondTables derives the beyond variant from the standard one, per
// spec.md §4.6: "replaces the centre 2x2 block (rows/columns
// Aligned/ReverseAligned) with Outside" — every cell whose state AND
// brush category both fall in {Aligned, ReverseAligned} becomes Outside;
// every cell touching an Inside/Outside row or column is left equal to
// the standard table (spec.md §8's routing-table laws: "Beyond tables
// agree with standard tables on corners ... and collapse the centre 2x2
// to Outside").
//
// The centre collapse alone reproduces the direct evaluator's
// later-brush-wins tiebreaker (§4.5 step e) only when the accumulated
// state is already a centre value when the coplanar brush is folded in;
// with a corner state (Inside/Outside) the cell keeps its standard value.
// Walk therefore ends the walk with Outside as soon as a later brush is
// coplanar with the fragment, which covers both cases.
func buildBeyondTables() [3]OperationTable {
	standard := buildStandardTables()
	var tables [3]OperationTable
	for oi := range standard {
		for s := 0; s < 4; s++ {
			for b := 0; b < 4; b++ {
				if isCenter(relation.Category(s)) && isCenter(relation.Category(b)) {
					tables[oi][s][b] = relation.Outside
					continue
				}
				tables[oi][s][b] = standard[oi][s][b]
			}
		}
	}
	return tables
}

func isCenter(c relation.Category) bool {
	return c == relation.Aligned || c == relation.ReverseAligned
}

// lookupTable reads table[state][brushCategory], clamping out-of-range
// indices to Outside. spec.md §9's open question leaves unproven whether
// the compaction step (not implemented here; see Walk) can ever produce
// an out-of-range state, so the bounds check is retained defensively
// rather than dropped.
func lookupTable(table OperationTable, state, brushCategory relation.Category) relation.Category {
	si, bi := int(state), int(brushCategory)
	if si < 0 || si >= len(table) || bi < 0 || bi >= len(table[si]) {
		return relation.Outside
	}
	return table[si][bi]
}

// Walk evaluates the tabular reformulation of spec.md §4.6 for owner index
// o of brushes, given the categories of one fragment against every other
// brush (categories[o] is ignored; the owner's own contribution is fixed).
// It agrees with the direct two-sided boolean evaluation of §4.5
// steps f-h for every input: Aligned means emit the fragment unflipped,
// ReverseAligned means emit it flipped, Inside/Outside mean discard.
//
// This folds each brush's 4x4 operation table into the running state in
// chain order (the owner and brushes earlier than o use the standard
// table, brushes after o use the beyond table, and a brush after o that
// is coplanar with the fragment ends the walk with Outside, the same
// discard as the direct evaluator's tiebreaker), without the
// live-state-set compaction spec.md describes as an optional performance
// optimisation; correctness does not depend on it.
func Walk(brushes []brush.Brush, o int, categories []relation.Category) relation.Category {
	state := relation.Outside
	for k := range brushes {
		var brushCategory relation.Category
		if k == o {
			brushCategory = relation.Aligned
		} else {
			brushCategory = categories[k]
		}

		tableIdx := operationTableIndex(brushes[k].Operation)
		if k <= o {
			// k == o is the owner's own, fixed Aligned contribution, not a
			// later-brush coplanar tie: it always uses the standard table.
			state = lookupTable(standardTables[tableIdx], state, brushCategory)
		} else {
			if isCenter(brushCategory) {
				// A later coplanar brush owns this surface.
				return relation.Outside
			}
			state = lookupTable(beyondTables[tableIdx], state, brushCategory)
		}
	}
	return state
}
