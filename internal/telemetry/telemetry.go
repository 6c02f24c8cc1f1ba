// Package telemetry provides the evaluator's structured logging and the
// optional diagnostic counters spec.md §7 allows ("fragments discarded,
// degenerates rejected, construction failures ... not part of the
// contract"). Grounded on this corpus's zap manifest
// (avatar29A-midgard-ro/go.mod): a single *zap.Logger built once at
// startup and threaded explicitly, never a package-level global.
package telemetry

import "go.uber.org/zap"

// NewLogger builds a production zap logger for the CLI driver. Callers
// must defer Sync() on the returned logger.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// Counters tallies the optional diagnostics spec.md §7 names. It is not
// consulted by csgkernel.Process itself (the core stays a pure function
// of its input); cmd/csgproc increments ConstructionErrors for each scene
// brush it fails to build and logs the totals after evaluation. Nothing in
// this module increments FragmentsDiscarded or DegeneratesRejected, so
// they are logged as zero.
type Counters struct {
	FragmentsDiscarded  int
	DegeneratesRejected int
	ConstructionErrors  int
}

// LogSummary writes the accumulated counters as a single structured log
// line.
func (c Counters) LogSummary(logger *zap.Logger) {
	logger.Info("evaluation summary",
		zap.Int("fragments_discarded", c.FragmentsDiscarded),
		zap.Int("degenerates_rejected", c.DegeneratesRejected),
		zap.Int("construction_errors", c.ConstructionErrors),
	)
}
