// Package report implements types.Report and types.ContainerReport,
// accumulating one cycle's container outcomes from the Action Engine into
// the scanned/updated/restarted/failed/skipped/stale/fresh categories that
// pkg/metrics and internal/notify consume at the end of each tick.
//
// It is grounded on the teacher's pkg/session report, categorizing by
// engine.Outcome state and dispatched action instead of a standing
// Progress map, since the Action Engine already resolves one outcome per
// container per cycle rather than tracking an in-flight session.
package report
