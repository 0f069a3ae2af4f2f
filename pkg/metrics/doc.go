// Package metrics provides tracking and exposure of Guerite cycle metrics.
// It integrates with Prometheus to monitor action-cycle outcomes.
//
// Key components:
//   - Metrics: Handles metric queuing and updates.
//   - NewMetric: Creates metrics from scan reports.
//
// Usage example:
//
//	m := metrics.Default()
//	m.RegisterScan(metrics.NewMetric(report))
//	if !m.QueueIsEmpty() {
//	    logrus.Info("Metrics queued")
//	}
//
// The package uses Prometheus for metrics exposure and integrates with types.Report.
package metrics
