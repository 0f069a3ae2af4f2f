package types

import "time"

// RunConfig aggregates the environment- and flag-derived settings that drive
// one invocation of Guerite, mirroring the way the teacher's cobra command
// collected everything needed for a run into a single struct before handing
// it to the scheduler and API setup.
type RunConfig struct {
	// Filter determines which containers Inventory considers monitored.
	Filter Filter
	// FilterDesc is a human-readable description of Filter, used in logs and the startup message.
	FilterDesc string
	// Scope restricts monitoring to containers carrying a matching guerite.scope label.
	Scope string
	// TickInterval is how often the control loop evaluates cron expressions.
	TickInterval time.Duration
	// PruneCron is the cron expression for the prune action.
	PruneCron string
	// Cooldown is the minimum spacing between actions on the same container.
	Cooldown time.Duration
	// StopTimeout is the default container stop grace period before a force-kill.
	StopTimeout time.Duration
	// HealthCheckTimeout bounds how long the probing phase waits for a container to report healthy.
	HealthCheckTimeout time.Duration
	// HealthCheckBackoff is the minimum spacing between health-triggered restarts on the same container.
	HealthCheckBackoff time.Duration
	// StartGrace is how long a container must have been running before a health restart considers it.
	StartGrace time.Duration
	// RestartRetryLimit caps consecutive failures recorded before backoff saturates.
	RestartRetryLimit int
	// RollbackGrace is the age below which a rollback artifact blocks pruning.
	RollbackGrace time.Duration
	// PruneTimeout bounds the prune operation.
	PruneTimeout time.Duration
	// HookTimeout is the default lifecycle hook timeout, overridable per-hook by label.
	HookTimeout time.Duration
	// WorkerPoolSize bounds concurrent project groups.
	WorkerPoolSize int
	// DryRun runs the full decision pipeline without mutating the engine.
	DryRun bool
	// MonitorOnly forces every update to detect-without-replace.
	MonitorOnly bool
	// NoPull suppresses the pull step of every update.
	NoPull bool
	// NoRestart suppresses every stop/start performed by the action engine.
	NoRestart bool
	// RollingRestart caps update/recreate to one container per project group per cycle.
	RollingRestart bool
	// RunOnce performs a single cycle and exits, rather than looping on TickInterval.
	RunOnce bool
	// RegistryStalenessProbe enables a cheap HEAD/digest pre-check before a full pull.
	RegistryStalenessProbe bool
	// StateFile is the path to the persisted backoff state document.
	StateFile string
	// TimeZone is the zone the cron evaluator resolves expressions in.
	TimeZone string
	// HTTPAPI enables the control-surface HTTP listener.
	HTTPAPI bool
	// HTTPAPIHost/HTTPAPIPort/HTTPAPIToken configure the listener.
	HTTPAPIHost  string
	HTTPAPIPort  string
	HTTPAPIToken string
	// HTTPAPIMetrics enables GET /v1/metrics.
	HTTPAPIMetrics bool
	// Notifications lists the enabled notification categories.
	Notifications []string
}
