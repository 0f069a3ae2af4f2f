package types

import "time"

// BackoffRecord is the State Store's per-container persisted bookkeeping:
// the last time each action kind ran, how many times it has failed in a
// row, and the artifact left behind by the most recent rollback. It is
// the only state Guerite carries across restarts.
type BackoffRecord struct {
	// LastActionAt records the most recent attempt timestamp per action kind.
	LastActionAt map[ActionKind]time.Time `yaml:"last_action_at"`
	// ConsecutiveFailures counts unbroken failures since the last success,
	// driving the exponential backoff applied before the next attempt.
	ConsecutiveFailures int `yaml:"consecutive_failures"`
	// Rollback holds the artifact of the most recent rollback, if the
	// container is currently running on its rolled-back image.
	Rollback *RollbackArtifact `yaml:"rollback,omitempty"`
}

// NextEligible returns the earliest time an action of kind may next run,
// given the exponential backoff implied by ConsecutiveFailures. base is
// the configured cooldown; backoff doubles per consecutive failure and
// caps at 32x base.
func (b BackoffRecord) NextEligible(kind ActionKind, base time.Duration) time.Time {
	last, ok := b.LastActionAt[kind]
	if !ok {
		return time.Time{}
	}

	mult := 1
	for i := 0; i < b.ConsecutiveFailures && mult < 32; i++ {
		mult *= 2
	}

	return last.Add(base * time.Duration(mult))
}

// RecordAttempt stamps kind's last-attempt time, the cooldown gate's only
// input. Call it whenever the action engine begins an attempt, regardless
// of its eventual outcome.
func (b *BackoffRecord) RecordAttempt(kind ActionKind, now time.Time) {
	if b.LastActionAt == nil {
		b.LastActionAt = map[ActionKind]time.Time{}
	}

	b.LastActionAt[kind] = now
}

// RecordSuccess clears the failure streak and any rollback artifact after
// a commit, per the data model's invariant that success resets backoff.
func (b *BackoffRecord) RecordSuccess() {
	b.ConsecutiveFailures = 0
	b.Rollback = nil
}

// RecordFailure extends the failure streak after a rollback and remembers
// the artifact left behind, so later pruning and eligibility checks can
// account for it.
func (b *BackoffRecord) RecordFailure(artifact *RollbackArtifact) {
	b.ConsecutiveFailures++
	b.Rollback = artifact
}

// RollbackArtifact is left behind when the action engine rolls a swap back:
// the prior container's renamed identity and image, kept until RollbackGrace
// elapses so the Prune action does not reclaim the only known-good image.
type RollbackArtifact struct {
	// OldName is the renamed prior container, e.g. "web-guerite-old-a1b2c3".
	OldName string `yaml:"old_name"`
	// OldImageID is the image the prior container ran, protected from pruning.
	OldImageID ImageID `yaml:"old_image_id"`
	// CreatedAt is when the rollback completed.
	CreatedAt time.Time `yaml:"created_at"`
}

// DetectBatch accumulates newly observed container names within a single
// coalescing window so the Notification Dispatcher emits at most one
// "detect" event per minute instead of one per container.
type DetectBatch struct {
	Names     []string
	WindowEnd time.Time
}
