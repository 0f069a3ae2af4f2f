// Package engine implements the Action Engine: the per-container state
// machine that carries a monitored container from Idle through a swap or
// in-place restart to a terminal Committed, RolledBack, or Failed outcome.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/lifecycle"
	"github.com/rcarmo/guerite/pkg/types"
)

// swapSuffixLength is the length of the random token appended to a
// container's rollback-artifact name, e.g. "web-guerite-old-a1b2c3d4".
const swapSuffixLength = 8

var (
	errPreflightMount     = errors.New("preflight: bind mount host path missing")
	errManualIntervention = errors.New("rollback failed, manual intervention required")
)

// Engine runs the action state machine for one container at a time,
// serializing attempts on the same name with a per-name mutex whose entries
// expire when a container no longer appears in an inventory snapshot.
type Engine struct {
	Client   types.Client
	Notifier types.Notifier
	Config   types.RunConfig

	namesMu sync.Mutex
	names   map[string]*sync.Mutex
}

// New returns an Engine bound to client, notifier (may be nil) and cfg.
func New(client types.Client, notifier types.Notifier, cfg types.RunConfig) *Engine {
	return &Engine{
		Client:   client,
		Notifier: notifier,
		Config:   cfg,
		names:    map[string]*sync.Mutex{},
	}
}

// PruneExpiredLocks drops per-name mutexes for containers no longer present
// in the current inventory, per the design note bounding the lock map's
// growth. Call it once per cycle after the inventory snapshot is built.
func (e *Engine) PruneExpiredLocks(live map[string]bool) {
	e.namesMu.Lock()
	defer e.namesMu.Unlock()

	for name := range e.names {
		if !live[name] {
			delete(e.names, name)
		}
	}
}

func (e *Engine) lockFor(name string) *sync.Mutex {
	e.namesMu.Lock()
	defer e.namesMu.Unlock()

	mu, ok := e.names[name]
	if !ok {
		mu = &sync.Mutex{}
		e.names[name] = mu
	}

	return mu
}

// Outcome reports one container's result for this cycle.
type Outcome struct {
	Container string
	State     types.State
	Err       error
	// NewImageID is the image id prepare() settled on before dispatch, set
	// whenever the engine got far enough to call prepare. Callers building
	// a cycle report use it to tell an update swap from a same-image
	// restart without re-deriving it themselves.
	NewImageID types.ImageID
}

// Run carries c through the state machine for action, skipping it when
// gated is true. The caller computes gated; Run itself tracks no other
// containers' outcomes, so a dependency that rolled back earlier this cycle
// gates c only if the caller folds that into gated. It returns the updated
// BackoffRecord to persist and the terminal Outcome.
func (e *Engine) Run(
	ctx context.Context,
	c types.Container,
	action types.ActionKind,
	gated bool,
	record types.BackoffRecord,
	now time.Time,
) (types.BackoffRecord, Outcome) {
	name := c.Name()
	mu := e.lockFor(name)
	mu.Lock()
	defer mu.Unlock()

	clog := logrus.WithFields(logrus.Fields{"container": name, "action": action.String()})

	if action == types.ActionNone {
		return record, Outcome{Container: name, State: types.StateIdle}
	}

	if gated {
		clog.Debug("Dependencies not ready, skipping this cycle")

		return record, Outcome{Container: name, State: types.StateIdle}
	}

	if eligible := record.NextEligible(action, e.Config.Cooldown); now.Before(eligible) {
		clog.WithField("eligible_at", eligible).Debug("Cooldown or backoff not yet elapsed, skipping")

		return record, Outcome{Container: name, State: types.StateIdle}
	}

	if action == types.ActionHealthRestart && !e.healthRestartEligible(c, record, now) {
		clog.Debug("Health restart not eligible this cycle")

		return record, Outcome{Container: name, State: types.StateIdle}
	}

	record.RecordAttempt(action, now)

	if e.Config.DryRun {
		clog.Info("Dry run: action would execute but no engine calls were made")

		return record, Outcome{Container: name, State: types.StateGuarded}
	}

	if lifecycle.Skip(ctx, e.Client, c, int(e.Config.HookTimeout.Seconds())) {
		clog.Info("Pre-check hook requested this action be skipped")

		return record, Outcome{Container: name, State: types.StateGuarded}
	}

	needsSwap, newImageID, err := e.prepare(ctx, c, action)
	if err != nil {
		record.RecordFailure(record.Rollback)
		e.notify(types.EventUpdateFailed, c, fmt.Sprintf("%s failed", action), err.Error())

		return record, Outcome{Container: name, State: types.StateFailed, Err: err}
	}

	if e.Config.MonitorOnly && action == types.ActionUpdate {
		if needsSwap {
			clog.Info("Monitor-only: new image detected, swap suppressed")
			e.notify(types.EventDetect, c, "Update available", "monitor-only mode, not applied")
		}

		return record, Outcome{Container: name, State: types.StateGuarded, NewImageID: newImageID}
	}

	if !needsSwap {
		return e.inPlaceRestart(ctx, c, action, record, now, newImageID)
	}

	return e.swap(ctx, c, action, record, now, newImageID)
}

// healthRestartEligible applies §4.7's start-grace warm-up window and rate
// limit on top of the generic cooldown/backoff check in Run.
func (e *Engine) healthRestartEligible(c types.Container, record types.BackoffRecord, now time.Time) bool {
	startedAt, ok := c.StartedAt()
	if ok && now.Sub(startedAt) < e.Config.StartGrace {
		return false
	}

	last, ok := record.LastActionAt[types.ActionHealthRestart]
	if !ok {
		return true
	}

	return now.Sub(last) >= e.Config.HealthCheckBackoff
}

// prepare runs the pull step (Update only) and computes needs_swap per
// §4.6's per-ActionKind rule.
func (e *Engine) prepare(ctx context.Context, c types.Container, action types.ActionKind) (bool, types.ImageID, error) {
	switch action {
	case types.ActionUpdate:
		if e.Config.NoPull {
			return false, c.ImageID(), nil
		}

		newID, err := e.Client.PullImage(ctx, c)
		if err != nil {
			return false, "", fmt.Errorf("pull failed: %w", err)
		}

		return newID != c.ImageID(), newID, nil
	case types.ActionRecreate, types.ActionHealthRestart:
		return true, c.ImageID(), nil
	default: // ActionRestart, ActionPrune (never reaches prepare)
		return false, c.ImageID(), nil
	}
}

// inPlaceRestart implements §4.6.a: stop (retrying once at double the
// timeout before a forced kill is left to the engine) then start, with no
// rename/create involved.
func (e *Engine) inPlaceRestart(
	ctx context.Context,
	c types.Container,
	action types.ActionKind,
	record types.BackoffRecord,
	now time.Time,
	newImageID types.ImageID,
) (types.BackoffRecord, Outcome) {
	name := c.Name()

	if e.Config.NoRestart {
		return record, Outcome{Container: name, State: types.StateGuarded, NewImageID: newImageID}
	}

	if err := e.stopWithRetry(ctx, c, e.Config.StopTimeout); err != nil {
		record.RecordFailure(record.Rollback)
		e.notify(types.EventRestart, c, "Restart failed", err.Error())

		return record, Outcome{Container: name, State: types.StateFailed, Err: err}
	}

	if err := e.Client.StartContainer(ctx, c.ID()); err != nil {
		record.RecordFailure(record.Rollback)
		e.notify(types.EventRestart, c, "Restart failed", err.Error())

		return record, Outcome{Container: name, State: types.StateFailed, Err: err}
	}

	record.RecordSuccess()

	if action == types.ActionHealthRestart {
		record.RecordAttempt(types.ActionHealthRestart, now)
	}

	e.notify(types.EventRestart, c, "Container restarted", "")

	return record, Outcome{Container: name, State: types.StateCommitted, NewImageID: newImageID}
}

// stopWithRetry stops c, retrying once at double the configured timeout if
// the first attempt returns any error; the engine client always
// force-kills once its own deadline elapses.
func (e *Engine) stopWithRetry(ctx context.Context, c types.Container, timeout time.Duration) error {
	err := e.Client.StopContainer(ctx, c, timeout)
	if err == nil {
		return nil
	}

	return e.Client.StopContainer(ctx, c, timeout*2)
}

// swap implements §4.6's Prepared→Swapping→Probing sequence: preflight,
// rename-old, create-new, pre-update hook, stop-old, rename-new, start-new,
// health probe, then commit or roll back.
func (e *Engine) swap(
	ctx context.Context,
	c types.Container,
	action types.ActionKind,
	record types.BackoffRecord,
	now time.Time,
	newImageID types.ImageID,
) (types.BackoffRecord, Outcome) {
	name := c.Name()

	if err := e.preflight(c); err != nil {
		e.notify(types.EventUpdateFailed, c, "Preflight failed", err.Error())

		return record, Outcome{Container: name, State: types.StateFailed, Err: err}
	}

	suffix := util.RandSuffix(swapSuffixLength)
	oldName := name + "-guerite-old-" + suffix
	newName := name + "-guerite-new-" + suffix

	oldID := c.ID()

	if err := e.Client.RenameContainer(ctx, oldID, oldName); err != nil {
		return e.rollbackFromRenameFailure(ctx, c, action, record, err)
	}

	newID, err := e.Client.CreateContainer(ctx, c, newName)
	if err != nil {
		return e.rollback(ctx, c, oldID, oldName, "", action, record, fmt.Errorf("create failed: %w", err))
	}

	lifecycle.Run(ctx, e.Client, c, types.HookPreUpdate, int(e.Config.HookTimeout.Seconds()))

	if err := e.stopWithRetry(ctx, c, e.Config.StopTimeout); err != nil {
		return e.rollback(ctx, c, oldID, oldName, newID, action, record, fmt.Errorf("stop old failed: %w", err))
	}

	if err := e.Client.RenameContainer(ctx, newID, name); err != nil {
		return e.rollback(ctx, c, oldID, oldName, newID, action, record, fmt.Errorf("rename new failed: %w", err))
	}

	if err := e.Client.StartContainer(ctx, newID); err != nil {
		return e.rollback(ctx, c, oldID, oldName, newID, action, record, fmt.Errorf("start new failed: %w", err))
	}

	if c.HasHealthCheck() {
		if err := e.Client.WaitForContainerHealthy(ctx, newID, e.Config.HealthCheckTimeout); err != nil {
			return e.rollback(ctx, c, oldID, oldName, newID, action, record, fmt.Errorf("health probe failed: %w", err))
		}
	}

	return e.commit(ctx, c, oldID, action, record, now, newImageID)
}

// preflight verifies every bind mount's host path still exists. Volume
// driver checks are not modeled: the Container interface's Mount type
// carries no driver field, so that half of §4.6's preflight step has no
// data to act on here.
func (e *Engine) preflight(c types.Container) error {
	for _, m := range c.Mounts() {
		if m.Source == "" {
			continue
		}

		if _, err := os.Stat(m.Source); err != nil {
			return fmt.Errorf("%w: %s", errPreflightMount, m.Source)
		}
	}

	return nil
}

// rollbackFromRenameFailure handles a failure before any new container was
// created: nothing to tear down but the rename itself.
func (e *Engine) rollbackFromRenameFailure(
	ctx context.Context,
	c types.Container,
	action types.ActionKind,
	record types.BackoffRecord,
	err error,
) (types.BackoffRecord, Outcome) {
	record.RecordFailure(nil)
	e.notify(failureCategory(action), c, fmt.Sprintf("%s failed", action.String()), err.Error())

	return record, Outcome{Container: c.Name(), State: types.StateFailed, Err: err}
}

// rollback restores the original container under its original name after a
// failure partway through Swapping or Probing: stop/remove the new
// container if it exists, rename old back, start it.
func (e *Engine) rollback(
	ctx context.Context,
	c types.Container,
	oldID types.ContainerID,
	oldName string,
	newID types.ContainerID,
	action types.ActionKind,
	record types.BackoffRecord,
	cause error,
) (types.BackoffRecord, Outcome) {
	clog := logrus.WithFields(logrus.Fields{"container": c.Name(), "action": action.String()})
	clog.WithError(cause).Warn("Rolling back failed swap")

	if newID != "" {
		if newContainer, err := e.Client.GetContainer(ctx, newID); err == nil && newContainer != nil {
			_ = e.Client.StopContainer(ctx, newContainer, e.Config.StopTimeout)
		}

		if err := e.Client.RemoveContainer(ctx, newID, true); err != nil {
			clog.WithError(err).Debug("Failed to remove new container during rollback")
		}
	}

	if err := e.Client.RenameContainer(ctx, oldID, c.Name()); err != nil {
		record.RecordFailure(&types.RollbackArtifact{OldName: oldName, OldImageID: c.ImageID(), CreatedAt: time.Now()})
		e.notify(types.EventRollback, c, "Manual intervention required", fmt.Errorf("%w: %w", errManualIntervention, err).Error())

		return record, Outcome{Container: c.Name(), State: types.StateFailed, Err: errManualIntervention}
	}

	if err := e.Client.StartContainer(ctx, oldID); err != nil {
		record.RecordFailure(&types.RollbackArtifact{OldName: oldName, OldImageID: c.ImageID(), CreatedAt: time.Now()})
		e.notify(types.EventRollback, c, "Manual intervention required", err.Error())

		return record, Outcome{Container: c.Name(), State: types.StateFailed, Err: err}
	}

	artifact := &types.RollbackArtifact{OldName: oldName, OldImageID: c.ImageID(), CreatedAt: time.Now()}
	record.RecordFailure(artifact)
	e.notify(failureCategory(action), c, fmt.Sprintf("%s failed, rolled back", action.String()), cause.Error())

	return record, Outcome{Container: c.Name(), State: types.StateRolledBack, Err: cause}
}

// commit finalizes a successful swap: remove the old container, run the
// post-update hook, and clear the failure streak. The prior image itself is
// not removed here: the Engine Client exposes no single-image removal call,
// so reclaiming it is left to the next pruning cycle (§4.8).
func (e *Engine) commit(
	ctx context.Context,
	c types.Container,
	oldID types.ContainerID,
	action types.ActionKind,
	record types.BackoffRecord,
	now time.Time,
	newImageID types.ImageID,
) (types.BackoffRecord, Outcome) {
	if err := e.Client.RemoveContainer(ctx, oldID, true); err != nil {
		logrus.WithError(err).WithField("container", c.Name()).Warn("Failed to remove prior container after commit")
	}

	lifecycle.Run(ctx, e.Client, c, types.HookPostUpdate, int(e.Config.HookTimeout.Seconds()))

	record.RecordSuccess()

	if action == types.ActionHealthRestart {
		record.RecordAttempt(types.ActionHealthRestart, now)
	}

	e.notify(successCategory(action), c, fmt.Sprintf("%s succeeded", action.String()), "")

	return record, Outcome{Container: c.Name(), State: types.StateCommitted, NewImageID: newImageID}
}

func successCategory(action types.ActionKind) types.EventCategory {
	switch action {
	case types.ActionRecreate:
		return types.EventRecreateSucceeded
	case types.ActionHealthRestart:
		return types.EventHealthRestart
	default:
		return types.EventUpdateSucceeded
	}
}

func failureCategory(action types.ActionKind) types.EventCategory {
	switch action {
	case types.ActionRecreate:
		return types.EventRecreateFailed
	case types.ActionHealthRestart:
		return types.EventHealthRestart
	default:
		return types.EventUpdateFailed
	}
}

func (e *Engine) notify(category types.EventCategory, c types.Container, title, message string) {
	if e.Notifier == nil {
		return
	}

	e.Notifier.SendNotification(types.Event{
		Category:  category,
		Title:     title,
		Message:   message,
		Container: c.Name(),
		Occurred:  time.Now(),
	})
}
