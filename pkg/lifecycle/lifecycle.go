// Package lifecycle runs a container's lifecycle hook commands through the
// Engine Client's exec facility at the four fixed points the action engine
// invokes: pre-check, pre-update, post-update, post-check.
package lifecycle

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/pkg/types"
)

// defaultTimeout is applied when a container declares a hook command but no
// override timeout, per §6's GUERITE_HOOK_TIMEOUT_SECONDS default.
const defaultTimeout = 60

// Run executes container's hook command for point, if one is configured.
// A non-zero exit or timeout is logged but never returned as an error: per
// §4.9, a hook failure is logged and the calling action continues.
func Run(ctx context.Context, client types.Client, container types.Container, point types.HookPoint, defaultHookTimeout int) {
	command := container.GetLifecycleCommand(point)
	if command == "" {
		return
	}

	clog := logrus.WithFields(logrus.Fields{
		"container": container.Name(),
		"point":     point.String(),
	})

	timeout, ok := container.GetLifecycleTimeout(point)
	if !ok {
		timeout = resolveDefault(defaultHookTimeout)
	}

	uid, _ := container.GetLifecycleUID()
	gid, _ := container.GetLifecycleGID()

	clog.WithField("command", command).Debug("Executing lifecycle hook")

	skip, err := client.ExecuteCommand(ctx, container, command, timeout, uid, gid)
	if err != nil {
		clog.WithError(err).Warn("Lifecycle hook failed")

		return
	}

	if skip {
		clog.Debug("Lifecycle hook requested the action be skipped")
	}
}

// Skip runs the pre-check hook and reports whether it requested the action
// be skipped (engine exec convention: exit code 75), distinct from Run's
// fire-and-forget use at the other three points.
func Skip(ctx context.Context, client types.Client, container types.Container, defaultHookTimeout int) bool {
	command := container.GetLifecycleCommand(types.HookPreCheck)
	if command == "" {
		return false
	}

	timeout, ok := container.GetLifecycleTimeout(types.HookPreCheck)
	if !ok {
		timeout = resolveDefault(defaultHookTimeout)
	}

	uid, _ := container.GetLifecycleUID()
	gid, _ := container.GetLifecycleGID()

	skip, err := client.ExecuteCommand(ctx, container, command, timeout, uid, gid)
	if err != nil {
		logrus.WithError(err).WithField("container", container.Name()).Warn("Pre-check hook failed")

		return false
	}

	return skip
}

// resolveDefault converts a configured default hook timeout in seconds to a
// Duration, falling back to defaultTimeout when unset.
func resolveDefault(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = defaultTimeout
	}

	return time.Duration(seconds) * time.Second
}
