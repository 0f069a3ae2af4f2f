// Package container provides functionality for managing containers within Guerite.
// This file contains methods and helpers for accessing and interpreting container metadata,
// focusing on the guerite.* labels that configure per-container behavior and lifecycle hooks.
// These methods operate on the Container type defined in container.go.
package container

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/compose"
	"github.com/rcarmo/guerite/pkg/types"
)

// guerite.* labels identify monitored containers and their configuration.
const (
	// signalLabel specifies a custom stop signal for the container (e.g., "SIGTERM").
	signalLabel = "guerite.stop-signal"
	// enableLabel indicates whether Guerite should manage this container (true/false).
	enableLabel = "guerite.enable"
	// monitorOnlyLabel flags the container for monitoring only, without swapping (true/false).
	monitorOnlyLabel = "guerite.monitor-only"
	// noPullLabel prevents Guerite from pulling a new image for this container (true/false).
	noPullLabel = "guerite.no-pull"
	// noRestartLabel prevents Guerite from stopping/starting this container (true/false).
	noRestartLabel = "guerite.no-restart"
	// dependsOnLabel lists container names this container depends on, comma-separated.
	dependsOnLabel = "guerite.depends-on"
	// projectLabel groups containers for dependency ordering and rolling-restart fairness.
	projectLabel = "guerite.project"
	// scopeLabel defines a unique monitoring scope for this Guerite instance.
	scopeLabel = "guerite.scope"
	// swarmServiceLabel is set by the engine on tasks belonging to a swarm service.
	swarmServiceLabel = "com.docker.swarm.service.name"
	// swarmStackLabel is set by the engine on containers deployed via a stack.
	swarmStackLabel = "com.docker.stack.namespace"
)

// Cron expression labels, one per action kind a container can opt into.
const (
	cronUpdateLabel   = "guerite.cron.update"
	cronRecreateLabel = "guerite.cron.recreate"
	cronRestartLabel  = "guerite.cron.restart"
)

// Lifecycle hook labels configure commands executed during an action run.
const (
	preCheckLabel          = "guerite.lifecycle.pre-check"
	postCheckLabel         = "guerite.lifecycle.post-check"
	preUpdateLabel         = "guerite.lifecycle.pre-update"
	postUpdateLabel        = "guerite.lifecycle.post-update"
	preCheckTimeoutLabel   = "guerite.lifecycle.pre-check-timeout"
	postCheckTimeoutLabel  = "guerite.lifecycle.post-check-timeout"
	preUpdateTimeoutLabel  = "guerite.lifecycle.pre-update-timeout"
	postUpdateTimeoutLabel = "guerite.lifecycle.post-update-timeout"
	lifecycleUIDLabel      = "guerite.lifecycle.uid"
	lifecycleGIDLabel      = "guerite.lifecycle.gid"
)

// GetLifecycleCommand returns the command configured for the given hook point,
// or an empty string if none is set.
func (c Container) GetLifecycleCommand(point types.HookPoint) string {
	switch point {
	case types.HookPreCheck:
		return c.getLabelValueOrEmpty(preCheckLabel)
	case types.HookPostCheck:
		return c.getLabelValueOrEmpty(postCheckLabel)
	case types.HookPreUpdate:
		return c.getLabelValueOrEmpty(preUpdateLabel)
	case types.HookPostUpdate:
		return c.getLabelValueOrEmpty(postUpdateLabel)
	default:
		return ""
	}
}

// GetLifecycleTimeout returns the configured timeout for the given hook point
// and whether one was explicitly set; the caller applies its own default when
// the second value is false.
func (c Container) GetLifecycleTimeout(point types.HookPoint) (time.Duration, bool) {
	clog := logrus.WithField("container", c.Name())

	var label string

	switch point {
	case types.HookPreCheck:
		label = preCheckTimeoutLabel
	case types.HookPostCheck:
		label = postCheckTimeoutLabel
	case types.HookPreUpdate:
		label = preUpdateTimeoutLabel
	case types.HookPostUpdate:
		label = postUpdateTimeoutLabel
	default:
		return 0, false
	}

	val, ok := c.getLabelValue(label)
	if !ok {
		return 0, false
	}

	seconds, err := strconv.Atoi(val)
	if err != nil {
		clog.WithError(err).WithFields(logrus.Fields{
			"label": label,
			"value": val,
		}).Warn("Invalid lifecycle hook timeout value, ignoring")

		return 0, false
	}

	return time.Duration(seconds) * time.Second, true
}

// GetLifecycleUID returns the UID to run lifecycle hooks as, and whether one
// was configured.
func (c Container) GetLifecycleUID() (int, bool) {
	return c.getIntLabelValue(lifecycleUIDLabel)
}

// GetLifecycleGID returns the GID to run lifecycle hooks as, and whether one
// was configured.
func (c Container) GetLifecycleGID() (int, bool) {
	return c.getIntLabelValue(lifecycleGIDLabel)
}

func (c Container) getIntLabelValue(label string) (int, bool) {
	clog := logrus.WithField("container", c.Name())

	val, ok := c.getLabelValue(label)
	if !ok {
		return 0, false
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		clog.WithError(err).WithFields(logrus.Fields{
			"label": label,
			"value": val,
		}).Warn("Invalid integer label value, ignoring")

		return 0, false
	}

	return parsed, true
}

// Enabled checks if the container is enabled for Guerite management.
func (c Container) Enabled() (bool, bool) {
	clog := logrus.WithField("container", c.Name())
	rawBool, ok := c.getLabelValue(enableLabel)

	if !ok {
		clog.WithField("label", enableLabel).Debug("Enable label not set")

		return false, false
	}

	parsedBool, err := strconv.ParseBool(rawBool)
	if err != nil {
		clog.WithError(err).WithFields(logrus.Fields{
			"label": enableLabel,
			"value": rawBool,
		}).Warn("Invalid enable label value")

		return false, false
	}

	return parsedBool, true
}

// IsMonitorOnly determines if the container should only be monitored without swapping.
func (c Container) IsMonitorOnly(globalOverride bool) bool {
	return c.getContainerOrGlobalBool(globalOverride, monitorOnlyLabel)
}

// IsNoPull determines if the container should skip image pulls.
func (c Container) IsNoPull(globalOverride bool) bool {
	return c.getContainerOrGlobalBool(globalOverride, noPullLabel)
}

// IsNoRestart determines if the container should skip stop/start entirely.
func (c Container) IsNoRestart(globalOverride bool) bool {
	return c.getContainerOrGlobalBool(globalOverride, noRestartLabel)
}

// Scope retrieves the monitoring scope for the container.
func (c Container) Scope() (string, bool) {
	return c.getLabelValue(scopeLabel)
}

// Project retrieves the project grouping label for the container.
func (c Container) Project() (string, bool) {
	return c.getLabelValue(projectLabel)
}

// DependsOn lists the names this container depends on, checking
// guerite.depends-on first, then the Docker Compose depends_on label, and
// finally falling back to engine-native HostConfig links and network-mode
// container sharing. A dependency matching the container's own name is
// dropped.
func (c Container) DependsOn() []string {
	if val, ok := c.getLabelValue(dependsOnLabel); ok {
		return c.dropSelfReference(splitNormalizedCSV(val))
	}

	// Fall back to a Docker Compose depends_on label when guerite.depends-on
	// is not set, so projects migrating from compose keep their ordering.
	if val, ok := c.getLabelValue(compose.ComposeDependsOnLabel); ok {
		if val == "" {
			return []string{}
		}

		services := compose.ParseDependsOnLabel(val)
		normalized := make([]string, 0, len(services))

		for _, service := range services {
			normalized = append(normalized, util.NormalizeContainerName(service))
		}

		return c.dropSelfReference(normalized)
	}

	return c.dropSelfReference(c.linksFromHostConfig())
}

// dropSelfReference removes any entry matching the container's own name.
func (c Container) dropSelfReference(names []string) []string {
	out := make([]string, 0, len(names))

	for _, name := range names {
		if name != c.Name() {
			out = append(out, name)
		}
	}

	return out
}

// linksFromHostConfig extracts dependency links from the engine's
// HostConfig.Links, falling back to the network mode's connected container
// when this container shares another's network namespace.
func (c Container) linksFromHostConfig() []string {
	clog := logrus.WithField("container", c.Name())

	if c.containerInfo == nil || c.containerInfo.HostConfig == nil {
		return nil
	}

	hostConfig := c.containerInfo.HostConfig

	links := make([]string, 0, len(hostConfig.Links)+1)

	for _, link := range hostConfig.Links {
		if !strings.Contains(link, ":") {
			clog.WithField("link", link).
				Warn("Invalid link format in host config, expected 'name:alias'")

			continue
		}

		parts := strings.SplitN(link, ":", linkPartsCount)
		if parts[0] == "" {
			clog.WithField("link", link).
				Warn("Invalid link format in host config, missing container name")

			continue
		}

		links = append(links, util.NormalizeContainerName(parts[0]))
	}

	if hostConfig.NetworkMode.IsContainer() {
		links = append(links, util.NormalizeContainerName(hostConfig.NetworkMode.ConnectedContainer()))
	}

	clog.WithField("links", links).Debug("Retrieved links from host config")

	return links
}

// CronExpression returns the cron expression configured for kind, if any.
func (c Container) CronExpression(kind types.ActionKind) (string, bool) {
	switch kind {
	case types.ActionUpdate:
		return c.getLabelValue(cronUpdateLabel)
	case types.ActionRecreate:
		return c.getLabelValue(cronRecreateLabel)
	case types.ActionRestart:
		return c.getLabelValue(cronRestartLabel)
	default:
		return "", false
	}
}

// IsSwarmManaged identifies containers owned by a swarm service or stack,
// which the action engine never touches directly.
func (c Container) IsSwarmManaged() bool {
	if c.containerInfo == nil || c.containerInfo.Config == nil {
		return false
	}

	labels := c.containerInfo.Config.Labels
	_, hasService := labels[swarmServiceLabel]
	_, hasStack := labels[swarmStackLabel]

	return hasService || hasStack
}

// StopSignal returns the custom stop signal for the container, or
// defaultStopSignal when the label is unset or empty.
func (c Container) StopSignal() string {
	if signal := c.getLabelValueOrEmpty(signalLabel); signal != "" {
		return signal
	}

	return defaultStopSignal
}

// getLabelValueOrEmpty retrieves a label's value, or an empty string if absent.
func (c Container) getLabelValueOrEmpty(label string) string {
	if c.containerInfo == nil || c.containerInfo.Config == nil ||
		c.containerInfo.Config.Labels == nil {
		return ""
	}

	return c.containerInfo.Config.Labels[label]
}

// getLabelValue fetches a label's value and whether it is present at all.
func (c Container) getLabelValue(label string) (string, bool) {
	if c.containerInfo == nil || c.containerInfo.Config == nil ||
		c.containerInfo.Config.Labels == nil {
		return "", false
	}

	val, ok := c.containerInfo.Config.Labels[label]

	return val, ok
}

// getBoolLabelValue parses a label's value as a boolean.
func (c Container) getBoolLabelValue(label string) (bool, error) {
	strVal, ok := c.getLabelValue(label)
	if !ok {
		return false, errLabelNotFound
	}

	value, err := strconv.ParseBool(strVal)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", err, label, strVal)
	}

	return value, nil
}

// getContainerOrGlobalBool resolves a boolean override: the container label
// wins if set, otherwise the cycle-wide override applies.
func (c Container) getContainerOrGlobalBool(globalVal bool, label string) bool {
	clog := logrus.WithField("container", c.Name())

	contVal, err := c.getBoolLabelValue(label)
	if err != nil {
		if !errors.Is(err, errLabelNotFound) {
			clog.WithError(err).WithField("label", label).Warn("Failed to parse label value")
		}

		return globalVal
	}

	return contVal || globalVal
}

// splitNormalizedCSV splits a comma-separated label value, trimming
// whitespace and dropping empty entries.
func splitNormalizedCSV(val string) []string {
	out := make([]string, 0, strings.Count(val, ",")+1)

	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, util.NormalizeContainerName(part))
		}
	}

	return out
}
