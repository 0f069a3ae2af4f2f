package types

import (
	"strings"
	"time"

	dockerContainer "github.com/docker/docker/api/types/container"
	dockerImage "github.com/docker/docker/api/types/image"
)

// Container is the monitored view of a single running container: the
// engine's own inspect data plus the guerite.* label accessors the
// scheduler, planner and action engine read from it.
type Container interface {
	ContainerInfo() *dockerContainer.InspectResponse // Raw engine inspect data.
	ID() ContainerID
	Name() string
	ImageID() ImageID
	ImageName() string
	IsRunning() bool
	// StartedAt returns the time the current process inside the container
	// began running, and whether the engine reported one at all.
	StartedAt() (time.Time, bool)

	Enabled() (bool, bool)
	Scope() (string, bool)
	// Project returns the guerite.project label value, used to group
	// containers for dependency ordering and rolling-restart fairness.
	Project() (string, bool)
	// DependsOn lists the names this container's project declares it must
	// come up after, parsed from guerite.depends-on or a compose label.
	DependsOn() []string

	// CronExpression returns the cron expression configured for the given
	// action kind on this container, and whether one was set at all.
	CronExpression(kind ActionKind) (string, bool)

	IsMonitorOnly(globalOverride bool) bool
	IsNoPull(globalOverride bool) bool
	IsNoRestart(globalOverride bool) bool

	StopSignal() string
	StopTimeout() *int

	// HasHealthCheck reports whether the container declares a healthcheck
	// at all; Health is meaningless (HealthNone) when this is false.
	HasHealthCheck() bool
	Health() Health

	// Mounts lists the container's bind mounts, used for the preflight
	// check that a replacement container can bind the same host paths.
	Mounts() []Mount

	// IsSwarmManaged reports whether this container is owned by a swarm
	// service, in which case the action engine never acts on it directly.
	IsSwarmManaged() bool

	GetLifecycleCommand(point HookPoint) string
	GetLifecycleTimeout(point HookPoint) (time.Duration, bool)
	GetLifecycleUID() (int, bool)
	GetLifecycleGID() (int, bool)

	VerifyConfiguration() error

	GetCreateConfig() *dockerContainer.Config
	GetCreateHostConfig() *dockerContainer.HostConfig

	HasImageInfo() bool
	ImageInfo() *dockerImage.InspectResponse
}

// Mount describes one bind mount of a container, used by the preflight
// check before a name-preserving swap.
type Mount struct {
	Source      string
	Destination string
	ReadOnly    bool
}

// ImageID is a hash string for a container image.
type ImageID string

// ContainerID is a hash string for a container instance.
type ContainerID string

// ShortID returns the 12-character short version of an image ID.
func (id ImageID) ShortID() string {
	return shortID(string(id))
}

// ShortID returns the 12-character short version of a container ID.
func (id ContainerID) ShortID() string {
	return shortID(string(id))
}

// shortID shortens a hash string to 12 characters, stripping a "sha256:" prefix.
func shortID(longID string) string {
	prefixSep := strings.IndexRune(longID, ':')
	offset := 0
	length := 12

	if prefixSep >= 0 {
		if longID[0:prefixSep] == "sha256" {
			offset = prefixSep + 1
		} else {
			length += prefixSep + 1
		}
	}

	if len(longID) >= offset+length {
		return longID[offset : offset+length]
	}

	return longID
}
