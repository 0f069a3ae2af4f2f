// Package container provides functionality for managing containers within Guerite.
// This file defines the Container type and its core methods, implementing the
// types.Container interface to expose engine state and guerite.* configuration
// to the scheduler, planner and action engine.
package container

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/sirupsen/logrus"

	dockerContainer "github.com/docker/docker/api/types/container"
	dockerImage "github.com/docker/docker/api/types/image"
	dockerNetwork "github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/compose"
	"github.com/rcarmo/guerite/pkg/types"
)

// Constants for container operations.
const (
	linkPartsCount = 2 // Number of parts expected in a link (name:alias)
)

// Operations defines the minimal engine-client surface Container construction
// and the action engine's swap sequence depend on directly.
type Operations interface {
	ContainerCreate(
		ctx context.Context,
		config *dockerContainer.Config,
		hostConfig *dockerContainer.HostConfig,
		networkingConfig *dockerNetwork.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (dockerContainer.CreateResponse, error)
	ContainerStart(
		ctx context.Context,
		containerID string,
		options dockerContainer.StartOptions,
	) error
	ContainerRemove(
		ctx context.Context,
		containerID string,
		options dockerContainer.RemoveOptions,
	) error
	NetworkConnect(
		ctx context.Context,
		networkID, containerID string,
		config *dockerNetwork.EndpointSettings,
	) error
	ContainerRename(
		ctx context.Context,
		containerID, newContainerName string,
	) error
}

// Container represents a running container managed by Guerite.
//
// It implements the types.Container interface, storing state and metadata
// for container operations such as updates, recreation and lifecycle hooks.
type Container struct {
	normalizedName string                           // Cached normalized container name
	containerInfo  *dockerContainer.InspectResponse // Engine container metadata
	imageInfo      *dockerImage.InspectResponse     // Engine image metadata
}

// NewContainer creates a new Container instance with the specified metadata.
func NewContainer(
	containerInfo *dockerContainer.InspectResponse,
	imageInfo *dockerImage.InspectResponse,
) *Container {
	name := ""
	if containerInfo != nil {
		name = containerInfo.Name
	}

	c := &Container{
		normalizedName: util.NormalizeContainerName(name),
		containerInfo:  containerInfo,
		imageInfo:      imageInfo,
	}

	logrus.WithFields(logrus.Fields{
		"container": c.Name(),
		"id":        c.ID().ShortID(),
		"image":     c.SafeImageID(),
	}).Debug("Created new container instance")

	return c
}

// ContainerInfo returns the full engine container metadata.
func (c Container) ContainerInfo() *dockerContainer.InspectResponse {
	return c.containerInfo
}

// ID returns the unique identifier of the container.
func (c Container) ID() types.ContainerID {
	if c.containerInfo == nil {
		return ""
	}

	return types.ContainerID(c.containerInfo.ID)
}

// IsRunning checks if the container is currently running.
func (c Container) IsRunning() bool {
	if c.containerInfo == nil || c.containerInfo.State == nil {
		return false
	}

	return c.containerInfo.State.Running
}

// StartedAt returns the time the container's current process started, and
// whether the engine reported a parseable value at all.
func (c Container) StartedAt() (time.Time, bool) {
	if c.containerInfo == nil || c.containerInfo.State == nil || c.containerInfo.State.StartedAt == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, c.containerInfo.State.StartedAt)
	if err != nil {
		logrus.WithError(err).WithField("container", c.Name()).
			Warn("Could not parse container start time")

		return time.Time{}, false
	}

	return t, true
}

// Name returns the normalized name of the container.
func (c Container) Name() string {
	return c.normalizedName
}

// ImageID returns the ID of the container's image.
func (c Container) ImageID() types.ImageID {
	if c.imageInfo == nil {
		return ""
	}

	return types.ImageID(c.imageInfo.ID)
}

// SafeImageID returns the image ID or an empty string if unavailable.
func (c Container) SafeImageID() types.ImageID {
	if c.imageInfo == nil {
		return ""
	}

	return types.ImageID(c.imageInfo.ID)
}

// ImageName returns the name of the container's image, appending ":latest"
// if the configured reference carries no tag.
func (c Container) ImageName() string {
	clog := logrus.WithField("container", c.Name())

	if c.containerInfo == nil || c.containerInfo.Config == nil {
		clog.Warn("No container config available, using default image name")

		return "unknown:latest"
	}

	imageName := c.containerInfo.Config.Image

	if !strings.Contains(imageName, ":") {
		imageName += ":latest"
	}

	return imageName
}

// HasImageInfo indicates whether image metadata is available.
func (c Container) HasImageInfo() bool {
	return c.imageInfo != nil
}

// ImageInfo returns the engine image metadata.
func (c Container) ImageInfo() *dockerImage.InspectResponse {
	return c.imageInfo
}

// HasHealthCheck reports whether the container declares a healthcheck.
func (c Container) HasHealthCheck() bool {
	return c.containerInfo != nil &&
		c.containerInfo.Config != nil &&
		c.containerInfo.Config.Healthcheck != nil &&
		len(c.containerInfo.Config.Healthcheck.Test) > 0
}

// Health returns the container's current health status as reported by the engine.
func (c Container) Health() types.Health {
	if !c.HasHealthCheck() || c.containerInfo.State == nil || c.containerInfo.State.Health == nil {
		return types.HealthNone
	}

	switch c.containerInfo.State.Health.Status {
	case dockerContainer.Healthy:
		return types.HealthHealthy
	case dockerContainer.Unhealthy:
		return types.HealthUnhealthy
	case dockerContainer.Starting:
		return types.HealthStarting
	default:
		return types.HealthNone
	}
}

// Mounts lists the container's bind mounts, used for the preflight check
// before a name-preserving swap.
func (c Container) Mounts() []types.Mount {
	if c.containerInfo == nil {
		return nil
	}

	mounts := make([]types.Mount, 0, len(c.containerInfo.Mounts))
	for _, m := range c.containerInfo.Mounts {
		if m.Type != "bind" {
			continue
		}

		mounts = append(mounts, types.Mount{
			Source:      m.Source,
			Destination: m.Destination,
			ReadOnly:    !m.RW,
		})
	}

	return mounts
}

// GetCreateConfig generates a container configuration for recreation.
//
// It isolates runtime overrides from image defaults and sets the image name.
func (c Container) GetCreateConfig() *dockerContainer.Config {
	clog := logrus.WithField("container", c.Name())
	config := c.containerInfo.Config
	hostConfig := c.containerInfo.HostConfig

	if c.imageInfo == nil {
		clog.Warn("No image info available, using container config as-is")

		config.Image = c.ImageName()

		return config
	}

	imageConfig := c.imageInfo.Config
	if config.WorkingDir == imageConfig.WorkingDir {
		config.WorkingDir = ""
	}

	if config.User == imageConfig.User {
		config.User = ""
	}

	if hostConfig.NetworkMode.IsContainer() {
		config.Hostname = ""
	}

	if hostConfig.UTSMode != "" {
		config.Hostname = ""
	}

	if util.SliceEqual(config.Entrypoint, imageConfig.Entrypoint) {
		config.Entrypoint = nil
		if util.SliceEqual(config.Cmd, imageConfig.Cmd) {
			config.Cmd = nil
		}
	}

	if config.Healthcheck != nil && imageConfig.Healthcheck != nil {
		if util.SliceEqual(config.Healthcheck.Test, imageConfig.Healthcheck.Test) {
			config.Healthcheck.Test = nil
		}

		if config.Healthcheck.Retries == imageConfig.Healthcheck.Retries {
			config.Healthcheck.Retries = 0
		}

		if config.Healthcheck.Interval == imageConfig.Healthcheck.Interval {
			config.Healthcheck.Interval = 0
		}

		if config.Healthcheck.Timeout == imageConfig.Healthcheck.Timeout {
			config.Healthcheck.Timeout = 0
		}

		if config.Healthcheck.StartPeriod == imageConfig.Healthcheck.StartPeriod {
			config.Healthcheck.StartPeriod = 0
		}
	}

	config.Env = util.SliceSubtract(config.Env, imageConfig.Env)
	config.Labels = util.StringMapSubtract(config.Labels, imageConfig.Labels)
	config.Volumes = util.StructMapSubtract(config.Volumes, imageConfig.Volumes)

	for k := range config.ExposedPorts {
		if _, ok := imageConfig.ExposedPorts[string(k)]; ok {
			delete(config.ExposedPorts, k)
		}
	}

	for p := range hostConfig.PortBindings {
		config.ExposedPorts[p] = struct{}{}
	}

	config.Image = c.ImageName()
	clog.WithField("image", config.Image).Debug("Generated create config")

	return config
}

// GetCreateHostConfig generates a host configuration for recreation,
// adjusting link formats for engine API compatibility.
func (c Container) GetCreateHostConfig() *dockerContainer.HostConfig {
	clog := logrus.WithField("container", c.Name())

	if c.containerInfo == nil || c.containerInfo.HostConfig == nil {
		clog.Warn("No container host config available")

		return &dockerContainer.HostConfig{}
	}

	hostConfig := c.containerInfo.HostConfig

	adjusted := make([]string, 0, len(hostConfig.Links))

	for _, link := range hostConfig.Links {
		if !strings.Contains(link, ":") {
			clog.WithField("link", link).Error("Invalid link format, expected 'name:alias'")

			continue
		}

		parts := strings.SplitN(link, ":", linkPartsCount)
		if len(parts) != linkPartsCount {
			continue
		}

		normalizedName := util.NormalizeContainerName(parts[0])
		adjusted = append(adjusted, fmt.Sprintf("%s:%s", normalizedName, parts[1]))
	}

	hostConfig.Links = adjusted

	return hostConfig
}

// VerifyConfiguration validates the container's metadata for recreation.
func (c Container) VerifyConfiguration() error {
	if c.imageInfo == nil {
		return errNoImageInfo
	}

	if c.containerInfo == nil {
		return errNoContainerInfo
	}

	if c.containerInfo.Config == nil || c.containerInfo.HostConfig == nil {
		return errInvalidConfig
	}

	if len(c.containerInfo.HostConfig.PortBindings) > 0 &&
		c.containerInfo.Config.ExposedPorts == nil {
		c.containerInfo.Config.ExposedPorts = make(map[nat.Port]struct{})
	}

	return nil
}

// ResolveContainerIdentifier returns the compose service name if available,
// otherwise the container name, falling back to the container ID.
func ResolveContainerIdentifier(c types.Container) string {
	info := c.ContainerInfo()
	if info == nil || info.Config == nil || len(info.Config.Labels) == 0 {
		return nameOrID(c)
	}

	if serviceName := compose.GetServiceName(info.Config.Labels); serviceName != "" {
		return serviceName
	}

	return nameOrID(c)
}

func nameOrID(c types.Container) string {
	if name := c.Name(); name != "" {
		return name
	}

	return string(c.ID())
}
