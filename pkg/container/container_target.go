package container

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/versions"
	"github.com/sirupsen/logrus"

	dockerContainerType "github.com/docker/docker/api/types/container"
	dockerNetworkType "github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/rcarmo/guerite/pkg/types"
)

// CPU copy modes for recreated containers, selected by the cpu-copy-mode
// configuration flag.
const (
	cpuCopyModeNone = "none"
	cpuCopyModeFull = "full"
	cpuCopyModeAuto = "auto"
)

// targetAPI is the subset of the engine client's Docker API surface the
// target-container helpers need, narrowed from the full client interface so
// tests can satisfy it with a lightweight mock.
type targetAPI interface {
	ContainerCreate(
		ctx context.Context,
		config *dockerContainerType.Config,
		hostConfig *dockerContainerType.HostConfig,
		networkingConfig *dockerNetworkType.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (dockerContainerType.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options dockerContainerType.StartOptions) error
	ContainerRemove(ctx context.Context, containerID string, options dockerContainerType.RemoveOptions) error
	NetworkConnect(ctx context.Context, networkID, containerID string, config *dockerNetworkType.EndpointSettings) error
	ContainerRename(ctx context.Context, containerID, newContainerName string) error
}

// CreateTargetContainer creates a new container under targetName using
// sourceContainer's captured configuration, without starting it. The action
// engine calls this during the Swapping state, before the old container is
// renamed aside and the new one is renamed into its place.
//
// For legacy engine API versions (< 1.44) with multiple networks, it creates
// the container with a single network and attaches the others sequentially,
// since multiple network endpoints at creation time are unreliable on those
// versions.
func CreateTargetContainer(
	ctx context.Context,
	api targetAPI,
	sourceContainer types.Container,
	targetName string,
	clientVersion string,
	minSupportedVersion string,
	disableMemorySwappiness bool,
	cpuCopyMode string,
	isPodman bool,
) (types.ContainerID, error) {
	clog := logrus.WithFields(logrus.Fields{
		"container":   sourceContainer.Name(),
		"id":          sourceContainer.ID().ShortID(),
		"target_name": targetName,
	})

	config := sourceContainer.GetCreateConfig()
	hostConfig := sourceContainer.GetCreateHostConfig()

	if disableMemorySwappiness {
		hostConfig.MemorySwappiness = nil

		clog.Debug("Disabled memory swappiness for Podman compatibility")
	}

	handleCPUSettings(hostConfig, cpuCopyMode, isPodman, clog)

	networkConfig := getNetworkConfig(sourceContainer, clientVersion)

	isHostNetwork := sourceContainer.ContainerInfo().HostConfig.NetworkMode.IsHost()
	debugLogMacAddress(
		networkConfig,
		sourceContainer.ID(),
		clientVersion,
		minSupportedVersion,
		isHostNetwork,
	)

	createNetworkConfig := networkConfig

	if versions.LessThan(clientVersion, "1.44") && len(networkConfig.EndpointsConfig) > 1 {
		var firstNetworkName string

		createNetworkConfig = newEmptyNetworkConfig()

		for name, endpoint := range networkConfig.EndpointsConfig {
			firstNetworkName = name
			createNetworkConfig.EndpointsConfig[name] = endpoint

			clog.WithField("network", firstNetworkName).
				Debug("Selected first network for container creation")

			break
		}
	}

	clog.Debug("Creating new container")

	createdContainer, err := api.ContainerCreate(
		ctx,
		config,
		hostConfig,
		createNetworkConfig,
		nil,
		targetName,
	)
	if err != nil {
		clog.WithError(err).Debug("Failed to create new container")

		return "", fmt.Errorf("%w: %w", errCreateContainerFailed, err)
	}

	createdContainerID := types.ContainerID(createdContainer.ID)
	clog.WithField("new_id", createdContainerID.ShortID()).Debug("Created container successfully")

	if versions.LessThan(clientVersion, "1.44") && len(networkConfig.EndpointsConfig) > 1 {
		if err := attachNetworks(ctx, api, createdContainer.ID, networkConfig, createNetworkConfig, clog); err != nil {
			if rmErr := api.ContainerRemove(ctx, createdContainer.ID, dockerContainerType.RemoveOptions{Force: true}); rmErr != nil {
				clog.WithError(rmErr).
					Warn("Failed to clean up container after network attachment error")
			}

			return "", err
		}
	}

	return createdContainerID, nil
}

// attachNetworks connects a container to additional networks for legacy API versions.
func attachNetworks(
	ctx context.Context,
	api targetAPI,
	containerID string,
	networkConfig *dockerNetworkType.NetworkingConfig,
	initialNetworkConfig *dockerNetworkType.NetworkingConfig,
	clog *logrus.Entry,
) error {
	var initialNetworkName string

	for name := range initialNetworkConfig.EndpointsConfig {
		initialNetworkName = name

		break
	}

	for name, endpoint := range networkConfig.EndpointsConfig {
		if name != initialNetworkName && name != "" {
			clog.WithField("network", name).Debug("Attaching additional network to container")

			if err := api.NetworkConnect(ctx, name, containerID, endpoint); err != nil {
				clog.WithError(err).
					WithField("network", name).
					Error("Failed to attach additional network")

				return fmt.Errorf("failed to attach network %s: %w", name, err)
			}

			clog.WithField("network", name).Debug("Successfully attached additional network")
		}
	}

	return nil
}

// handleCPUSettings adjusts a recreated container's CPU-related HostConfig
// fields according to cpuCopyMode:
//
//   - "none" strips NanoCPUs, CPUShares, CPUQuota, CPUPeriod, CpusetCpus and
//     CpusetMems entirely, for engines that reject a copied CPU config outright.
//   - "full" copies every CPU field unchanged.
//   - "auto" copies everything unchanged on Docker, but on Podman strips only
//     NanoCPUs, since Podman rejects it alongside CPUShares on recreate.
//
// An unrecognized mode behaves like "full".
func handleCPUSettings(
	hostConfig *dockerContainerType.HostConfig,
	cpuCopyMode string,
	isPodman bool,
	clog *logrus.Entry,
) {
	switch cpuCopyMode {
	case cpuCopyModeNone:
		hostConfig.NanoCPUs = 0
		hostConfig.CPUShares = 0
		hostConfig.CPUQuota = 0
		hostConfig.CPUPeriod = 0
		hostConfig.CpusetCpus = ""
		hostConfig.CpusetMems = ""

		clog.Debug("Stripped all CPU settings")
	case cpuCopyModeAuto:
		if isPodman {
			hostConfig.NanoCPUs = 0

			clog.Debug("Detected Podman, filtered NanoCPUs for compatibility")

			return
		}

		clog.Debug("Detected Docker, copied all CPU settings")
	case cpuCopyModeFull:
		clog.Debug("Copied all CPU settings unchanged")
	default:
		clog.Debug("Unknown CPU copy mode, defaulting to full")
	}
}

// StartTargetContainerByID starts a previously created container by ID.
func StartTargetContainerByID(
	ctx context.Context,
	api targetAPI,
	containerID types.ContainerID,
) error {
	clog := logrus.WithField("container_id", containerID.ShortID())

	clog.Debug("Starting container")

	if err := api.ContainerStart(ctx, string(containerID), dockerContainerType.StartOptions{}); err != nil {
		clog.WithError(err).Debug("Failed to start container")

		return fmt.Errorf("%w: %w", errStartContainerFailed, err)
	}

	clog.Info("Started container")

	return nil
}

// RenameTargetContainer renames an existing container by ID to targetName.
func RenameTargetContainer(
	ctx context.Context,
	api targetAPI,
	containerID types.ContainerID,
	targetName string,
) error {
	clog := logrus.WithFields(logrus.Fields{
		"id":          containerID.ShortID(),
		"target_name": targetName,
	})

	clog.Debug("Renaming container")

	if err := api.ContainerRename(ctx, string(containerID), targetName); err != nil {
		clog.WithError(err).Debug("Failed to rename container")

		return fmt.Errorf("%w: %w", errRenameContainerFailed, err)
	}

	clog.Debug("Renamed container successfully")

	return nil
}
