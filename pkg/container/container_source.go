package container

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types/versions"
	"github.com/sirupsen/logrus"

	dockerContainerType "github.com/docker/docker/api/types/container"
	dockerFiltersType "github.com/docker/docker/api/types/filters"
	dockerNetworkType "github.com/docker/docker/api/types/network"
	dockerClient "github.com/docker/docker/client"

	"github.com/rcarmo/guerite/pkg/types"
)

// defaultStopSignal is the default signal for stopping containers ("SIGTERM").
const defaultStopSignal = "SIGTERM"

// buildListFilterArgs builds the status filter for an engine container-list
// call. Restarting containers are excluded under Podman regardless of
// IncludeRestarting, since Podman reports freshly-started containers as
// "restarting" during their healthcheck startup window.
func buildListFilterArgs(opts ClientOptions, isPodman bool) dockerFiltersType.Args {
	filterArgs := dockerFiltersType.NewArgs()
	filterArgs.Add("status", "running")

	if opts.IncludeStopped {
		filterArgs.Add("status", "created")
		filterArgs.Add("status", "exited")
	}

	if opts.IncludeRestarting && !isPodman {
		filterArgs.Add("status", "restarting")
	}

	return filterArgs
}

// ListSourceContainers retrieves containers from the engine matching filter.
func ListSourceContainers(
	ctx context.Context,
	api dockerClient.APIClient,
	opts ClientOptions,
	filter types.Filter,
	isPodman bool,
) ([]types.Container, error) {
	clog := logrus.WithFields(logrus.Fields{
		"include_stopped":    opts.IncludeStopped,
		"include_restarting": opts.IncludeRestarting,
	})

	clog.Debug("Retrieving container list")

	filterArgs := buildListFilterArgs(opts, isPodman)

	containers, err := api.ContainerList(ctx, dockerContainerType.ListOptions{Filters: filterArgs})
	if err != nil {
		if strings.Contains(err.Error(), "page not found") {
			clog.WithFields(logrus.Fields{
				"error":       err,
				"endpoint":    "/containers/json",
				"api_version": strings.Trim(api.ClientVersion(), "\""),
				"docker_host": os.Getenv("DOCKER_HOST"),
			}).Warn("Engine API returned 404 for container list; treating as empty list")

			return []types.Container{}, nil
		}

		clog.WithError(err).Debug("Failed to list containers")

		return nil, fmt.Errorf("%w: %w", errListContainersFailed, err)
	}

	if filter == nil {
		filter = types.Filter(func(types.FilterableContainer) bool { return true })
	}

	hostContainers := []types.Container{}

	for _, runningContainer := range containers {
		container, err := GetSourceContainer(ctx, api, types.ContainerID(runningContainer.ID))
		if err != nil {
			return nil, err
		}

		if filter(container) {
			hostContainers = append(hostContainers, container)
		}
	}

	clog.WithField("count", len(hostContainers)).Debug("Filtered container list")

	return hostContainers, nil
}

// GetSourceContainer retrieves detailed information about a container by its ID,
// resolving network mode references to another container where possible.
func GetSourceContainer(
	ctx context.Context,
	api dockerClient.APIClient,
	containerID types.ContainerID,
) (types.Container, error) {
	clog := logrus.WithField("container_id", containerID)

	clog.Debug("Inspecting container")

	containerInfo, err := api.ContainerInspect(ctx, string(containerID))
	if err != nil {
		clog.WithError(err).Debug("Failed to inspect container")

		return nil, fmt.Errorf("%w: %w", errInspectContainerFailed, err)
	}

	netType, netContainerID, found := strings.Cut(string(containerInfo.HostConfig.NetworkMode), ":")
	if found && netType == "container" {
		parentContainer, err := api.ContainerInspect(ctx, netContainerID)
		if err != nil {
			clog.WithError(err).WithFields(logrus.Fields{
				"container":         containerInfo.Name,
				"network_container": netContainerID,
			}).Warn("Unable to resolve network container")
		} else {
			containerInfo.HostConfig.NetworkMode = dockerContainerType.NetworkMode("container:" + parentContainer.Name)
			clog.WithFields(logrus.Fields{
				"container":         containerInfo.Name,
				"network_container": parentContainer.Name,
			}).Debug("Resolved network container name")
		}
	}

	imageInfo, err := api.ImageInspect(ctx, containerInfo.Image)
	if err != nil {
		clog.WithError(err).Warn("Failed to retrieve image info")

		return NewContainer(&containerInfo, nil), nil
	}

	clog.WithField("image", containerInfo.Image).Debug("Retrieved container and image info")

	return NewContainer(&containerInfo, &imageInfo), nil
}

// StopSourceContainer stops the specified container, escalating to the
// engine's own forced kill once timeout elapses. It deliberately leaves the
// container in place: the action engine's swap sequence renames it first
// and only removes it once a replacement has committed or a rollback has
// restarted it, so stop and remove are separate engine calls.
func StopSourceContainer(
	ctx context.Context,
	api dockerClient.APIClient,
	sourceContainer types.Container,
	timeout time.Duration,
) error {
	clog := logrus.WithFields(logrus.Fields{
		"container": sourceContainer.Name(),
		"id":        sourceContainer.ID().ShortID(),
	})

	if !sourceContainer.IsRunning() {
		return nil
	}

	signal := sourceContainer.StopSignal()
	if signal == "" {
		signal = defaultStopSignal
	}

	clog.WithField("signal", signal).Info("Stopping container")

	timeoutSeconds := int(timeout.Seconds())

	err := api.ContainerStop(ctx, string(sourceContainer.ID()), dockerContainerType.StopOptions{
		Signal:  signal,
		Timeout: &timeoutSeconds,
	})
	if err != nil {
		clog.WithError(err).Debug("Failed to stop container")

		return fmt.Errorf("%w: %w", errStopContainerFailed, err)
	}

	return nil
}

// getNetworkConfig extracts and sanitizes the network configuration from a container.
//
// It handles all network modes, including host, and supports both legacy and modern API versions.
func getNetworkConfig(
	sourceContainer types.Container,
	clientVersion string,
) *dockerNetworkType.NetworkingConfig {
	clog := logrus.WithFields(logrus.Fields{
		"container": sourceContainer.Name(),
		"id":        sourceContainer.ID().ShortID(),
		"version":   clientVersion,
	})

	config := newEmptyNetworkConfig()

	clog.Debug("Initialized empty network configuration")

	containerInfo := sourceContainer.ContainerInfo()
	if containerInfo == nil || containerInfo.NetworkSettings == nil {
		clog.Warn("No network settings available")

		return config
	}

	networkMode := containerInfo.HostConfig.NetworkMode
	isHostNetwork := string(networkMode) == "host"
	clog.WithFields(logrus.Fields{
		"network_mode": networkMode,
		"is_host":      isHostNetwork,
	}).Debug("Evaluated network mode")

	for networkName, sourceEndpoint := range containerInfo.NetworkSettings.Networks {
		if sourceEndpoint == nil {
			clog.WithField("network", networkName).Warn("Skipping nil endpoint")

			continue
		}

		targetEndpoint := processEndpoint(
			sourceEndpoint,
			sourceContainer.ID(),
			clientVersion,
			isHostNetwork,
		)
		config.EndpointsConfig[networkName] = targetEndpoint

		clog.WithField("network", networkName).Debug("Added endpoint to network config")
	}

	if err := validateMacAddresses(config, sourceContainer.ID(), clientVersion, isHostNetwork, sourceContainer); err != nil {
		clog.WithError(err).Debug("MAC address validation issue")
	}

	return config
}

func newEmptyNetworkConfig() *dockerNetworkType.NetworkingConfig {
	return &dockerNetworkType.NetworkingConfig{
		EndpointsConfig: make(map[string]*dockerNetworkType.EndpointSettings),
	}
}

// processEndpoint sanitizes a single network endpoint for the target container.
func processEndpoint(
	sourceEndpoint *dockerNetworkType.EndpointSettings,
	containerID types.ContainerID,
	clientVersion string,
	isHostNetwork bool,
) *dockerNetworkType.EndpointSettings {
	clog := logrus.WithFields(logrus.Fields{
		"container": containerID.ShortID(),
		"version":   clientVersion,
	})

	targetEndpoint := sourceEndpoint.Copy()

	clog.Debug("Copied endpoint settings")

	if isHostNetwork {
		targetEndpoint.Aliases = nil

		clog.Debug("Cleared aliases for host network mode")
	} else if len(targetEndpoint.Aliases) > 0 {
		targetEndpoint.Aliases = filterAliases(targetEndpoint.Aliases, containerID.ShortID())
		clog.WithFields(logrus.Fields{
			"source_aliases": sourceEndpoint.Aliases,
			"target_aliases": targetEndpoint.Aliases,
		}).Debug("Filtered aliases")
	}

	if sourceEndpoint.IPAMConfig != nil && !isHostNetwork {
		targetEndpoint.IPAMConfig = &dockerNetworkType.EndpointIPAMConfig{
			IPv4Address:  sourceEndpoint.IPAMConfig.IPv4Address,
			IPv6Address:  sourceEndpoint.IPAMConfig.IPv6Address,
			LinkLocalIPs: sourceEndpoint.IPAMConfig.LinkLocalIPs,
		}

		clog.Debug("Copied IPAM configuration")
	} else {
		targetEndpoint.IPAMConfig = nil

		if isHostNetwork {
			clog.Debug("Cleared IPAM config for host network mode")
		}
	}

	if versions.LessThan(clientVersion, "1.44") || isHostNetwork {
		targetEndpoint.MacAddress = ""
		targetEndpoint.IPAddress = ""
		targetEndpoint.DNSNames = nil

		if isHostNetwork {
			clog.Debug("Cleared MAC address, IP address, and DNS names for host network mode")
		} else {
			clog.Debug("Cleared MAC address, IP address, and DNS names for legacy API")
		}
	}

	return targetEndpoint
}

// validateMacAddresses verifies the presence of MAC addresses in a container's network configuration
// and logs based on the container's state, network mode, and engine API version.
func validateMacAddresses(
	config *dockerNetworkType.NetworkingConfig,
	containerID types.ContainerID,
	clientVersion string,
	isHostNetwork bool,
	sourceContainer types.Container,
) error {
	clog := logrus.WithFields(logrus.Fields{
		"container": containerID.ShortID(),
		"version":   clientVersion,
	})

	foundMac := false

	var endpoints map[string]*dockerNetworkType.EndpointSettings
	if config != nil {
		endpoints = config.EndpointsConfig
	}

	for networkName, endpoint := range endpoints {
		if endpoint.MacAddress != "" {
			foundMac = true
			clog.WithFields(logrus.Fields{
				"network":     networkName,
				"mac_address": endpoint.MacAddress,
			}).Debug("Found MAC address in config")
		}
	}

	containerInfo := sourceContainer.ContainerInfo()
	isRunning := sourceContainer.IsRunning()

	containerState := "unknown"
	if containerInfo != nil && containerInfo.State != nil {
		containerState = containerInfo.State.Status
	}

	if versions.LessThan(clientVersion, "1.44") {
		if foundMac && !isHostNetwork {
			clog.Warn("Unexpected MAC address in legacy config")

			return fmt.Errorf("%w: API version %s", errUnexpectedMacInLegacy, clientVersion)
		}

		clog.Debug("No MAC address in legacy config, as expected")

		return nil
	}

	if isHostNetwork {
		if foundMac {
			clog.Warn("Unexpected MAC address in host network config")

			return errUnexpectedMacInHost
		}

		clog.Debug("No MAC address in host network mode, as expected")

		return nil
	}

	if !foundMac {
		if !isRunning {
			clog.WithField("state", containerState).
				Debug("No MAC address found for non-running container")

			return nil
		}

		clog.WithField("state", containerState).Warnf(
			"Negotiated API version %s is at least 1.44 but no MAC address found; preservation may not be supported",
			clientVersion,
		)

		return errNoMacInNonHost
	}

	clog.Debug("Verified MAC address presence")

	return nil
}

// filterAliases removes the container's short ID from the list of aliases.
func filterAliases(aliases []string, shortID string) []string {
	result := make([]string, 0, len(aliases))

	for _, alias := range aliases {
		if alias != shortID {
			result = append(result, alias)
		}
	}

	return result
}

// debugLogMacAddress logs MAC address info for a container's network config.
func debugLogMacAddress(
	networkConfig *dockerNetworkType.NetworkingConfig,
	containerID types.ContainerID,
	clientVersion string,
	minSupportedVersion string,
	isHostNetwork bool,
) {
	clog := logrus.WithFields(logrus.Fields{
		"container":   containerID,
		"version":     clientVersion,
		"min_version": minSupportedVersion,
	})

	foundMac := false

	var endpoints map[string]*dockerNetworkType.EndpointSettings
	if networkConfig != nil {
		endpoints = networkConfig.EndpointsConfig
	}

	for networkName, endpoint := range endpoints {
		if endpoint.MacAddress != "" {
			clog.WithFields(logrus.Fields{
				"network":     networkName,
				"mac_address": endpoint.MacAddress,
			}).Debug("Found MAC address in config")

			foundMac = true
		}
	}

	switch {
	case versions.LessThan(clientVersion, minSupportedVersion):
		if foundMac {
			clog.Warn("Unexpected MAC address in legacy config")

			return
		}

		clog.Debug("No MAC address in legacy config, engine will handle")
	case versions.LessThan(clientVersion, "1.44") && !isHostNetwork:
		if foundMac {
			clog.Warn("Unexpected MAC address in legacy config")

			return
		}

		clog.Debug("No MAC address in legacy config, as expected")
	case foundMac:
		clog.Debug("Verified MAC address configuration")
	case !isHostNetwork:
		clog.Warn("No MAC address found in config")
	default:
		clog.Debug("No MAC address in host network mode, as expected")
	}
}
