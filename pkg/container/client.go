package container

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	dockerContainerType "github.com/docker/docker/api/types/container"
	dockerClient "github.com/docker/docker/client"

	"github.com/rcarmo/guerite/pkg/types"
)

// Errors for container health operations.
var (
	errHealthCheckTimeout = errors.New("timeout waiting for container to become healthy")
	errHealthCheckFailed  = errors.New("container health check failed")
)

// minEngineAPIVersion is the floor API version for full network/MAC feature support.
const minEngineAPIVersion = "1.24"

// client is the concrete implementation of types.Client.
//
// It wraps the Docker API client and applies behavior configured via
// ClientOptions: which containers to consider, whether to probe registry
// staleness before a full pull, and runtime-compatibility adjustments.
type client struct {
	api dockerClient.APIClient
	ClientOptions
}

// ClientOptions configures the engine client's container and image behavior.
type ClientOptions struct {
	RemoveVolumes           bool
	IncludeStopped          bool
	IncludeRestarting       bool
	DisableMemorySwappiness bool
	// CPUCopyMode selects how CPU limits and memory swappiness are carried
	// over to a recreated container's host config: "none" strips CPU limits
	// entirely, "full" copies them unchanged, "auto" probes the engine and
	// strips NanoCPUs and disables swappiness when it identifies as Podman.
	CPUCopyMode            string
	ProbeRegistryStaleness bool
}

// NewClient initializes a new types.Client for engine API interactions.
//
// It configures the client using environment variables (DOCKER_HOST,
// DOCKER_API_VERSION) and negotiates an API version, falling back to
// autonegotiation if a forced version is rejected.
func NewClient(opts ClientOptions) types.Client {
	ctx := context.Background()

	cli, err := dockerClient.NewClientWithOpts(
		dockerClient.WithHost(os.Getenv("DOCKER_HOST")),
		dockerClient.WithAPIVersionNegotiation(),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize engine client")
	}

	if version := strings.Trim(os.Getenv("DOCKER_API_VERSION"), "\""); version != "" {
		pingCli, pingErr := dockerClient.NewClientWithOpts(
			dockerClient.WithHost(cli.DaemonHost()),
			dockerClient.WithVersion(version),
		)
		if pingErr != nil {
			logrus.WithError(pingErr).Fatal("Failed to create test client")
		}

		if _, pingErr := pingCli.Ping(ctx); pingErr != nil &&
			strings.Contains(pingErr.Error(), "page not found") {
			logrus.WithFields(logrus.Fields{
				"version":  version,
				"error":    pingErr,
				"endpoint": "/_ping",
			}).Warn("Invalid API version; falling back to autonegotiation")
			cli.NegotiateAPIVersion(ctx)
		} else {
			cli = pingCli
		}
	} else {
		cli.NegotiateAPIVersion(ctx)
	}

	selectedVersion := cli.ClientVersion()

	if serverVersion, err := cli.ServerVersion(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"error":    err,
			"endpoint": "/version",
		}).Error("Failed to retrieve server version")
	} else {
		logrus.WithFields(logrus.Fields{
			"client_version": selectedVersion,
			"server_version": serverVersion.APIVersion,
		}).Debug("Initialized engine client")
	}

	return &client{
		api:           cli,
		ClientOptions: opts,
	}
}

// ListContainers retrieves the containers matching filter.
func (c *client) ListContainers(ctx context.Context, filter types.Filter) ([]types.Container, error) {
	containers, err := ListSourceContainers(ctx, c.api, c.ClientOptions, filter, c.detectPodman(ctx))
	if err != nil {
		logrus.WithError(err).Debug("Failed to list containers")

		return nil, err
	}

	logrus.WithField("count", len(containers)).Debug("Listed containers")

	return containers, nil
}

// ListAllContainers retrieves every container regardless of status.
func (c *client) ListAllContainers(ctx context.Context) ([]types.Container, error) {
	clog := logrus.WithField("list_all", true)

	clog.Debug("Retrieving all container list")

	containers, err := c.api.ContainerList(ctx, dockerContainerType.ListOptions{})
	if err != nil {
		if strings.Contains(err.Error(), "page not found") {
			clog.WithFields(logrus.Fields{
				"error":       err,
				"endpoint":    "/containers/json",
				"api_version": strings.Trim(c.api.ClientVersion(), "\""),
				"docker_host": os.Getenv("DOCKER_HOST"),
			}).Warn("Engine API returned 404 for container list; treating as empty list")

			return []types.Container{}, nil
		}

		clog.WithError(err).Debug("Failed to list all containers")

		return nil, fmt.Errorf("%w: %w", errListContainersFailed, err)
	}

	hostContainers := []types.Container{}

	for _, runningContainer := range containers {
		container, err := GetSourceContainer(ctx, c.api, types.ContainerID(runningContainer.ID))
		if err != nil {
			return nil, err
		}

		hostContainers = append(hostContainers, container)
	}

	clog.WithField("count", len(hostContainers)).Debug("Listed all containers")

	return hostContainers, nil
}

// GetContainer fetches one container by ID.
func (c *client) GetContainer(ctx context.Context, containerID types.ContainerID) (types.Container, error) {
	container, err := GetSourceContainer(ctx, c.api, containerID)
	if err != nil {
		logrus.WithError(err).
			WithField("container_id", containerID).
			Debug("Failed to get container")

		return nil, err
	}

	logrus.WithField("container_id", containerID).Debug("Retrieved container details")

	return container, nil
}

// PullImage ensures container's configured image is present locally and
// returns the resulting image ID, applying the registry staleness probe
// when enabled.
func (c *client) PullImage(ctx context.Context, container types.Container) (types.ImageID, error) {
	imgClient := newImageClient(c.api, c.ProbeRegistryStaleness)

	newImageID, err := imgClient.PullImage(ctx, container)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"container": container.Name(),
			"image":     container.ImageName(),
		}).Debug("Failed to pull image")

		return newImageID, err
	}

	logrus.WithFields(logrus.Fields{
		"container": container.Name(),
		"image":     container.ImageName(),
		"image_id":  newImageID.ShortID(),
	}).Debug("Pulled image")

	return newImageID, nil
}

// CreateContainer creates (but does not start) a new container using
// container's captured create config and host config, under name.
func (c *client) CreateContainer(
	ctx context.Context,
	container types.Container,
	name string,
) (types.ContainerID, error) {
	clientVersion := c.GetVersion()

	isPodman := c.CPUCopyMode == cpuCopyModeAuto && c.detectPodman(ctx)

	disableMemorySwappiness := c.DisableMemorySwappiness || isPodman

	newID, err := CreateTargetContainer(
		ctx,
		c.api,
		container,
		name,
		clientVersion,
		minEngineAPIVersion,
		disableMemorySwappiness,
		c.CPUCopyMode,
		isPodman,
	)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"container": container.Name(),
			"image":     container.ImageName(),
			"name":      name,
		}).Debug("Failed to create new container")

		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"container": container.Name(),
		"new_id":    newID.ShortID(),
		"name":      name,
	}).Debug("Created new container")

	return newID, nil
}

// detectPodman reports whether the engine daemon is Podman rather than
// Docker. Podman and Docker diverge on how they apply memory swappiness
// when copying a container's host config, so "auto" CPU copy mode needs
// this to decide whether to disable it for compatibility.
func (c *client) detectPodman(ctx context.Context) bool {
	info, err := c.GetInfo(ctx)
	if err != nil {
		logrus.WithError(err).
			Debug("Failed to get system info for Podman detection, assuming Docker")

		return false
	}

	if info.Name == "podman" {
		return true
	}

	return strings.Contains(strings.ToLower(info.ServerVersion), "podman")
}

// StartContainer starts a previously created container.
func (c *client) StartContainer(ctx context.Context, containerID types.ContainerID) error {
	return StartTargetContainerByID(ctx, c.api, containerID)
}

// StopContainer stops a running container without removing it.
func (c *client) StopContainer(ctx context.Context, container types.Container, timeout time.Duration) error {
	err := StopSourceContainer(ctx, c.api, container, timeout)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"container": container.Name(),
			"image":     container.ImageName(),
		}).Debug("Failed to stop container")

		return err
	}

	logrus.WithFields(logrus.Fields{
		"container": container.Name(),
		"image":     container.ImageName(),
	}).Debug("Stopped container")

	return nil
}

// RemoveContainer removes a stopped container.
func (c *client) RemoveContainer(ctx context.Context, containerID types.ContainerID, force bool) error {
	opts := dockerContainerType.RemoveOptions{Force: force, RemoveVolumes: c.RemoveVolumes}
	if err := c.api.ContainerRemove(ctx, string(containerID), opts); err != nil {
		return fmt.Errorf("%w: %w", errRemoveContainerFailed, err)
	}

	return nil
}

// RenameContainer renames an existing container to newName.
func (c *client) RenameContainer(ctx context.Context, containerID types.ContainerID, newName string) error {
	err := RenameTargetContainer(ctx, c.api, containerID, newName)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"container_id": containerID,
			"new_name":     newName,
		}).Debug("Failed to rename container")

		return err
	}

	logrus.WithFields(logrus.Fields{
		"container_id": containerID,
		"new_name":     newName,
	}).Debug("Renamed container")

	return nil
}

// PruneImages removes dangling images not present in keep.
func (c *client) PruneImages(ctx context.Context, keep []types.ImageID) ([]types.ImageID, int64, error) {
	imgClient := newImageClient(c.api, c.ProbeRegistryStaleness)

	return imgClient.PruneImages(ctx, keep)
}

// GetVersion returns the client's own API version.
func (c *client) GetVersion() string {
	return strings.Trim(c.api.ClientVersion(), "\"")
}

// GetInfo returns system information from the engine daemon.
func (c *client) GetInfo(ctx context.Context) (types.SystemInfo, error) {
	info, err := c.api.Info(ctx)
	if err != nil {
		return types.SystemInfo{}, fmt.Errorf("failed to get system info: %w", err)
	}

	result := types.SystemInfo{
		Name:            info.Name,
		ServerVersion:   info.ServerVersion,
		OSType:          info.OSType,
		OperatingSystem: info.OperatingSystem,
		Driver:          info.Driver,
	}

	if info.RegistryConfig != nil {
		insecure := make([]string, 0, len(info.RegistryConfig.InsecureRegistryCIDRs))
		for _, cidr := range info.RegistryConfig.InsecureRegistryCIDRs {
			if cidr != nil {
				insecure = append(insecure, cidr.String())
			}
		}

		registries := make(map[string][]string, len(info.RegistryConfig.IndexConfigs))
		for name, idx := range info.RegistryConfig.IndexConfigs {
			if idx == nil {
				continue
			}

			registries[name] = idx.Mirrors
		}

		result.RegistryConfig = &types.RegistryConfig{
			Mirrors:               info.RegistryConfig.Mirrors,
			InsecureRegistryCIDRs: insecure,
			Registries:            registries,
		}
	}

	return result, nil
}

// GetServerVersion returns version information from the engine daemon.
func (c *client) GetServerVersion(ctx context.Context) (types.VersionInfo, error) {
	v, err := c.api.ServerVersion(ctx)
	if err != nil {
		return types.VersionInfo{}, fmt.Errorf("failed to get server version: %w", err)
	}

	return types.VersionInfo{
		Version:       v.Version,
		APIVersion:    v.APIVersion,
		MinAPIVersion: v.MinAPIVersion,
		GitCommit:     v.GitCommit,
		GoVersion:     v.GoVersion,
		Os:            v.Os,
		Arch:          v.Arch,
		KernelVersion: v.KernelVersion,
		Experimental:  v.Experimental,
		BuildTime:     v.BuildTime,
	}, nil
}

// GetDiskUsage returns disk usage statistics from the engine daemon.
func (c *client) GetDiskUsage(ctx context.Context) (types.DiskUsage, error) {
	usage, err := c.api.DiskUsage(ctx, dockerClient.DiskUsageOptions{})
	if err != nil {
		return types.DiskUsage{}, fmt.Errorf("failed to get disk usage: %w", err)
	}

	result := types.DiskUsage{LayersSize: usage.LayersSize}

	for _, img := range usage.Images {
		result.Images = append(result.Images, types.ImageSummary{
			ID:          img.ID,
			ParentID:    img.ParentID,
			RepoTags:    img.RepoTags,
			RepoDigests: img.RepoDigests,
			Created:     img.Created,
			Size:        img.Size,
			SharedSize:  img.SharedSize,
			VirtualSize: img.Size,
			Labels:      img.Labels,
			Containers:  img.Containers,
		})
	}

	for _, ctr := range usage.Containers {
		result.Containers = append(result.Containers, types.ContainerSummary{
			ID:      ctr.ID,
			Names:   ctr.Names,
			Image:   ctr.Image,
			ImageID: ctr.ImageID,
			Command: ctr.Command,
			Created: ctr.Created,
			State:   ctr.State,
			Status:  ctr.Status,
			Labels:  ctr.Labels,
		})
	}

	for _, vol := range usage.Volumes {
		result.Volumes = append(result.Volumes, types.VolumeSummary{
			Name:       vol.Name,
			Driver:     vol.Driver,
			Mountpoint: vol.Mountpoint,
			CreatedAt:  vol.CreatedAt,
			Labels:     vol.Labels,
			Scope:      vol.Scope,
		})
	}

	return result, nil
}

// ExecuteCommand runs a lifecycle hook command inside a container.
func (c *client) ExecuteCommand(
	ctx context.Context,
	container types.Container,
	command string,
	timeout time.Duration,
	uid, gid int,
) (bool, error) {
	clog := logrus.WithField("container_id", container.ID())

	metadataJSON, err := generateContainerMetadata(container)
	if err != nil {
		clog.WithError(err).Debug("Failed to generate container metadata")

		return false, err
	}

	var user string

	switch {
	case uid > 0 && gid > 0:
		user = fmt.Sprintf("%d:%d", uid, gid)
	case uid > 0:
		user = strconv.Itoa(uid)
	case gid > 0:
		user = fmt.Sprintf(":%d", gid)
	}

	if user != "" {
		clog.WithField("user", user).Debug("Setting exec user")
	}

	clog.WithField("command", command).Debug("Creating exec instance")

	execConfig := dockerContainerType.ExecOptions{
		Tty:    true,
		Detach: false,
		Cmd:    []string{"sh", "-c", command},
		Env:    []string{"GUERITE_CONTAINER=" + metadataJSON},
		User:   user,
	}

	exec, err := c.api.ContainerExecCreate(ctx, string(container.ID()), execConfig)
	if err != nil {
		clog.WithError(err).Debug("Failed to create exec instance")

		return false, fmt.Errorf("%w: %w", errCreateExecFailed, err)
	}

	clog.WithField("exec_id", exec.ID).Debug("Starting exec instance")

	if err := c.api.ContainerExecStart(ctx, exec.ID, dockerContainerType.ExecStartOptions{Tty: true}); err != nil {
		clog.WithError(err).Debug("Failed to start exec instance")

		return false, fmt.Errorf("%w: %w", errStartExecFailed, err)
	}

	output, err := c.captureExecOutput(ctx, exec.ID)
	if err != nil {
		clog.WithError(err).Warn("Failed to capture command output")
	}

	skipUpdate, err := c.waitForExecOrTimeout(ctx, exec.ID, output, timeout)
	if err != nil {
		clog.WithError(err).Debug("Failed to inspect exec instance")

		return skipUpdate, err
	}

	clog.WithFields(logrus.Fields{
		"command":     command,
		"output":      output,
		"skip_update": skipUpdate,
	}).Debug("Executed command")

	return skipUpdate, nil
}

// generateContainerMetadata creates a JSON-formatted string of container
// metadata, exposed to lifecycle hook commands via an environment variable.
func generateContainerMetadata(container types.Container) (string, error) {
	labels := make(map[string]string)

	if containerInfo := container.ContainerInfo(); containerInfo != nil &&
		containerInfo.Config != nil {
		for key, value := range containerInfo.Config.Labels {
			if strings.HasPrefix(key, "guerite.") {
				labels[key] = value
			}
		}
	}

	metadata := struct {
		Name       string            `json:"name"`
		ID         string            `json:"id"`
		ImageName  string            `json:"image_name"`
		StopSignal string            `json:"stop_signal"`
		Labels     map[string]string `json:"labels"`
	}{
		Name:       container.Name(),
		ID:         string(container.ID()),
		ImageName:  container.ImageName(),
		StopSignal: container.StopSignal(),
		Labels:     labels,
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal container metadata: %w", err)
	}

	return string(metadataJSON), nil
}

// captureExecOutput attaches to an exec instance and captures its output.
func (c *client) captureExecOutput(ctx context.Context, execID string) (string, error) {
	clog := logrus.WithField("exec_id", execID)

	clog.Debug("Attaching to exec instance")

	response, err := c.api.ContainerExecAttach(ctx, execID, dockerContainerType.ExecStartOptions{Tty: true})
	if err != nil {
		clog.WithError(err).Debug("Failed to attach to exec instance")

		return "", fmt.Errorf("%w: %w", errAttachExecFailed, err)
	}

	defer response.Close()

	var writer bytes.Buffer

	written, err := writer.ReadFrom(response.Reader)
	if err != nil {
		clog.WithError(err).Debug("Failed to read exec output")

		return "", fmt.Errorf("%w: %w", errReadExecOutputFailed, err)
	}

	if written > 0 {
		output := strings.TrimSpace(writer.String())
		clog.WithField("output", output).Debug("Captured exec output")

		return output, nil
	}

	return "", nil
}

// waitForExecOrTimeout waits for an exec instance to complete or times out.
//
// An exit code of 75 (EX_TEMPFAIL) is treated as a request from the hook
// to skip the action currently in progress, a convention carried from
// sysexits.h.
func (c *client) waitForExecOrTimeout(
	ctx context.Context,
	execID string,
	execOutput string,
	timeout time.Duration,
) (bool, error) {
	const exTempFail = 75

	clog := logrus.WithField("exec_id", execID)

	execCtx := ctx

	if timeout > 0 {
		var cancel context.CancelFunc

		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for {
		execInspect, err := c.api.ContainerExecInspect(execCtx, execID)
		if err != nil {
			clog.WithError(err).Debug("Failed to inspect exec instance")

			return false, fmt.Errorf("%w: %w", errInspectExecFailed, err)
		}

		clog.WithFields(logrus.Fields{
			"exit_code": execInspect.ExitCode,
			"running":   execInspect.Running,
		}).Debug("Checked exec status")

		if execInspect.Running {
			time.Sleep(1 * time.Second)

			continue
		}

		if len(execOutput) > 0 {
			clog.WithField("output", execOutput).Info("Command output captured")
		}

		if execInspect.ExitCode == exTempFail {
			return true, nil
		}

		if execInspect.ExitCode > 0 {
			err := fmt.Errorf(
				"%w with exit code %d: %s",
				errCommandFailed,
				execInspect.ExitCode,
				execOutput,
			)
			clog.WithError(err).Debug("Command execution failed")

			return false, err
		}

		break
	}

	return false, nil
}

// WaitForContainerHealthy polls a container's health status until it
// reports healthy or timeout elapses.
func (c *client) WaitForContainerHealthy(
	ctx context.Context,
	containerID types.ContainerID,
	timeout time.Duration,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clog := logrus.WithField("container_id", containerID)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			clog.Warn("Timeout waiting for container to become healthy")

			return fmt.Errorf("%w: %s", errHealthCheckTimeout, containerID)
		case <-ticker.C:
			inspect, err := c.api.ContainerInspect(ctx, string(containerID))
			if err != nil {
				clog.WithError(err).Debug("Failed to inspect container for health check")

				return fmt.Errorf("%w: %w", errInspectContainerFailed, err)
			}

			if inspect.State == nil || inspect.State.Health == nil {
				clog.Debug("No health check configured for container, proceeding")

				return nil
			}

			status := inspect.State.Health.Status
			clog.WithField("health_status", status).Debug("Checked container health status")

			switch status {
			case dockerContainerType.Healthy:
				clog.Debug("Container is now healthy")

				return nil
			case dockerContainerType.Unhealthy:
				clog.Warn("Container health check failed")

				return fmt.Errorf("%w: %s", errHealthCheckFailed, containerID)
			}
		}
	}
}
