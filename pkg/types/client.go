package types

import (
	"context"
	"time"
)

// Client is the narrow Engine Client capability set the action engine,
// inventory and registry staleness probe run against. It is small by
// design: every method here is something the action state machine or
// inventory listing actually calls, not a general Docker API wrapper.
type Client interface {
	// ListContainers retrieves the containers matching filter.
	ListContainers(ctx context.Context, filter Filter) ([]Container, error)

	// ListAllContainers retrieves every container regardless of status,
	// used by the inventory's new-name detection pass.
	ListAllContainers(ctx context.Context) ([]Container, error)

	// GetContainer fetches one container by ID.
	GetContainer(ctx context.Context, containerID ContainerID) (Container, error)

	// PullImage pulls the image a container references and returns the
	// resulting local image ID. Credentials come from the Docker config
	// store unless the registry staleness probe already resolved them.
	PullImage(ctx context.Context, container Container) (ImageID, error)

	// CreateContainer creates (but does not start) a new container using
	// container's captured create config and host config, under name.
	CreateContainer(ctx context.Context, container Container, name string) (ContainerID, error)

	// StartContainer starts a previously created container.
	StartContainer(ctx context.Context, containerID ContainerID) error

	// StopContainer stops a running container, escalating to a forced kill
	// if it has not exited within timeout.
	StopContainer(ctx context.Context, container Container, timeout time.Duration) error

	// RemoveContainer removes a stopped container.
	RemoveContainer(ctx context.Context, containerID ContainerID, force bool) error

	// RenameContainer renames an existing container.
	RenameContainer(ctx context.Context, containerID ContainerID, newName string) error

	// ExecuteCommand runs a lifecycle hook command inside a container.
	// The bool result reports whether the engine should treat the hook
	// as having requested a skip (a teacher convention kept verbatim:
	// exit code 75 means "skip this action").
	ExecuteCommand(ctx context.Context, container Container, command string, timeout time.Duration, uid, gid int) (skip bool, err error)

	// WaitForContainerHealthy polls a container's health status until it
	// reports healthy or timeout elapses. Returns immediately if the
	// container declares no healthcheck.
	WaitForContainerHealthy(ctx context.Context, containerID ContainerID, timeout time.Duration) error

	// PruneImages removes dangling and unused images, skipping any image
	// still referenced by a live rollback artifact, and returns the IDs
	// removed and the total bytes reclaimed.
	PruneImages(ctx context.Context, keep []ImageID) ([]ImageID, int64, error)

	// GetVersion returns the client's own API version string.
	GetVersion() string

	// GetInfo returns system information from the container engine.
	GetInfo(ctx context.Context) (SystemInfo, error)

	// GetServerVersion returns version information from the engine daemon.
	GetServerVersion(ctx context.Context) (VersionInfo, error)

	// GetDiskUsage returns disk usage statistics, surfaced on the health endpoint.
	GetDiskUsage(ctx context.Context) (DiskUsage, error)
}

// SystemInfo represents system information from the container engine.
type SystemInfo struct {
	Name            string          `json:"name"`
	ServerVersion   string          `json:"server_version"`
	OSType          string          `json:"os_type"`
	OperatingSystem string          `json:"operating_system"`
	Driver          string          `json:"driver"`
	RegistryConfig  *RegistryConfig `json:"registry_config,omitempty"`
}

// VersionInfo represents version information from the container engine daemon.
type VersionInfo struct {
	Version       string `json:"version"`
	APIVersion    string `json:"api_version"`
	MinAPIVersion string `json:"min_api_version"`
	GitCommit     string `json:"git_commit"`
	GoVersion     string `json:"go_version"`
	Os            string `json:"os"`
	Arch          string `json:"arch"`
	KernelVersion string `json:"kernel_version"`
	Experimental  bool   `json:"experimental"`
	BuildTime     string `json:"build_time"`
}

// RegistryConfig represents registry configuration reported by the engine daemon.
type RegistryConfig struct {
	Mirrors               []string            `json:"mirrors,omitempty"`
	InsecureRegistryCIDRs []string            `json:"insecure_registry_cidrs,omitempty"`
	Registries            map[string][]string `json:"registries,omitempty"`
}

// DiskUsage represents disk usage information from the container engine.
type DiskUsage struct {
	LayersSize int64              `json:"layers_size"`
	Images     []ImageSummary     `json:"images,omitempty"`
	Containers []ContainerSummary `json:"containers,omitempty"`
	Volumes    []VolumeSummary    `json:"volumes,omitempty"`
}

// ImageSummary represents summary information about an image.
type ImageSummary struct {
	ID          string            `json:"id"`
	ParentID    string            `json:"parent_id,omitempty"`
	RepoTags    []string          `json:"repo_tags,omitempty"`
	RepoDigests []string          `json:"repo_digests,omitempty"`
	Created     int64             `json:"created"`
	Size        int64             `json:"size"`
	SharedSize  int64             `json:"shared_size"`
	VirtualSize int64             `json:"virtual_size"`
	Labels      map[string]string `json:"labels,omitempty"`
	Containers  int64             `json:"containers"`
}

// ContainerSummary represents summary information about a container.
type ContainerSummary struct {
	ID         string            `json:"id"`
	Names      []string          `json:"names,omitempty"`
	Image      string            `json:"image"`
	ImageID    string            `json:"image_id"`
	Command    string            `json:"command"`
	Created    int64             `json:"created"`
	Ports      []Port            `json:"ports,omitempty"`
	SizeRw     int64             `json:"size_rw,omitempty"`
	SizeRootFs int64             `json:"size_root_fs,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	State      string            `json:"state"`
	Status     string            `json:"status"`
}

// VolumeSummary represents summary information about a volume.
type VolumeSummary struct {
	Name       string            `json:"name"`
	Driver     string            `json:"driver"`
	Mountpoint string            `json:"mountpoint"`
	CreatedAt  string            `json:"created_at,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	Scope      string            `json:"scope"`
}

// Port represents a container port mapping.
type Port struct {
	IP          string `json:"ip,omitempty"`
	PrivatePort uint16 `json:"private_port"`
	PublicPort  uint16 `json:"public_port,omitempty"`
	Type        string `json:"type"`
}
