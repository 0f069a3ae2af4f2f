package container

import "errors"

var (
	// errCommandFailed is returned when an executed lifecycle command fails with a non-zero exit code.
	errCommandFailed = errors.New("command execution failed")
	// errNoImageInfo indicates that no image information is available for a container.
	// It is returned by VerifyConfiguration when imageInfo is nil.
	errNoImageInfo = errors.New("no available image info")
	// errNoContainerInfo indicates that no container information is available.
	// It is returned by VerifyConfiguration when containerInfo is nil.
	errNoContainerInfo = errors.New("no available container info")
	// errInvalidConfig indicates an invalid or missing container configuration.
	// It is returned by VerifyConfiguration when Config or HostConfig is nil.
	errInvalidConfig       = errors.New("container configuration missing or invalid")
	errLabelNotFound = errors.New("label was not found in container")
	errPinnedImage   = errors.New("container uses a pinned image and cannot be pulled")

	errListContainersFailed = errors.New("failed to list containers")
	errCreateExecFailed     = errors.New("failed to create exec instance")
	errStartExecFailed      = errors.New("failed to start exec instance")
	errAttachExecFailed     = errors.New("failed to attach to exec instance")
	errReadExecOutputFailed = errors.New("failed to read exec output")
	errInspectExecFailed    = errors.New("failed to inspect exec instance")

	errInspectContainerFailed = errors.New("failed to inspect container")
	errStopContainerFailed    = errors.New("failed to stop container")
	errRemoveContainerFailed  = errors.New("failed to remove container")
	errCreateContainerFailed  = errors.New("failed to create container")
	errStartContainerFailed   = errors.New("failed to start container")
	errRenameContainerFailed  = errors.New("failed to rename container")

	errUnexpectedMacInLegacy = errors.New("unexpected MAC address in legacy config")
	errUnexpectedMacInHost   = errors.New("unexpected MAC address in host network mode")
	errNoMacInNonHost        = errors.New("missing MAC address for running container in non-host network")
)
