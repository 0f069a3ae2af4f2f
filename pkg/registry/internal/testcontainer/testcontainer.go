// Package testcontainer builds container.Container fixtures for the
// registry package's tests, grounded on the real inspect/image shapes
// pkg/container.NewContainer expects.
package testcontainer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/go-connections/nat"

	dockerContainer "github.com/docker/docker/api/types/container"

	"github.com/rcarmo/guerite/pkg/container"
	"github.com/rcarmo/guerite/pkg/types"
)

const mockIDLength = 64

// Create builds a container fixture valid for registry tests.
func Create(id string, name string, image string, created time.Time) types.Container {
	content := dockerContainer.InspectResponse{
		ContainerJSONBase: &dockerContainer.ContainerJSONBase{
			ID:      id,
			Image:   image,
			Name:    name,
			Created: created.String(),
			HostConfig: &dockerContainer.HostConfig{
				PortBindings: map[nat.Port][]nat.PortBinding{},
			},
		},
		Config: &dockerContainer.Config{
			Image:        image,
			Labels:       make(map[string]string),
			ExposedPorts: map[nat.Port]struct{}{},
		},
	}

	return container.NewContainer(&content, CreateImageInfo(image))
}

// CreateImageInfo returns a minimal image inspect fixture for image.
func CreateImageInfo(mockImage string) *image.InspectResponse {
	return &image.InspectResponse{
		ID:          mockImage,
		RepoDigests: []string{mockImage},
	}
}

// CreateWithImageInfo builds a container fixture carrying custom image info.
func CreateWithImageInfo(id string, name string, image string, created time.Time, imageInfo image.InspectResponse) types.Container {
	return CreateWithImageInfoP(id, name, image, created, &imageInfo)
}

// CreateWithImageInfoP is CreateWithImageInfo taking a pointer to the image info.
func CreateWithImageInfoP(id string, name string, image string, created time.Time, imageInfo *image.InspectResponse) types.Container {
	content := dockerContainer.InspectResponse{
		ContainerJSONBase: &dockerContainer.ContainerJSONBase{
			ID:      id,
			Image:   image,
			Name:    name,
			Created: created.String(),
		},
		Config: &dockerContainer.Config{
			Image:  image,
			Labels: make(map[string]string),
		},
	}

	return container.NewContainer(&content, imageInfo)
}

// CreateWithDigest builds a container fixture whose image reports digest.
func CreateWithDigest(id string, name string, image string, created time.Time, digest string) types.Container {
	c := Create(id, name, image, created)
	c.ImageInfo().RepoDigests = []string{digest}

	return c
}

// CreateWithConfig builds a container fixture with explicit running state and config.
func CreateWithConfig(id string, name string, image string, running bool, restarting bool, created time.Time, config *dockerContainer.Config) types.Container {
	content := dockerContainer.InspectResponse{
		ContainerJSONBase: &dockerContainer.ContainerJSONBase{
			ID:    id,
			Image: image,
			Name:  name,
			State: &dockerContainer.State{
				Running:    running,
				Restarting: restarting,
			},
			Created: created.String(),
			HostConfig: &dockerContainer.HostConfig{
				PortBindings: map[nat.Port][]nat.PortBinding{},
			},
		},
		Config: config,
	}

	return container.NewContainer(&content, CreateImageInfo(image))
}

// CreateForProgress builds a container fixture and paired new image ID for
// progress-tracking tests.
func CreateForProgress(index int, idPrefix int, nameFormat string) (types.Container, types.ImageID) {
	indexStr := strconv.Itoa(idPrefix + index)
	mockID := indexStr + strings.Repeat("0", mockIDLength-3-len(indexStr))
	contID := "c79" + mockID
	contName := fmt.Sprintf(nameFormat, index+1)
	oldImgID := "01d" + mockID
	newImgID := "d0a" + mockID
	imageName := fmt.Sprintf("mock/%s:latest", contName)
	config := &dockerContainer.Config{
		Image: imageName,
	}
	c := CreateWithConfig(contID, contName, oldImgID, true, false, time.Now(), config)

	return c, types.ImageID(newImgID)
}

// CreateWithLinks builds a container fixture declaring legacy container links.
func CreateWithLinks(id string, name string, image string, created time.Time, links []string, imageInfo *image.InspectResponse) types.Container {
	content := dockerContainer.InspectResponse{
		ContainerJSONBase: &dockerContainer.ContainerJSONBase{
			ID:      id,
			Image:   image,
			Name:    name,
			Created: created.String(),
			HostConfig: &dockerContainer.HostConfig{
				Links: links,
			},
		},
		Config: &dockerContainer.Config{
			Image:  image,
			Labels: make(map[string]string),
		},
	}

	return container.NewContainer(&content, imageInfo)
}
