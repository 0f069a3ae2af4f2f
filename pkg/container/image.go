package container

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/pkg/registry"
	"github.com/rcarmo/guerite/pkg/registry/digest"
	"github.com/rcarmo/guerite/pkg/types"
)

// imageClient manages image-related engine operations: pulling, staleness
// probing and pruning.
type imageClient struct {
	api            client.APIClient
	probeStaleness bool // skip the full pull when a registry digest probe confirms the image is current
}

// newImageClient creates a new imageClient instance.
func newImageClient(api client.APIClient, probeStaleness bool) imageClient {
	return imageClient{api: api, probeStaleness: probeStaleness}
}

// PullImage ensures targetContainer's configured image is present locally,
// pulling it if needed, and returns the resulting image ID.
//
// The no-pull setting is not consulted here; the action engine checks it
// before calling. Pinned (sha256-only) image references are never pulled.
func (c imageClient) PullImage(
	ctx context.Context,
	targetContainer types.Container,
) (types.ImageID, error) {
	containerName := targetContainer.Name()
	imageName := targetContainer.ImageName()

	fields := logrus.Fields{
		"image":     imageName,
		"container": containerName,
	}

	if strings.HasPrefix(imageName, "sha256:") {
		return targetContainer.SafeImageID(), errPinnedImage
	}

	logrus.WithFields(fields).Debug("Loading registry authentication credentials")

	opts, err := registry.GetPullOptions(imageName)
	if err != nil {
		return targetContainer.SafeImageID(), fmt.Errorf(
			"failed to get pull options for %s: %w",
			imageName,
			err,
		)
	}

	if c.probeStaleness {
		match, err := digest.CompareDigest(ctx, targetContainer, opts.RegistryAuth)

		switch {
		case err != nil:
			logrus.WithFields(fields).WithError(err).
				Debug("Registry staleness probe failed, falling back to a full pull")
		case match:
			logrus.WithFields(fields).Debug("Registry digest matches local image, skipping pull")

			return targetContainer.SafeImageID(), nil
		default:
			logrus.WithFields(fields).Debug("Registry digest differs, pulling image")
		}
	}

	logrus.WithFields(fields).Debug("Pulling image")

	response, err := c.api.ImagePull(ctx, imageName, opts)
	if err != nil {
		return targetContainer.SafeImageID(), fmt.Errorf(
			"failed to pull image %s: %w",
			imageName,
			err,
		)
	}
	defer response.Close()

	// Read the response fully to avoid aborting the pull prematurely.
	if _, err = io.ReadAll(response); err != nil {
		return targetContainer.SafeImageID(), fmt.Errorf(
			"failed to read pull response for %s: %w",
			imageName,
			err,
		)
	}

	newImageInfo, err := c.api.ImageInspect(ctx, imageName)
	if err != nil {
		return targetContainer.SafeImageID(), fmt.Errorf(
			"failed to inspect pulled image %s: %w",
			imageName,
			err,
		)
	}

	newImageID := types.ImageID(newImageInfo.ID)
	logrus.WithFields(fields).WithField("image_id", newImageID.ShortID()).
		Debug("Pulled image")

	return newImageID, nil
}

// PruneImages asks the engine to prune all dangling images. The IDs in keep
// are not sent to the engine, so the prune does not spare them; they are only
// left out of the returned list.
//
// Returns the IDs of removed images (minus keep) and the total space reclaimed.
func (c imageClient) PruneImages(
	ctx context.Context,
	keep []types.ImageID,
) ([]types.ImageID, int64, error) {
	keepSet := make(map[types.ImageID]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	pruneFilters := filters.NewArgs(filters.Arg("dangling", "true"))

	report, err := c.api.ImagesPrune(ctx, pruneFilters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to prune images: %w", err)
	}

	removed := make([]types.ImageID, 0, len(report.ImagesDeleted))

	for _, item := range report.ImagesDeleted {
		id := types.ImageID(item.Deleted)
		if id == "" {
			id = types.ImageID(item.Untagged)
		}

		if _, kept := keepSet[id]; kept || id == "" {
			continue
		}

		removed = append(removed, id)
	}

	logrus.WithFields(logrus.Fields{
		"removed":         len(removed),
		"space_reclaimed": report.SpaceReclaimed,
	}).Debug("Pruned dangling images")

	return removed, int64(report.SpaceReclaimed), nil
}

// RemoveImageByID deletes a single image from the engine by its ID, used by
// the action engine to clean up a rollback artifact once it commits.
func (c imageClient) RemoveImageByID(ctx context.Context, imageID types.ImageID) error {
	logrus.WithField("image_id", imageID.ShortID()).Debug("Removing image")

	_, err := c.api.ImageRemove(
		ctx,
		string(imageID),
		image.RemoveOptions{
			Force:         true,
			PruneChildren: true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove image %s: %w", imageID, err)
	}

	return nil
}
