package container

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	cerrdefs "github.com/containerd/errdefs"
	dockerImage "github.com/docker/docker/api/types/image"
	dockerClient "github.com/docker/docker/client"

	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/types"
)

var _ = ginkgo.Describe("the image client", func() {
	var (
		docker     *dockerClient.Client
		mockServer *ghttp.Server
	)

	ginkgo.BeforeEach(func() {
		mockServer = ghttp.NewServer()
		docker, _ = dockerClient.NewClientWithOpts(
			dockerClient.WithHost(mockServer.URL()),
			dockerClient.WithHTTPClient(mockServer.HTTPTestServer.Client()))
	})
	ginkgo.AfterEach(func() {
		mockServer.Close()
	})

	ginkgo.Describe("PullImage", func() {
		ginkgo.When("the image reference is pinned by digest", func() {
			ginkgo.It("skips the pull and returns the container's current image ID", func() {
				pinned := MockContainer(
					WithImageName("sha256:fa5269854a5e615e51a72b17ad3fd1e01268f278a6684c8ed3c5f0cdce3f230b"),
				)

				i := newImageClient(docker, false)

				id, err := i.PullImage(context.Background(), pinned)
				gomega.Expect(err).To(gomega.MatchError(errPinnedImage))
				gomega.Expect(id).To(gomega.Equal(pinned.SafeImageID()))
			})
		})

		ginkgo.When("the pull succeeds", func() {
			ginkgo.It("returns the newly pulled image's ID", func() {
				source := MockContainer(WithImageName("guerite-fixture:latest"))
				newImageID := "sha256:" + util.GenerateRandomSHA256()

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", gomega.HaveSuffix("/images/create")),
						ghttp.RespondWith(http.StatusOK, `{"status":"Pull complete"}`),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest(
							"GET",
							gomega.HaveSuffix("/images/guerite-fixture:latest/json"),
						),
						ghttp.RespondWithJSONEncoded(http.StatusOK, dockerImage.InspectResponse{
							ID: newImageID,
						}),
					),
				)

				i := newImageClient(docker, false)

				id, err := i.PullImage(context.Background(), source)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(id).To(gomega.Equal(types.ImageID(newImageID)))
			})
		})

		ginkgo.When("the registry pull fails", func() {
			ginkgo.It("returns the container's current image ID alongside the error", func() {
				source := MockContainer(WithImageName("guerite-fixture:latest"))

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", gomega.HaveSuffix("/images/create")),
						ghttp.RespondWith(http.StatusInternalServerError, `{"message":"pull failed"}`),
					),
				)

				i := newImageClient(docker, false)

				id, err := i.PullImage(context.Background(), source)
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(id).To(gomega.Equal(source.SafeImageID()))
			})
		})

		ginkgo.When("inspecting the freshly pulled image fails", func() {
			ginkgo.It("returns the container's current image ID alongside the error", func() {
				source := MockContainer(WithImageName("guerite-fixture:latest"))

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", gomega.HaveSuffix("/images/create")),
						ghttp.RespondWith(http.StatusOK, `{"status":"Pull complete"}`),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest(
							"GET",
							gomega.HaveSuffix("/images/guerite-fixture:latest/json"),
						),
						ghttp.RespondWithJSONEncoded(
							http.StatusNotFound,
							map[string]string{"message": "No such image"},
						),
					),
				)

				i := newImageClient(docker, false)

				id, err := i.PullImage(context.Background(), source)
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(id).To(gomega.Equal(source.SafeImageID()))
			})
		})
	})

	ginkgo.Describe("PruneImages", func() {
		ginkgo.When("the engine reports dangling images", func() {
			ginkgo.It("returns the removed IDs minus anything kept, and the reclaimed space", func() {
				removedID := "sha256:" + util.GenerateRandomSHA256()
				keptID := "sha256:" + util.GenerateRandomSHA256()

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", gomega.HaveSuffix("/images/prune")),
						ghttp.RespondWithJSONEncoded(http.StatusOK, dockerImage.PruneReport{
							ImagesDeleted: []dockerImage.DeleteResponse{
								{Deleted: removedID},
								{Deleted: keptID},
							},
							SpaceReclaimed: 4096,
						}),
					),
				)

				i := newImageClient(docker, false)

				removed, reclaimed, err := i.PruneImages(
					context.Background(),
					[]types.ImageID{types.ImageID(keptID)},
				)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(removed).To(gomega.ConsistOf(types.ImageID(removedID)))
				gomega.Expect(reclaimed).To(gomega.Equal(int64(4096)))
			})
		})

		ginkgo.When("the engine call fails", func() {
			ginkgo.It("returns an error", func() {
				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", gomega.HaveSuffix("/images/prune")),
						ghttp.RespondWith(http.StatusInternalServerError, `{"message":"boom"}`),
					),
				)

				i := newImageClient(docker, false)

				_, _, err := i.PruneImages(context.Background(), nil)
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("RemoveImageByID", func() {
		ginkgo.When("the image exists", func() {
			ginkgo.It("removes it without error", func() {
				imageID := util.GenerateRandomSHA256()

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("DELETE", gomega.HaveSuffix("/images/"+imageID)),
						ghttp.RespondWithJSONEncoded(http.StatusOK, []dockerImage.DeleteResponse{
							{Deleted: imageID},
						}),
					),
				)

				i := newImageClient(docker, false)

				err := i.RemoveImageByID(context.Background(), types.ImageID(imageID))
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			})
		})

		ginkgo.When("the image is not found", func() {
			ginkgo.It("returns a not-found error", func() {
				imageID := util.GenerateRandomSHA256()

				mockServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("DELETE", gomega.HaveSuffix("/images/"+imageID)),
						ghttp.RespondWithJSONEncoded(
							http.StatusNotFound,
							map[string]string{"message": "No such image"},
						),
					),
				)

				i := newImageClient(docker, false)

				err := i.RemoveImageByID(context.Background(), types.ImageID(imageID))
				gomega.Expect(cerrdefs.IsNotFound(err)).To(gomega.BeTrue())
			})
		})
	})
})
