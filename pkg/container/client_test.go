package container

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/stretchr/testify/require"

	dockerContainer "github.com/docker/docker/api/types/container"
	dockerClient "github.com/docker/docker/client"

	mockContainer "github.com/rcarmo/guerite/pkg/container/mocks"
	"github.com/rcarmo/guerite/pkg/types"
)

// newTestClient builds a client wired to a mock engine server with the given options.
func newTestClient(mockServer *ghttp.Server, opts ClientOptions) *client {
	docker, err := dockerClient.NewClientWithOpts(
		dockerClient.WithHost(mockServer.URL()),
		dockerClient.WithHTTPClient(mockServer.HTTPTestServer.Client()))
	require.NoError(ginkgo.GinkgoT(), err)

	return &client{api: docker, ClientOptions: opts}
}

// mockContainerInspect builds a minimal running-container inspect response for id.
func mockContainerInspect(id string) dockerContainer.InspectResponse {
	return dockerContainer.InspectResponse{
		ContainerJSONBase: &dockerContainer.ContainerJSONBase{
			ID:         id,
			Image:      "image",
			Name:       "/" + id,
			HostConfig: &dockerContainer.HostConfig{},
			State:      &dockerContainer.State{Running: true, Status: "running"},
		},
		Config: &dockerContainer.Config{Labels: map[string]string{}},
	}
}

// infoHandler responds to the engine's /info endpoint identifying as name/version.
func infoHandler(name, version string) http.HandlerFunc {
	return ghttp.CombineHandlers(
		ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/info$")),
		ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
			"Name":          name,
			"ServerVersion": version,
		}),
	)
}

var _ = ginkgo.Describe("the client", func() {
	var mockServer *ghttp.Server

	ginkgo.BeforeEach(func() {
		mockServer = ghttp.NewServer()
	})

	ginkgo.AfterEach(func() {
		mockServer.Close()
	})

	ginkgo.Describe("ListContainers", func() {
		ginkgo.It("lists running containers by default", func() {
			mockServer.AppendHandlers(
				infoHandler("Docker", "28.0.0"),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, []dockerContainer.Summary{}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			containers, err := c.ListContainers(context.Background(), nil)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(containers).To(gomega.BeEmpty())
		})

		ginkgo.It("returns an error when the list request fails", func() {
			mockServer.AppendHandlers(
				infoHandler("Docker", "28.0.0"),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/json$")),
					ghttp.RespondWith(http.StatusInternalServerError, `{"message": "boom"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.ListContainers(context.Background(), nil)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("ListAllContainers", func() {
		ginkgo.It("fetches every container regardless of status", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, []dockerContainer.Summary{}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			containers, err := c.ListAllContainers(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(containers).To(gomega.BeEmpty())
		})

		ginkgo.It("treats a 404 from the engine as an empty list", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/json$")),
					ghttp.RespondWith(http.StatusNotFound, `page not found`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			containers, err := c.ListAllContainers(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(containers).To(gomega.BeEmpty())
		})

		ginkgo.It("fetches full container info for every listed container", func() {
			containerInfo := mockContainerInspect("abc123")

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, []dockerContainer.Summary{{ID: "abc123"}}),
				),
				mockContainer.GetContainerHandler("abc123", &containerInfo),
			)

			c := newTestClient(mockServer, ClientOptions{})

			containers, err := c.ListAllContainers(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(containers).To(gomega.HaveLen(1))
			gomega.Expect(containers[0].ID()).To(gomega.Equal(types.ContainerID("abc123")))
		})
	})

	ginkgo.Describe("GetContainer", func() {
		ginkgo.It("fetches a single container by ID", func() {
			containerInfo := mockContainerInspect("abc123")

			mockServer.AppendHandlers(mockContainer.GetContainerHandler("abc123", &containerInfo))

			c := newTestClient(mockServer, ClientOptions{})

			container, err := c.GetContainer(context.Background(), types.ContainerID("abc123"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(container.ID()).To(gomega.Equal(types.ContainerID("abc123")))
		})

		ginkgo.It("returns an error when the container does not exist", func() {
			mockServer.AppendHandlers(mockContainer.GetContainerHandler("missing", nil))

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.GetContainer(context.Background(), types.ContainerID("missing"))
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("StartContainer", func() {
		ginkgo.It("starts a previously created container", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(
						"POST",
						gomega.HaveSuffix("containers/new_container_id/start"),
					),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.StartContainer(context.Background(), types.ContainerID("new_container_id"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns an error when the start fails", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(
						"POST",
						gomega.HaveSuffix("containers/new_container_id/start"),
					),
					ghttp.RespondWith(http.StatusInternalServerError, `{"message": "start failed"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.StartContainer(context.Background(), types.ContainerID("new_container_id"))
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("StopContainer", func() {
		ginkgo.It("stops a running container without removing it", func() {
			mockedContainer := MockContainer(WithContainerState(dockerContainer.State{Running: true}))
			cid := mockedContainer.ContainerInfo().ID

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/%s/stop", cid)),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.StopContainer(context.Background(), mockedContainer, 10*time.Second)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockServer.ReceivedRequests()).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("RemoveContainer", func() {
		ginkgo.It("removes a stopped container", func() {
			mockServer.AppendHandlers(mockContainer.RemoveContainerHandler("abc123", mockContainer.Found))

			c := newTestClient(mockServer, ClientOptions{})

			err := c.RemoveContainer(context.Background(), types.ContainerID("abc123"), true)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns an error when the container is gone", func() {
			mockServer.AppendHandlers(mockContainer.RemoveContainerHandler("abc123", mockContainer.Missing))

			c := newTestClient(mockServer, ClientOptions{})

			err := c.RemoveContainer(context.Background(), types.ContainerID("abc123"), true)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("propagates the remove volumes option", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("DELETE", gomega.MatchRegexp("^/v[0-9.]+/containers/abc123$")),
					func(w http.ResponseWriter, r *http.Request) {
						gomega.Expect(r.URL.Query().Get("v")).To(gomega.Equal("1"))
						w.WriteHeader(http.StatusNoContent)
					},
				),
			)

			c := newTestClient(mockServer, ClientOptions{RemoveVolumes: true})

			err := c.RemoveContainer(context.Background(), types.ContainerID("abc123"), true)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("RenameContainer", func() {
		ginkgo.It("renames an existing container", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(
						"POST",
						gomega.HaveSuffix("containers/abc123/rename"),
						"name=new-name",
					),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.RenameContainer(context.Background(), types.ContainerID("abc123"), "new-name")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns an error when the rename fails", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(
						"POST",
						gomega.HaveSuffix("containers/abc123/rename"),
						"name=new-name",
					),
					ghttp.RespondWith(http.StatusConflict, `{"message": "name in use"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.RenameContainer(context.Background(), types.ContainerID("abc123"), "new-name")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("CreateContainer", func() {
		ginkgo.It("creates a new container under the given name", func() {
			source := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/create"), "name=target-name"),
					ghttp.RespondWithJSONEncoded(http.StatusCreated, dockerContainer.CreateResponse{ID: "new_id"}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			id, err := c.CreateContainer(context.Background(), source, "target-name")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(types.ContainerID("new_id")))
		})

		ginkgo.It("returns an error when creation fails", func() {
			source := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/create"), "name=target-name"),
					ghttp.RespondWith(http.StatusInternalServerError, `{"message": "create failed"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.CreateContainer(context.Background(), source, "target-name")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("disables memory swappiness automatically under Podman", func() {
			source := MockContainer()

			mockServer.AppendHandlers(
				infoHandler("podman", "4.0.0"),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/create"), "name=target-name"),
					func(w http.ResponseWriter, r *http.Request) {
						var body map[string]any

						gomega.Expect(json.NewDecoder(r.Body).Decode(&body)).To(gomega.Succeed())

						hostConfig, ok := body["HostConfig"].(map[string]any)
						gomega.Expect(ok).To(gomega.BeTrue())
						gomega.Expect(hostConfig).ToNot(gomega.HaveKey("MemorySwappiness"))

						ghttp.RespondWithJSONEncoded(http.StatusCreated, dockerContainer.CreateResponse{ID: "new_id"})(w, r)
					},
				),
			)

			c := newTestClient(mockServer, ClientOptions{CPUCopyMode: "auto"})

			_, err := c.CreateContainer(context.Background(), source, "target-name")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("PruneImages", func() {
		ginkgo.It("delegates to the image client", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("images/prune")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			removed, reclaimed, err := c.PruneImages(context.Background(), nil)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(removed).To(gomega.BeEmpty())
			gomega.Expect(reclaimed).To(gomega.BeZero())
		})
	})

	ginkgo.Describe("GetVersion", func() {
		ginkgo.It("returns the negotiated client API version", func() {
			c := newTestClient(mockServer, ClientOptions{})

			gomega.Expect(c.GetVersion()).ToNot(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("GetInfo", func() {
		ginkgo.It("maps engine system info", func() {
			mockServer.AppendHandlers(infoHandler("Docker", "28.0.0"))

			c := newTestClient(mockServer, ClientOptions{})

			info, err := c.GetInfo(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(info.Name).To(gomega.Equal("Docker"))
			gomega.Expect(info.ServerVersion).To(gomega.Equal("28.0.0"))
		})

		ginkgo.It("returns an error when the info request fails", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/info$")),
					ghttp.RespondWith(http.StatusInternalServerError, `{"message": "boom"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.GetInfo(context.Background())
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("GetServerVersion", func() {
		ginkgo.It("returns engine version info", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/version$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
						"Version":    "28.0.0",
						"ApiVersion": "1.48",
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.GetServerVersion(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("GetDiskUsage", func() {
		ginkgo.It("maps engine disk usage", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/system/df$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
						"LayersSize": 1024,
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			usage, err := c.GetDiskUsage(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(usage.LayersSize).To(gomega.Equal(int64(1024)))
		})
	})

	ginkgo.Describe("ExecuteCommand", func() {
		ginkgo.It("executes a lifecycle hook and reports success", func() {
			mockedContainer := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/container_id/exec")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecCreateResponse{ID: "exec_id"}),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, []byte("hook output")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.HaveSuffix("exec/exec_id/json")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecInspect{
						ExecID:   "exec_id",
						Running:  false,
						ExitCode: 0,
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			skip, err := c.ExecuteCommand(context.Background(), mockedContainer, "true", time.Second, 0, 0)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(skip).To(gomega.BeFalse())
		})

		ginkgo.It("reports skip when the hook exits with code 75", func() {
			mockedContainer := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/container_id/exec")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecCreateResponse{ID: "exec_id"}),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.HaveSuffix("exec/exec_id/json")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecInspect{
						ExecID:   "exec_id",
						Running:  false,
						ExitCode: 75,
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			skip, err := c.ExecuteCommand(context.Background(), mockedContainer, "exit 75", time.Second, 0, 0)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(skip).To(gomega.BeTrue())
		})

		ginkgo.It("returns an error when the hook exits non-zero", func() {
			mockedContainer := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/container_id/exec")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecCreateResponse{ID: "exec_id"}),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("exec/exec_id/start")),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.HaveSuffix("exec/exec_id/json")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.ExecInspect{
						ExecID:   "exec_id",
						Running:  false,
						ExitCode: 1,
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.ExecuteCommand(context.Background(), mockedContainer, "false", time.Second, 0, 0)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("returns an error when exec creation fails", func() {
			mockedContainer := MockContainer()

			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", gomega.HaveSuffix("containers/container_id/exec")),
					ghttp.RespondWith(http.StatusInternalServerError, `{"message": "exec create failed"}`),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			_, err := c.ExecuteCommand(context.Background(), mockedContainer, "true", time.Second, 0, 0)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("WaitForContainerHealthy", func() {
		ginkgo.It("returns immediately when no healthcheck is configured", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/abc123/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.InspectResponse{
						ContainerJSONBase: &dockerContainer.ContainerJSONBase{
							ID:    "abc123",
							State: &dockerContainer.State{Running: true},
						},
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.WaitForContainerHealthy(context.Background(), types.ContainerID("abc123"), 5*time.Second)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns nil once the container reports healthy", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/abc123/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.InspectResponse{
						ContainerJSONBase: &dockerContainer.ContainerJSONBase{
							ID: "abc123",
							State: &dockerContainer.State{
								Running: true,
								Health:  &dockerContainer.Health{Status: dockerContainer.Healthy},
							},
						},
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.WaitForContainerHealthy(context.Background(), types.ContainerID("abc123"), 5*time.Second)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("returns an error once the container reports unhealthy", func() {
			mockServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", gomega.MatchRegexp("^/v[0-9.]+/containers/abc123/json$")),
					ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.InspectResponse{
						ContainerJSONBase: &dockerContainer.ContainerJSONBase{
							ID: "abc123",
							State: &dockerContainer.State{
								Running: true,
								Health:  &dockerContainer.Health{Status: dockerContainer.Unhealthy},
							},
						},
					}),
				),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.WaitForContainerHealthy(context.Background(), types.ContainerID("abc123"), 5*time.Second)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("times out when the container never becomes healthy", func() {
			mockServer.RouteToHandler(
				"GET",
				regexp.MustCompile(`^/v[0-9.]+/containers/abc123/json$`),
				ghttp.RespondWithJSONEncoded(http.StatusOK, dockerContainer.InspectResponse{
					ContainerJSONBase: &dockerContainer.ContainerJSONBase{
						ID: "abc123",
						State: &dockerContainer.State{
							Running: true,
							Health:  &dockerContainer.Health{Status: dockerContainer.Starting},
						},
					},
				}),
			)

			c := newTestClient(mockServer, ClientOptions{})

			err := c.WaitForContainerHealthy(context.Background(), types.ContainerID("abc123"), 1500*time.Millisecond)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
