package registry_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
	"github.com/jbjulia/mccmnc/pkg/registry"
)

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		calls  atomic.Int32
		server *httptest.Server
		client *registry.Client
	)

	noWait := registry.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} })

	BeforeEach(func() {
		ctx = context.Background()
		calls.Store(0)
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	serve := func(h func(w http.ResponseWriter, r *http.Request, n int32)) {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h(w, r, calls.Add(1))
		}))
	}

	// Given a registry answering 200
	// When we fetch
	// Then the body is returned and our user agent was sent
	It("should return the body", func() {
		// Arrange
		var ua string
		serve(func(w http.ResponseWriter, r *http.Request, _ int32) {
			ua = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<table></table>"))
		})
		client = registry.NewClient(noWait, registry.WithUserAgent("mccmnc-test"))

		// Act
		body, err := client.Fetch(ctx, server.URL)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal("<table></table>"))
		Expect(ua).To(Equal("mccmnc-test"))
		Expect(calls.Load()).To(BeEquivalentTo(1))
	})

	It("should not retry a 404", func() {
		serve(func(w http.ResponseWriter, _ *http.Request, _ int32) {
			w.WriteHeader(http.StatusNotFound)
		})
		client = registry.NewClient(noWait)

		_, err := client.Fetch(ctx, server.URL)

		var ne *srvErrors.NetworkError
		Expect(errors.As(err, &ne)).To(BeTrue())
		Expect(ne.StatusCode).To(Equal(http.StatusNotFound))
		Expect(calls.Load()).To(BeEquivalentTo(1))
	})

	// Given a registry failing twice with 503
	// When we fetch with three retries
	// Then the third attempt succeeds
	It("should retry server errors", func() {
		// Arrange
		serve(func(w http.ResponseWriter, _ *http.Request, n int32) {
			if n < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("ok"))
		})
		client = registry.NewClient(noWait, registry.WithMaxRetries(3))

		// Act
		body, err := client.Fetch(ctx, server.URL)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal("ok"))
		Expect(calls.Load()).To(BeEquivalentTo(3))
	})

	It("should retry 429 and give up after the retry budget", func() {
		serve(func(w http.ResponseWriter, _ *http.Request, _ int32) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		client = registry.NewClient(noWait, registry.WithMaxRetries(2))

		_, err := client.Fetch(ctx, server.URL)

		var ne *srvErrors.NetworkError
		Expect(errors.As(err, &ne)).To(BeTrue())
		Expect(ne.StatusCode).To(Equal(http.StatusTooManyRequests))
		Expect(calls.Load()).To(BeEquivalentTo(3))
	})

	It("should time out a slow registry", func() {
		release := make(chan struct{})
		serve(func(w http.ResponseWriter, r *http.Request, _ int32) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		DeferCleanup(func() { close(release) })
		client = registry.NewClient(noWait, registry.WithTimeout(50*time.Millisecond), registry.WithMaxRetries(0))

		_, err := client.Fetch(ctx, server.URL)

		Expect(srvErrors.IsNetworkError(err)).To(BeTrue())
		Expect(calls.Load()).To(BeEquivalentTo(1))
	})

	It("should report an unreachable host", func() {
		serve(func(w http.ResponseWriter, _ *http.Request, _ int32) {})
		url := server.URL
		server.Close()
		server = nil
		client = registry.NewClient(noWait, registry.WithMaxRetries(1))

		_, err := client.Fetch(ctx, url)

		Expect(srvErrors.IsNetworkError(err)).To(BeTrue())
	})

	It("should stop on a cancelled context", func() {
		serve(func(w http.ResponseWriter, _ *http.Request, _ int32) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		client = registry.NewClient(noWait)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.Fetch(cctx, server.URL)

		Expect(srvErrors.IsNetworkError(err)).To(BeTrue())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("should reject a malformed url without retrying", func() {
		client = registry.NewClient(noWait)

		_, err := client.Fetch(ctx, "://missing-scheme")

		Expect(srvErrors.IsNetworkError(err)).To(BeTrue())
	})
})
