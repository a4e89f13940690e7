package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/services"
	"github.com/jbjulia/mccmnc/internal/store"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
	"github.com/jbjulia/mccmnc/pkg/parser"
)

const registryCSV = `MCC,MNC,ISO,PLMN,CC,NETWORK
262,01,de,26201,49,Telekom
262,01,de,26201,49,Telekom Duplicate
262,02,de,26202,49,Vodafone
310,260,us,310260,1,
`

type failingPersister struct {
	path string
}

func (p *failingPersister) Save(context.Context, *store.Store) (int64, error) {
	return 0, srvErrors.NewStoreError("save", p.path, errors.New("disk full"))
}

func (p *failingPersister) Path() string { return p.path }

var _ = Describe("Updater", func() {
	var (
		ctx       context.Context
		dir       string
		path      string
		fetcher   *fakeFetcher
		fileStore *store.FileStore
		observer  *recordingObserver
	)

	const source = "https://registry.example/mcc-mnc.csv"

	BeforeEach(func() {
		ctx = context.Background()
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "mccmnc.json")
		fetcher = &fakeFetcher{body: []byte(registryCSV)}
		fileStore = store.NewFileStore(path)
		observer = &recordingObserver{}
	})

	newUpdater := func(opts ...services.UpdaterOption) *services.Updater {
		return services.NewUpdater(fetcher, &parser.CSVParser{}, fileStore, source, opts...)
	}

	writePrevious := func() []byte {
		previous := []byte("{\n    \"previous\": {}\n}\n")
		Expect(os.WriteFile(path, previous, 0644)).To(Succeed())
		return previous
	}

	Context("successful run", func() {
		// Given a registry with two rows sharing PLMN 26201
		// When the pipeline runs
		// Then every row is stored, the collision is reported and all states are visited
		It("should ingest every row and report collisions", func() {
			// Arrange
			updater := newUpdater()

			// Act
			result, err := updater.Run(ctx, observer)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Rows).To(Equal(4))
			Expect(result.Source).To(Equal(source))
			Expect(result.Format).To(Equal(parser.FormatCSV))
			Expect(result.Collisions).To(HaveLen(1))
			Expect(result.Collisions[0].PLMN).To(Equal("26201"))
			Expect(result.Collisions[0].Key).To(HavePrefix("26201-"))

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Bytes).To(Equal(info.Size()))

			Expect(observer.states).To(Equal([]models.UpdateState{
				models.UpdateStateFetching,
				models.UpdateStateParsing,
				models.UpdateStateBuilding,
				models.UpdateStatePersisting,
				models.UpdateStateDone,
			}))
			Expect(observer.progress).To(HaveLen(4))
			Expect(observer.progress[3]).To(Equal([2]int{4, 4}))
			Expect(fetcher.urls).To(Equal([]string{source}))

			loaded, err := fileStore.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Len()).To(Equal(4))
			r, ok := loaded.Get("26201")
			Expect(ok).To(BeTrue())
			Expect(r.Network).To(Equal("Telekom"))
			dup, ok := loaded.Get(result.Collisions[0].Key)
			Expect(ok).To(BeTrue())
			Expect(dup.Network).To(Equal("Telekom Duplicate"))
		})

		It("should accept a nil observer", func() {
			_, err := newUpdater().Run(ctx, nil)

			Expect(err).NotTo(HaveOccurred())
		})

		It("should keep the raw payload when asked to", func() {
			raw := filepath.Join(dir, "mcc-mnc.csv")

			_, err := newUpdater(services.WithRawPath(raw)).Run(ctx, nil)

			Expect(err).NotTo(HaveOccurred())
			data, err := os.ReadFile(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(registryCSV))
		})

		It("should measure the run with the configured clock", func() {
			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			calls := 0
			clock := func() time.Time {
				calls++
				return start.Add(time.Duration(calls-1) * time.Second)
			}

			result, err := newUpdater(services.WithClock(clock)).Run(ctx, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.StartedAt).To(Equal(start))
			Expect(result.Duration).To(Equal(time.Second))
		})

		// Given the same registry ingested twice
		// When we compare both stores
		// Then each PLMN group holds the same number of records
		It("should be idempotent per PLMN group", func() {
			// Arrange
			groups := func() map[string]int {
				loaded, err := fileStore.Load(ctx)
				Expect(err).NotTo(HaveOccurred())
				counts := map[string]int{}
				for _, r := range loaded.All() {
					counts[r.PLMN()]++
				}
				return counts
			}

			// Act
			_, err := newUpdater().Run(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			first := groups()
			_, err = newUpdater().Run(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			second := groups()

			// Assert
			Expect(second).To(Equal(first))
			Expect(first).To(Equal(map[string]int{"26201": 2, "26202": 1, "310260": 1}))
		})
	})

	Context("failures", func() {
		// Given a previous store on disk and a registry that cannot be reached
		// When the pipeline runs
		// Then it fails in fetching and the file is byte identical
		It("should leave the store untouched when the fetch fails", func() {
			// Arrange
			previous := writePrevious()
			fetcher.err = srvErrors.NewNetworkError("fetch", source, errors.New("connection refused"))

			// Act
			result, err := newUpdater().Run(ctx, observer)

			// Assert
			Expect(result).To(BeNil())
			Expect(srvErrors.IsNetworkError(err)).To(BeTrue())
			Expect(observer.states).To(Equal([]models.UpdateState{models.UpdateStateFetching, models.UpdateStateFailed}))
			Expect(os.ReadFile(path)).To(Equal(previous))
		})

		It("should leave the store untouched when the parse fails", func() {
			previous := writePrevious()
			fetcher.body = []byte("262,01,de\n")

			_, err := newUpdater().Run(ctx, observer)

			Expect(srvErrors.IsFormatError(err)).To(BeTrue())
			Expect(observer.states).To(Equal([]models.UpdateState{
				models.UpdateStateFetching,
				models.UpdateStateParsing,
				models.UpdateStateFailed,
			}))
			Expect(os.ReadFile(path)).To(Equal(previous))
		})

		It("should not write the raw payload when the parse fails", func() {
			raw := filepath.Join(dir, "mcc-mnc.csv")
			fetcher.body = []byte("garbage,row\n")

			_, err := newUpdater(services.WithRawPath(raw)).Run(ctx, nil)

			Expect(err).To(HaveOccurred())
			Expect(raw).NotTo(BeAnExistingFile())
		})

		It("should report a persist failure", func() {
			updater := services.NewUpdater(fetcher, &parser.CSVParser{}, &failingPersister{path: path}, source)

			_, err := updater.Run(ctx, observer)

			Expect(srvErrors.IsStoreError(err)).To(BeTrue())
			Expect(observer.states[len(observer.states)-2:]).To(Equal([]models.UpdateState{
				models.UpdateStatePersisting,
				models.UpdateStateFailed,
			}))
		})

		// Given a raw payload path and a store that cannot be saved
		// When the pipeline runs
		// Then the raw payload is not written either
		It("should not write the raw payload when the store save fails", func() {
			// Arrange
			raw := filepath.Join(dir, "mcc-mnc.csv")
			updater := services.NewUpdater(fetcher, &parser.CSVParser{}, &failingPersister{path: path}, source,
				services.WithRawPath(raw))

			// Act
			_, err := updater.Run(ctx, nil)

			// Assert
			Expect(srvErrors.IsStoreError(err)).To(BeTrue())
			Expect(raw).NotTo(BeAnExistingFile())
		})

		It("should stop building on a cancelled context", func() {
			previous := writePrevious()
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := newUpdater().Run(cctx, observer)

			Expect(err).To(MatchError(context.Canceled))
			Expect(observer.states).To(ContainElement(models.UpdateStateFailed))
			Expect(os.ReadFile(path)).To(Equal(previous))
		})
	})
})
