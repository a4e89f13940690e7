package e2e_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"

	v1 "github.com/jbjulia/mccmnc/api/v1"
	"github.com/jbjulia/mccmnc/test/e2e/infra"
)

var _ = Describe("CLI", func() {
	var storePath string

	BeforeEach(func() {
		registry.Reset()
		storePath = filepath.Join(GinkgoT().TempDir(), "networks.json")
	})

	Context("update", func() {
		// Given a registry serving three rows, two of them sharing a PLMN
		// When we run update
		// Then the store holds three entries and the first row keeps the bare key
		It("should build the store from the registry", func() {
			// Act
			session := run(storePath, "update")

			// Assert
			Expect(session).To(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Ingested 3 records"))

			data, err := os.ReadFile(storePath)
			Expect(err).NotTo(HaveOccurred())
			var store map[string]map[string]string
			Expect(json.Unmarshal(data, &store)).To(Succeed())
			Expect(store).To(HaveLen(3))
			Expect(store).To(HaveKey("26201"))
			Expect(store["310260"]["NETWORK"]).To(Equal("T-Mobile"))
		})

		It("should retry transient registry failures", func() {
			registry.FailNext(2)

			session := run(storePath, "update")

			Expect(session).To(gexec.Exit(0))
			Expect(registry.Hits()).To(Equal(3))
		})

		// Given a store built by a previous update
		// When the registry keeps failing
		// Then update exits non-zero and the store is untouched
		It("should keep the previous store when the registry fails", func() {
			// Arrange
			Expect(run(storePath, "update")).To(gexec.Exit(0))
			before, err := os.ReadFile(storePath)
			Expect(err).NotTo(HaveOccurred())
			registry.FailNext(10)

			// Act
			session := run(storePath, "update", "--source-max-retries", "1")

			// Assert
			Expect(session).To(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("Error:"))
			after, err := os.ReadFile(storePath)
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})

		It("should ingest CSV", func() {
			registry.Serve([]byte(infra.NetworksCSV), "text/csv")

			session := run(storePath, "update", "--source-format", "csv")

			Expect(session).To(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Ingested 3 records"))
		})

		It("should fail on a page without a table", func() {
			registry.Serve([]byte("<html><body>maintenance</body></html>"), "text/html")

			session := run(storePath, "update")

			Expect(session).To(gexec.Exit(1))
			_, err := os.Stat(storePath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should print the summary as JSON", func() {
			session := run(storePath, "update", "-o", "json")

			Expect(session).To(gexec.Exit(0))
			var result v1.UpdateResult
			Expect(json.Unmarshal(session.Out.Contents(), &result)).To(Succeed())
			Expect(result.Rows).To(Equal(3))
			Expect(result.Collisions).To(HaveLen(1))
			Expect(result.Collisions[0].Plmn).To(Equal("310260"))
		})
	})

	Context("query", func() {
		It("should ask for an update when the store is missing", func() {
			session := run(storePath, "query", "--mcc", "262")

			Expect(session).To(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say(`mccmnc update`))
		})

		When("the store has been built", func() {
			BeforeEach(func() {
				Expect(run(storePath, "update")).To(gexec.Exit(0))
			})

			It("should print matching networks", func() {
				session := run(storePath, "query", "--mcc", "262", "--mnc", "01")

				Expect(session).To(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("PLMN: 26201"))
				Expect(session.Out).To(gbytes.Say("Telekom"))
			})

			It("should say so when nothing matches", func() {
				session := run(storePath, "query", "--mcc", "999")

				Expect(session).To(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("No match found"))
			})

			It("should find both colliding rows by MCC and MNC", func() {
				session := run(storePath, "query", "--mcc", "310", "--mnc", "260", "-o", "json")

				Expect(session).To(gexec.Exit(0))
				var list v1.NetworkList
				Expect(json.Unmarshal(session.Out.Contents(), &list)).To(Succeed())
				Expect(list.Total).To(Equal(2))
			})

			It("should match the bare PLMN key only", func() {
				session := run(storePath, "query", "--plmn", "310260", "-o", "json")

				Expect(session).To(gexec.Exit(0))
				var list v1.NetworkList
				Expect(json.Unmarshal(session.Out.Contents(), &list)).To(Succeed())
				Expect(list.Networks).To(HaveLen(1))
				Expect(list.Networks[0].Network).To(Equal("T-Mobile"))
			})

			It("should reject non-digit filters", func() {
				session := run(storePath, "query", "--mcc", "abc")

				Expect(session).To(gexec.Exit(1))
			})
		})
	})

	It("should print the version", func() {
		session := run(storePath, "version")

		Expect(session).To(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("mccmnc "))
	})
})
