package store_test

import (
	"maps"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/store"
)

var _ = Describe("Query", func() {
	var s *store.Store

	BeforeEach(func() {
		s = store.NewStore()
		rows := []struct {
			key string
			rec models.Record
		}{
			{"310260", models.NewRecord("310", "260", "us", "United States", "1", "T-Mobile")},
			{"26201", models.NewRecord("262", "01", "de", "Germany", "49", "Telekom")},
			{"26202", models.NewRecord("262", "02", "de", "Germany", "49", "Vodafone")},
			{"26201-abc", models.NewRecord("262", "01", "de", "Germany", "49", "Telekom Duplicate")},
			{"302220", models.NewRecord("302", "220", "ca", "Canada", "1", "Telus")},
		}
		for _, r := range rows {
			Expect(s.Insert(r.key, r.rec)).To(Succeed())
		}
	})

	It("should return every key when no option is given", func() {
		Expect(s.Query()).To(Equal([]string{"310260", "26201", "26202", "26201-abc", "302220"}))
	})

	It("should treat empty options as no constraint", func() {
		Expect(s.Query(store.ByCC(""), store.ByMCC(""), store.ByMNC(""), store.ByPLMN(""))).To(HaveLen(5))
	})

	It("should return an empty, non-nil result when nothing matches", func() {
		keys := s.Query(store.ByMCC("999"))

		Expect(keys).NotTo(BeNil())
		Expect(keys).To(BeEmpty())
	})

	DescribeTable("filter combinations",
		func(opts []store.QueryOption, expected []string) {
			Expect(s.Query(opts...)).To(Equal(expected))
		},
		Entry("cc only",
			[]store.QueryOption{store.ByCC("1")},
			[]string{"310260", "302220"}),
		Entry("mcc only",
			[]store.QueryOption{store.ByMCC("262")},
			[]string{"26201", "26202", "26201-abc"}),
		Entry("mnc only",
			[]store.QueryOption{store.ByMNC("01")},
			[]string{"26201", "26201-abc"}),
		Entry("plmn matches the exact key",
			[]store.QueryOption{store.ByPLMN("26201")},
			[]string{"26201"}),
		Entry("plmn matches a disambiguated key only in full",
			[]store.QueryOption{store.ByPLMN("26201-abc")},
			[]string{"26201-abc"}),
		Entry("mcc and mnc",
			[]store.QueryOption{store.ByMCC("262"), store.ByMNC("02")},
			[]string{"26202"}),
		Entry("cc and mcc",
			[]store.QueryOption{store.ByCC("1"), store.ByMCC("302")},
			[]string{"302220"}),
		Entry("cc and mnc",
			[]store.QueryOption{store.ByCC("49"), store.ByMNC("01")},
			[]string{"26201", "26201-abc"}),
		Entry("cc and plmn",
			[]store.QueryOption{store.ByCC("49"), store.ByPLMN("26202")},
			[]string{"26202"}),
		Entry("mcc and plmn disagreeing",
			[]store.QueryOption{store.ByMCC("310"), store.ByPLMN("26201")},
			[]string{}),
		Entry("all four agreeing",
			[]store.QueryOption{store.ByCC("49"), store.ByMCC("262"), store.ByMNC("01"), store.ByPLMN("26201")},
			[]string{"26201"}),
		Entry("mnc and plmn",
			[]store.QueryOption{store.ByMNC("01"), store.ByPLMN("26201-abc")},
			[]string{"26201-abc"}),
		Entry("cc, mcc and mnc",
			[]store.QueryOption{store.ByCC("49"), store.ByMCC("262"), store.ByMNC("01")},
			[]string{"26201", "26201-abc"}),
		Entry("mcc, mnc and plmn",
			[]store.QueryOption{store.ByMCC("310"), store.ByMNC("260"), store.ByPLMN("310260")},
			[]string{"310260"}),
		Entry("cc with no match",
			[]store.QueryOption{store.ByCC("44")},
			[]string{}),
	)

	// Given every subset of {cc, mcc, mnc, plmn} and several values per filter,
	// including values matching nothing and a suffixed key
	// When we query with each combination
	// Then the result is exactly the records satisfying every given filter, in store order
	It("should honour the conjunction of filters for every combination", func() {
		// Arrange
		fields := []string{"cc", "mcc", "mnc", "plmn"}
		values := map[string][]string{
			"cc":   {"1", "49", "44"},
			"mcc":  {"262", "310", "999"},
			"mnc":  {"01", "260", "99"},
			"plmn": {"26201", "26201-abc", "310260", "00000"},
		}
		option := func(field, value string) store.QueryOption {
			switch field {
			case "cc":
				return store.ByCC(value)
			case "mcc":
				return store.ByMCC(value)
			case "mnc":
				return store.ByMNC(value)
			default:
				return store.ByPLMN(value)
			}
		}
		satisfies := func(field, value, key string, r models.Record) bool {
			switch field {
			case "cc":
				return r.CC == value
			case "mcc":
				return r.MCC == value
			case "mnc":
				return r.MNC == value
			default:
				return key == value
			}
		}

		checked := 0
		for mask := 0; mask < 1<<len(fields); mask++ {
			combos := []map[string]string{{}}
			for i, f := range fields {
				if mask&(1<<i) == 0 {
					continue
				}
				var next []map[string]string
				for _, c := range combos {
					for _, v := range values[f] {
						n := maps.Clone(c)
						n[f] = v
						next = append(next, n)
					}
				}
				combos = next
			}

			for _, combo := range combos {
				opts := []store.QueryOption{}
				for f, v := range combo {
					opts = append(opts, option(f, v))
				}
				expected := []string{}
				for k, r := range s.All() {
					match := true
					for f, v := range combo {
						if !satisfies(f, v, k, r) {
							match = false
							break
						}
					}
					if match {
						expected = append(expected, k)
					}
				}

				// Act
				keys := s.Query(opts...)

				// Assert
				Expect(keys).To(Equal(expected), "filters %v", combo)
				checked++
			}
		}
		Expect(checked).To(Equal(4 * 4 * 4 * 5))
	})

	It("should count matches", func() {
		Expect(s.Count(store.ByMCC("262"))).To(Equal(3))
		Expect(s.Count()).To(Equal(5))
	})
})
