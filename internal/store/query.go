package store

import "github.com/jbjulia/mccmnc/internal/models"

// QueryOption constrains a query. An option built from an empty value matches
// every entry.
type QueryOption func(key string, r models.Record) bool

func ByCC(cc string) QueryOption {
	return func(_ string, r models.Record) bool {
		return cc == "" || r.CC == cc
	}
}

func ByMCC(mcc string) QueryOption {
	return func(_ string, r models.Record) bool {
		return mcc == "" || r.MCC == mcc
	}
}

func ByMNC(mnc string) QueryOption {
	return func(_ string, r models.Record) bool {
		return mnc == "" || r.MNC == mnc
	}
}

// ByPLMN matches the stored key exactly. Entries stored under a
// disambiguated key ("26201-<suffix>") only match their full key.
func ByPLMN(plmn string) QueryOption {
	return func(key string, _ models.Record) bool {
		return plmn == "" || key == plmn
	}
}

// Query returns the keys of every entry matching all options, in store order.
func (s *Store) Query(opts ...QueryOption) []string {
	keys := []string{}
	for k, r := range s.All() {
		if matches(k, r, opts) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Count returns the number of entries matching all options.
func (s *Store) Count(opts ...QueryOption) int {
	n := 0
	for k, r := range s.All() {
		if matches(k, r, opts) {
			n++
		}
	}
	return n
}

func matches(key string, r models.Record, opts []QueryOption) bool {
	for _, opt := range opts {
		if opt != nil && !opt(key, r) {
			return false
		}
	}
	return true
}
