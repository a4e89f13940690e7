package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/store"
	"github.com/jbjulia/mccmnc/internal/util"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

type StoreLoader interface {
	Load(ctx context.Context) (*store.Store, error)
}

// LookupService answers queries against the persisted store. The store file
// is read on every lookup so a concurrent update is picked up right away.
type LookupService struct {
	loader StoreLoader
}

func NewLookupService(l StoreLoader) *LookupService {
	return &LookupService{loader: l}
}

// LookupParams holds the query filters. Empty fields impose no constraint.
type LookupParams struct {
	CC   string
	MCC  string
	MNC  string
	PLMN string
}

type Match struct {
	Key    string
	Record models.Record
}

type LookupResult struct {
	Matches []Match
	Total   int
}

func (p LookupParams) normalize() LookupParams {
	return LookupParams{
		CC:   strings.TrimSpace(p.CC),
		MCC:  strings.TrimSpace(p.MCC),
		MNC:  strings.TrimSpace(p.MNC),
		PLMN: strings.TrimSpace(p.PLMN),
	}
}

// Validate checks that CC, MCC and MNC are digits. PLMN is digits optionally
// followed by a "-<suffix>" disambiguation tag.
func (p LookupParams) Validate() error {
	p = p.normalize()

	for _, f := range []struct{ name, value string }{
		{"cc", p.CC},
		{"mcc", p.MCC},
		{"mnc", p.MNC},
	} {
		if f.value != "" && !util.IsDigits(f.value) {
			return srvErrors.NewInvalidInputError(f.name, f.value, "must contain only digits")
		}
	}

	if p.PLMN != "" {
		base, suffix, tagged := strings.Cut(p.PLMN, "-")
		if !util.IsDigits(base) {
			return srvErrors.NewInvalidInputError("plmn", p.PLMN, "must start with digits")
		}
		if tagged && suffix == "" {
			return srvErrors.NewInvalidInputError("plmn", p.PLMN, "empty suffix")
		}
	}

	return nil
}

func (s *LookupService) Lookup(ctx context.Context, params LookupParams) (*LookupResult, error) {
	logger := zap.S().Named("lookup_service")

	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.normalize()

	if params.CC != "" {
		if cc, err := strconv.Atoi(params.CC); err == nil && phonenumbers.GetRegionCodeForCountryCode(cc) == phonenumbers.UNKNOWN_REGION {
			logger.Warnw("country code is not an ITU calling code", "cc", params.CC)
		}
	}

	st, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	keys := st.Query(buildQueryOptions(params)...)
	matches := make([]Match, 0, len(keys))
	for _, k := range keys {
		r, _ := st.Get(k)
		matches = append(matches, Match{Key: k, Record: r})
	}

	logger.Debugw("lookup", "cc", params.CC, "mcc", params.MCC, "mnc", params.MNC, "plmn", params.PLMN, "matches", len(matches))

	return &LookupResult{
		Matches: matches,
		Total:   len(matches),
	}, nil
}

func buildQueryOptions(params LookupParams) []store.QueryOption {
	var opts []store.QueryOption

	if params.CC != "" {
		opts = append(opts, store.ByCC(params.CC))
	}
	if params.MCC != "" {
		opts = append(opts, store.ByMCC(params.MCC))
	}
	if params.MNC != "" {
		opts = append(opts, store.ByMNC(params.MNC))
	}
	if params.PLMN != "" {
		opts = append(opts, store.ByPLMN(params.PLMN))
	}

	return opts
}
