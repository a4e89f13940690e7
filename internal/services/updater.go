package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/store"
	"github.com/jbjulia/mccmnc/pkg/parser"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Persister interface {
	Save(ctx context.Context, s *store.Store) (int64, error)
	Path() string
}

// Observer is notified of pipeline progress. Calls happen on the goroutine
// running the pipeline.
type Observer interface {
	StateChanged(state models.UpdateState)
	Progress(done, total int)
}

// Updater runs the ingestion pipeline:
// fetching → parsing → building → persisting → done, or failed.
type Updater struct {
	fetcher   Fetcher
	parser    parser.Parser
	persister Persister
	resolver  *store.KeyResolver
	source    string
	rawPath   string
	now       func() time.Time
}

type UpdaterOption func(*Updater)

// WithRawPath keeps a copy of the downloaded payload at path. The copy is
// written only once the store has been saved.
func WithRawPath(path string) UpdaterOption {
	return func(u *Updater) {
		u.rawPath = path
	}
}

func WithKeyResolver(r *store.KeyResolver) UpdaterOption {
	return func(u *Updater) {
		u.resolver = r
	}
}

func WithClock(now func() time.Time) UpdaterOption {
	return func(u *Updater) {
		u.now = now
	}
}

func NewUpdater(f Fetcher, p parser.Parser, persister Persister, source string, opts ...UpdaterOption) *Updater {
	u := &Updater{
		fetcher:   f,
		parser:    p,
		persister: persister,
		resolver:  store.NewKeyResolver(),
		source:    source,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run executes the pipeline once. On any error the persisted store is left
// as it was. obs may be nil.
func (u *Updater) Run(ctx context.Context, obs Observer) (*models.UpdateResult, error) {
	logger := zap.S().Named("updater")
	if obs == nil {
		obs = noopObserver{}
	}

	started := u.now()
	transition := func(state models.UpdateState) {
		logger.Debugw("update state changed", "state", state)
		obs.StateChanged(state)
	}
	fail := func(err error) (*models.UpdateResult, error) {
		logger.Errorw("update failed", "source", u.source, "error", err)
		transition(models.UpdateStateFailed)
		return nil, err
	}

	transition(models.UpdateStateFetching)
	logger.Infow("fetching registry", "source", u.source, "format", u.parser.Format())
	raw, err := u.fetcher.Fetch(ctx, u.source)
	if err != nil {
		return fail(err)
	}

	transition(models.UpdateStateParsing)
	records, err := u.parser.Parse(raw)
	if err != nil {
		return fail(err)
	}
	logger.Infow("registry parsed", "rows", len(records), "bytes", len(raw))

	transition(models.UpdateStateBuilding)
	s := store.NewStore()
	var collisions []models.Collision
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		key, collided, err := u.resolver.Insert(s, r)
		if err != nil {
			return fail(err)
		}
		if collided {
			logger.Debugw("duplicate PLMN", "plmn", r.PLMN(), "key", key, "network", r.Network)
			collisions = append(collisions, models.Collision{PLMN: r.PLMN(), Key: key})
		}
		obs.Progress(i+1, len(records))
	}

	transition(models.UpdateStatePersisting)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	n, err := u.persister.Save(ctx, s)
	if err != nil {
		return fail(err)
	}
	if u.rawPath != "" {
		if err := store.SaveRaw(u.rawPath, raw); err != nil {
			return fail(err)
		}
	}

	result := &models.UpdateResult{
		Source:     u.source,
		Format:     u.parser.Format(),
		Rows:       s.Len(),
		Collisions: collisions,
		Bytes:      n,
		StartedAt:  started,
		Duration:   u.now().Sub(started),
	}
	transition(models.UpdateStateDone)
	logger.Infow("update done", "path", u.persister.Path(), "rows", result.Rows,
		"collisions", len(collisions), "bytes", n, "duration", result.Duration)

	return result, nil
}

type noopObserver struct{}

func (noopObserver) StateChanged(models.UpdateState) {}
func (noopObserver) Progress(int, int)               {}
