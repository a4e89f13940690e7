// Package services implements the ingestion pipeline and the lookup logic.
//
// Services sit between the presenters (CLI commands, HTTP handlers) and the
// store. Their collaborators are interfaces so tests can swap the registry,
// the parser or the file store.
//
// # Service Dependency Graph
//
//	cmd/mccmnc, handlers
//	    │
//	    ▼
//	Services Layer
//	    ├── Updater ─────────► Fetcher (registry.Client), parser.Parser,
//	    │                      Persister (store.FileStore), KeyResolver
//	    ├── UpdateService ───► Updater, Scheduler (single worker)
//	    └── LookupService ───► StoreLoader (store.FileStore)
//
// # Updater
//
// Runs the pipeline once, synchronously:
//
//	┌──────┐   ┌──────────┐   ┌─────────┐   ┌──────────┐   ┌────────────┐   ┌──────┐
//	│ idle │──►│ fetching │──►│ parsing │──►│ building │──►│ persisting │──►│ done │
//	└──────┘   └────┬─────┘   └────┬────┘   └────┬─────┘   └─────┬──────┘   └──────┘
//	                │              │             │               │
//	                └──────────────┴──────┬──────┴───────────────┘
//	                                      ▼
//	                                 ┌────────┐
//	                                 │ failed │
//	                                 └────────┘
//
//   - fetching: NetworkError, nothing on disk changes
//   - parsing: FormatError, nothing on disk changes
//   - building: rows inserted in source order through the KeyResolver into a
//     fresh Store; cancellation is checked between rows
//   - persisting: optional raw payload copy, then atomic replace of the store
//     file; a StoreError leaves the previous file intact
//
// The Observer receives every transition and per-row progress. The CLI uses
// it to drive a progress bar.
//
// # UpdateService
//
// Wraps the Updater for the HTTP API. Start submits a run to the scheduler
// and returns; a second Start while a run is active fails with
// UpdateInProgressError. Status exposes the current state, the last result
// and the last error.
//
// # LookupService
//
// Validates LookupParams, loads the store file and runs the query:
//
//	LookupParams{CC, MCC, MNC, PLMN}
//	    │ Validate: digits only, PLMN may carry "-<suffix>"
//	    ▼
//	buildQueryOptions → []store.QueryOption (empty fields skipped)
//	    │
//	    ▼
//	Store.Query → keys in store order → []Match{Key, Record}
//
// PLMN is compared with the stored key. A row that collided on ingestion is
// stored under "<PLMN>-<suffix>" and is only found by PLMN with its full key;
// the MCC and MNC filters find it as usual.
//
// A CC unknown to the ITU numbering plan is logged but still queried, since
// the registry carries a few non standard codes.
package services
