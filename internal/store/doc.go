// Package store implements the record table and its on-disk persistence.
//
// The table is an ordered map from a unique key to a models.Record. Keys are
// PLMNs (MCC+MNC); rows sharing a PLMN are kept under a disambiguated key
// produced by the KeyResolver.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                              Store                              │
//	│            keys []string  +  records map[string]Record          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│          KeyResolver           │          QueryOption           │
//	│   PLMN or PLMN-<uuid> on       │   ByCC, ByMCC, ByMNC, ByPLMN   │
//	│   collision                    │   combined with AND            │
//	├────────────────────────────────┴────────────────────────────────┤
//	│                            FileStore                            │
//	│          JSON object, sorted keys, atomic replace (0644)        │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Store
//
// Insert never overwrites. Inserting a key that is already present returns
// DuplicateKeyError and leaves the existing record in place. Iteration
// (Keys, All, Query) follows insertion order.
//
// # KeyResolver
//
//	candidate := MCC + MNC
//	    ├── free  → candidate
//	    └── taken → candidate + "-" + uuid (retried until free)
//
// Resolve reports whether a collision happened so callers can surface it.
//
// # Queries
//
// Every option is optional. An option built from an empty string imposes no
// constraint, so Query() with no options or only empty options returns every
// key. ByPLMN compares against the stored key, not against MCC+MNC:
//
//	┌──────────────────┬──────────────┬───────────────────────────────┐
//	│  Stored key      │  ByPLMN      │  Match                        │
//	├──────────────────┼──────────────┼───────────────────────────────┤
//	│  26201           │  "26201"     │  yes                          │
//	│  26201-<uuid>    │  "26201"     │  no                           │
//	│  26201-<uuid>    │  full key    │  yes                          │
//	└──────────────────┴──────────────┴───────────────────────────────┘
//
// # FileStore
//
// The file is a single JSON object:
//
//	{
//	    "26201": {
//	        "MCC": "262",
//	        "MNC": "01",
//	        "ISO": "de",
//	        "COUNTRY": "Germany",
//	        "CC": "49",
//	        "NETWORK": "Telekom"
//	    }
//	}
//
// Save writes to a temporary file in the target directory and renames it over
// the destination, so a reader never observes a partial document and a failed
// save leaves the previous file untouched. Load keeps the document order.
//
// A missing file is reported as a StoreError wrapping fs.ErrNotExist
// (see errors.IsStoreNotFoundError).
package store
