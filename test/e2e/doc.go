/*
Package e2e holds the end-to-end tests of the mccmnc binary.

The suite builds cmd/mccmnc with gexec and drives it as a user would, against
a fake registry served in-process. Each test gets its own store directory.

# Package Structure

	test/e2e/
	├── doc.go               This file
	├── e2e_suite_test.go    Suite setup: binary build, registry lifecycle
	├── cli_test.go          update, query and version commands
	├── serve_test.go        serve command and its HTTP API
	├── infra/
	│   └── infra.go         Registry: fake registry server + fixtures
	└── service/
	    └── service.go       Client: HTTP client for the /api/v1 API

# Registry

	┌──────────┐  GET   ┌──────────┐
	│  mccmnc  │───────▶│ Registry │  payload, content type, injected failures
	└────┬─────┘        └──────────┘
	     │ writes
	     ▼
	┌──────────┐
	│  store   │  <tmp>/networks.json
	└──────────┘

The registry serves whatever payload the test installed and can fail the next
N requests with 503 to exercise retries.

# Running

	go test ./test/e2e/...

Set MCCMNC_E2E_BINARY to a prebuilt binary to skip the build.
*/
package e2e
