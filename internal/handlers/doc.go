// Package handlers implements the HTTP API of the serve command.
//
// Handlers delegate to the services layer and only deal with parameter
// binding, error mapping to HTTP status codes and model-to-API conversion.
//
//	HTTP Request (Gin) ─► Handler ─► LookupService / UpdateService
//
// All handlers are methods on a single Handler struct implementing
// v1.ServerInterface, mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ GET    │ /plmn    │ Look up networks (cc, mcc, mnc, plmn)       │
//	│ GET    │ /update  │ Pipeline state, last result, last error     │
//	│ POST   │ /update  │ Start an update in the background           │
//	│ GET    │ /health  │ Liveness and whether an update is running   │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// # PLMN Handler
//
// GET /plmn?mcc=262&mnc=01
//
//	{
//	    "total": 1,
//	    "networks": [
//	        {
//	            "plmn": "26201",
//	            "mcc": "262",
//	            "mnc": "01",
//	            "iso": "de",
//	            "country": "Germany",
//	            "cc": "49",
//	            "network": "Telekom"
//	        }
//	    ]
//	}
//
// Every parameter is optional; no parameter returns the whole table. No
// match is a 200 with an empty list.
//
// # Update Handler
//
// POST /update answers 202 with the status below, or 409 while another update
// runs. GET /update returns the same document:
//
//	{
//	    "state": "building",            // idle|fetching|parsing|building|persisting|done|failed
//	    "progress": {"done": 1200, "total": 2500},
//	    "lastResult": {...},            // last successful run
//	    "error": null                   // error of the last failed run
//	}
//
// # Error Handling
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ InvalidInputError           │ 400    │ Non digit filter             │
//	│ UpdateInProgressError       │ 409    │ Update already running       │
//	│ StoreError                  │ 503    │ Store missing or unreadable  │
//	│ Internal error              │ 500    │ Unexpected service errors    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// Error bodies are { "error": "message" }.
package handlers
