package infra

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
)

// NetworksHTML is a registry page with three rows. The last two share the
// PLMN 310260, so one of them is stored under a suffixed key.
const NetworksHTML = `<html><body>
<table>
<tr><th>MCC</th><th>MNC</th><th>ISO</th><th>Country</th><th>Country Code</th><th>Network</th></tr>
<tr><td>262</td><td>01</td><td>de</td><td>Germany</td><td>49</td><td>Telekom</td></tr>
<tr><td>310</td><td>260</td><td>us</td><td>United States</td><td>1</td><td>T-Mobile</td></tr>
<tr><td>310</td><td>260</td><td>us</td><td>United States</td><td>1</td><td>Metro</td></tr>
</table>
</body></html>`

// NetworksCSV holds the same rows as NetworksHTML in the CSV layout, where
// the fourth column carries the PLMN instead of the country name.
const NetworksCSV = "MCC,MNC,ISO,PLMN,CC,Network\n" +
	"262,01,de,26201,49,Telekom\n" +
	"310,260,us,310260,1,T-Mobile\n" +
	"310,260,us,310260,1,Metro\n"

// Registry is a fake registry server.
type Registry struct {
	srv *httptest.Server

	mu          sync.Mutex
	payload     []byte
	contentType string
	failures    int
	hits        int
}

func NewRegistry() *Registry {
	r := &Registry{
		payload:     []byte(NetworksHTML),
		contentType: "text/html; charset=utf-8",
	}
	r.srv = httptest.NewServer(http.HandlerFunc(r.handle))
	return r
}

func (r *Registry) URL() string {
	return r.srv.URL + "/mcc-mnc"
}

// Serve replaces the payload returned by the registry.
func (r *Registry) Serve(payload []byte, contentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = payload
	r.contentType = contentType
}

// FailNext makes the next n requests answer 503.
func (r *Registry) FailNext(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = n
}

// Hits returns the number of requests received.
func (r *Registry) Hits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits
}

// Reset restores the HTML fixture and clears counters.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = []byte(NetworksHTML)
	r.contentType = "text/html; charset=utf-8"
	r.failures = 0
	r.hits = 0
}

func (r *Registry) Close() {
	r.srv.Close()
}

func (r *Registry) handle(w http.ResponseWriter, _ *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hits++
	if r.failures > 0 {
		r.failures--
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", r.contentType)
	_, _ = w.Write(r.payload)
}

// FreePort returns a TCP port that was free at the time of the call.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find a free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
