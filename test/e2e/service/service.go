package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	v1 "github.com/jbjulia/mccmnc/api/v1"
)

const (
	apiV1PlmnPath   = "/api/v1/plmn"
	apiV1UpdatePath = "/api/v1/update"
	apiV1HealthPath = "/api/v1/health"
)

// Client talks to the API of a running "mccmnc serve".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) Health() (*v1.Health, error) {
	var h v1.Health
	if _, err := c.do(http.MethodGet, apiV1HealthPath, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Lookup queries /plmn. The status code is returned with the decoded list,
// which is empty on anything but 200.
func (c *Client) Lookup(query url.Values) (int, *v1.NetworkList, error) {
	var list v1.NetworkList
	status, err := c.do(http.MethodGet, apiV1PlmnPath, query, &list)
	return status, &list, err
}

func (c *Client) StartUpdate() (int, error) {
	return c.do(http.MethodPost, apiV1UpdatePath, nil, nil)
}

func (c *Client) UpdateStatus() (*v1.UpdateStatus, error) {
	var s v1.UpdateStatus
	if _, err := c.do(http.MethodGet, apiV1UpdatePath, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) do(method, path string, query url.Values, out any) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, nil)
	if err != nil {
		return 0, err
	}

	zap.S().Debugw("api request", "method", method, "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if out == nil || resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode %s: %w", string(body), err)
	}
	return resp.StatusCode, nil
}
