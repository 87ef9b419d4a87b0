// Package wms is a client facade for the warehouse management system HTTP API.
// Every operation goes through a single retrying executor that compensates for
// the transient 401 the upstream NTLM handshake is known to produce.
package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/cargoflow-hq/wms-bridge/pkg/httpclient"
	"github.com/go-resty/resty/v2"
)

const (
	// SchemeNTLM routes requests through the NTLM negotiator transport.
	SchemeNTLM = "ntlm"
	// SchemeBasic sends plain basic auth on every request.
	SchemeBasic = "basic"
)

// attemptSchedule is the fixed delay before each attempt: first immediate,
// then five short increasing backoffs. The 401 from the NTLM handshake
// resolves within this window in practice without penalizing the common
// first-attempt-success path.
var attemptSchedule = []time.Duration{
	0,
	200 * time.Millisecond,
	300 * time.Millisecond,
	400 * time.Millisecond,
	600 * time.Millisecond,
	1000 * time.Millisecond,
}

// Credentials holds the WMS account used for every request.
type Credentials struct {
	Username string
	Password string
	Scheme   string
}

// Config carries the construction-time client settings.
type Config struct {
	BaseURL     string
	Credentials Credentials
	Timeout     time.Duration
}

// CompanyStore is the local cache collaborator for company records.
type CompanyStore interface {
	Find(externalID string) (domain.Company, bool, error)
	Create(code, externalID string, payload domain.Company, active bool) (domain.Company, error)
}

// Client issues authenticated WMS API calls with bounded retries on
// upstream HTTP errors.
type Client struct {
	http      *resty.Client
	schedule  []time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
	companies CompanyStore
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithCompanyStore attaches the local company cache used by Company lookups.
func WithCompanyStore(store CompanyStore) Option {
	return func(c *Client) { c.companies = store }
}

// WithHTTPClient replaces the underlying resty client (tests, custom transports).
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a WMS client from the given configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var hc *resty.Client
	switch strings.ToLower(strings.TrimSpace(cfg.Credentials.Scheme)) {
	case SchemeBasic:
		hc = httpclient.NewBasicAuthHTTPClient(cfg.BaseURL, cfg.Credentials.Username, cfg.Credentials.Password, timeout)
	default:
		hc = httpclient.NewNTLMHTTPClient(cfg.BaseURL, cfg.Credentials.Username, cfg.Credentials.Password, timeout)
	}

	c := &Client{
		http:     hc,
		schedule: append([]time.Duration(nil), attemptSchedule...),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params carries operation parameters keyed by upstream field name.
type Params map[string]any

// call executes one logical API call. POST and PUT send params as a JSON
// body; every other verb sends them as a query string. The placement is
// fixed by verb and not caller-overridable.
func (c *Client) call(ctx context.Context, method, path string, params Params) ([]byte, error) {
	build := func() *resty.Request {
		req := c.http.R().SetContext(ctx)
		if isBodyMethod(method) {
			if params == nil {
				params = Params{}
			}
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(params)
		} else if len(params) > 0 {
			req.SetQueryParamsFromValues(encodeQuery(params))
		}
		return req
	}
	return c.execute(ctx, method, path, build)
}

// execute runs the bounded retry loop over the attempt schedule. Upstream
// HTTP error statuses are retried; transport errors propagate immediately.
func (c *Client) execute(ctx context.Context, method, path string, build func() *resty.Request) ([]byte, error) {
	var last error
	for _, delay := range c.schedule {
		if delay > 0 {
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		resp, err := build().Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("wms %s %s: %w", method, path, err)
		}
		if resp.IsError() {
			last = &UpstreamError{
				Method:     method,
				Path:       path,
				StatusCode: resp.StatusCode(),
				Snippet:    bodySnippet(resp.Body()),
			}
			continue
		}
		return resp.Body(), nil
	}
	return nil, last
}

// callJSON executes the call and decodes the response body into out.
func (c *Client) callJSON(ctx context.Context, method, path string, params Params, out any) error {
	body, err := c.call(ctx, method, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Path: path, Snippet: bodySnippet(body), cause: err}
	}
	return nil
}

// isBodyMethod reports whether params travel as a JSON body for the verb.
func isBodyMethod(method string) bool {
	return method == resty.MethodPost || method == resty.MethodPut
}

// sleepContext waits for d without busy-waiting, honoring cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
