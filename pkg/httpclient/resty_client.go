package httpclient

import (
	"net/http"
	"time"

	"github.com/Azure/go-ntlmssp"
	"github.com/go-resty/resty/v2"
)

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// NewNTLMHTTPClient builds a resty.Client whose transport performs the NTLM
// negotiation handshake. Credentials ride on every request as basic auth; the
// negotiator upgrades them to the NTLM exchange when the server challenges.
func NewNTLMHTTPClient(baseURL, username, password string, timeout time.Duration) *resty.Client {
	c := NewRestyHTTPClient(timeout)
	c.SetBaseURL(baseURL)
	c.SetTransport(ntlmssp.Negotiator{RoundTripper: &http.Transport{}})
	c.SetBasicAuth(username, password)
	return c
}

// NewBasicAuthHTTPClient builds a resty.Client using plain basic auth, for
// WMS installations fronted by a proxy that strips NTLM.
func NewBasicAuthHTTPClient(baseURL, username, password string, timeout time.Duration) *resty.Client {
	c := NewRestyHTTPClient(timeout)
	c.SetBaseURL(baseURL)
	c.SetBasicAuth(username, password)
	return c
}
