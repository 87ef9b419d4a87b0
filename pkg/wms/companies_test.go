package wms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
)

type fakeCompanyStore struct {
	companies map[string]domain.Company
	finds     int
	creates   int
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{companies: make(map[string]domain.Company)}
}

func (f *fakeCompanyStore) Find(externalID string) (domain.Company, bool, error) {
	f.finds++
	c, ok := f.companies[externalID]
	return c, ok, nil
}

func (f *fakeCompanyStore) Create(code, externalID string, payload domain.Company, active bool) (domain.Company, error) {
	f.creates++
	payload.Code = code
	payload.ExternalID = externalID
	payload.Active = active
	f.companies[externalID] = payload
	return payload, nil
}

func TestCompanyCacheHitSkipsRemoteCall(t *testing.T) {
	remoteCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteCalls++
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := newFakeCompanyStore()
	store.companies["ext-1"] = domain.Company{ExternalID: "ext-1", Name: "Cached Co"}

	var delays []time.Duration
	c := newTestClient(t, server.URL, &delays)
	c.companies = store

	company, err := c.Company(context.Background(), "ext-1")
	if err != nil {
		t.Fatalf("Company: %v", err)
	}
	if company.Name != "Cached Co" {
		t.Fatalf("expected cached record, got %+v", company)
	}
	if remoteCalls != 0 {
		t.Fatalf("cache hit must not call the remote API, got %d calls", remoteCalls)
	}
}

func TestCompanyCacheMissFetchesAndWritesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/companies/ext-2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"c2","external_id":"ext-2","code":"ACME","name":"Acme Logistics","active":true}`))
	}))
	defer server.Close()

	store := newFakeCompanyStore()

	var delays []time.Duration
	c := newTestClient(t, server.URL, &delays)
	c.companies = store

	company, err := c.Company(context.Background(), "ext-2")
	if err != nil {
		t.Fatalf("Company: %v", err)
	}
	if company.Name != "Acme Logistics" || company.Code != "ACME" {
		t.Fatalf("unexpected company: %+v", company)
	}
	if store.creates != 1 {
		t.Fatalf("miss must write through exactly once, got %d creates", store.creates)
	}
	if _, ok := store.companies["ext-2"]; !ok {
		t.Fatalf("company was not cached under its external id")
	}
}

func TestCompanyWithoutStoreFetchesRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"c3","external_id":"ext-3","name":"Direct Co"}`))
	}))
	defer server.Close()

	var delays []time.Duration
	c := newTestClient(t, server.URL, &delays)

	company, err := c.Company(context.Background(), "ext-3")
	if err != nil {
		t.Fatalf("Company: %v", err)
	}
	if company.Name != "Direct Co" {
		t.Fatalf("unexpected company: %+v", company)
	}
}

func TestCompanyEmptyExternalID(t *testing.T) {
	var delays []time.Duration
	c := newTestClient(t, "http://127.0.0.1:0", &delays)

	if _, err := c.Company(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty external id")
	}
}
