package storage

import (
	"testing"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
)

func TestBoltStoreCreatesAndExpiresCompanies(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CompanyTTL:      1 * time.Second,
		CleanupInterval: 1 * time.Second,
	}

	storeRaw, err := openBolt(dir+"/companies.db", opts)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	_, found, err := store.Find("ext-1")
	if err != nil || found {
		t.Fatalf("expected absent company, found=%v err=%v", found, err)
	}

	created, err := store.Create("ACME", "ext-1", domain.Company{ID: "c1", Name: "Acme Logistics"}, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Code != "ACME" || created.ExternalID != "ext-1" || !created.Active {
		t.Fatalf("identity fields not applied: %+v", created)
	}

	cached, found, err := store.Find("ext-1")
	if err != nil || !found {
		t.Fatalf("expected cached company, found=%v err=%v", found, err)
	}
	if cached.Name != "Acme Logistics" || cached.Code != "ACME" {
		t.Fatalf("unexpected cached record: %+v", cached)
	}

	// Fast-forward cleanup cadence and trigger expiry.
	store.lastCleanup.Store(time.Now().Add(-2 * time.Second).Unix())
	time.Sleep(1100 * time.Millisecond)

	_, found, err = store.Find("ext-1")
	if err != nil {
		t.Fatalf("Find after expiry: %v", err)
	}
	if found {
		t.Fatalf("expected entry to expire and be removed")
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}

	_, found, err := store.Find("ext-1")
	if err != nil || found {
		t.Fatalf("noop store must always miss, found=%v err=%v", found, err)
	}

	created, err := store.Create("ACME", "ext-1", domain.Company{Name: "Acme"}, false)
	if err != nil {
		t.Fatalf("noop store Create: %v", err)
	}
	if created.Code != "ACME" || created.ExternalID != "ext-1" || created.Active {
		t.Fatalf("noop store must still apply identity fields: %+v", created)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported storage type")
	}
}

func TestNewStoreRequiresPathForBBolt(t *testing.T) {
	if _, err := NewStore("bbolt", "  ", Options{}); err == nil {
		t.Fatalf("expected error for missing bbolt path")
	}
}
