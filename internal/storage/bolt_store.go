package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	companyBucket    = "companies"
	expiryValueBytes = 8
)

// boltStore implements a Store backed by BoltDB. Each value is an 8-byte
// big-endian expiry timestamp followed by the JSON-encoded company record.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	companyTTL      time.Duration
	cleanupInterval time.Duration
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(companyBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		companyTTL:      opts.CompanyTTL,
		cleanupInterval: opts.CleanupInterval,
	}
	store.lastCleanup.Store(time.Now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Find looks up the cached company for the given external id. Expired
// entries are removed and reported as absent.
func (b *boltStore) Find(externalID string) (domain.Company, bool, error) {
	if b == nil || b.db == nil {
		return domain.Company{}, false, nil
	}

	if err := b.maybeCleanupExpired(time.Now()); err != nil {
		return domain.Company{}, false, err
	}

	var (
		company domain.Company
		found   bool
	)
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(companyBucket))
		if bucket == nil {
			return fmt.Errorf("company bucket missing")
		}

		key := []byte(externalID)
		value := bucket.Get(key)
		if value == nil {
			return nil
		}

		expiry, payload, ok := decodeRecord(value)
		if !ok || !expiry.After(time.Now()) {
			return bucket.Delete(key)
		}

		if err := json.Unmarshal(payload, &company); err != nil {
			// corrupt entry, drop it and report a miss
			return bucket.Delete(key)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return domain.Company{}, false, err
	}
	return company, true, nil
}

// Create stores the company record under its external id and returns it.
func (b *boltStore) Create(code, externalID string, payload domain.Company, active bool) (domain.Company, error) {
	record := applyIdentity(payload, code, externalID, active)
	if b == nil || b.db == nil {
		return record, nil
	}

	now := time.Now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return domain.Company{}, err
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return domain.Company{}, fmt.Errorf("encode company: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(companyBucket))
		if bucket == nil {
			return fmt.Errorf("company bucket missing")
		}
		buf := make([]byte, expiryValueBytes, expiryValueBytes+len(encoded))
		binary.BigEndian.PutUint64(buf, uint64(now.Add(b.companyTTL).Unix()))
		buf = append(buf, encoded...)
		return bucket.Put([]byte(externalID), buf)
	})
	if err != nil {
		return domain.Company{}, err
	}
	return record, nil
}

// maybeCleanupExpired removes expired company entries on a fixed cadence to
// avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(companyBucket))
		if bucket == nil {
			return fmt.Errorf("company bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			expiry, _, ok := decodeRecord(v)
			if !ok || !expiry.After(now) {
				if err := cursor.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

// decodeRecord splits a stored value into its expiry time and JSON payload.
func decodeRecord(value []byte) (time.Time, []byte, bool) {
	if len(value) <= expiryValueBytes {
		return time.Time{}, nil, false
	}
	unix := int64(binary.BigEndian.Uint64(value[:expiryValueBytes]))
	if unix <= 0 {
		return time.Time{}, nil, false
	}
	return time.Unix(unix, 0), value[expiryValueBytes:], true
}
