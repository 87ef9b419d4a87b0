package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
)

// Package storage provides the local company cache abstraction.

// Store caches company records keyed by their upstream external id.
type Store interface {
	Close() error
	Find(externalID string) (domain.Company, bool, error)
	Create(code, externalID string, payload domain.Company, active bool) (domain.Company, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	CompanyTTL      time.Duration
	CleanupInterval time.Duration
}

const (
	defaultCompanyTTL      = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.CompanyTTL <= 0 {
		opts.CompanyTTL = defaultCompanyTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

// noopStore never caches; every Find misses and Create echoes the payload.
type noopStore struct{}

func (noopStore) Close() error { return nil }

func (noopStore) Find(string) (domain.Company, bool, error) {
	return domain.Company{}, false, nil
}

func (noopStore) Create(code, externalID string, payload domain.Company, active bool) (domain.Company, error) {
	return applyIdentity(payload, code, externalID, active), nil
}

// applyIdentity stamps the caller-supplied identity fields onto the record.
func applyIdentity(payload domain.Company, code, externalID string, active bool) domain.Company {
	payload.Code = code
	payload.ExternalID = externalID
	payload.Active = active
	return payload
}
