package wms

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Companies lists the counterparty records registered in the WMS.
func (c *Client) Companies(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	if err := c.callJSON(ctx, resty.MethodGet, "companies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Company resolves a company by its upstream external id. With a configured
// store this is a read-through cache: a local hit skips the remote call, a
// miss fetches the record and writes it through before returning.
func (c *Client) Company(ctx context.Context, externalID string) (domain.Company, error) {
	if externalID == "" {
		return domain.Company{}, fmt.Errorf("company external id is empty")
	}

	if c.companies != nil {
		cached, ok, err := c.companies.Find(externalID)
		if err != nil {
			return domain.Company{}, fmt.Errorf("company cache lookup: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	var fetched domain.Company
	if err := c.callJSON(ctx, resty.MethodGet, "companies/"+url.PathEscape(externalID), nil, &fetched); err != nil {
		return domain.Company{}, err
	}

	if c.companies == nil {
		return fetched, nil
	}

	created, err := c.companies.Create(fetched.Code, externalID, fetched, fetched.Active)
	if err != nil {
		return domain.Company{}, fmt.Errorf("company cache create: %w", err)
	}
	return created, nil
}
