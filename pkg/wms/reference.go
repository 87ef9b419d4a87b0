package wms

import (
	"context"
	"net/url"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Reference fetches a reference dictionary by name and returns the decoded
// JSON verbatim.
func (c *Client) Reference(ctx context.Context, name string) (any, error) {
	var out any
	if err := c.callJSON(ctx, resty.MethodGet, "reference/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) referenceEntries(ctx context.Context, name string) ([]domain.ReferenceEntry, error) {
	var out []domain.ReferenceEntry
	if err := c.callJSON(ctx, resty.MethodGet, "reference/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Warehouses lists the warehouse dictionary.
func (c *Client) Warehouses(ctx context.Context) ([]domain.ReferenceEntry, error) {
	return c.referenceEntries(ctx, "warehouses")
}

// Units lists the measurement unit dictionary.
func (c *Client) Units(ctx context.Context) ([]domain.ReferenceEntry, error) {
	return c.referenceEntries(ctx, "units")
}

// OrderStatuses lists the order status dictionary.
func (c *Client) OrderStatuses(ctx context.Context) ([]domain.ReferenceEntry, error) {
	return c.referenceEntries(ctx, "order-statuses")
}

// CarBrands lists the vehicle brand dictionary. This endpoint exhausts more
// of the retry budget than the other dictionaries under load; it shares the
// global schedule regardless.
func (c *Client) CarBrands(ctx context.Context) ([]domain.ReferenceEntry, error) {
	return c.referenceEntries(ctx, "car-brands")
}
