package wms

import (
	"context"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// Nomenclature lists stock keeping units, optionally filtered by depositor.
func (c *Client) Nomenclature(ctx context.Context, depositors []string) ([]domain.NomenclatureItem, error) {
	var out []domain.NomenclatureItem
	if err := c.callJSON(ctx, resty.MethodGet, "nomenclature", withDepositorFilter(Params{}, depositors), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncNomenclature upserts the given items into the WMS catalog.
func (c *Client) SyncNomenclature(ctx context.Context, items []domain.NomenclatureItem) error {
	rows := make([]Params, 0, len(items))
	for _, item := range items {
		rows = append(rows, Params{
			"id":           item.ID,
			"code":         item.Code,
			"name":         item.Name,
			"unit":         item.Unit,
			"weight":       item.Weight,
			"volume":       item.Volume,
			"depositor_id": item.DepositorID,
		})
	}
	_, err := c.call(ctx, resty.MethodPut, "nomenclature", Params{"items": rows})
	return err
}

// Depositors lists the client/tenant entities registered in the WMS.
func (c *Client) Depositors(ctx context.Context) ([]domain.Depositor, error) {
	var out []domain.Depositor
	if err := c.callJSON(ctx, resty.MethodGet, "depositors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
